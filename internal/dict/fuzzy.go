package dict

import (
	"bufio"
	"context"
	_ "embed"
	"io"
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sajari/fuzzy"
)

// baselineWords is a small built-in dictionary so the oracle works
// without any downloaded corpus; fetched corpora widen it.
//
//go:embed baseline_words.txt
var baselineWords string

var corpusWordRE = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

const trainBatch = 4096

// Fuzzy is the default in-process oracle: a sajari/fuzzy suggestion
// model for corrections plus an explicit vocabulary set for
// membership, since the model alone cannot answer "is this word
// known".
type Fuzzy struct {
	model *fuzzy.Model
	vocab mapset.Set[string]
}

// NewFuzzy builds an oracle from the embedded baseline wordlist plus
// any extra corpora. Corpora are plain text: words are extracted
// lower-cased, and repetition acts as frequency weighting for the
// suggestion ranking.
func NewFuzzy(corpora ...io.Reader) (*Fuzzy, error) {
	m := fuzzy.NewModel()
	m.SetThreshold(1)
	m.SetDepth(2)

	f := &Fuzzy{model: m, vocab: mapset.NewThreadUnsafeSet[string]()}
	if err := f.train(strings.NewReader(baselineWords)); err != nil {
		return nil, err
	}
	for _, c := range corpora {
		if err := f.train(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Fuzzy) train(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	batch := make([]string, 0, trainBatch)
	for sc.Scan() {
		line := strings.ToLower(sc.Text())
		for _, w := range corpusWordRE.FindAllString(line, -1) {
			f.vocab.Add(w)
			batch = append(batch, w)
			if len(batch) == trainBatch {
				f.model.Train(batch)
				batch = batch[:0]
			}
		}
	}
	if len(batch) > 0 {
		f.model.Train(batch)
	}
	return sc.Err()
}

// Unknown returns the words absent from the vocabulary.
func (f *Fuzzy) Unknown(_ context.Context, words []string) (mapset.Set[string], error) {
	out := mapset.NewThreadUnsafeSet[string]()
	for _, w := range words {
		if !f.vocab.Contains(w) {
			out.Add(w)
		}
	}
	return out, nil
}

// Correction returns the model's best suggestion, or "" when the model
// has nothing better than the input itself.
func (f *Fuzzy) Correction(_ context.Context, word string) (string, error) {
	got := f.model.SpellCheck(word)
	if got == "" || got == word {
		return "", nil
	}
	return got, nil
}

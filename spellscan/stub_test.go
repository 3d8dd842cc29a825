package spellscan

import (
	"context"
	"errors"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Alfex4936/spellscan/internal/nlp"
)

// stubOracle returns deterministic, hand-picked results so the
// pipeline tests don't depend on any trained model.
type stubOracle struct {
	known map[string]bool
	fixes map[string]string
}

func (s *stubOracle) Unknown(_ context.Context, words []string) (mapset.Set[string], error) {
	out := mapset.NewThreadUnsafeSet[string]()
	for _, w := range words {
		if !s.known[w] {
			out.Add(w)
		}
	}
	return out, nil
}

func (s *stubOracle) Correction(_ context.Context, w string) (string, error) {
	return s.fixes[w], nil
}

// stubTokenizer splits on whitespace and peels trailing punctuation
// into its own token, mimicking the real tokenizer closely enough for
// pipeline tests. It fails on the marker word BOOM to exercise the
// skip-and-continue path.
type stubTokenizer struct{}

func (stubTokenizer) Tokenize(text string) ([]string, error) {
	if strings.Contains(text, "BOOM") {
		return nil, errors.New("tokenizer blew up")
	}
	var out []string
	for _, f := range strings.Fields(text) {
		var tail []string
		for len(f) > 0 && strings.Contains(",.!?:;", string(f[len(f)-1])) {
			tail = append([]string{string(f[len(f)-1])}, tail...)
			f = f[:len(f)-1]
		}
		if f != "" {
			out = append(out, f)
		}
		out = append(out, tail...)
	}
	return out, nil
}

// stubTagger tags by surface-form lookup; untabled tokens get "NN".
type stubTagger struct {
	tags map[string]string // token text → tag
}

func (s stubTagger) Tag(text string) ([]nlp.TaggedToken, error) {
	toks, err := stubTokenizer{}.Tokenize(text)
	if err != nil {
		return nil, err
	}
	out := make([]nlp.TaggedToken, len(toks))
	for i, t := range toks {
		tag := s.tags[t]
		if tag == "" && nlp.IsWord(t) {
			tag = "NN"
		}
		out[i] = nlp.TaggedToken{Text: t, Tag: tag}
	}
	return out, nil
}

// failTagger simulates missing tagger model data.
type failTagger struct{}

func (failTagger) Tag(string) ([]nlp.TaggedToken, error) {
	return nil, errors.New("tagger model missing")
}

func newTestChecker(o *stubOracle, opts ...func(*Config)) *Checker {
	cfg := Config{
		Oracle:    o,
		Tokenizer: stubTokenizer{},
		Tagger:    stubTagger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// englishStub covers the vocabulary the scenario tests rely on.
func englishStub() *stubOracle {
	return &stubOracle{
		known: map[string]bool{
			"this": true, "is": true, "a": true, "test": true,
			"cool": true, "the": true, "receive": true, "files": true,
			"wrong": true, "i": true,
		},
		fixes: map[string]string{
			"tihs":    "this",
			"tset":    "test",
			"recieve": "receive",
		},
	}
}

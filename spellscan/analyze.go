package spellscan

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Alfex4936/spellscan/internal/model"
	"github.com/Alfex4936/spellscan/internal/nlp"
	"github.com/Alfex4936/spellscan/internal/util"
)

// Analyze runs the spelling pipeline over one document: tokenize,
// filter to word-shaped tokens, ask the oracle which are unknown, and
// request one best correction per unknown word. Every unknown word
// appears in the findings, with an empty Suggest when the oracle has
// no confident fix.
func (c *Checker) Analyze(ctx context.Context, text string) (*model.Analysis, error) {
	return c.analyze(ctx, text, false)
}

// AnalyzeTagged additionally reports the dominant part-of-speech tag
// observed for each unknown word across the document. A tagger
// failure degrades to empty tags with a warning rather than aborting.
func (c *Checker) AnalyzeTagged(ctx context.Context, text string) (*model.Analysis, error) {
	return c.analyze(ctx, text, true)
}

func (c *Checker) analyze(ctx context.Context, text string, withTags bool) (*model.Analysis, error) {
	tokens, err := c.tok.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("spellscan: tokenize: %w", err)
	}

	words := nlp.FilterWords(tokens)

	// Candidate words: lower-cased, skipping acronyms and protected
	// terms up front so they never reach the oracle.
	cands := make([]string, 0, len(words))
	for _, w := range words {
		if isAllUpper(w) {
			continue
		}
		lower := strings.ToLower(w)
		if c.protected.Contains(lower) {
			continue
		}
		cands = append(cands, lower)
	}

	unknown, err := c.oracle.Unknown(ctx, cands)
	if err != nil {
		return nil, fmt.Errorf("spellscan: oracle: %w", err)
	}

	var tags map[string]string
	if withTags && unknown.Cardinality() > 0 {
		tags = c.dominantTags(text, unknown)
	}

	// Findings follow the discovery order of the candidate sequence.
	findings := make([]model.Finding, 0, unknown.Cardinality())
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, w := range cands {
		if !unknown.Contains(w) || seen.Contains(w) {
			continue
		}
		seen.Add(w)

		suggest, err := c.oracle.Correction(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("spellscan: correction for %q: %w", w, err)
		}
		f := model.Finding{Word: w, Suggest: suggest}
		if suggest != "" {
			f.Distance = util.Levenshtein(w, suggest)
		}
		if tags != nil {
			f.Tag = tags[w]
		}
		findings = append(findings, f)
	}

	return &model.Analysis{
		Findings:     findings,
		UnknownCount: len(findings),
		WordCount:    len(words),
		CharCount:    utf8.RuneCountInString(text),
	}, nil
}

// dominantTags tags the original-case token stream and tallies tag
// frequency per unknown word. The per-word tally is an ordered slice,
// so a tie keeps whichever tag was seen first regardless of map
// iteration order.
func (c *Checker) dominantTags(text string, unknown mapset.Set[string]) map[string]string {
	tagged, err := c.tagger.Tag(text)
	if err != nil {
		c.logger.Warn("tagger unavailable, reporting empty tags", "err", err)
		return map[string]string{}
	}

	type tally struct {
		tag string
		n   int
	}
	counts := make(map[string][]tally)
	for _, tt := range tagged {
		if !nlp.IsWord(tt.Text) {
			continue
		}
		key := strings.ToLower(tt.Text)
		if !unknown.Contains(key) {
			continue
		}
		ts := counts[key]
		hit := false
		for i := range ts {
			if ts[i].tag == tt.Tag {
				ts[i].n++
				hit = true
				break
			}
		}
		if !hit {
			ts = append(ts, tally{tag: tt.Tag, n: 1})
		}
		counts[key] = ts
	}

	out := make(map[string]string, len(counts))
	for w, ts := range counts {
		best := 0
		for i := 1; i < len(ts); i++ {
			if ts[i].n > ts[best].n {
				best = i
			}
		}
		out[w] = ts[best].tag
	}
	return out
}

package spellscan

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Alfex4936/spellscan/internal/nlp"
)

// tightPunct lists the punctuation marks whose preceding join-space is
// removed during reassembly.
var tightPunct = []string{",", ".", "!", "?", ":", ";"}

// Correct rewrites each correctable word of text in place and
// reassembles a space-joined string with punctuation spacing fixed up.
// Non-word tokens and all-uppercase tokens pass through verbatim; a
// word whose first letter was capitalized keeps that capitalization.
//
// The output is reflowed text: original newlines, tabs, and runs of
// spaces are not preserved.
func (c *Checker) Correct(ctx context.Context, text string) (string, error) {
	tokens, err := c.tok.Tokenize(text)
	if err != nil {
		return "", fmt.Errorf("spellscan: tokenize: %w", err)
	}

	fixes, err := c.fixesFor(ctx, tokens)
	if err != nil {
		return "", err
	}

	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = c.correctToken(tok, fixes)
	}

	joined := strings.Join(out, " ")
	for _, p := range tightPunct {
		joined = strings.ReplaceAll(joined, " "+p, p)
	}
	return joined, nil
}

// fixesFor resolves corrections for every unknown word of the token
// stream in one oracle round-trip per distinct word.
func (c *Checker) fixesFor(ctx context.Context, tokens []string) (map[string]string, error) {
	var cands []string
	for _, tok := range tokens {
		if !nlp.IsWord(tok) || isAllUpper(tok) {
			continue
		}
		lower := strings.ToLower(tok)
		if c.protected.Contains(lower) {
			continue
		}
		cands = append(cands, lower)
	}
	if len(cands) == 0 {
		return nil, nil
	}

	unknown, err := c.oracle.Unknown(ctx, cands)
	if err != nil {
		return nil, fmt.Errorf("spellscan: oracle: %w", err)
	}

	fixes := make(map[string]string, unknown.Cardinality())
	for _, w := range cands {
		if !unknown.Contains(w) {
			continue
		}
		if _, done := fixes[w]; done {
			continue
		}
		suggest, err := c.oracle.Correction(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("spellscan: correction for %q: %w", w, err)
		}
		fixes[w] = suggest
	}
	return fixes, nil
}

func (c *Checker) correctToken(tok string, fixes map[string]string) string {
	if !nlp.IsWord(tok) || isAllUpper(tok) {
		return tok
	}
	lower := strings.ToLower(tok)
	if c.protected.Contains(lower) {
		return tok
	}
	fix := fixes[lower]
	if fix == "" {
		return tok // known word, or unknown with no suggestion
	}
	if r, _ := utf8.DecodeRuneInString(tok); unicode.IsUpper(r) {
		fix = capitalize(fix)
	}
	return fix
}

// capitalize upper-cases only the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

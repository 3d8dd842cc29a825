// Package nlp adapts an external tokenizer and part-of-speech tagger
// behind minimal interfaces so the pipeline can run on stubs in tests.
package nlp

import "regexp"

// TaggedToken pairs a token's surface form with its part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tokenizer splits text into an ordered token sequence. Punctuation
// becomes its own token.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Tagger tokenizes and tags text in one pass, preserving token order.
// Tagging runs over original-case tokens for accuracy.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}

// wordRE is the word-shape pattern: an ASCII letter followed by ASCII
// letters, apostrophes, and hyphens only.
var wordRE = regexp.MustCompile(`^[A-Za-z][A-Za-z'-]*$`)

// IsWord reports whether tok qualifies as a unit of dictionary lookup.
func IsWord(tok string) bool { return wordRE.MatchString(tok) }

// FilterWords keeps word-shaped tokens, preserving order.
func FilterWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if IsWord(t) {
			out = append(out, t)
		}
	}
	return out
}

package nlp

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// Prose backs both interfaces with jdkato/prose's tokenizer and
// averaged-perceptron tagger. The model ships inside the package, so
// construction never touches the network.
type Prose struct{}

// NewProse returns the default tokenizer/tagger implementation.
func NewProse() *Prose { return &Prose{} }

func (p *Prose) Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("nlp: tokenize: %w", err)
	}
	toks := doc.Tokens()
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out, nil
}

func (p *Prose) Tag(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("nlp: tag: %w", err)
	}
	toks := doc.Tokens()
	out := make([]TaggedToken, len(toks))
	for i, t := range toks {
		out[i] = TaggedToken{Text: t.Text, Tag: t.Tag}
	}
	return out, nil
}

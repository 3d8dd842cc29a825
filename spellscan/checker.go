// Package spellscan detects and corrects English spelling errors in
// batches of plain-text files. It tokenizes each document, filters to
// word-shaped tokens, asks a dictionary oracle which words are unknown
// and how to fix them, and can rewrite the document with corrections
// applied.
package spellscan

import (
	"errors"
	"strings"

	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Alfex4936/spellscan/internal/dict"
	"github.com/Alfex4936/spellscan/internal/nlp"
)

// Config assembles a Checker. Only Oracle is mandatory; the
// tokenizer/tagger default to the prose adapter and the logger to
// slog.Default().
type Config struct {
	Oracle    dict.Oracle
	Tokenizer nlp.Tokenizer
	Tagger    nlp.Tagger
	Dict      *Dict // protected words, optional
	Logger    *slog.Logger
}

// Checker is the shared pipeline context: one oracle, one
// tokenizer/tagger pair, and the protected-word set, constructed once
// and reused read-only across every file in a batch.
type Checker struct {
	oracle    dict.Oracle
	tok       nlp.Tokenizer
	tagger    nlp.Tagger
	protected mapset.Set[string]
	logger    *slog.Logger
}

// New validates cfg and builds a Checker.
func New(cfg Config) (*Checker, error) {
	if cfg.Oracle == nil {
		return nil, errors.New("spellscan: Config.Oracle is required")
	}
	c := &Checker{
		oracle:    cfg.Oracle,
		tok:       cfg.Tokenizer,
		tagger:    cfg.Tagger,
		protected: mapset.NewThreadUnsafeSet[string](),
		logger:    cfg.Logger,
	}
	if c.tok == nil || c.tagger == nil {
		p := nlp.NewProse()
		if c.tok == nil {
			c.tok = p
		}
		if c.tagger == nil {
			c.tagger = p
		}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if cfg.Dict != nil {
		for _, w := range cfg.Dict.Words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				c.protected.Add(w)
			}
		}
	}
	return c, nil
}

// withWords derives a Checker whose protected set additionally covers
// words. The oracle and models are shared with the receiver.
func (c *Checker) withWords(words []string) *Checker {
	if len(words) == 0 {
		return c
	}
	p := c.protected.Clone()
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			p.Add(w)
		}
	}
	cc := *c
	cc.protected = p
	return &cc
}

// isAllUpper reports whether s is an all-uppercase token, treated as
// an acronym: never checked, never corrected.
func isAllUpper(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

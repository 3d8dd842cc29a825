package spellscan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFindsUnknownWords(t *testing.T) {
	c := newTestChecker(englishStub())

	an, err := c.Analyze(context.Background(), "Tihs is a tset.")
	require.NoError(t, err)

	require.Len(t, an.Findings, 2)
	assert.Equal(t, "tihs", an.Findings[0].Word)
	assert.Equal(t, "this", an.Findings[0].Suggest)
	assert.Equal(t, 2, an.Findings[0].Distance)
	assert.Equal(t, "tset", an.Findings[1].Word)
	assert.Equal(t, "test", an.Findings[1].Suggest)
	assert.Equal(t, 2, an.UnknownCount)
	assert.Equal(t, 4, an.WordCount)
	assert.Equal(t, 15, an.CharCount)
}

func TestAnalyzeSkipsAllUppercase(t *testing.T) {
	c := newTestChecker(englishStub())

	an, err := c.Analyze(context.Background(), "NASA is cool")
	require.NoError(t, err)

	assert.Empty(t, an.Findings, "acronyms must never enter the unknown set")
}

func TestAnalyzeUncorrectableStillReported(t *testing.T) {
	o := englishStub()
	delete(o.fixes, "tset")
	c := newTestChecker(o)

	an, err := c.Analyze(context.Background(), "a tset")
	require.NoError(t, err)

	require.Len(t, an.Findings, 1)
	assert.Equal(t, "tset", an.Findings[0].Word)
	assert.Equal(t, "", an.Findings[0].Suggest, "a word without a fix must still appear")
	assert.Equal(t, 0, an.Findings[0].Distance)
}

func TestAnalyzeDeduplicatesWithinDocument(t *testing.T) {
	c := newTestChecker(englishStub())

	an, err := c.Analyze(context.Background(), "tihs tihs Tihs")
	require.NoError(t, err)

	require.Len(t, an.Findings, 1, "case variants collapse to one lower-cased entry")
	assert.Equal(t, "tihs", an.Findings[0].Word)
}

func TestAnalyzeProtectedWordsNeverFlagged(t *testing.T) {
	c := newTestChecker(englishStub(), func(cfg *Config) {
		cfg.Dict = NewDict("Kafka")
	})

	an, err := c.Analyze(context.Background(), "kafka is cool")
	require.NoError(t, err)
	assert.Empty(t, an.Findings)
}

func TestAnalyzeTaggedDominantTag(t *testing.T) {
	o := englishStub()
	o.fixes["florp"] = ""
	c := newTestChecker(o, func(cfg *Config) {
		cfg.Tagger = stubTagger{tags: map[string]string{"florp": "VB", "Florp": "NNP"}}
	})

	// Three occurrences: VB, NNP, VB → VB dominates.
	an, err := c.AnalyzeTagged(context.Background(), "florp Florp florp")
	require.NoError(t, err)

	require.Len(t, an.Findings, 1)
	assert.Equal(t, "VB", an.Findings[0].Tag)
}

func TestAnalyzeTaggedTieKeepsFirstSeen(t *testing.T) {
	c := newTestChecker(englishStub(), func(cfg *Config) {
		cfg.Tagger = stubTagger{tags: map[string]string{"florp": "VB", "Florp": "NNP"}}
	})

	// One VB, one NNP: first-seen wins the tie.
	an, err := c.AnalyzeTagged(context.Background(), "florp Florp")
	require.NoError(t, err)

	require.Len(t, an.Findings, 1)
	assert.Equal(t, "VB", an.Findings[0].Tag)
}

func TestAnalyzeTaggedDegradesWhenTaggerFails(t *testing.T) {
	c := newTestChecker(englishStub(), func(cfg *Config) {
		cfg.Tagger = failTagger{}
	})

	an, err := c.AnalyzeTagged(context.Background(), "Tihs is a tset.")
	require.NoError(t, err, "tagger failure must not abort the analysis")

	require.Len(t, an.Findings, 2)
	for _, f := range an.Findings {
		assert.Equal(t, "", f.Tag)
	}
}

func TestAnalyzeUntaggedHasNoTags(t *testing.T) {
	c := newTestChecker(englishStub())

	an, err := c.Analyze(context.Background(), "tihs")
	require.NoError(t, err)
	require.Len(t, an.Findings, 1)
	assert.Equal(t, "", an.Findings[0].Tag)
}

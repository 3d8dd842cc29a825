// Package dict provides the dictionary oracle the pipeline consults:
// which words are unknown, and the best correction for each.
package dict

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
)

// Oracle judges word validity and proposes corrections. Inputs are
// lower-cased candidate words; implementations may assume as much.
// Oracles are read-only after construction and reused sequentially
// across every file of a batch.
type Oracle interface {
	// Unknown returns the subset of words absent from the dictionary.
	Unknown(ctx context.Context, words []string) (mapset.Set[string], error)
	// Correction returns the best-ranked replacement for word, or ""
	// when no confident suggestion exists.
	Correction(ctx context.Context, word string) (string, error)
}

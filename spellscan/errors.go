package spellscan

import "errors"

var (
	// ErrNoInput signals a batch invoked with zero files.
	ErrNoInput = errors.New("spellscan: no input files")
)

package spellscan

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Alfex4936/spellscan/internal/model"
	"github.com/Alfex4936/spellscan/internal/textenc"
)

// Progress is invoked after each file with the number of files
// processed so far and the batch total.
type Progress func(done, total int)

// BatchOptions adjust one orchestrator run.
type BatchOptions struct {
	Tags     bool     // include dominant POS tags in findings
	Progress Progress // optional per-file progress callback
}

// Batch processes files in upload order: decode, analyze, merge
// findings into the deduplicated mapping (first file wins), and
// produce corrected text per file. A single bad file is recorded in
// Skipped with a warning and never aborts the rest of the batch.
//
// Zero files is a validation error (ErrNoInput). Zero findings is not
// an error; callers should check TotalUnknown before producing
// downloadable artifacts.
func (c *Checker) Batch(ctx context.Context, files []model.File, opts BatchOptions) (*model.BatchResult, error) {
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	res := &model.BatchResult{
		Corrected: make(map[string]string, len(files)),
		Files:     len(files),
	}
	seen := mapset.NewThreadUnsafeSet[string]()

	total := len(files)
	for i, f := range files {
		text, enc := textenc.Decode(f.Data)
		c.logger.Debug("decoded file", "file", f.Name, "encoding", enc)

		var (
			an  *model.Analysis
			err error
		)
		if opts.Tags {
			an, err = c.AnalyzeTagged(ctx, text)
		} else {
			an, err = c.Analyze(ctx, text)
		}
		if err != nil {
			c.logger.Warn("skipping file", "file", f.Name, "err", err)
			res.Skipped = append(res.Skipped, f.Name)
			if opts.Progress != nil {
				opts.Progress(i+1, total)
			}
			continue
		}

		res.TotalUnknown += an.UnknownCount
		for _, fd := range an.Findings {
			row := model.Row{File: f.Name, Word: fd.Word, Tag: fd.Tag, Suggest: fd.Suggest}
			res.Rows = append(res.Rows, row)
			if !seen.Contains(fd.Word) { // first file wins
				seen.Add(fd.Word)
				res.Unique = append(res.Unique, row)
			}
		}

		corrected, err := c.Correct(ctx, text)
		if err != nil {
			c.logger.Warn("correction failed", "file", f.Name, "err", err)
			res.Skipped = append(res.Skipped, f.Name)
		} else {
			// Same name uploaded twice: last one processed overwrites.
			res.Corrected[f.Name] = corrected
		}

		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}
	return res, nil
}

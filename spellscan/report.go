package spellscan

import (
	"archive/zip"
	"encoding/csv"
	"io"
	"sort"

	"github.com/Alfex4936/spellscan/internal/model"
)

// utf8BOM precedes the CSV so spreadsheet apps pick the right charset.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"file", "spelling_error", "word_class", "correction"}

// WriteCSV renders the deduplicated findings as BOM-prefixed UTF-8
// CSV, sorted alphabetically by word. Each row names the file of the
// word's first occurrence.
func WriteCSV(w io.Writer, res *model.BatchResult) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	rows := make([]model.Row, len(res.Unique))
	copy(rows, res.Unique)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Word < rows[j].Word })

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.File, r.Word, r.Tag, r.Suggest}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteZIP archives one corrected-text entry per input file name.
// Entries are ordered by name so the archive layout is deterministic.
func WriteZIP(w io.Writer, res *model.BatchResult) error {
	names := make([]string, 0, len(res.Corrected))
	for name := range res.Corrected {
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(w)
	for _, name := range names {
		f, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := f.Write([]byte(res.Corrected[name])); err != nil {
			return err
		}
	}
	return zw.Close()
}

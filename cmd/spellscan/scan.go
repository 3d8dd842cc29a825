package main

import (
	"fmt"
	"io"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Alfex4936/spellscan/internal/model"
	"github.com/Alfex4936/spellscan/internal/util"
	"github.com/Alfex4936/spellscan/spellscan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [files...]",
	Short: "Detect misspellings across text files",
	Long: `Scan decodes each file, reports every word unknown to the
dictionary with its suggested correction, and can export the
deduplicated report as CSV and the corrected files as a ZIP archive.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolP("tags", "t", false, "include dominant part-of-speech tags")
	scanCmd.Flags().String("csv", "", "write the deduplicated report CSV to this path")
	scanCmd.Flags().String("zip", "", "write corrected files as a ZIP archive to this path")
}

func runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide at least one text file to scan")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	files := make([]model.File, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, model.File{Name: path, Data: data})
	}

	checker, err := newChecker(cmd.Context(), logger)
	if err != nil {
		return err
	}

	tags, _ := cmd.Flags().GetBool("tags")
	res, err := checker.Batch(cmd.Context(), files, spellscan.BatchOptions{
		Tags: tags,
		Progress: func(done, total int) {
			logger.Info("progress", "done", done, "total", total,
				"pct", fmt.Sprintf("%.0f%%", float64(done)/float64(total)*100))
		},
	})
	if err != nil {
		return err
	}

	if res.TotalUnknown == 0 {
		fmt.Println("no spelling errors found")
		return nil
	}

	out, err := util.MarshalNoEscape(res, true)
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		if err := writeArtifact(path, res, spellscan.WriteCSV); err != nil {
			return err
		}
		logger.Info("report written", "path", path)
	}
	if path, _ := cmd.Flags().GetString("zip"); path != "" {
		if err := writeArtifact(path, res, spellscan.WriteZIP); err != nil {
			return err
		}
		logger.Info("archive written", "path", path)
	}
	return nil
}

func writeArtifact(path string, res *model.BatchResult, write func(w io.Writer, res *model.BatchResult) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

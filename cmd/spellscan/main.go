// Command spellscan detects and corrects spelling errors in batches of
// plain-text files.
//
// Usage:
//
//	spellscan scan report.txt notes.txt --csv errors.csv --zip corrected.zip
//	spellscan scan -t chapter1.txt
//	spellscan serve -p 8080 --mode hunspell --hunspell-dir /usr/share/hunspell
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spellscan:", err)
		os.Exit(1)
	}
}

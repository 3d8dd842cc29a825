package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the spellscan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

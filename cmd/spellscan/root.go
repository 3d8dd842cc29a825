package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "spellscan",
	Short: "Batch spelling detection and correction for plain-text files",
	Long: `Spellscan ingests plain-text files, finds words unknown to its
dictionary, suggests corrections with part-of-speech context, and can
rewrite the files with the corrections applied.

Oracle backends:
  fuzzy     in-process suggestion model trained on a frequency corpus (default)
  hunspell  local hunspell process in ispell pipe mode
  llm       OpenAI-compatible endpoint for corrections`,
	Version: Version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./spellscan.yaml)",
	)
	rootCmd.PersistentFlags().String(
		"data-dir", defaultDataDir(), "directory for downloaded dictionary resources",
	)
	rootCmd.PersistentFlags().String(
		"mode", "fuzzy", "oracle backend: fuzzy | hunspell | llm",
	)
	rootCmd.PersistentFlags().String(
		"dict", "", `user dictionary JSON file ({"words": [...]})`,
	)

	// hunspell flags
	rootCmd.PersistentFlags().String("hunspell-dir", "", "hunspell dictionary directory (hunspell mode)")
	rootCmd.PersistentFlags().String("hunspell-lang", "en_US", "hunspell dictionary name (hunspell mode)")

	// llm flags
	rootCmd.PersistentFlags().String("llm-key", "", "API key (llm mode; or OPENAI_API_KEY)")
	rootCmd.PersistentFlags().String("llm-model", "", "LLM model name (llm mode)")
	rootCmd.PersistentFlags().String("llm-url", "", "OpenAI-compatible base URL (llm mode)")

	for _, name := range []string{
		"data-dir", "mode", "dict",
		"hunspell-dir", "hunspell-lang",
		"llm-key", "llm-model", "llm-url",
	} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	if err := viper.BindEnv("llm-key", "OPENAI_API_KEY"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(scanCmd, serveCmd, versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("spellscan")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("SPELLSCAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "using config:", viper.ConfigFileUsed())
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spellscan"
	}
	return filepath.Join(home, ".spellscan")
}

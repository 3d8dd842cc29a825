package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"log/slog"

	"github.com/spf13/viper"

	"github.com/Alfex4936/spellscan/internal/dict"
	"github.com/Alfex4936/spellscan/internal/resources"
	"github.com/Alfex4936/spellscan/spellscan"
)

// newChecker builds the shared pipeline context from viper settings:
// ensures the dictionary resources, constructs the selected oracle
// backend, and loads the user dictionary.
func newChecker(ctx context.Context, logger *slog.Logger) (*spellscan.Checker, error) {
	var (
		oracle dict.Oracle
		err    error
	)

	switch mode := viper.GetString("mode"); mode {
	case "hunspell":
		oracle, err = dict.NewHunspell(
			viper.GetString("hunspell-dir"), viper.GetString("hunspell-lang"))
		if err != nil {
			return nil, err
		}
		logger.Info("oracle ready", "backend", "hunspell",
			"dict", viper.GetString("hunspell-dir")+"/"+viper.GetString("hunspell-lang"))

	case "llm":
		key := viper.GetString("llm-key")
		if key == "" {
			return nil, errors.New("llm mode requires --llm-key or OPENAI_API_KEY")
		}
		base, err := newFuzzyOracle(ctx, logger)
		if err != nil {
			return nil, err
		}
		oracle = dict.NewLLM(base, key,
			viper.GetString("llm-model"), viper.GetString("llm-url"))
		logger.Info("oracle ready", "backend", "llm", "model", viper.GetString("llm-model"))

	case "fuzzy", "":
		if oracle, err = newFuzzyOracle(ctx, logger); err != nil {
			return nil, err
		}
		logger.Info("oracle ready", "backend", "fuzzy")

	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	var d *spellscan.Dict
	if path := viper.GetString("dict"); path != "" {
		if d, err = spellscan.LoadDict(path); err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
	}

	return spellscan.New(spellscan.Config{
		Oracle: oracle,
		Dict:   d,
		Logger: logger,
	})
}

// newFuzzyOracle ensures the training corpora exist locally and trains
// the in-process suggestion model from them.
func newFuzzyOracle(ctx context.Context, logger *slog.Logger) (*dict.Fuzzy, error) {
	mgr := resources.NewManager(viper.GetString("data-dir"), logger)
	if err := mgr.Ensure(ctx, resources.Defaults); err != nil {
		return nil, err
	}

	var corpora []io.Reader
	for _, spec := range resources.Defaults {
		f, err := mgr.Open(spec.Name)
		if err != nil {
			// Only optional resources can be absent after Ensure.
			continue
		}
		defer f.Close()
		corpora = append(corpora, f)
	}
	return dict.NewFuzzy(corpora...)
}

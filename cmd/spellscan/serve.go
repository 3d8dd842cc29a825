package main

import (
	"fmt"
	"net/http"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the spellscan HTTP API",
	Long: `Serve exposes the pipeline over HTTP: POST /v1/analyze for one
text, POST /v1/batch for multipart file uploads (JSON report, CSV
download, or corrected-files ZIP), GET /health, and Redoc docs at /.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "port to listen on")
	if err := viper.BindPFlag("port", serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	checker, err := newChecker(cmd.Context(), logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	checker.Routes(mux)

	addr := fmt.Sprintf(":%s", viper.GetString("port"))
	logger.Info("spellscan server listening", "addr", addr)
	logger.Info("endpoints",
		"analyze", "POST /v1/analyze",
		"batch", "POST /v1/batch",
		"docs", "GET /")
	return http.ListenAndServe(addr, mux)
}

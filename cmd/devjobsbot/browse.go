package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"devjobs-bot/internal/browse"
	"devjobs-bot/internal/classify"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the job board interactively (TUI)",
	Long:  "Fetches the full job board and opens a split-pane view: all listings on the left, classified dev jobs on the right.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The TUI owns the terminal; any log output before the alt-screen
	// starts corrupts the display.
	silentLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	fetcher := buildFetcher(cfg, httpClient, silentLogger)

	return browse.Run("RemoteOK", fetcher.FetchJobs, classify.NewDeveloperFilter())
}

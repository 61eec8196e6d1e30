package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"devjobs-bot/internal/classify"
	"devjobs-bot/internal/config"
	"devjobs-bot/internal/fetch"
	"devjobs-bot/internal/model"
	"devjobs-bot/internal/remoteok"
	"devjobs-bot/internal/render"
	"devjobs-bot/internal/report"
	"devjobs-bot/internal/retry"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "devjobsbot",
	Short: "Remote dev jobs bot for Discord",
	Long:  "Fetches remote developer jobs from RemoteOK and posts them to a Discord channel on a schedule.",
	// Default to `start` so the bare binary runs the daemon. This keeps
	// container entrypoints that invoke the binary directly working.
	RunE: runStart,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: DEVJOBSBOT_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > DEVJOBSBOT_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("DEVJOBSBOT_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func setupReporter(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Reporter {
	if cfg.Discord.ErrorWebhookURL == "" {
		return report.NewNop()
	}
	logger.Info("error reporting via webhook enabled")
	return report.NewWebhook(cfg.Discord.ErrorWebhookURL, httpClient, logger)
}

func setupRenderer(cfg *config.Config) render.Renderer {
	if cfg.Render.Strategy == "text" {
		return render.NewTextRenderer(cfg.Render.ChunkLimit)
	}
	return render.NewCardRenderer(cfg.Render.PageSize)
}

// buildFetcher assembles the raw job fetcher: the RemoteOK adapter
// wrapped with retries.
func buildFetcher(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.JobFetcher {
	adapter := remoteok.New(cfg.SourceURL, httpClient)
	return retry.NewFetcher(adapter, cfg.Retry.MaxRetries, cfg.Retry.BaseDelay, logger)
}

// buildFetchService assembles the full pipeline front half: fetch,
// classify, swallow-and-report failures.
func buildFetchService(cfg *config.Config, httpClient *http.Client, reporter model.Reporter, logger *slog.Logger) *fetch.Service {
	fetcher := buildFetcher(cfg, httpClient, logger)
	return fetch.NewService(fetcher, classify.NewDeveloperFilter(), reporter, logger)
}

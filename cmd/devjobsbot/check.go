package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"devjobs-bot/internal/classify"
	"devjobs-bot/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch once, print dev jobs, exit",
	Long:  "One-shot fetch: pulls the job board, prints the developer roles that would be posted, exits. Does not touch Discord.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	source := buildFetchService(cfg, httpClient, report.NewNop(), logger)

	jobs := source.Fetch(ctx)
	for _, j := range jobs {
		logger.Info("dev job",
			"title", j.Title,
			"company", j.Company,
			"level", classify.JobLevel(j.Title),
			"url", j.URL,
		)
	}

	logger.Info("check complete", "dev_jobs", len(jobs))
	return nil
}

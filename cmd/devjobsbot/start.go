package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"devjobs-bot/internal/discord"
	"devjobs-bot/internal/model"
	"devjobs-bot/internal/ratelimit"
	"devjobs-bot/internal/scheduler"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bot daemon",
	Long:  "Connects to Discord, posts jobs on the configured schedule, and serves slash commands; blocks until SIGINT/SIGTERM.",
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("config loaded",
		"schedule", cfg.CronSpec,
		"source", cfg.SourceURL,
		"channel", cfg.Discord.JobChannelID,
		"render", cfg.Render.Strategy,
	)

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	reporter := setupReporter(cfg, httpClient, logger)
	source := buildFetchService(cfg, httpClient, reporter, logger)
	renderer := setupRenderer(cfg)
	limiter := ratelimit.NewSendLimiter(cfg.SendDelay)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := discord.New(cfg.Discord.BotToken, logger)
	if err != nil {
		fatal(ctx, reporter, logger, "failed to create session", err)
	}

	sched := scheduler.New(
		cfg.Discord.JobChannelID,
		client,
		source,
		renderer,
		reporter,
		limiter,
		logger,
	)

	commands := discord.NewCommands(
		cfg.Discord.JobChannelID,
		source,
		renderer,
		sched,
		reporter,
		limiter,
		logger,
	)
	client.Session().AddHandler(commands.Handler())

	if err := client.Open(); err != nil {
		fatal(ctx, reporter, logger, "failed to connect", err)
	}
	defer client.Close()

	if err := discord.RegisterCommands(client.Session(), cfg.Discord.AppID); err != nil {
		logger.Warn("slash command registration failed", "error", err)
		reporter.Report(ctx, err)
	}

	// Wipe leftovers from the previous run so the channel only ever
	// shows the latest batch.
	cleared, err := discord.ClearBotMessages(ctx, client.Session(), cfg.Discord.JobChannelID, client.BotUserID(), logger)
	if err != nil {
		logger.Warn("startup clear failed", "error", err)
		reporter.Report(ctx, err)
	} else if cleared > 0 {
		logger.Info("cleared previous bot messages", "count", cleared)
	}

	if err := sched.Start(cfg.CronSpec); err != nil {
		fatal(ctx, reporter, logger, "failed to start schedule", err)
	}
	defer sched.Stop()

	// First batch goes out right away; the cron timer handles the rest.
	sched.RunCycle(ctx)

	logger.Info("bot is running", "schedule", cfg.CronSpec)
	<-ctx.Done()

	logger.Info("goodbye")
	return nil
}

// fatal reports a startup-breaking error to the webhook before exiting.
func fatal(ctx context.Context, reporter model.Reporter, logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	reporter.Report(ctx, err)
	os.Exit(1)
}

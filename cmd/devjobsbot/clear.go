package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"devjobs-bot/internal/discord"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the bot's messages from the jobs channel",
	Long:  "Connects to Discord, deletes every message the bot has posted in the jobs channel, and exits.",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := discord.New(cfg.Discord.BotToken, logger)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		os.Exit(1)
	}
	if err := client.Open(); err != nil {
		logger.Error("failed to connect", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	deleted, err := discord.ClearBotMessages(ctx, client.Session(), cfg.Discord.JobChannelID, client.BotUserID(), logger)
	if err != nil {
		logger.Error("clear failed", "deleted", deleted, "error", err)
		os.Exit(1)
	}

	logger.Info("clear complete", "deleted", deleted)
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"devjobs-bot/internal/discord"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register the slash commands and exit",
	Long:  "Overwrites the application's global slash commands with the bot's command set. Run once after deploying, or when the command set changes.",
	RunE:  runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Command registration is plain REST; no gateway connection needed.
	client, err := discord.New(cfg.Discord.BotToken, logger)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		os.Exit(1)
	}

	if err := discord.RegisterCommands(client.Session(), cfg.Discord.AppID); err != nil {
		logger.Error("registration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("slash commands registered")
	return nil
}

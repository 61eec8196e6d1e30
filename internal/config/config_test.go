package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "env-token")
	t.Setenv("APP_ID", "env-app")
	t.Setenv("JOB_CHANNEL_ID", "env-channel")
}

func TestLoad_FileWithOverrides(t *testing.T) {
	setRequiredEnv(t)
	path := writeConfig(t, `
schedule: "*/15 * * * *"
source_url: https://example.com/api
send_delay: 1s
request_timeout: 10s
render:
  strategy: text
  chunk_limit: 1500
retry:
  max_retries: 5
  base_delay: 2s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CronSpec != "*/15 * * * *" {
		t.Errorf("CronSpec = %q", cfg.CronSpec)
	}
	if cfg.SourceURL != "https://example.com/api" {
		t.Errorf("SourceURL = %q", cfg.SourceURL)
	}
	if cfg.SendDelay != time.Second {
		t.Errorf("SendDelay = %v", cfg.SendDelay)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.Render.Strategy != "text" || cfg.Render.ChunkLimit != 1500 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Retry.MaxRetries != 5 || cfg.Retry.BaseDelay != 2*time.Second {
		t.Errorf("Retry = %+v", cfg.Retry)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CronSpec != "0 */6 * * *" {
		t.Errorf("CronSpec = %q, want six-hour default", cfg.CronSpec)
	}
	if cfg.SourceURL != "https://remoteok.com/api" {
		t.Errorf("SourceURL = %q", cfg.SourceURL)
	}
	if cfg.Render.Strategy != "cards" || cfg.Render.PageSize != 10 || cfg.Render.ChunkLimit != 2000 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.SendDelay != 500*time.Millisecond {
		t.Errorf("SendDelay = %v", cfg.SendDelay)
	}
	if cfg.Retry.MaxRetries != 2 || cfg.Retry.BaseDelay != 5*time.Second {
		t.Errorf("Retry = %+v", cfg.Retry)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	setRequiredEnv(t)
	path := writeConfig(t, `
discord:
  bot_token: file-token
  job_channel_id: file-channel
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Discord.BotToken != "env-token" {
		t.Errorf("BotToken = %q, want env value", cfg.Discord.BotToken)
	}
	if cfg.Discord.JobChannelID != "env-channel" {
		t.Errorf("JobChannelID = %q, want env value", cfg.Discord.JobChannelID)
	}
}

func TestLoad_ExpandsEnvReferences(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEBHOOK_SECRET", "https://discord.com/api/webhooks/1/abc")
	path := writeConfig(t, `
discord:
  error_webhook_url: ${WEBHOOK_SECRET}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Discord.ErrorWebhookURL != "https://discord.com/api/webhooks/1/abc" {
		t.Errorf("ErrorWebhookURL = %q", cfg.Discord.ErrorWebhookURL)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("APP_ID", "env-app")
	t.Setenv("JOB_CHANNEL_ID", "env-channel")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "BOT_TOKEN") {
		t.Fatalf("err = %v, want BOT_TOKEN required", err)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	path := writeConfig(t, "send_delay: soon\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "send_delay") {
		t.Fatalf("err = %v, want send_delay parse error", err)
	}
}

func TestLoad_InvalidStrategy(t *testing.T) {
	setRequiredEnv(t)
	path := writeConfig(t, "render:\n  strategy: plaintext\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "render.strategy") {
		t.Fatalf("err = %v, want strategy validation error", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	setRequiredEnv(t)
	path := writeConfig(t, "render: [broken\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the bot.
type Config struct {
	Discord        DiscordConfig
	CronSpec       string        // posting schedule, robfig/cron expression
	SourceURL      string        // job listings API endpoint
	SendDelay      time.Duration // minimum gap between consecutive channel sends
	RequestTimeout time.Duration // per-request timeout for outbound HTTP
	Render         RenderConfig
	Retry          RetryConfig
}

// DiscordConfig holds the platform credentials and targets.
type DiscordConfig struct {
	BotToken        string
	AppID           string
	JobChannelID    string
	ErrorWebhookURL string // optional; empty disables error reporting
}

// RenderConfig selects and tunes the message rendering strategy.
type RenderConfig struct {
	Strategy   string // "cards" or "text"
	PageSize   int    // embeds per message (cards)
	ChunkLimit int    // character budget per message (text)
}

// RetryConfig controls the fetch retry decorator.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

const (
	defaultCronSpec       = "0 */6 * * *"
	defaultSourceURL      = "https://remoteok.com/api"
	defaultSendDelay      = 500 * time.Millisecond
	defaultRequestTimeout = 30 * time.Second
	defaultPageSize       = 10
	defaultChunkLimit     = 2000
	defaultMaxRetries     = 2
	defaultBaseDelay      = 5 * time.Second
)

// rawConfig is used for YAML unmarshaling (snake_case fields and durations
// as strings).
type rawConfig struct {
	Schedule       string           `yaml:"schedule"`
	SourceURL      string           `yaml:"source_url"`
	SendDelay      string           `yaml:"send_delay"`
	RequestTimeout string           `yaml:"request_timeout"`
	Discord        rawDiscordConfig `yaml:"discord"`
	Render         rawRenderConfig  `yaml:"render"`
	Retry          rawRetryConfig   `yaml:"retry"`
}

type rawDiscordConfig struct {
	BotToken        string `yaml:"bot_token"`
	AppID           string `yaml:"app_id"`
	JobChannelID    string `yaml:"job_channel_id"`
	ErrorWebhookURL string `yaml:"error_webhook_url"`
}

type rawRenderConfig struct {
	Strategy   string `yaml:"strategy"`
	PageSize   int    `yaml:"page_size"`
	ChunkLimit int    `yaml:"chunk_limit"`
}

type rawRetryConfig struct {
	MaxRetries *int   `yaml:"max_retries"`
	BaseDelay  string `yaml:"base_delay"`
}

// Load reads the optional YAML config at path, applies environment
// overrides (a .env file is honored if present), fills defaults, and
// validates required credentials.
//
// The config file is optional: a missing file is fine as long as the
// environment supplies BOT_TOKEN, APP_ID, and JOB_CHANNEL_ID.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var raw rawConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Expand ${VAR} references so secrets can live in the environment.
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Env-only setup.
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Discord: DiscordConfig{
			BotToken:        raw.Discord.BotToken,
			AppID:           raw.Discord.AppID,
			JobChannelID:    raw.Discord.JobChannelID,
			ErrorWebhookURL: raw.Discord.ErrorWebhookURL,
		},
		CronSpec:  defaultCronSpec,
		SourceURL: defaultSourceURL,
		Render: RenderConfig{
			Strategy:   "cards",
			PageSize:   defaultPageSize,
			ChunkLimit: defaultChunkLimit,
		},
		Retry: RetryConfig{
			MaxRetries: defaultMaxRetries,
			BaseDelay:  defaultBaseDelay,
		},
		SendDelay:      defaultSendDelay,
		RequestTimeout: defaultRequestTimeout,
	}

	if raw.Schedule != "" {
		cfg.CronSpec = raw.Schedule
	}
	if raw.SourceURL != "" {
		cfg.SourceURL = raw.SourceURL
	}
	if raw.Render.Strategy != "" {
		cfg.Render.Strategy = raw.Render.Strategy
	}
	if raw.Render.PageSize > 0 {
		cfg.Render.PageSize = raw.Render.PageSize
	}
	if raw.Render.ChunkLimit > 0 {
		cfg.Render.ChunkLimit = raw.Render.ChunkLimit
	}
	if raw.Retry.MaxRetries != nil {
		cfg.Retry.MaxRetries = *raw.Retry.MaxRetries
	}

	if raw.SendDelay != "" {
		cfg.SendDelay, err = time.ParseDuration(raw.SendDelay)
		if err != nil {
			return nil, fmt.Errorf("parse send_delay %q: %w", raw.SendDelay, err)
		}
	}
	if raw.RequestTimeout != "" {
		cfg.RequestTimeout, err = time.ParseDuration(raw.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse request_timeout %q: %w", raw.RequestTimeout, err)
		}
	}
	if raw.Retry.BaseDelay != "" {
		cfg.Retry.BaseDelay, err = time.ParseDuration(raw.Retry.BaseDelay)
		if err != nil {
			return nil, fmt.Errorf("parse retry.base_delay %q: %w", raw.Retry.BaseDelay, err)
		}
	}

	// Environment always wins over the file.
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Discord.BotToken = v
	}
	if v := os.Getenv("APP_ID"); v != "" {
		cfg.Discord.AppID = v
	}
	if v := os.Getenv("JOB_CHANNEL_ID"); v != "" {
		cfg.Discord.JobChannelID = v
	}
	if v := os.Getenv("ERROR_WEBHOOK_URL"); v != "" {
		cfg.Discord.ErrorWebhookURL = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Discord.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("APP_ID is required")
	}
	if c.Discord.JobChannelID == "" {
		return fmt.Errorf("JOB_CHANNEL_ID is required")
	}
	switch c.Render.Strategy {
	case "cards", "text":
	default:
		return fmt.Errorf("render.strategy must be \"cards\" or \"text\", got %q", c.Render.Strategy)
	}
	return nil
}

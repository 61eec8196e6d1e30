// Package discord wraps the gateway session and implements the chat
// platform surface the rest of the bot consumes: posting and deleting
// messages, slash commands, and the bulk clear.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"devjobs-bot/internal/render"
	"devjobs-bot/internal/scheduler"
)

// Ensure Client implements the scheduler's poster port.
var _ scheduler.Poster = (*Client)(nil)

// Client wraps a discordgo session.
type Client struct {
	session *discordgo.Session
	logger  *slog.Logger
}

// New creates a client for the given bot token. The session is not
// connected until Open is called.
func New(token string, logger *slog.Logger) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return &Client{session: session, logger: logger}, nil
}

// Open connects to the gateway and blocks until the ready event.
func (c *Client) Open() error {
	ready := make(chan struct{})
	var remove func()
	remove = c.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		c.logger.Info("logged in", "user", r.User.Username)
		close(ready)
	})
	defer remove()

	if err := c.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	<-ready
	return nil
}

// Close disconnects from the gateway.
func (c *Client) Close() error {
	return c.session.Close()
}

// Session exposes the underlying session for handler registration.
func (c *Client) Session() *discordgo.Session {
	return c.session
}

// BotUserID returns the bot's own user ID. Valid after Open.
func (c *Client) BotUserID() string {
	if c.session.State == nil || c.session.State.User == nil {
		return ""
	}
	return c.session.State.User.ID
}

// ResolveChannel verifies the channel exists and is visible to the bot.
func (c *Client) ResolveChannel(ctx context.Context, channelID string) error {
	if _, err := c.session.Channel(channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("resolve channel %s: %w", channelID, err)
	}
	return nil
}

// SendMessage posts one rendered message and returns its identifier.
func (c *Client) SendMessage(ctx context.Context, channelID string, msg render.Message) (string, error) {
	m, err := c.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: msg.Content,
		Embeds:  msg.Embeds,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("send to channel %s: %w", channelID, err)
	}
	return m.ID, nil
}

// DeleteMessage removes a single message.
func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return c.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
}

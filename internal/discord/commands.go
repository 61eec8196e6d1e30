package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"devjobs-bot/internal/model"
	"devjobs-bot/internal/ratelimit"
	"devjobs-bot/internal/render"
	"devjobs-bot/internal/scheduler"
)

// User-visible command replies.
const (
	msgTriggerDone = "✅ Job posting triggered manually!"
	msgJobsFailed  = "❌ An error occurred while fetching jobs. Please try again later."
	msgClearFailed = "❌ Failed to clear messages."
)

var commandDefs = []*discordgo.ApplicationCommand{
	{
		Name:        "jobs",
		Description: "Shows the most recent remote developer jobs",
	},
	{
		Name:        "trigger-jobs",
		Description: "Manually triggers job posting",
	},
	{
		Name:        "clear",
		Description: "Clears all bot messages from the jobs channel",
	},
}

// RegisterCommands overwrites the application's global slash commands
// with the bot's command set.
func RegisterCommands(session *discordgo.Session, appID string) error {
	if _, err := session.ApplicationCommandBulkOverwrite(appID, "", commandDefs); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}

// CycleRunner triggers one posting cycle on demand.
type CycleRunner interface {
	RunCycle(ctx context.Context)
}

// Commands dispatches slash-command interactions to the job pipeline.
type Commands struct {
	channelID string
	source    scheduler.JobSource
	renderer  render.Renderer
	runner    CycleRunner
	reporter  model.Reporter
	limiter   *ratelimit.SendLimiter
	logger    *slog.Logger
}

// NewCommands creates the dispatcher for the three slash commands.
func NewCommands(
	channelID string,
	source scheduler.JobSource,
	renderer render.Renderer,
	runner CycleRunner,
	reporter model.Reporter,
	limiter *ratelimit.SendLimiter,
	logger *slog.Logger,
) *Commands {
	return &Commands{
		channelID: channelID,
		source:    source,
		renderer:  renderer,
		runner:    runner,
		reporter:  reporter,
		limiter:   limiter,
		logger:    logger,
	}
}

// Handler returns the interaction handler to register on the session.
// Every command resolves with either a result or a polite failure
// message; a panic inside a handler is reported, never fatal.
func (c *Commands) Handler() func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		ctx := context.Background()
		name := i.ApplicationCommandData().Name

		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("command %s panicked: %v", name, r)
				c.logger.Error("command handler panicked", "command", name, "panic", r)
				c.reporter.Report(ctx, err)
				c.editReply(s, i, msgJobsFailed)
			}
		}()

		switch name {
		case "jobs":
			c.handleJobs(ctx, s, i)
		case "trigger-jobs":
			c.handleTrigger(ctx, s, i)
		case "clear":
			c.handleClear(ctx, s, i)
		}
	}
}

// handleJobs replies to the requester with the current listing. The
// reply is scoped to the interaction and never tracked by the
// scheduler's posted set.
func (c *Commands) handleJobs(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := c.ackDeferred(s, i, false); err != nil {
		c.logger.Error("could not defer jobs reply", "error", err)
		return
	}

	jobs := c.source.Fetch(ctx)
	msgs := c.renderer.Render(jobs)

	first := msgs[0]
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &first.Content,
		Embeds:  &first.Embeds,
	}); err != nil {
		c.logger.Error("jobs reply failed", "error", err)
		c.reporter.Report(ctx, err)
		return
	}

	for _, msg := range msgs[1:] {
		if err := c.limiter.Wait(ctx, i.ChannelID); err != nil {
			return
		}
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: msg.Content,
			Embeds:  msg.Embeds,
		}); err != nil {
			c.logger.Error("jobs follow-up failed", "error", err)
			c.reporter.Report(ctx, err)
			return
		}
	}
}

// handleTrigger runs the scheduler's cycle outside the timer.
func (c *Commands) handleTrigger(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := c.ackDeferred(s, i, false); err != nil {
		c.logger.Error("could not defer trigger reply", "error", err)
		return
	}

	c.logger.Info("manual posting trigger", "user", interactionUser(i))
	c.runner.RunCycle(ctx)
	c.editReply(s, i, msgTriggerDone)
}

// handleClear bulk-deletes the bot's messages from the jobs channel.
func (c *Commands) handleClear(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := c.ackDeferred(s, i, true); err != nil {
		c.logger.Error("could not defer clear reply", "error", err)
		return
	}

	botID := ""
	if s.State != nil && s.State.User != nil {
		botID = s.State.User.ID
	}

	deleted, err := ClearBotMessages(ctx, s, c.channelID, botID, c.logger)
	if err != nil {
		c.logger.Error("clear failed", "error", err)
		c.reporter.Report(ctx, err)
		c.editReply(s, i, msgClearFailed)
		return
	}
	c.editReply(s, i, fmt.Sprintf("🧹 Cleared %d bot messages from the channel!", deleted))
}

// ackDeferred acknowledges the interaction so handlers have time to work.
func (c *Commands) ackDeferred(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
}

func (c *Commands) editReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		c.logger.Error("could not edit interaction reply", "error", err)
	}
}

func interactionUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return "unknown"
}

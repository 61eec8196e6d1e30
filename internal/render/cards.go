package render

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"devjobs-bot/internal/classify"
	"devjobs-bot/internal/model"
)

const (
	cardsHeader = "🚀 **Devs jobs available**"
	embedColor  = 0x0099FF

	// Discord caps embeds at 10 per message.
	maxEmbedsPerMessage = 10

	// Tech stack lines show at most this many requirement tags.
	maxStackTags = 5
)

// Ensure CardRenderer implements Renderer.
var _ Renderer = (*CardRenderer)(nil)

// CardRenderer renders each job as one rich embed card and groups the
// cards into pages. The first page carries the header content; the rest
// are follow-up sends.
type CardRenderer struct {
	pageSize int
}

// NewCardRenderer creates a card renderer with the given page size,
// clamped to Discord's 10-embed limit.
func NewCardRenderer(pageSize int) *CardRenderer {
	if pageSize <= 0 || pageSize > maxEmbedsPerMessage {
		pageSize = maxEmbedsPerMessage
	}
	return &CardRenderer{pageSize: pageSize}
}

// Render produces one message per page of cards, or the no-jobs notice.
func (r *CardRenderer) Render(jobs []model.Job) []Message {
	if len(jobs) == 0 {
		return []Message{{Content: NoJobsNotice}}
	}

	embeds := make([]*discordgo.MessageEmbed, 0, len(jobs))
	for _, job := range jobs {
		embeds = append(embeds, card(job))
	}

	var msgs []Message
	for i := 0; i < len(embeds); i += r.pageSize {
		end := i + r.pageSize
		if end > len(embeds) {
			end = len(embeds)
		}
		msg := Message{Embeds: embeds[i:end]}
		if i == 0 {
			msg.Content = cardsHeader
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// card builds the embed for a single job: linked title plus a
// description combining company, level label, badges, and tech stack.
func card(job model.Job) *discordgo.MessageEmbed {
	level := classify.JobLevel(job.Title)
	badges := classify.TechBadges(job.Title, job.Requirements)
	stack := techStack(job.Requirements)

	return &discordgo.MessageEmbed{
		Title: job.Title,
		URL:   job.URL,
		Description: fmt.Sprintf("**Company:** %s\n**Level:** %s%s\n**Tech Stack:** %s",
			job.Company, level, badges, stack),
		Color: embedColor,
	}
}

func techStack(requirements []string) string {
	if len(requirements) == 0 {
		return "Not specified"
	}
	if len(requirements) > maxStackTags {
		requirements = requirements[:maxStackTags]
	}
	return strings.Join(requirements, ", ")
}

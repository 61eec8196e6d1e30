// Package render turns job lists into outgoing Discord messages.
// Two interchangeable strategies exist: rich embed cards paginated ten
// at a time, and bordered plain-text blocks chunked under the platform
// character limit. The choice is a config decision, not a runtime one.
package render

import (
	"github.com/bwmarrin/discordgo"

	"devjobs-bot/internal/model"
)

// NoJobsNotice is posted instead of an empty page when a cycle finds
// nothing to show.
const NoJobsNotice = "🚫 No Dev Jobs available at the moment."

// Message is one outgoing channel message: plain content, embeds, or both.
type Message struct {
	Content string
	Embeds  []*discordgo.MessageEmbed
}

// Renderer renders a job list into one or more messages, in posting order.
// Implementations must emit a single no-jobs notice for an empty list,
// never zero messages.
type Renderer interface {
	Render(jobs []model.Job) []Message
}

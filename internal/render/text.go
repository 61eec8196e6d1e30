package render

import (
	"fmt"
	"strings"

	"devjobs-bot/internal/classify"
	"devjobs-bot/internal/model"
)

const blockBorder = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Ensure TextRenderer implements Renderer.
var _ Renderer = (*TextRenderer)(nil)

// TextRenderer renders jobs as bordered plain-text blocks joined by
// blank lines, then splits the result into chunks under the character
// budget. Field labels are Portuguese to match the target server's
// locale.
type TextRenderer struct {
	limit int
}

// NewTextRenderer creates a text renderer with the given per-message
// character budget (2000 if non-positive, the platform limit).
func NewTextRenderer(limit int) *TextRenderer {
	if limit <= 0 {
		limit = 2000
	}
	return &TextRenderer{limit: limit}
}

// Render produces one message per chunk, or the no-jobs notice.
func (r *TextRenderer) Render(jobs []model.Job) []Message {
	if len(jobs) == 0 {
		return []Message{{Content: NoJobsNotice}}
	}

	blocks := make([]string, 0, len(jobs))
	for _, job := range jobs {
		blocks = append(blocks, block(job))
	}

	chunks := SplitMessage(strings.Join(blocks, "\n\n"), r.limit)
	msgs := make([]Message, 0, len(chunks))
	for _, chunk := range chunks {
		msgs = append(msgs, Message{Content: chunk})
	}
	return msgs
}

func block(job model.Job) string {
	level := classify.JobLevel(job.Title)
	badges := classify.TechBadges(job.Title, job.Requirements)

	stack := "Não especificado"
	if len(job.Requirements) > 0 {
		tags := job.Requirements
		if len(tags) > maxStackTags {
			tags = tags[:maxStackTags]
		}
		stack = strings.Join(tags, ", ")
	}

	var b strings.Builder
	b.WriteString(blockBorder + "\n")
	b.WriteString("💼 " + job.Title + "\n")
	b.WriteString("🏢 Empresa: " + job.Company + "\n")
	b.WriteString(fmt.Sprintf("📊 Nível: %s%s\n", level, badges))
	b.WriteString("🛠️ Tecnologias: " + stack)
	if job.URL != "" {
		b.WriteString("\n🔗 " + job.URL)
	}
	return b.String()
}

// SplitMessage splits a message into chunks of at most maxLength
// characters, preferring to cut at the last newline before the limit
// and falling back to a hard cut when a line exceeds it. Concatenating
// the chunks reproduces the input exactly.
func SplitMessage(message string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = 2000
	}

	var chunks []string
	for len(message) > maxLength {
		idx := strings.LastIndex(message[:maxLength], "\n")
		if idx <= 0 {
			idx = maxLength
		}
		chunks = append(chunks, message[:idx])
		message = message[idx:]
	}
	if len(message) > 0 {
		chunks = append(chunks, message)
	}
	return chunks
}

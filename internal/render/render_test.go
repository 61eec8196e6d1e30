package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devjobs-bot/internal/model"
)

func sampleJobs(n int) []model.Job {
	jobs := make([]model.Job, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, model.Job{
			Title:        fmt.Sprintf("Senior Go Developer %d", i+1),
			Company:      "Acme",
			URL:          fmt.Sprintf("https://remoteok.com/remote-jobs/%d", i+1),
			Requirements: []string{"golang", "docker", "aws", "kubernetes", "terraform", "grpc"},
		})
	}
	return jobs
}

func TestCardRenderer_SinglePageAtBoundary(t *testing.T) {
	r := NewCardRenderer(10)

	msgs := r.Render(sampleJobs(10))
	require.Len(t, msgs, 1, "exactly 10 jobs must fit a single primary page")
	assert.Equal(t, "🚀 **Devs jobs available**", msgs[0].Content)
	assert.Len(t, msgs[0].Embeds, 10)
}

func TestCardRenderer_FollowUpPageAtEleven(t *testing.T) {
	r := NewCardRenderer(10)

	msgs := r.Render(sampleJobs(11))
	require.Len(t, msgs, 2)
	assert.Len(t, msgs[0].Embeds, 10)
	assert.Len(t, msgs[1].Embeds, 1)
	// Only the primary page carries the header.
	assert.Empty(t, msgs[1].Content)
}

func TestCardRenderer_CardFields(t *testing.T) {
	job := model.Job{
		Title:        "Junior Python Developer",
		Company:      "DataCo",
		URL:          "https://example.com/j/1",
		Requirements: []string{"python", "django", "postgresql", "redis", "docker", "aws", "gcp"},
	}
	msgs := NewCardRenderer(10).Render([]model.Job{job})
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].Embeds, 1)

	e := msgs[0].Embeds[0]
	assert.Equal(t, job.Title, e.Title)
	assert.Equal(t, job.URL, e.URL)
	assert.Equal(t, embedColor, e.Color)
	assert.Contains(t, e.Description, "**Company:** DataCo")
	assert.Contains(t, e.Description, "🟢 (Junior)")
	// Only the first five tags make the stack line.
	assert.Contains(t, e.Description, "python, django, postgresql, redis, docker")
	assert.NotContains(t, e.Description, "gcp")
}

func TestCardRenderer_NoRequirements(t *testing.T) {
	msgs := NewCardRenderer(10).Render([]model.Job{{Title: "Go Developer", Company: "Acme"}})
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Embeds[0].Description, "**Tech Stack:** Not specified")
}

func TestCardRenderer_ZeroJobs(t *testing.T) {
	msgs := NewCardRenderer(10).Render(nil)
	require.Len(t, msgs, 1)
	assert.Equal(t, NoJobsNotice, msgs[0].Content)
	assert.Empty(t, msgs[0].Embeds)
}

func TestTextRenderer_ZeroJobs(t *testing.T) {
	msgs := NewTextRenderer(2000).Render(nil)
	require.Len(t, msgs, 1)
	assert.Equal(t, NoJobsNotice, msgs[0].Content)
}

func TestTextRenderer_ChunksUnderLimit(t *testing.T) {
	msgs := NewTextRenderer(2000).Render(sampleJobs(40))
	require.Greater(t, len(msgs), 1, "40 blocks cannot fit one message")

	var rebuilt strings.Builder
	for _, m := range msgs {
		assert.LessOrEqual(t, len(m.Content), 2000)
		assert.Empty(t, m.Embeds)
		rebuilt.WriteString(m.Content)
	}
	// Chunking loses no content.
	assert.Contains(t, rebuilt.String(), "Senior Go Developer 40")
}

func TestSplitMessage_RoundTrip(t *testing.T) {
	// ~5000 chars with a newline every ~80.
	line := strings.Repeat("x", 79) + "\n"
	message := strings.Repeat(line, 63)

	chunks := SplitMessage(message, 2000)
	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.LessOrEqual(t, len(c), 2000, "chunk %d over budget", i)
	}
	assert.Equal(t, message, strings.Join(chunks, ""), "concatenated chunks must reproduce the input")
}

func TestSplitMessage_HardCutWithoutNewlines(t *testing.T) {
	message := strings.Repeat("a", 4500)
	chunks := SplitMessage(message, 2000)
	require.Len(t, chunks, 3)
	assert.Equal(t, 2000, len(chunks[0]))
	assert.Equal(t, 2000, len(chunks[1]))
	assert.Equal(t, 500, len(chunks[2]))
	assert.Equal(t, message, strings.Join(chunks, ""))
}

func TestSplitMessage_ShortMessageUntouched(t *testing.T) {
	chunks := SplitMessage("hello\nworld", 2000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello\nworld", chunks[0])
}

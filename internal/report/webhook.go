// Package report delivers error reports to a Discord webhook.
// Reporting is fire-and-forget: a report that cannot be delivered is
// logged and dropped, never surfaced to the caller.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"devjobs-bot/internal/model"
)

// maxStackChars bounds the stack excerpt in a report.
const maxStackChars = 1000

// Ensure WebhookReporter implements model.Reporter.
var _ model.Reporter = (*WebhookReporter)(nil)

// WebhookReporter posts a formatted error embed to a Discord webhook.
type WebhookReporter struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhook returns a reporter that posts each error to the webhook URL.
func NewWebhook(webhookURL string, httpClient *http.Client, logger *slog.Logger) *WebhookReporter {
	return &WebhookReporter{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Report sends one error report. The caller's stack is captured at the
// call site and truncated to 1000 characters.
func (r *WebhookReporter) Report(ctx context.Context, err error) {
	payload := buildPayload(err, debug.Stack())

	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		r.logger.Error("failed to marshal error report", "error", marshalErr)
		return
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, r.webhookURL, bytes.NewReader(body))
	if reqErr != nil {
		r.logger.Error("failed to build error report request", "error", reqErr)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, postErr := r.httpClient.Do(req)
	if postErr != nil {
		r.logger.Error("failed to deliver error report", "error", postErr)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		r.logger.Error("error report rejected", "status", resp.StatusCode)
		return
	}
	r.logger.Debug("error report delivered", "reported", err)
}

// Webhook payload types.

type webhookPayload struct {
	Content string         `json:"content"`
	Embeds  []webhookEmbed `json:"embeds"`
}

type webhookEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Fields      []webhookField `json:"fields"`
	Footer      webhookFooter  `json:"footer"`
}

type webhookField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type webhookFooter struct {
	Text string `json:"text"`
}

func buildPayload(err error, stack []byte) webhookPayload {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}

	excerpt := string(stack)
	if len(excerpt) > maxStackChars {
		excerpt = excerpt[:maxStackChars]
	}
	if excerpt == "" {
		excerpt = "No stack trace available"
	}

	return webhookPayload{
		Content: "🚨 **Bot Error Detected**",
		Embeds: []webhookEmbed{
			{
				Title:       "❗ Error Report",
				Description: fmt.Sprintf("```\n%s\n```", message),
				Color:       0xFF0000,
				Fields: []webhookField{
					{
						Name:  "Stack Trace",
						Value: fmt.Sprintf("```\n%s\n```", excerpt),
					},
					{
						Name:   "Timestamp",
						Value:  fmt.Sprintf("<t:%d:F>", time.Now().Unix()),
						Inline: true,
					},
				},
				Footer: webhookFooter{Text: "Bot Error Handler"},
			},
		},
	}
}

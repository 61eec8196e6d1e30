package report

import (
	"context"

	"devjobs-bot/internal/model"
)

// Ensure NopReporter implements model.Reporter.
var _ model.Reporter = (*NopReporter)(nil)

// NopReporter discards every report. Used when no webhook URL is
// configured and as a test double.
type NopReporter struct{}

// NewNop returns a reporter that does nothing.
func NewNop() *NopReporter {
	return &NopReporter{}
}

// Report discards the error.
func (*NopReporter) Report(context.Context, error) {}

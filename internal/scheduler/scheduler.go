// Package scheduler owns the recurring posting cycle: delete the
// previous batch, fetch fresh jobs, render, and post the new batch,
// tracking message IDs for the next cycle.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"devjobs-bot/internal/model"
	"devjobs-bot/internal/ratelimit"
	"devjobs-bot/internal/render"
)

// Poster is the slice of the chat platform the scheduler needs.
type Poster interface {
	// ResolveChannel verifies the target channel exists and is reachable.
	ResolveChannel(ctx context.Context, channelID string) error
	// SendMessage posts one message and returns its identifier.
	SendMessage(ctx context.Context, channelID string, msg render.Message) (string, error)
	// DeleteMessage removes a message by identifier.
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// JobSource supplies the jobs for a cycle. It never fails: an upstream
// problem shows up as an empty result.
type JobSource interface {
	Fetch(ctx context.Context) []model.Job
}

// Scheduler runs posting cycles on a cron schedule or on demand. It is
// the only owner of the posted-message set: the IDs currently displayed
// as "the latest job listing", replaced wholesale each cycle.
type Scheduler struct {
	channelID string
	poster    Poster
	source    JobSource
	renderer  render.Renderer
	reporter  model.Reporter
	limiter   *ratelimit.SendLimiter
	logger    *slog.Logger

	cron *cron.Cron

	// mu serializes cycles. A trigger that arrives while a cycle is
	// running is skipped, not queued.
	mu     sync.Mutex
	posted []string
}

// New creates a scheduler wired with all its dependencies.
func New(
	channelID string,
	poster Poster,
	source JobSource,
	renderer render.Renderer,
	reporter model.Reporter,
	limiter *ratelimit.SendLimiter,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		channelID: channelID,
		poster:    poster,
		source:    source,
		renderer:  renderer,
		reporter:  reporter,
		limiter:   limiter,
		logger:    logger,
	}
}

// Start registers the cycle under the given cron expression and starts
// the timer. The first scheduled run happens at the next cron match,
// not immediately; callers wanting an immediate pass invoke RunCycle.
func (s *Scheduler) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		s.logger.Info("scheduled posting cycle starting")
		s.RunCycle(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("job scheduler initialized", "schedule", spec)
	return nil
}

// Stop cancels the timer. A cycle already running completes on its own.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Posted returns a snapshot of the tracked message IDs.
func (s *Scheduler) Posted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.posted))
	copy(out, s.posted)
	return out
}

// RunCycle executes one full posting cycle. Overlapping triggers (a
// manual trigger racing a timer tick) are skipped with a log line.
// A failure never propagates: it is logged, reported, and the cycle
// ends early.
func (s *Scheduler) RunCycle(ctx context.Context) {
	if !s.mu.TryLock() {
		s.logger.Warn("posting cycle already running, skipping trigger")
		return
	}
	defer s.mu.Unlock()

	if err := s.poster.ResolveChannel(ctx, s.channelID); err != nil {
		s.logger.Error("job channel not found, aborting cycle", "channel", s.channelID, "error", err)
		return
	}

	s.deletePrevious(ctx)

	jobs := s.source.Fetch(ctx)
	msgs := s.renderer.Render(jobs)

	newIDs := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if err := s.limiter.Wait(ctx, s.channelID); err != nil {
			s.finish(ctx, newIDs, err)
			return
		}
		id, err := s.poster.SendMessage(ctx, s.channelID, msg)
		if err != nil {
			s.finish(ctx, newIDs, err)
			return
		}
		newIDs = append(newIDs, id)
	}

	s.posted = newIDs
	s.logger.Info("posting cycle complete", "jobs", len(jobs), "messages", len(newIDs))
}

// deletePrevious best-effort deletes every tracked message. A single
// failed delete (already gone, missing permission) is logged and does
// not stop the loop.
func (s *Scheduler) deletePrevious(ctx context.Context) {
	if len(s.posted) == 0 {
		return
	}
	s.logger.Info("deleting previous messages", "count", len(s.posted))
	for _, id := range s.posted {
		if err := s.poster.DeleteMessage(ctx, s.channelID, id); err != nil {
			s.logger.Warn("could not delete message", "message_id", id, "error", err)
		}
	}
	s.posted = nil
}

// finish records a partial posting and reports the failure. Messages
// already sent stay tracked so the next cycle can delete them.
func (s *Scheduler) finish(ctx context.Context, sentIDs []string, err error) {
	s.posted = sentIDs
	s.logger.Error("posting cycle failed", "posted", len(sentIDs), "error", err)
	s.reporter.Report(ctx, err)
}

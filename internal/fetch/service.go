// Package fetch owns the front half of the posting pipeline: pull the
// listing, keep the developer roles, recover upstream failures locally.
package fetch

import (
	"context"
	"log/slog"

	"devjobs-bot/internal/model"
)

// Service composes the upstream adapter (usually behind the retry
// decorator) with the developer-job filter and the error reporter.
type Service struct {
	fetcher  model.JobFetcher
	filter   model.JobFilter
	reporter model.Reporter
	logger   *slog.Logger
}

// NewService creates a fetch service wired with all its dependencies.
func NewService(fetcher model.JobFetcher, filter model.JobFilter, reporter model.Reporter, logger *slog.Logger) *Service {
	return &Service{
		fetcher:  fetcher,
		filter:   filter,
		reporter: reporter,
		logger:   logger,
	}
}

// Fetch returns the current developer jobs in source order.
//
// It never fails from the caller's point of view: any upstream error
// (network, HTTP status, malformed response) is logged, forwarded to
// the reporter, and collapsed into an empty result. Callers cannot
// distinguish a failed fetch from a genuinely empty listing.
func (s *Service) Fetch(ctx context.Context) []model.Job {
	jobs, err := s.fetcher.FetchJobs(ctx)
	if err != nil {
		s.logger.Error("fetching job posts failed", "error", err)
		s.reporter.Report(ctx, err)
		return nil
	}

	matched := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if s.filter.Match(job) {
			matched = append(matched, job)
		}
	}

	s.logger.Info("fetched jobs", "fetched", len(jobs), "matched", len(matched))
	return matched
}

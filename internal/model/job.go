package model

import "context"

// Job is one remote job listing normalized from the upstream API.
// Jobs are never mutated after construction; each fetch cycle builds a
// fresh slice.
type Job struct {
	Title        string   // falls back to a placeholder when the source omits it
	Company      string   // falls back to a placeholder when the source omits it
	URL          string   // empty if absent, not validated
	Requirements []string // technology tags in source order, may be empty
}

// JobFetcher fetches job listings from a source (e.g. RemoteOK).
type JobFetcher interface {
	FetchJobs(ctx context.Context) ([]Job, error)
}

// JobFilter decides whether a listing is worth keeping.
type JobFilter interface {
	Match(job Job) bool
}

// Reporter forwards an error to an out-of-band sink (e.g. a Discord
// webhook). Implementations are fire-and-forget: delivery failures are
// logged and swallowed, never returned to the caller.
type Reporter interface {
	Report(ctx context.Context, err error)
}

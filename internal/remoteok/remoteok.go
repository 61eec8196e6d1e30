// Package remoteok fetches listings from the RemoteOK public API and
// normalizes them into the unified Job model.
package remoteok

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"devjobs-bot/internal/model"
)

const defaultBaseURL = "https://remoteok.com/api"

// User-visible placeholders for listings missing the expected fields.
const (
	placeholderTitle   = "Título não disponível"
	placeholderCompany = "Empresa não informada"
)

// listing is one element of the RemoteOK response array. All fields are
// optional; position is preferred over title when both are present.
type listing struct {
	Position string   `json:"position"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	URL      string   `json:"url"`
	Tags     []string `json:"tags"`
}

// Ensure Adapter implements model.JobFetcher.
var _ model.JobFetcher = (*Adapter)(nil)

// Adapter fetches jobs from the RemoteOK API.
type Adapter struct {
	baseURL string
	client  *http.Client
}

// New creates an adapter pointed at the given endpoint. An empty url
// selects the public RemoteOK API.
func New(url string, client *http.Client) *Adapter {
	if url == "" {
		url = defaultBaseURL
	}
	return &Adapter{baseURL: url, client: client}
}

// FetchJobs retrieves the full listing array and normalizes it.
// The first element of the response is metadata, not a job, and is
// discarded. Classification happens one layer up; every surviving
// element is returned.
func (a *Adapter) FetchJobs(ctx context.Context) ([]model.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("remoteok fetch: unexpected status"),
		}
	}

	var rows []listing
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("remoteok fetch: decode: %w", err)
	}

	// Element 0 is the API's legal/metadata record.
	if len(rows) > 0 {
		rows = rows[1:]
	}

	jobs := make([]model.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, normalize(row))
	}
	return jobs, nil
}

// normalize applies the field-fallback rules: position wins over title,
// missing title/company get placeholders, missing url stays empty, and
// tags carry over in source order.
func normalize(row listing) model.Job {
	title := row.Position
	if title == "" {
		title = row.Title
	}
	if title == "" {
		title = placeholderTitle
	}

	company := row.Company
	if company == "" {
		company = placeholderCompany
	}

	return model.Job{
		Title:        title,
		Company:      company,
		URL:          row.URL,
		Requirements: row.Tags,
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

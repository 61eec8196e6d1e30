// Package classify decides whether a raw listing is an IT/developer job
// and derives display labels (seniority, technology badges) from its
// free text. Matching is case-insensitive substring containment over a
// maintained keyword list.
package classify

import (
	"strings"

	"devjobs-bot/internal/model"
)

// Non-technical role words. Any hit rejects the listing unless a
// keyword-specific exception fires.
var excludedKeywords = []string{
	"marketing", "sales", "account", "accounting", "finance", "legal", "lawyer",
	"hr", "human resources", "recruiter", "recruitment", "business development",
	"content writer", "copywriter", "customer service", "support agent",
	"project manager", "business analyst", "consultant", "advisor",
	"designer", "graphic designer", "ui designer", "ux designer",
	"manager", "director", "executive", "ceo", "cto", "cfo",
	"operations", "logistics", "procurement", "vendor",
}

// IT/tech vocabulary. A listing that survived exclusion must contain at
// least one of these to be accepted.
var itKeywords = []string{
	// Programming roles
	"developer", "programmer", "engineer", "coder", "architect",

	// Specific tech roles
	"frontend", "backend", "fullstack", "full-stack", "full stack",
	"software engineer", "web developer", "mobile developer",
	"devops", "sre", "site reliability", "platform engineer",
	"data engineer", "data scientist", "ml engineer", "ai engineer",
	"security engineer", "cybersecurity", "infosec",
	"qa engineer", "test engineer", "automation engineer",
	"cloud engineer", "infrastructure engineer", "system administrator",

	// Programming languages
	"javascript", "typescript", "python", "java", "c#", "c++",
	"php", "ruby", "go", "rust", "kotlin", "swift", "scala",

	// Frameworks and technologies
	"react", "vue", "angular", "node", "express", "django", "flask",
	"spring", "laravel", "rails", "dotnet", ".net",
	"docker", "kubernetes", "aws", "azure", "gcp", "terraform",
	"mongodb", "postgresql", "mysql", "redis", "elasticsearch",

	// Mobile development
	"ios", "android", "flutter", "react native", "xamarin",

	// Level indicators combined with tech context
	"junior developer", "senior developer", "lead developer",
	"principal engineer", "staff engineer", "tech lead",
}

// IsDeveloperJob reports whether a listing with the given title and tags
// is a legitimate IT/tech position. Title and tags are lowercased and
// joined into one blob; exclusion keywords reject unless an exception
// rule allows them back in, and an inclusion keyword is then required.
func IsDeveloperJob(title string, tags []string) bool {
	text := blob(title, tags)

	for _, kw := range excludedKeywords {
		if strings.Contains(text, kw) && !isITException(text, kw) {
			return false
		}
	}

	for _, kw := range itKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// isITException reports whether an excluded keyword is acceptable in an
// IT context. Only the keywords listed here have an exception; any
// other exclusion hit is final.
func isITException(text, keyword string) bool {
	switch keyword {
	case "designer", "ui designer", "ux designer":
		return strings.Contains(text, "web") || strings.Contains(text, "frontend") ||
			strings.Contains(text, "react") || strings.Contains(text, "vue") ||
			strings.Contains(text, "angular")

	case "manager", "director":
		return strings.Contains(text, "engineering") || strings.Contains(text, "technical") ||
			strings.Contains(text, "development") || strings.Contains(text, "software") ||
			strings.Contains(text, "tech") || strings.Contains(text, "it") ||
			strings.Contains(text, "platform")

	case "business analyst":
		return strings.Contains(text, "technical") || strings.Contains(text, "system") ||
			strings.Contains(text, "data")

	default:
		return false
	}
}

// blob lowercases and joins title plus tags into one searchable string.
func blob(title string, tags []string) string {
	parts := make([]string, 0, len(tags)+1)
	parts = append(parts, strings.ToLower(title))
	for _, t := range tags {
		parts = append(parts, strings.ToLower(t))
	}
	return strings.Join(parts, " ")
}

// Ensure DeveloperFilter implements model.JobFilter.
var _ model.JobFilter = (*DeveloperFilter)(nil)

// DeveloperFilter adapts IsDeveloperJob to the model.JobFilter port so
// the fetch pipeline can apply it like any other filter.
type DeveloperFilter struct{}

// NewDeveloperFilter returns a filter that keeps only IT/developer jobs.
func NewDeveloperFilter() *DeveloperFilter {
	return &DeveloperFilter{}
}

// Match returns true if the job passes the IT-job predicate.
func (f *DeveloperFilter) Match(job model.Job) bool {
	return IsDeveloperJob(job.Title, job.Requirements)
}

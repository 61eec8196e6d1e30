package classify

import (
	"strings"
	"testing"
)

func TestIsDeveloperJob(t *testing.T) {
	tests := []struct {
		name  string
		title string
		tags  []string
		want  bool
	}{
		{
			name:  "plain backend role",
			title: "Backend Developer",
			tags:  []string{"golang", "postgresql"},
			want:  true,
		},
		{
			name:  "marketing role rejected",
			title: "Marketing Manager",
			want:  false,
		},
		{
			name:  "sales role rejected even with tech tags",
			title: "Sales Representative",
			tags:  []string{"crm"},
			want:  false,
		},
		{
			name:  "engineering manager allowed via exception",
			title: "Frontend Engineering Manager, React team",
			want:  true,
		},
		{
			name:  "ux designer without tech context rejected",
			title: "UX Designer",
			want:  false,
		},
		{
			name:  "ux designer with frontend context allowed",
			title: "UX Designer",
			tags:  []string{"frontend", "react"},
			want:  true,
		},
		{
			name:  "technical business analyst allowed",
			title: "Business Analyst",
			tags:  []string{"data"},
			want:  true,
		},
		{
			name:  "plain business analyst rejected",
			title: "Business Analyst",
			want:  false,
		},
		{
			name:  "no inclusion keyword rejected",
			title: "Remote Barista",
			want:  false,
		},
		{
			name:  "tags alone can qualify",
			title: "Open Position",
			tags:  []string{"python", "django"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDeveloperJob(tt.title, tt.tags)
			if got != tt.want {
				t.Errorf("IsDeveloperJob(%q, %v) = %v, want %v", tt.title, tt.tags, got, tt.want)
			}
		})
	}
}

func TestJobLevel_CascadeOrder(t *testing.T) {
	// Senior is checked before the generic Developer branch.
	if got := JobLevel("Senior Backend Developer"); got != "🔵 (Senior)" {
		t.Errorf("JobLevel(Senior Backend Developer) = %q, want Senior label", got)
	}
	// Intern outranks Junior in the cascade.
	if got := JobLevel("Junior Intern Developer"); got != "🌱 (Intern)" {
		t.Errorf("JobLevel(Junior Intern Developer) = %q, want Intern label", got)
	}
}

func TestJobLevel(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Freelance React Developer", "💵 (Freelance)"},
		{"Volunteer Maintainer", "❤️ (Volunteer)"},
		{"Junior Golang Developer", "🟢 (Junior)"},
		{"Mid-level PHP Developer", "🟣 (Mid-level)"},
		{"Tech Lead, Payments", "🟡 (Lead/Principal)"},
		{"Software Architect", "🛑 (Architect/Director)"},
		{"Full Stack Developer", "💻 (Developer (check post for position))"},
		{"Platform Engineer", "🔧 (Software Engineer)"},
		{"CTO Office Analyst", "⚪ (Unknown Position)"},
	}
	for _, tt := range tests {
		if got := JobLevel(tt.title); got != tt.want {
			t.Errorf("JobLevel(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestTechBadges(t *testing.T) {
	got := TechBadges("Go Developer", []string{"golang", "docker"})
	if !strings.Contains(got, ":golang:") {
		t.Errorf("TechBadges(Go Developer) = %q, want golang badge", got)
	}

	got = TechBadges("Rust and Python Engineer", nil)
	if !strings.Contains(got, ":rust:") || !strings.Contains(got, ":python:") {
		t.Errorf("TechBadges(Rust and Python Engineer) = %q, want rust and python badges", got)
	}
	// Table order, not text order: rust precedes python in the table.
	if strings.Index(got, ":rust:") > strings.Index(got, ":python:") {
		t.Errorf("TechBadges order = %q, want rust before python", got)
	}
}

func TestTechBadges_JavaScriptGuard(t *testing.T) {
	got := TechBadges("JavaScript Engineer", nil)
	if strings.Contains(got, ":java:") {
		t.Errorf("TechBadges(JavaScript Engineer) = %q, java badge must not fire", got)
	}
	if !strings.Contains(got, ":javascript:") {
		t.Errorf("TechBadges(JavaScript Engineer) = %q, want javascript badge", got)
	}

	got = TechBadges("Java Engineer", nil)
	if !strings.Contains(got, ":java:") {
		t.Errorf("TechBadges(Java Engineer) = %q, want java badge", got)
	}
}

func TestTechBadges_NoMatch(t *testing.T) {
	if got := TechBadges("Carpenter", nil); got != "" {
		t.Errorf("TechBadges(Carpenter) = %q, want empty string", got)
	}
}

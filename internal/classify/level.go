package classify

import "strings"

// levelGroup maps a set of title keywords to one seniority label.
type levelGroup struct {
	keywords []string
	label    string
}

// Ordered cascade: first group with a keyword hit wins, so a title
// containing both "senior" and "lead" resolves to Senior.
var levelGroups = []levelGroup{
	{[]string{"freelancer", "freelance", "freelancers"}, "💵 (Freelance)"},
	{[]string{"volunteer", "voluntário", "unpaid"}, "❤️ (Volunteer)"},
	{[]string{"intern", "trainee", "estagiário", "estágio"}, "🌱 (Intern)"},
	{[]string{"junior", "jr", "entry-level"}, "🟢 (Junior)"},
	{[]string{"mid-level", "mid", "midlevel", "mid level", "pleno"}, "🟣 (Mid-level)"},
	{[]string{"senior", "sr"}, "🔵 (Senior)"},
	{[]string{"lead", "principal", "tech lead"}, "🟡 (Lead/Principal)"},
	{[]string{"architect", "director", "head"}, "🛑 (Architect/Director)"},
	{[]string{"developer", "desenvolvedor", "dev"}, "💻 (Developer (check post for position))"},
	{[]string{"engineer", "engenheiro", "swe"}, "🔧 (Software Engineer)"},
}

// JobLevel derives a seniority label from the job title alone.
func JobLevel(title string) string {
	lower := strings.ToLower(title)
	for _, g := range levelGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.label
			}
		}
	}
	return "⚪ (Unknown Position)"
}

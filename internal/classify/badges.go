package classify

import "strings"

// badgeRule maps technology keywords to one Discord custom-emoji token.
// exclude suppresses the badge when present anywhere in the blob; the
// only carve-out today is java vs javascript.
type badgeRule struct {
	keywords []string
	exclude  string
	badge    string
}

// Fixed table order determines badge order in the output, regardless of
// where the keyword appeared in the source text. The padded " go " and
// "go," forms keep the Go badge from firing inside unrelated words; the
// short "ts"/"js" forms are a known false-positive surface.
var badgeRules = []badgeRule{
	{keywords: []string{"react"}, badge: " <:react:1382419881193898166>"},
	{keywords: []string{"typescript", "ts"}, badge: " <:typescript:1382420656179908631>"},
	{keywords: []string{"javascript", "js"}, badge: " <:javascript:1382420762501189765>"},
	{keywords: []string{"java"}, exclude: "javascript", badge: "<:java:1382420621606125628>"},
	{keywords: []string{"ruby"}, badge: " <:ruby:1382420784613429288>"},
	{keywords: []string{"angular"}, badge: " <:angular:1382420597291876362>"},
	{keywords: []string{"vue"}, badge: " <:vue:1382420583547015319>"},
	{keywords: []string{"golang", " go ", "go,"}, badge: " <:golang:1382420575951126589>"},
	{keywords: []string{"rust"}, badge: " <:rust:1382420562638405683>"},
	{keywords: []string{"python"}, badge: " <:python:1382420691554533376>"},
	{keywords: []string{"kotlin"}, badge: " <:kotlin:1382421672681799792>"},
	{keywords: []string{"flutter"}, badge: " <:flutter:1382421682685218907>"},
	{keywords: []string{"postgresql", "postgres"}, badge: " <:postgres:1382440623600046231>"},
	{keywords: []string{"mysql"}, badge: " <:mysql:1382440606567104543>"},
	{keywords: []string{"mongodb", "mongoose"}, badge: " <:mongo:1382440616369197086>"},
	{keywords: []string{"git", "github"}, badge: " <:githubweb:1382440590968623155>"},
}

// TechBadges returns the concatenated badge tokens for every technology
// detected in the title and requirement tags, or "" if none matched.
func TechBadges(title string, requirements []string) string {
	text := blob(title, requirements)

	var b strings.Builder
	for _, rule := range badgeRules {
		if rule.exclude != "" && strings.Contains(text, rule.exclude) {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				b.WriteString(rule.badge)
				break
			}
		}
	}
	return b.String()
}

// internal/analysis/archetype.go
package analysis

import "github-profile-analyzer/internal/model"

// Archetype is a discrete rule-selected label describing a developer's
// inferred behavioral pattern.
type Archetype struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

type archetypeRule struct {
	match  func(user model.User, a RepoAnalysis, s Scores) bool
	result Archetype
}

// The rule list is evaluated top to bottom and the first match wins. Order
// is part of the observable contract; do not reorder or convert to a
// lookup table.
var archetypeRules = []archetypeRule{
	{
		match: func(_ model.User, a RepoAnalysis, _ Scores) bool {
			return a.ForkedRepos > a.OriginalRepos*2
		},
		result: Archetype{Name: "Tutorial Warrior", Emoji: "📚", Description: "Learns by forking"},
	},
	{
		match: func(_ model.User, a RepoAnalysis, _ Scores) bool {
			return a.TotalRepos > 0 && a.TotalRepos <= 2
		},
		result: Archetype{Name: "One Repo Wonder", Emoji: "🎯", Description: "Quality over quantity"},
	},
	{
		match: func(_ model.User, a RepoAnalysis, _ Scores) bool {
			return a.LanguageDiversity >= 5 && a.AvgStars < 2
		},
		result: Archetype{Name: "Framework Collector", Emoji: "🧪", Description: "Tries everything once"},
	},
	{
		match: func(u model.User, a RepoAnalysis, s Scores) bool {
			return s.Documentation >= 60 && u.Followers < 10 && a.TotalStars > 0
		},
		result: Archetype{Name: "Silent Assassin", Emoji: "🥷", Description: "Codes in stealth mode"},
	},
	{
		match: func(_ model.User, a RepoAnalysis, _ Scores) bool {
			return a.RecentlyUpdated >= 1 && float64(a.InactiveRepos) > float64(a.TotalRepos)*0.5
		},
		result: Archetype{Name: "Weekend Hacker", Emoji: "🌙", Description: "Codes when inspired"},
	},
	{
		match: func(_ model.User, a RepoAnalysis, _ Scores) bool {
			return a.TotalRepos > 15 && a.DocsCoverage < 30
		},
		result: Archetype{Name: "Idea Hoarder", Emoji: "💡", Description: "Starts more than finishes"},
	},
	{
		match: func(_ model.User, a RepoAnalysis, _ Scores) bool {
			return a.TotalStars > 100 && a.DocsCoverage > 70
		},
		result: Archetype{Name: "Open Source Hero", Emoji: "🦸", Description: "Community champion"},
	},
	{
		match: func(_ model.User, _ RepoAnalysis, s Scores) bool {
			return s.Activity >= 60 && s.Final >= 50
		},
		result: Archetype{Name: "Rising Star", Emoji: "⭐", Description: "On the way up"},
	},
	{
		match: func(_ model.User, a RepoAnalysis, _ Scores) bool {
			return a.DaysSinceLastUpdate > 180
		},
		result: Archetype{Name: "Ghost Developer", Emoji: "👻", Description: "Missing in action"},
	},
}

var defaultArchetype = Archetype{Name: "Code Explorer", Emoji: "🧭", Description: "Finding their path"}

// ClassifyArchetype maps the aggregates and scores onto a developer
// archetype using the ordered rule list above.
func ClassifyArchetype(user model.User, a RepoAnalysis, s Scores) Archetype {
	for _, rule := range archetypeRules {
		if rule.match(user, a, s) {
			return rule.result
		}
	}
	return defaultArchetype
}

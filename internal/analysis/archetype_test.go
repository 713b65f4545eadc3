// internal/analysis/archetype_test.go
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github-profile-analyzer/internal/model"
)

func TestClassifyArchetype(t *testing.T) {
	tests := []struct {
		name     string
		user     model.User
		analysis RepoAnalysis
		scores   Scores
		want     string
	}{
		{
			name:     "tutorial warrior when forks dominate",
			analysis: RepoAnalysis{TotalRepos: 9, ForkedRepos: 7, OriginalRepos: 2},
			want:     "Tutorial Warrior",
		},
		{
			name:     "one repo wonder for tiny profiles",
			analysis: RepoAnalysis{TotalRepos: 2, OriginalRepos: 2},
			want:     "One Repo Wonder",
		},
		{
			name:     "framework collector for wide shallow profiles",
			analysis: RepoAnalysis{TotalRepos: 10, OriginalRepos: 10, LanguageDiversity: 6, AvgStars: 0.5},
			want:     "Framework Collector",
		},
		{
			name:     "silent assassin for documented but unknown",
			user:     model.User{Followers: 2},
			analysis: RepoAnalysis{TotalRepos: 8, OriginalRepos: 8, TotalStars: 9, AvgStars: 2, LanguageDiversity: 2},
			scores:   Scores{Documentation: 75},
			want:     "Silent Assassin",
		},
		{
			name:     "weekend hacker for sporadic activity",
			user:     model.User{Followers: 50},
			analysis: RepoAnalysis{TotalRepos: 10, OriginalRepos: 10, RecentlyUpdated: 1, InactiveRepos: 6, AvgStars: 3, LanguageDiversity: 2},
			want:     "Weekend Hacker",
		},
		{
			name:     "idea hoarder for many undocumented repos",
			user:     model.User{Followers: 50},
			analysis: RepoAnalysis{TotalRepos: 20, OriginalRepos: 20, DocsCoverage: 10, AvgStars: 3, LanguageDiversity: 2},
			want:     "Idea Hoarder",
		},
		{
			name:     "open source hero for starred documented work",
			user:     model.User{Followers: 50},
			analysis: RepoAnalysis{TotalRepos: 12, OriginalRepos: 12, TotalStars: 500, AvgStars: 41, DocsCoverage: 90, LanguageDiversity: 3},
			want:     "Open Source Hero",
		},
		{
			name:     "rising star for active decent profiles",
			user:     model.User{Followers: 50},
			analysis: RepoAnalysis{TotalRepos: 10, OriginalRepos: 10, TotalStars: 30, AvgStars: 3, DocsCoverage: 50, LanguageDiversity: 3},
			scores:   Scores{Activity: 70, Final: 60},
			want:     "Rising Star",
		},
		{
			name:     "ghost developer for long-dead profiles",
			user:     model.User{Followers: 50},
			analysis: RepoAnalysis{TotalRepos: 10, OriginalRepos: 10, DaysSinceLastUpdate: 400, AvgStars: 3, DocsCoverage: 50, LanguageDiversity: 3},
			want:     "Ghost Developer",
		},
		{
			name:     "code explorer as fallback",
			user:     model.User{Followers: 50},
			analysis: RepoAnalysis{TotalRepos: 10, OriginalRepos: 10, AvgStars: 3, DocsCoverage: 50, LanguageDiversity: 3, DaysSinceLastUpdate: 20},
			want:     "Code Explorer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyArchetype(tt.user, tt.analysis, tt.scores)
			assert.Equal(t, tt.want, got.Name)
			assert.NotEmpty(t, got.Emoji)
			assert.NotEmpty(t, got.Description)
		})
	}
}

func TestClassifyArchetype_RuleOrderIsTheTieBreak(t *testing.T) {
	// Two repos with a huge stale gap would also satisfy the ghost rule,
	// but the earlier one-repo-wonder rule must win.
	a := RepoAnalysis{TotalRepos: 2, OriginalRepos: 2, DaysSinceLastUpdate: 400}

	got := ClassifyArchetype(model.User{}, a, Scores{})

	assert.Equal(t, "One Repo Wonder", got.Name)
}

// internal/roast/roast_test.go
package roast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github-profile-analyzer/internal/analysis"
	"github-profile-analyzer/internal/model"
)

// pickFirst always selects the first phrasing of a pool, making the
// generator fully deterministic.
func pickFirst(n int) int { return 0 }

func pickLast(n int) int { return n - 1 }

func goodProfile() (model.User, analysis.RepoAnalysis, analysis.Scores) {
	user := model.User{Login: "ace", Bio: "I build things", Followers: 50}
	a := analysis.RepoAnalysis{
		TotalRepos:           10,
		OriginalRepos:        8,
		ForkedRepos:          2,
		ReposWithDescription: 8,
		DocsCoverage:         80,
		TotalStars:           50,
		AvgStars:             5,
		InactiveRepos:        2,
		LanguageDiversity:    3,
		MostUsedLanguage:     "Go",
	}
	s := analysis.Scores{Final: 85}
	return user, a, s
}

func TestRoasts_PositivePoolForHighScore(t *testing.T) {
	g := NewGeneratorWithPick(pickFirst)
	user, a, s := goodProfile()

	roasts := g.Roasts(user, a, s)

	assert.Len(t, roasts, 1, "no trigger fires, only the positive fallback")
	assert.Equal(t, "Honestly? Not bad. 50 stars, 80% documented. Annoyingly competent.", roasts[0])
}

func TestRoasts_TruncatedToFour(t *testing.T) {
	g := NewGeneratorWithPick(pickFirst)
	user := model.User{Login: "mess", Followers: 0}
	a := analysis.RepoAnalysis{
		TotalRepos:           60,
		OriginalRepos:        20,
		ForkedRepos:          40,
		ReposWithDescription: 2,
		DocsCoverage:         3,
		TotalStars:           30,
		AvgStars:             0.5,
		InactiveRepos:        50,
		DaysSinceLastUpdate:  200,
		LanguageDiversity:    1,
		MostUsedLanguage:     "PHP",
	}
	s := analysis.Scores{Final: 10}

	roasts := g.Roasts(user, a, s)

	assert.Len(t, roasts, 4, "evaluation stops at four entries")
	// First four triggers in evaluation order: docs, stars, inactivity, language.
	assert.Contains(t, roasts[0], "README")
	assert.Contains(t, roasts[1], "star count")
	assert.Contains(t, roasts[2], "inactive")
	assert.Contains(t, roasts[3], "PHP")
}

func TestRoasts_PlaceholdersResolved(t *testing.T) {
	g := NewGeneratorWithPick(pickFirst)
	user := model.User{Login: "dev", Bio: "hi", Followers: 2}
	a := analysis.RepoAnalysis{
		TotalRepos:           5,
		OriginalRepos:        5,
		ReposWithDescription: 4,
		DocsCoverage:         80,
		AvgStars:             3,
		TotalStars:           15,
		LanguageDiversity:    2,
		MostUsedLanguage:     "Go",
	}

	roasts := g.Roasts(user, a, analysis.Scores{Final: 40})

	assert.Len(t, roasts, 1)
	assert.Equal(t, "Your follower count (2) is like your code - empty.", roasts[0])
	for _, r := range roasts {
		assert.NotContains(t, r, "{", "all placeholders must resolve")
	}
}

func TestRoasts_DeterministicUnderInjectedPick(t *testing.T) {
	user, a, s := goodProfile()

	first := NewGeneratorWithPick(pickFirst).Roasts(user, a, s)
	second := NewGeneratorWithPick(pickFirst).Roasts(user, a, s)
	last := NewGeneratorWithPick(pickLast).Roasts(user, a, s)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, last, "different picks select different phrasings")
}

func TestRoasts_RandomGeneratorStaysInPool(t *testing.T) {
	user, a, s := goodProfile()
	g := NewGenerator()

	for i := 0; i < 20; i++ {
		roasts := g.Roasts(user, a, s)
		assert.Len(t, roasts, 1)

		matched := false
		for _, tmpl := range goodDeveloperPool {
			if fill(tmpl, templateData(user, a, s)) == roasts[0] {
				matched = true
				break
			}
		}
		assert.True(t, matched, "output %q must come from the positive pool", roasts[0])
	}
}

func TestRecruiterInsights(t *testing.T) {
	user := model.User{Login: "dev"}
	a := analysis.RepoAnalysis{
		TotalRepos:          10,
		RecentlyUpdated:     4,
		DocsCoverage:        20,
		TotalStars:          120,
		LanguageDiversity:   1,
		MostUsedLanguage:    "Go",
		DaysSinceLastUpdate: 12,
	}
	s := analysis.Scores{Activity: 60, Documentation: 20, Popularity: 45, Diversity: 15}

	g := NewGeneratorWithPick(pickFirst)
	insights := g.RecruiterInsights(user, a, s)

	assert.Equal(t, []string{
		"Shows consistent engagement with 4 recently updated repositories.",
		"Documentation gap: Only 20% of repositories have descriptions.",
		"Community recognition with 120 total stars across projects.",
		"Focused expertise in Go, opportunity to expand technical breadth.",
	}, insights)
}

func TestRecruiterInsights_NoRandomness(t *testing.T) {
	user := model.User{Login: "dev"}
	a := analysis.RepoAnalysis{TotalRepos: 5}
	s := analysis.Scores{}

	a1 := NewGeneratorWithPick(pickFirst).RecruiterInsights(user, a, s)
	a2 := NewGeneratorWithPick(pickLast).RecruiterInsights(user, a, s)

	assert.Equal(t, a1, a2, "pool selection must not influence recruiter output")
}

func TestFill_PreservesUnknownPlaceholders(t *testing.T) {
	out := fill("known {totalStars}, unknown {mystery}", map[string]string{"totalStars": "7"})

	assert.Equal(t, "known 7, unknown {mystery}", out)
}

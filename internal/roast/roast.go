// internal/roast/roast.go
package roast

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"

	"github-profile-analyzer/internal/analysis"
	"github-profile-analyzer/internal/model"
)

// Generated roast lists are truncated to this many entries, first in
// evaluation order.
const maxRoasts = 4

// Generator produces roast lines and recruiter insights from analysis
// output. The pick function supplies the one random choice per triggered
// pool; inject a deterministic stub in tests.
type Generator struct {
	pick func(n int) int
}

// NewGenerator returns a Generator backed by math/rand.
func NewGenerator() *Generator {
	return &Generator{pick: rand.Intn}
}

// NewGeneratorWithPick returns a Generator with an injected pool-selection
// function. pick(n) must return a value in [0, n).
func NewGeneratorWithPick(pick func(n int) int) *Generator {
	return &Generator{pick: pick}
}

// Roasts evaluates the ordered trigger conditions and, for each that holds,
// appends one randomly chosen phrasing from that condition's pool with
// placeholders substituted. If nothing triggered, or the final score is
// above 70, one positive phrasing is appended. At most four lines are
// returned.
func (g *Generator) Roasts(user model.User, a analysis.RepoAnalysis, s analysis.Scores) []string {
	data := templateData(user, a, s)
	var roasts []string

	if float64(a.ReposWithDescription) < float64(a.TotalRepos)*0.5 {
		roasts = append(roasts, fill(g.choose(noReadmePool), data))
	}
	if a.AvgStars < 2 {
		roasts = append(roasts, fill(g.choose(lowStarsPool), data))
	}
	if float64(a.InactiveRepos) > float64(a.TotalRepos)*0.6 {
		roasts = append(roasts, fill(g.choose(inactivePool), data))
	}
	if a.LanguageDiversity <= 1 && a.TotalRepos > 3 {
		roasts = append(roasts, fill(g.choose(singleLanguagePool), data))
	}
	if a.ForkedRepos > a.OriginalRepos {
		roasts = append(roasts, fill(g.choose(forkHeavyPool), data))
	}
	if user.Followers < 5 {
		roasts = append(roasts, fill(g.choose(noFollowersPool), data))
	}
	if user.Bio == "" {
		roasts = append(roasts, g.choose(noBioPool))
	}
	if a.TotalRepos > 50 && a.AvgStars < 1 {
		roasts = append(roasts, fill(g.choose(tooManyReposPool), data))
	}

	if len(roasts) == 0 || s.Final > 70 {
		roasts = append(roasts, fill(g.choose(goodDeveloperPool), data))
	}

	if len(roasts) > maxRoasts {
		roasts = roasts[:maxRoasts]
	}
	return roasts
}

// RecruiterInsights emits exactly one line per category; a single score
// threshold picks the good or bad phrasing, with no randomness.
func (g *Generator) RecruiterInsights(user model.User, a analysis.RepoAnalysis, s analysis.Scores) []string {
	data := templateData(user, a, s)

	phrase := func(category string, good bool) string {
		p := recruiterPhrasings[category]
		if good {
			return fill(p.good, data)
		}
		return fill(p.bad, data)
	}

	return []string{
		phrase("activity", s.Activity >= 50),
		phrase("documentation", s.Documentation >= 50),
		phrase("popularity", s.Popularity >= 30),
		phrase("diversity", s.Diversity >= 50),
	}
}

func (g *Generator) choose(pool []string) string {
	return pool[g.pick(len(pool))]
}

func templateData(user model.User, a analysis.RepoAnalysis, s analysis.Scores) map[string]string {
	return map[string]string{
		"totalStars":        strconv.Itoa(a.TotalStars),
		"totalRepos":        strconv.Itoa(a.TotalRepos),
		"readmeCount":       strconv.Itoa(a.ReposWithDescription),
		"undocumentedCount": strconv.Itoa(a.TotalRepos - a.ReposWithDescription),
		"docPercent":        strconv.Itoa(a.DocsCoverage),
		"daysSinceUpdate":   strconv.Itoa(a.DaysSinceLastUpdate),
		"inactiveCount":     strconv.Itoa(a.InactiveRepos),
		"topLanguage":       a.MostUsedLanguage,
		"languageCount":     strconv.Itoa(a.LanguageDiversity),
		"forkedCount":       strconv.Itoa(a.ForkedRepos),
		"originalCount":     strconv.Itoa(a.OriginalRepos),
		"followers":         strconv.Itoa(user.Followers),
		"avgStars":          fmt.Sprintf("%.1f", a.AvgStars),
		"finalScore":        strconv.Itoa(s.Final),
		"recentCount":       strconv.Itoa(a.RecentlyUpdated),
	}
}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// fill substitutes {key} placeholders from data. Unknown keys are left as
// the literal token.
func fill(template string, data map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := data[key]; ok {
			return v
		}
		return match
	})
}

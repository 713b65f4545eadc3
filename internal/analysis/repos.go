// internal/analysis/repos.go
package analysis

import (
	"math"
	"sort"
	"time"

	"github-profile-analyzer/internal/model"
)

const (
	recentWindow   = 30 * 24 * time.Hour
	inactiveWindow = 90 * 24 * time.Hour

	// Sentinel reported when a user has no repositories at all.
	noUpdateSentinel = 999

	// Descriptions at or below this length count as placeholders,
	// not documentation.
	minDescriptionLength = 10
)

// LanguageCount is one entry of the language histogram.
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RepoAnalysis is the deterministic statistical summary derived from a
// user's repository list. It is recomputed fresh on every analysis run and
// never partially updated.
type RepoAnalysis struct {
	TotalStars           int             `json:"total_stars"`
	TotalForks           int             `json:"total_forks"`
	AvgStars             float64         `json:"avg_stars"`
	Languages            []LanguageCount `json:"languages"`
	MostUsedLanguage     string          `json:"most_used_language"`
	LanguageDiversity    int             `json:"language_diversity"`
	RecentlyUpdated      int             `json:"recently_updated"`
	InactiveRepos        int             `json:"inactive_repos"`
	ReposWithDescription int             `json:"repos_with_description"`
	ForkedRepos          int             `json:"forked_repos"`
	OriginalRepos        int             `json:"original_repos"`
	TotalRepos           int             `json:"total_repos"`
	DaysSinceLastUpdate  int             `json:"days_since_last_update"`
	DocsCoverage         int             `json:"docs_coverage"`
	SoloRepoPercentage   int             `json:"solo_repo_percentage"`
}

// AnalyzeRepos computes repository aggregates against a single reference
// time. Passing now explicitly keeps the function pure: the same inputs
// always produce the same result.
//
// Recency buckets use open intervals: a repository updated exactly at the
// 30-day or 90-day cutoff is counted in neither bucket.
func AnalyzeRepos(repos []model.Repository, now time.Time) RepoAnalysis {
	a := RepoAnalysis{
		TotalRepos:          len(repos),
		MostUsedLanguage:    "None",
		DaysSinceLastUpdate: noUpdateSentinel,
	}

	recentCutoff := now.Add(-recentWindow)
	inactiveCutoff := now.Add(-inactiveWindow)

	langIndex := map[string]int{}
	var latest time.Time
	soloRepos := 0

	for _, repo := range repos {
		a.TotalStars += repo.Stars
		a.TotalForks += repo.Forks

		if repo.Language != "" {
			i, seen := langIndex[repo.Language]
			if !seen {
				langIndex[repo.Language] = len(a.Languages)
				a.Languages = append(a.Languages, LanguageCount{Name: repo.Language, Count: 1})
			} else {
				a.Languages[i].Count++
			}
		}

		if repo.UpdatedAt.After(recentCutoff) {
			a.RecentlyUpdated++
		}
		if repo.UpdatedAt.Before(inactiveCutoff) {
			a.InactiveRepos++
		}
		if len(repo.Description) > minDescriptionLength {
			a.ReposWithDescription++
		}
		if repo.Fork {
			a.ForkedRepos++
		} else if repo.Forks == 0 {
			soloRepos++
		}
		if repo.UpdatedAt.After(latest) {
			latest = repo.UpdatedAt
		}
	}

	a.OriginalRepos = a.TotalRepos - a.ForkedRepos
	a.AvgStars = float64(a.TotalStars) / math.Max(float64(len(repos)), 1)

	// Stable sort keeps first-encountered order on equal counts; both the
	// most-used language and the display order depend on it.
	sort.SliceStable(a.Languages, func(i, j int) bool {
		return a.Languages[i].Count > a.Languages[j].Count
	})
	a.LanguageDiversity = len(a.Languages)
	if len(a.Languages) > 0 {
		a.MostUsedLanguage = a.Languages[0].Name
	}

	if len(repos) > 0 {
		a.DaysSinceLastUpdate = int(now.Sub(latest).Hours() / 24)
		a.DocsCoverage = roundPercent(a.ReposWithDescription, a.TotalRepos)
		a.SoloRepoPercentage = roundPercent(soloRepos, a.TotalRepos)
	}

	return a
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// internal/ai/summary.go
package ai

import (
	"sort"
	"time"

	"github-profile-analyzer/internal/analysis"
	"github-profile-analyzer/internal/model"
)

const (
	maxRepoActivityEntries = 15
	maxTopTopics           = 15
)

// RepoActivity is one per-repository line of the summary sent to the AI
// gateway.
type RepoActivity struct {
	Name        string `json:"name"`
	DaysSince   int    `json:"daysSince"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Description string `json:"description,omitempty"`
}

// Summary is the flattened profile document relayed to the AI gateway. It
// combines the locally computed aggregates with raw user fields so the
// model sees the same numbers the UI will display.
type Summary struct {
	Username         string                   `json:"username"`
	Name             string                   `json:"name"`
	Bio              string                   `json:"bio,omitempty"`
	Company          string                   `json:"company,omitempty"`
	Location         string                   `json:"location,omitempty"`
	PublicRepos      int                      `json:"publicRepos"`
	Followers        int                      `json:"followers"`
	Following        int                      `json:"following"`
	AccountAgeYears  int                      `json:"accountAge"`
	TotalStars       int                      `json:"totalStars"`
	TotalForks       int                      `json:"totalForks"`
	Languages        map[string]int           `json:"languages"`
	TopLanguages     []analysis.LanguageCount `json:"topLanguages"`
	ReposWithDesc    int                      `json:"reposWithDescription"`
	TotalRepos       int                      `json:"totalRepos"`
	OriginalRepos    int                      `json:"originalRepos"`
	ForkedRepos      int                      `json:"forkedRepos"`
	MostRecentUpdate int                      `json:"mostRecentUpdateDays"`
	InactiveRepos    int                      `json:"inactiveRepos"`
	RepoActivity     []RepoActivity           `json:"repoActivity"`
	TotalEvents      int                      `json:"totalEvents"`
	ActiveDays       int                      `json:"activeDays"`
	EventTypes       map[string]int           `json:"eventTypes"`
	PeakCodingHour   string                   `json:"peakCodingHour"`
	PeakCodingDay    string                   `json:"peakCodingDay"`
	CurrentStreak    int                      `json:"currentStreak"`
	LongestStreak    int                      `json:"longestStreak"`
	TopTopics        []string                 `json:"topTopics"`
	FinalScore       int                      `json:"finalScore"`
	ActivityStatus   string                   `json:"activityStatus"`
}

// BuildSummary flattens the raw inputs and derived aggregates into the
// document sent to the gateway.
func BuildSummary(user model.User, repos []model.Repository, a analysis.RepoAnalysis, s analysis.Scores, streaks analysis.StreakStats, pattern analysis.ActivityPattern, now time.Time) Summary {
	name := user.Name
	if name == "" {
		name = user.Login
	}

	languages := make(map[string]int, len(a.Languages))
	for _, lc := range a.Languages {
		languages[lc.Name] = lc.Count
	}

	topLanguages := a.Languages
	if len(topLanguages) > 8 {
		topLanguages = topLanguages[:8]
	}

	activity := make([]RepoActivity, 0, minLen(len(repos), maxRepoActivityEntries))
	for _, r := range repos {
		if len(activity) == maxRepoActivityEntries {
			break
		}
		activity = append(activity, RepoActivity{
			Name:        r.Name,
			DaysSince:   int(now.Sub(r.UpdatedAt).Hours() / 24),
			Language:    r.Language,
			Stars:       r.Stars,
			Forks:       r.Forks,
			Description: r.Description,
		})
	}

	return Summary{
		Username:         user.Login,
		Name:             name,
		Bio:              user.Bio,
		Company:          user.Company,
		Location:         user.Location,
		PublicRepos:      user.PublicRepos,
		Followers:        user.Followers,
		Following:        user.Following,
		AccountAgeYears:  int(now.Sub(user.CreatedAt).Hours() / 24 / 365),
		TotalStars:       a.TotalStars,
		TotalForks:       a.TotalForks,
		Languages:        languages,
		TopLanguages:     topLanguages,
		ReposWithDesc:    a.ReposWithDescription,
		TotalRepos:       a.TotalRepos,
		OriginalRepos:    a.OriginalRepos,
		ForkedRepos:      a.ForkedRepos,
		MostRecentUpdate: a.DaysSinceLastUpdate,
		InactiveRepos:    a.InactiveRepos,
		RepoActivity:     activity,
		TotalEvents:      pattern.TotalEvents,
		ActiveDays:       streaks.TotalActiveDays,
		EventTypes:       pattern.EventTypes,
		PeakCodingHour:   pattern.PeakHourLabel,
		PeakCodingDay:    pattern.PeakDay,
		CurrentStreak:    streaks.CurrentStreak,
		LongestStreak:    streaks.LongestStreak,
		TopTopics:        topTopics(repos),
		FinalScore:       s.Final,
		ActivityStatus:   s.ActivityStatus,
	}
}

// topTopics counts topic occurrences across all repositories and returns the
// most frequent ones, capped at maxTopTopics.
func topTopics(repos []model.Repository) []string {
	counts := map[string]int{}
	var order []string
	for _, r := range repos {
		for _, t := range r.Topics {
			if counts[t] == 0 {
				order = append(order, t)
			}
			counts[t]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxTopTopics {
		order = order[:maxTopTopics]
	}
	return order
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}

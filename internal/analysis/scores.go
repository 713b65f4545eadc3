// internal/analysis/scores.go
package analysis

import (
	"fmt"
	"math"

	"github-profile-analyzer/internal/model"
)

// Scores holds the four heuristic sub-scores, their weighted overall score
// and the qualitative activity label. All values are clamped to [0,100].
type Scores struct {
	Activity       int    `json:"activity_score"`
	Documentation  int    `json:"documentation_score"`
	Popularity     int    `json:"popularity_score"`
	Diversity      int    `json:"diversity_score"`
	Final          int    `json:"final_score"`
	ActivityStatus string `json:"activity_status"`
}

// ScoreExplanations are the one-line data-backed reasons shown next to each
// score card.
type ScoreExplanations struct {
	Activity      string `json:"activity"`
	Documentation string `json:"documentation"`
	Popularity    string `json:"popularity"`
	Diversity     string `json:"diversity"`
	Overall       string `json:"overall"`
}

// CalculateScores derives the sub-scores from the repository aggregates and
// the user's follower count. The weights are fixed, not configurable.
func CalculateScores(user model.User, a RepoAnalysis) Scores {
	total := math.Max(float64(a.TotalRepos), 1)

	activity := clampScore(
		float64(a.RecentlyUpdated)/total*100*0.6 +
			(1-float64(a.InactiveRepos)/total)*100*0.4)

	documentation := clampScore(float64(a.ReposWithDescription) / total * 100)

	popularity := clampScore(
		math.Min(a.AvgStars*10, 50) +
			math.Min(float64(user.Followers)/10, 30) +
			math.Min(float64(a.TotalStars)/50, 20))

	diversity := clampScore(
		math.Min(float64(a.LanguageDiversity)*15, 60) +
			float64(a.OriginalRepos)/total*40)

	final := int(math.Round(
		float64(activity)*0.3 +
			float64(documentation)*0.2 +
			float64(popularity)*0.25 +
			float64(diversity)*0.25))

	status := "Ghost Mode"
	switch {
	case a.RecentlyUpdated >= 3:
		status = "Active"
	case a.RecentlyUpdated >= 1:
		status = "Semi-Active"
	}

	return Scores{
		Activity:       activity,
		Documentation:  documentation,
		Popularity:     popularity,
		Diversity:      diversity,
		Final:          final,
		ActivityStatus: status,
	}
}

// ExplainScores renders the per-score explanations from the same aggregates
// the scores were computed from.
func ExplainScores(a RepoAnalysis, s Scores) ScoreExplanations {
	plural := "s"
	if a.LanguageDiversity == 1 {
		plural = ""
	}
	return ScoreExplanations{
		Activity:      fmt.Sprintf("Last public repository updated %d days ago", a.DaysSinceLastUpdate),
		Documentation: fmt.Sprintf("%d out of %d repositories have descriptions", a.ReposWithDescription, a.TotalRepos),
		Popularity:    fmt.Sprintf("Total stars across all repos: %d", a.TotalStars),
		Diversity:     fmt.Sprintf("Uses %d primary language%s", a.LanguageDiversity, plural),
		Overall: fmt.Sprintf("Based on activity (%d), docs (%d), popularity (%d), diversity (%d)",
			s.Activity, s.Documentation, s.Popularity, s.Diversity),
	}
}

// SeverityLabel buckets a score into a qualitative tier.
func SeverityLabel(score int) string {
	switch {
	case score <= 20:
		return "Critical"
	case score <= 40:
		return "Weak"
	case score <= 60:
		return "Decent"
	case score <= 80:
		return "Strong"
	default:
		return "Elite"
	}
}

// ActivityTimeLabel describes how fresh the most recent repository update is.
func ActivityTimeLabel(daysSinceUpdate int) string {
	switch {
	case daysSinceUpdate <= 7:
		return "Active within last 7 days"
	case daysSinceUpdate <= 30:
		return "Active within last month"
	case daysSinceUpdate <= 90:
		return "No activity in last 3 months"
	case daysSinceUpdate <= 180:
		return "No activity in last 6 months"
	default:
		return fmt.Sprintf("No activity in %d months", daysSinceUpdate/30)
	}
}

// clampScore rounds to the nearest integer and clamps to [0,100].
func clampScore(v float64) int {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}

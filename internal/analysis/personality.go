// internal/analysis/personality.go
package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github-profile-analyzer/internal/model"
)

// PersonalityType is the discrete coder-personality classification shown on
// the profile card.
type PersonalityType struct {
	Type        string `json:"type"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// ProfileMetrics are the four radar-chart axes of the personality profile.
type ProfileMetrics struct {
	Consistency   int `json:"consistency"`
	Exploration   int `json:"exploration"`
	Collaboration int `json:"collaboration"`
	Documentation int `json:"documentation"`
}

// PersonalityProfile bundles the secondary behavioral metrics derived from
// the aggregates. All fields are pure functions of the inputs.
type PersonalityProfile struct {
	FocusType               string          `json:"focus_type"`
	ProcrastinationTendency int             `json:"procrastination_tendency"`
	BurnoutRisk             int             `json:"burnout_risk"`
	LearningStyle           string          `json:"learning_style"`
	PeakActivityDay         string          `json:"peak_activity_day"`
	PersonalityType         PersonalityType `json:"personality_type"`
	FunInsights             []string        `json:"fun_insights"`
	Suggestions             []string        `json:"suggestions"`
	Metrics                 ProfileMetrics  `json:"metrics"`
}

var dataScienceLanguages = map[string]bool{
	"Python":           true,
	"R":                true,
	"Julia":            true,
	"Jupyter Notebook": true,
}

var webLanguages = map[string]bool{
	"JavaScript": true,
	"TypeScript": true,
	"HTML":       true,
	"CSS":        true,
	"Vue":        true,
	"React":      true,
}

// AnalyzePersonality derives the behavioral profile. It is independent of
// the archetype rule list; the two classifications can disagree.
func AnalyzePersonality(user model.User, repos []model.Repository, a RepoAnalysis, s Scores, now time.Time) PersonalityProfile {
	focusType := determineFocusType(repos)
	maxGap := maxUpdateGapDays(repos)

	procrastination := clampScore(
		float64(a.InactiveRepos)/math.Max(float64(a.TotalRepos), 1)*50 +
			float64(gapBucket(maxGap)) +
			recencyPenalty(a.RecentlyUpdated))

	accountAgeMonths := accountAgeMonths(user.CreatedAt, now)
	creationRate := float64(a.TotalRepos) / math.Max(1, float64(accountAgeMonths))

	burnout := 0
	if creationRate > 3 {
		burnout += 30
	}
	if a.LanguageDiversity > 5 {
		burnout += 20
	}
	if float64(a.InactiveRepos) > float64(a.TotalRepos)*0.7 {
		burnout += 30
	}
	if a.ForkedRepos > a.OriginalRepos {
		burnout += 20
	}
	if burnout > 100 {
		burnout = 100
	}

	peakDay := peakActivityDay(repos)

	return PersonalityProfile{
		FocusType:               focusType,
		ProcrastinationTendency: procrastination,
		BurnoutRisk:             burnout,
		LearningStyle:           determineLearningStyle(a, repos),
		PeakActivityDay:         peakDay,
		PersonalityType:         determinePersonalityType(a, s, focusType),
		FunInsights:             funInsights(user, a, s, peakDay, accountAgeMonths),
		Suggestions:             suggestions(a, s, procrastination, burnout),
		Metrics: ProfileMetrics{
			Consistency:   consistencyMetric(repos, now),
			Exploration:   minInt(100, a.LanguageDiversity*15),
			Collaboration: minInt(100, (user.Followers+user.Following)*2),
			Documentation: s.Documentation,
		},
	}
}

func determineFocusType(repos []model.Repository) string {
	totalSize := 0
	for _, r := range repos {
		if r.Size > 1000 {
			return "Deep Work"
		}
		totalSize += r.Size
	}
	if len(repos) > 0 && float64(totalSize)/float64(len(repos)) > 500 {
		return "Deep Work"
	}
	return "Short Bursts"
}

// maxUpdateGapDays is the largest gap, in whole days, between any two
// consecutive repo-update timestamps when sorted newest first.
func maxUpdateGapDays(repos []model.Repository) int {
	if len(repos) < 2 {
		return 0
	}
	times := make([]time.Time, len(repos))
	for i, r := range repos {
		times[i] = r.UpdatedAt
	}
	sort.Slice(times, func(i, j int) bool { return times[i].After(times[j]) })

	var maxGap float64
	for i := 0; i < len(times)-1; i++ {
		gap := times[i].Sub(times[i+1]).Hours() / 24
		if gap > maxGap {
			maxGap = gap
		}
	}
	return int(math.Round(maxGap))
}

func gapBucket(gapDays int) int {
	switch {
	case gapDays > 60:
		return 30
	case gapDays > 30:
		return 15
	default:
		return 0
	}
}

func recencyPenalty(recentlyUpdated int) float64 {
	if recentlyUpdated < 2 {
		return 20
	}
	return 0
}

func accountAgeMonths(createdAt time.Time, now time.Time) int {
	months := int(math.Round(now.Sub(createdAt).Hours() / 24 / 30))
	if months < 1 {
		return 1
	}
	return months
}

func determineLearningStyle(a RepoAnalysis, repos []model.Repository) string {
	if a.LanguageDiversity >= 4 {
		return "Explorer / Multi-Domain"
	}
	for _, r := range repos {
		if dataScienceLanguages[r.Language] {
			return "Analytical / Data-Driven"
		}
	}
	for _, r := range repos {
		if webLanguages[r.Language] {
			return "Visual / Project-Based"
		}
	}
	if float64(a.ForkedRepos) > float64(a.OriginalRepos)/2 {
		return "Learning by Example"
	}
	return "Focused / Specialist"
}

func determinePersonalityType(a RepoAnalysis, s Scores, focusType string) PersonalityType {
	switch {
	case s.Final > 75 && a.LanguageDiversity >= 4:
		return PersonalityType{Type: "The Polyglot", Emoji: "🌐", Description: "Master of many languages, fear of none"}
	case focusType == "Deep Work" && s.Documentation > 60:
		return PersonalityType{Type: "The Architect", Emoji: "🏗️", Description: "Builds systems that last, documents everything"}
	case a.ForkedRepos > a.OriginalRepos:
		return PersonalityType{Type: "The Curator", Emoji: "📚", Description: "Collects knowledge from across the ecosystem"}
	case s.Activity > 70 && a.RecentlyUpdated >= 5:
		return PersonalityType{Type: "The Machine", Emoji: "⚡", Description: "Commits daily, ships constantly, never stops"}
	case a.TotalStars > 50:
		return PersonalityType{Type: "The Influencer", Emoji: "⭐", Description: "Creates things people actually want to use"}
	case s.Activity < 30:
		return PersonalityType{Type: "The Phantom", Emoji: "👻", Description: "Codes in stealth mode, emerges rarely"}
	case a.LanguageDiversity == 1:
		return PersonalityType{Type: "The Purist", Emoji: "🎯", Description: "One language to rule them all"}
	default:
		return PersonalityType{Type: "The Explorer", Emoji: "🧭", Description: "Always learning, always experimenting"}
	}
}

// peakActivityDay picks the weekday (UTC) on which most repositories were
// last updated. Ties resolve to the earliest weekday, Sunday first.
func peakActivityDay(repos []model.Repository) string {
	var freq [7]int
	for _, r := range repos {
		freq[int(r.UpdatedAt.UTC().Weekday())]++
	}
	return weekdayNames[indexOfMax(freq[:])]
}

// consistencyMetric counts distinct (year, month) buckets with at least one
// repo update inside the trailing twelve months.
func consistencyMetric(repos []model.Repository, now time.Time) int {
	cutoff := now.AddDate(-1, 0, 0)
	months := map[string]bool{}
	for _, r := range repos {
		if r.UpdatedAt.After(cutoff) {
			months[r.UpdatedAt.UTC().Format("2006-01")] = true
		}
	}
	return int(math.Round(float64(len(months)) / 12 * 100))
}

func funInsights(user model.User, a RepoAnalysis, s Scores, peakDay string, accountAgeMonths int) []string {
	insights := []string{
		fmt.Sprintf("Your repos are most active on %ss - your brain clearly has a favorite day! 📅", peakDay),
	}

	if a.MostUsedLanguage != "None" && a.TotalRepos > 0 {
		pct := roundPercent(a.Languages[0].Count, a.TotalRepos)
		insights = append(insights, fmt.Sprintf("%s makes up %d%% of your repos - it's basically your native tongue now.", a.MostUsedLanguage, pct))
	}

	if a.ForkedRepos > 3 {
		insights = append(insights, fmt.Sprintf("You've forked %d repos. Ctrl+C, Ctrl+V is also a valid learning strategy! 🍴", a.ForkedRepos))
	}

	if user.Followers > user.Following*2 {
		insights = append(insights, fmt.Sprintf("%d followers but only following %d? Main character energy detected. 👑", user.Followers, user.Following))
	} else if user.Following > user.Followers*2 {
		insights = append(insights, fmt.Sprintf("Following %d people but only %d follow back? You're a generous soul. 🤝", user.Following, user.Followers))
	}

	if a.AvgStars > 5 {
		insights = append(insights, fmt.Sprintf("Average %.1f stars per repo - people actually like your code!", a.AvgStars))
	} else if a.TotalStars == 0 {
		insights = append(insights, "Zero stars across all repos - you're coding in airplane mode. ✈️")
	}

	if accountAgeMonths > 36 && a.TotalRepos < 10 {
		insights = append(insights, fmt.Sprintf("%d years on GitHub with %d repos - quality over quantity vibes.", int(math.Round(float64(accountAgeMonths)/12)), a.TotalRepos))
	}

	if s.Documentation < 20 {
		insights = append(insights, "Your documentation score suggests you believe code should be self-explanatory. Bold. 📖")
	}

	if len(insights) > 5 {
		insights = insights[:5]
	}
	return insights
}

func suggestions(a RepoAnalysis, s Scores, procrastination, burnout int) []string {
	var out []string

	if procrastination > 50 {
		out = append(out, "Try the 2-minute rule: if a commit takes less than 2 minutes, do it now.")
	}
	if burnout > 60 {
		out = append(out, "Your activity patterns suggest high intensity. Schedule rest days to avoid burnout.")
	}
	if s.Documentation < 40 {
		out = append(out, "Add README files to your repos - future you will thank present you.")
	}
	if a.LanguageDiversity < 2 && a.TotalRepos > 5 {
		out = append(out, "Consider exploring a new language - it expands your problem-solving toolkit.")
	}
	if a.InactiveRepos > a.TotalRepos/2 {
		out = append(out, "Archive or delete old repos to keep your profile fresh and focused.")
	}
	if s.Activity < 40 {
		out = append(out, "Set a weekly coding goal, even if it's just 1 commit - consistency beats intensity.")
	}
	if a.ForkedRepos > a.OriginalRepos {
		out = append(out, "Challenge yourself to create more original projects to showcase your unique skills.")
	}

	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

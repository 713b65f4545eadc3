// internal/analysis/streaks.go
package analysis

import (
	"fmt"
	"sort"
	"time"

	"github-profile-analyzer/internal/model"
)

// StreakStats summarizes consecutive-day activity derived from a user's
// public event timeline. Days are UTC calendar days.
type StreakStats struct {
	CurrentStreak   int `json:"current_streak"`
	LongestStreak   int `json:"longest_streak"`
	TotalActiveDays int `json:"total_active_days"`
}

// ActivityPattern captures when a user is active: per-day event counts,
// hour-of-day and weekday histograms, and event-kind totals.
type ActivityPattern struct {
	EventsByDay     map[string]int `json:"events_by_day"`
	EventsByHour    [24]int        `json:"events_by_hour"`
	EventsByWeekday [7]int         `json:"events_by_weekday"`
	EventTypes      map[string]int `json:"event_types"`
	TotalEvents     int            `json:"total_events"`
	PeakHourLabel   string         `json:"peak_hour"`
	PeakDay         string         `json:"peak_day"`
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ComputeStreaks reduces events to distinct UTC calendar days and walks them
// for the longest and current runs of consecutive days.
//
// The current streak is zero unless today or yesterday (relative to now) has
// at least one event; a stale historical streak never reports as current.
// When active, the walk backward from the most recent day tolerates a single
// one-day gap, because "yesterday" still counts as current.
func ComputeStreaks(events []model.Event, now time.Time) StreakStats {
	if len(events) == 0 {
		return StreakStats{}
	}

	daySet := map[int64]bool{}
	for _, ev := range events {
		daySet[dayNumber(ev.CreatedAt)] = true
	}

	days := make([]int64, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	stats := StreakStats{TotalActiveDays: len(days)}

	run := 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
			continue
		}
		if run > stats.LongestStreak {
			stats.LongestStreak = run
		}
		run = 1
	}
	if run > stats.LongestStreak {
		stats.LongestStreak = run
	}

	today := dayNumber(now)
	if daySet[today] || daySet[today-1] {
		streak := 0
		for i := len(days) - 1; i >= 0; i-- {
			expected := today - int64(streak)
			diff := expected - days[i]
			if diff < 0 {
				diff = -diff
			}
			if diff <= 1 {
				streak++
			} else {
				break
			}
		}
		stats.CurrentStreak = streak
	}

	return stats
}

// AnalyzeActivity builds the event histograms used for peak-hour/peak-day
// reporting and the AI summary.
func AnalyzeActivity(events []model.Event) ActivityPattern {
	p := ActivityPattern{
		EventsByDay:   map[string]int{},
		EventTypes:    map[string]int{},
		TotalEvents:   len(events),
		PeakHourLabel: "N/A",
		PeakDay:       "N/A",
	}
	if len(events) == 0 {
		return p
	}

	for _, ev := range events {
		ts := ev.CreatedAt.UTC()
		p.EventsByDay[ts.Format("2006-01-02")]++
		p.EventsByHour[ts.Hour()]++
		p.EventsByWeekday[int(ts.Weekday())]++
		p.EventTypes[ev.Type]++
	}

	peakHour := indexOfMax(p.EventsByHour[:])
	p.PeakHourLabel = hourLabel(peakHour)
	p.PeakDay = weekdayNames[indexOfMax(p.EventsByWeekday[:])]

	return p
}

// dayNumber maps a timestamp to its UTC calendar day as days since the Unix
// epoch, so consecutive days differ by exactly 1.
func dayNumber(t time.Time) int64 {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func indexOfMax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

// hourLabel renders a 0-23 hour as a 12-hour clock label, e.g. 0 -> "12AM",
// 13 -> "1PM".
func hourLabel(hour int) string {
	suffix := "AM"
	h := hour
	if hour >= 12 {
		suffix = "PM"
		h = hour - 12
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d%s", h, suffix)
}

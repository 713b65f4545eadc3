// internal/analysis/streaks_test.go
package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github-profile-analyzer/internal/model"
)

func eventOn(ts string) model.Event {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return model.Event{Type: "PushEvent", CreatedAt: t}
}

func TestComputeStreaks_EmptyInput(t *testing.T) {
	stats := ComputeStreaks(nil, time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, StreakStats{}, stats)
}

func TestComputeStreaks_GapBreaksChain(t *testing.T) {
	// Events on Jan 1,2,3 and 5; evaluated on Jan 6. The longest run is the
	// three-day chain, and only Jan 5 counts as current: Jan 4 is missing,
	// breaking the backward walk.
	events := []model.Event{
		eventOn("2024-01-01T10:00:00Z"),
		eventOn("2024-01-02T12:30:00Z"),
		eventOn("2024-01-03T09:15:00Z"),
		eventOn("2024-01-05T23:59:00Z"),
	}
	now := time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)

	stats := ComputeStreaks(events, now)

	assert.Equal(t, 3, stats.LongestStreak)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 4, stats.TotalActiveDays)
}

func TestComputeStreaks_ActiveChainThroughToday(t *testing.T) {
	events := []model.Event{
		eventOn("2024-01-04T10:00:00Z"),
		eventOn("2024-01-05T10:00:00Z"),
		eventOn("2024-01-06T07:00:00Z"),
	}
	now := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)

	stats := ComputeStreaks(events, now)

	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestComputeStreaks_StaleStreakReportsZero(t *testing.T) {
	// The most recent event is two days old: neither today nor yesterday is
	// active, so the historical streak does not count as current.
	events := []model.Event{
		eventOn("2024-01-01T10:00:00Z"),
		eventOn("2024-01-02T10:00:00Z"),
		eventOn("2024-01-03T10:00:00Z"),
	}
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	stats := ComputeStreaks(events, now)

	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestComputeStreaks_SingleDay(t *testing.T) {
	events := []model.Event{
		eventOn("2024-01-05T10:00:00Z"),
		eventOn("2024-01-05T18:00:00Z"),
	}
	now := time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)

	stats := ComputeStreaks(events, now)

	assert.Equal(t, 1, stats.TotalActiveDays)
	assert.Equal(t, 1, stats.LongestStreak)
	assert.Equal(t, 1, stats.CurrentStreak)
}

func TestComputeStreaks_OrderIrrelevant(t *testing.T) {
	now := time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)
	forward := []model.Event{
		eventOn("2024-01-01T10:00:00Z"),
		eventOn("2024-01-02T10:00:00Z"),
		eventOn("2024-01-03T10:00:00Z"),
	}
	backward := []model.Event{forward[2], forward[0], forward[1]}

	assert.Equal(t, ComputeStreaks(forward, now), ComputeStreaks(backward, now))
}

func TestAnalyzeActivity(t *testing.T) {
	t.Run("empty input yields N/A labels", func(t *testing.T) {
		p := AnalyzeActivity(nil)

		assert.Equal(t, 0, p.TotalEvents)
		assert.Equal(t, "N/A", p.PeakHourLabel)
		assert.Equal(t, "N/A", p.PeakDay)
	})

	t.Run("histograms and peaks", func(t *testing.T) {
		// 2024-01-01 is a Monday.
		events := []model.Event{
			eventOn("2024-01-01T13:00:00Z"),
			eventOn("2024-01-01T13:30:00Z"),
			eventOn("2024-01-02T09:00:00Z"),
			{Type: "PullRequestEvent", CreatedAt: time.Date(2024, 1, 8, 13, 10, 0, 0, time.UTC)},
		}

		p := AnalyzeActivity(events)

		assert.Equal(t, 4, p.TotalEvents)
		assert.Equal(t, "1PM", p.PeakHourLabel)
		assert.Equal(t, "Monday", p.PeakDay)
		assert.Equal(t, 2, p.EventsByDay["2024-01-01"])
		assert.Equal(t, map[string]int{"PushEvent": 3, "PullRequestEvent": 1}, p.EventTypes)
	})
}

func TestHourLabel(t *testing.T) {
	assert.Equal(t, "12AM", hourLabel(0))
	assert.Equal(t, "11AM", hourLabel(11))
	assert.Equal(t, "12PM", hourLabel(12))
	assert.Equal(t, "1PM", hourLabel(13))
	assert.Equal(t, "11PM", hourLabel(23))
}

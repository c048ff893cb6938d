package engine

import (
	"context"
	"strings"
	"time"
)

// HabitSummary is the read-only view of a habit used for scoring.
type HabitSummary struct {
	Name        string
	Completions []time.Time
}

var healthKeywords = []string{"exercise", "water", "sleep", "meditat"}

// IsHealthHabit reports whether the name marks the habit as health related.
func IsHealthHabit(name string) bool {
	n := strings.ToLower(name)
	for _, kw := range healthKeywords {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}

// CurrentStreak counts consecutive days with at least one completion, ending
// today or, when today has none yet, yesterday.
func CurrentStreak(completions []time.Time, now time.Time, loc *time.Location) int {
	days := make(map[string]bool, len(completions))
	for _, c := range completions {
		days[dayKey(StartOfDay(c, loc))] = true
	}

	day := StartOfDay(now, loc)
	if !days[dayKey(day)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[dayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// HabitStat is a habit with its recent activity.
type HabitStat struct {
	ID        int64
	Name      string
	Total     int
	WeekCount int
	Streak    int
	Health    bool
}

func (s *Service) HabitStats(ctx context.Context) ([]HabitStat, error) {
	habits, err := s.habits.ListWithCompletions(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	cutoff := now.Add(-healthWindow)
	out := make([]HabitStat, 0, len(habits))
	for _, h := range habits {
		week := 0
		for _, c := range h.Completions {
			if c.After(cutoff) {
				week++
			}
		}
		out = append(out, HabitStat{
			ID:        h.ID,
			Name:      h.Name,
			Total:     len(h.Completions),
			WeekCount: week,
			Streak:    CurrentStreak(h.Completions, now, s.loc),
			Health:    IsHealthHabit(h.Name),
		})
	}
	return out, nil
}

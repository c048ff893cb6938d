package engine

import (
	"time"
)

const healthWindow = 7 * 24 * time.Hour

// HealthScoreFromHabits scores health from the last week of health habits.
// Each matching habit contributes its completions in the window divided by 7,
// capped at 1. Without matching habits the score is 50.
func HealthScoreFromHabits(habits []HabitSummary, now time.Time) float64 {
	cutoff := now.Add(-healthWindow)
	matched := 0
	total := 0.0
	for _, h := range habits {
		if !IsHealthHabit(h.Name) {
			continue
		}
		matched++
		recent := 0
		for _, c := range h.Completions {
			if c.After(cutoff) {
				recent++
			}
		}
		rate := float64(recent) / 7
		if rate > 1 {
			rate = 1
		}
		total += rate
	}
	if matched == 0 {
		return DefaultDimensionScore
	}
	return 50 + total/float64(matched)*50
}

// WealthScore maps the monthly savings rate to a score. No income scores 50.
func WealthScore(income, expenses float64) float64 {
	if income <= 0 {
		return DefaultDimensionScore
	}
	savingsRate := (income - expenses) / income
	return ClampScore(50 + savingsRate*100)
}

// CareerScore maps the task completion ratio to [30, 100]. No tasks scores 50.
func CareerScore(completed, total int) float64 {
	if total <= 0 {
		return DefaultDimensionScore
	}
	return 30 + float64(completed)/float64(total)*70
}

// DimensionUpdate is one score to apply through UpdateDimensionScore.
type DimensionUpdate struct {
	Dimension DimensionType
	Score     float64
}

// ReviewDimensionScores derives dimension updates from the per-category
// completion of a reviewed day. Updates follow AllCategories order; Personal
// can appear twice (Personal then Learning) and the later one wins.
func ReviewDimensionScores(sched DailySchedule) []DimensionUpdate {
	count := map[BlockCategory]int{}
	done := map[BlockCategory]int{}
	for _, b := range sched.Blocks {
		count[b.Category]++
		if b.Completed {
			done[b.Category]++
		}
	}

	var out []DimensionUpdate
	for _, c := range AllCategories {
		if count[c] == 0 {
			continue
		}
		rate := float64(done[c]) / float64(count[c])
		switch c {
		case CategoryHealth:
			out = append(out, DimensionUpdate{DimensionHealth, 50 + rate*50})
		case CategoryWork:
			out = append(out, DimensionUpdate{DimensionCareer, 50 + rate*50})
		case CategoryPersonal:
			out = append(out, DimensionUpdate{DimensionPersonal, 50 + rate*50})
		case CategorySocial:
			out = append(out, DimensionUpdate{DimensionRelationships, 50 + rate*50})
		case CategoryLearning:
			out = append(out, DimensionUpdate{DimensionPersonal, 50 + rate*30})
		}
	}
	return out
}

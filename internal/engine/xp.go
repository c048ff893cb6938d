package engine

import (
	"math"
)

const (
	// HabitXP is awarded for every habit completion.
	HabitXP = 15

	// ReviewBaseXP is the flat award for submitting a daily review.
	ReviewBaseXP = 50

	// neutralRatingSum is the rating total of a review with three neutral ratings.
	neutralRatingSum = 3 * DefaultRating
)

// TaskXP returns the award for completing a task of priority p.
func TaskXP(p Priority) int {
	switch p {
	case PriorityHigh:
		return 20
	case PriorityMedium:
		return 10
	default:
		return 5
	}
}

// ReviewXP rewards a review: 5 XP per rating point above neutral (negative
// below it) plus up to 50 XP for the day's completion rate.
func ReviewXP(r DailyReview, completionRate float64) int {
	ratingBonus := (r.MoodRating + r.EnergyRating + r.ProductivityRating - neutralRatingSum) * 5
	completionBonus := int(math.Floor(completionRate * 50))
	return ReviewBaseXP + ratingBonus + completionBonus
}

// ImprovementXP is the award for moving a dimension score away from the
// midpoint: 10 XP per full 10 points of distance from 50. It is computed on
// the raw score, before clamping.
func ImprovementXP(raw float64) int {
	if math.IsNaN(raw) {
		return 0
	}
	steps := math.Floor(math.Abs(raw-DefaultDimensionScore) / 10)
	if steps > math.MaxInt32/10 {
		steps = math.MaxInt32 / 10
	}
	return int(steps) * 10
}

package engine

import (
	"context"
	"math"
	"testing"
	"time"
)

func TestHealthScoreFromHabits(t *testing.T) {
	now := at(testDay, 20, 0)
	daysAgo := func(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }

	if got := HealthScoreFromHabits(nil, now); got != 50 {
		t.Fatalf("no habits=%v, want 50", got)
	}
	unrelated := []HabitSummary{{Name: "Journal", Completions: []time.Time{now}}}
	if got := HealthScoreFromHabits(unrelated, now); got != 50 {
		t.Fatalf("no health habits=%v, want 50", got)
	}

	habits := []HabitSummary{
		// 7 in window, one stale.
		{Name: "Morning Exercise", Completions: []time.Time{
			daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4), daysAgo(5), daysAgo(6), daysAgo(8),
		}},
		{Name: "Drink WATER"},
		{Name: "Meditation", Completions: []time.Time{now.Add(time.Hour)}},
		{Name: "Journal", Completions: []time.Time{now}},
	}
	// (1 + 0 + 1/7) / 3 * 50 + 50
	want := 50 + (1+0+1.0/7)/3*50
	if got := HealthScoreFromHabits(habits, now); math.Abs(got-want) > 1e-9 {
		t.Fatalf("HealthScoreFromHabits=%v, want %v", got, want)
	}

	busy := []HabitSummary{{Name: "sleep 8h", Completions: []time.Time{
		now, now, now, now, now, now, now, now, now, now,
	}}}
	if got := HealthScoreFromHabits(busy, now); got != 100 {
		t.Fatalf("capped score=%v, want 100", got)
	}
}

func TestWealthScore(t *testing.T) {
	cases := []struct {
		income, expenses, want float64
	}{
		{0, 500, 50},
		{-10, 0, 50},
		{1000, 800, 70},
		{1000, 0, 100},
		{1000, 2000, 0},
		{1000, 1000, 50},
	}
	for _, tc := range cases {
		if got := WealthScore(tc.income, tc.expenses); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("WealthScore(%v, %v)=%v, want %v", tc.income, tc.expenses, got, tc.want)
		}
	}
}

func TestCareerScore(t *testing.T) {
	if got := CareerScore(5, 10); got != 65 {
		t.Fatalf("CareerScore(5,10)=%v, want 65", got)
	}
	if got := CareerScore(0, 0); got != 50 {
		t.Fatalf("CareerScore(0,0)=%v, want 50", got)
	}
	if got := CareerScore(0, 4); got != 30 {
		t.Fatalf("CareerScore(0,4)=%v, want 30", got)
	}
	if got := CareerScore(4, 4); got != 100 {
		t.Fatalf("CareerScore(4,4)=%v, want 100", got)
	}
}

func TestXPValues(t *testing.T) {
	if TaskXP(PriorityLow) != 5 || TaskXP(PriorityMedium) != 10 || TaskXP(PriorityHigh) != 20 {
		t.Fatalf("unexpected task XP")
	}

	r := NewDailyReview(testDay)
	if got := ReviewXP(r, 0); got != 50 {
		t.Fatalf("neutral ReviewXP=%d, want 50", got)
	}
	r.MoodRating, r.EnergyRating, r.ProductivityRating = 5, 4, 5
	if got := ReviewXP(r, 0.75); got != 50+25+37 {
		t.Fatalf("ReviewXP=%d, want %d", got, 50+25+37)
	}
	r.MoodRating, r.EnergyRating, r.ProductivityRating = 1, 1, 1
	if got := ReviewXP(r, 0); got != 20 {
		t.Fatalf("ReviewXP=%d, want 20", got)
	}

	for raw, want := range map[float64]int{50: 0, 59.9: 0, 60: 10, 41: 0, 40: 10, 150: 100, -40: 90, math.NaN(): 0} {
		if got := ImprovementXP(raw); got != want {
			t.Fatalf("ImprovementXP(%v)=%d, want %d", raw, got, want)
		}
	}
}

func TestReviewDimensionScores(t *testing.T) {
	blocks := []TimeBlock{
		{Category: CategoryWork, Completed: true},
		{Category: CategoryWork},
		{Category: CategoryHealth, Completed: true},
		{Category: CategoryLearning, Completed: true},
		{Category: CategoryPersonal},
		{Category: CategoryMeal, Completed: true},
	}
	got := ReviewDimensionScores(DailySchedule{Blocks: blocks})
	want := []DimensionUpdate{
		{DimensionCareer, 75},
		{DimensionPersonal, 50},
		{DimensionHealth, 100},
		{DimensionPersonal, 80},
	}
	if len(got) != len(want) {
		t.Fatalf("updates=%+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("updates[%d]=%+v, want %+v", i, got[i], want[i])
		}
	}

	if got := ReviewDimensionScores(DailySchedule{}); len(got) != 0 {
		t.Fatalf("empty schedule updates=%+v", got)
	}
}

func TestCurrentStreak(t *testing.T) {
	now := at(testDay, 9, 0)
	day := func(n, hour int) time.Time { return at(testDay.AddDate(0, 0, -n), hour, 0) }

	cases := []struct {
		name string
		in   []time.Time
		want int
	}{
		{"none", nil, 0},
		{"today only", []time.Time{day(0, 7)}, 1},
		{"yesterday run", []time.Time{day(1, 20), day(2, 6), day(3, 23)}, 3},
		{"duplicates", []time.Time{day(0, 7), day(0, 8), day(1, 9)}, 2},
		{"gap", []time.Time{day(0, 7), day(2, 7)}, 1},
		{"stale", []time.Time{day(2, 7), day(3, 7)}, 0},
	}
	for _, tc := range cases {
		if got := CurrentStreak(tc.in, now, testLoc); got != tc.want {
			t.Fatalf("%s: CurrentStreak=%d, want %d", tc.name, got, tc.want)
		}
	}
}

type stubSources struct {
	habits           []HabitSummary
	completed, total int
	income, expenses float64
}

func (s stubSources) HabitSummaries(context.Context) ([]HabitSummary, error) { return s.habits, nil }
func (s stubSources) Counts(context.Context) (int, int, error)               { return s.completed, s.total, nil }
func (s stubSources) MonthlyTotals(context.Context, time.Time) (float64, float64, error) {
	return s.income, s.expenses, nil
}

func TestActivityScores(t *testing.T) {
	src := stubSources{completed: 5, total: 10, income: 2000, expenses: 1500}
	got, err := ActivityScores(context.Background(), src, src, src, at(testDay, 12, 0))
	if err != nil {
		t.Fatalf("ActivityScores: %v", err)
	}
	want := []DimensionUpdate{
		{DimensionHealth, 50},
		{DimensionCareer, 65},
		{DimensionWealth, 75},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("updates[%d]=%+v, want %+v", i, got[i], want[i])
		}
	}
}

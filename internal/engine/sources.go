package engine

import (
	"context"
	"time"

	"github.com/RicGue02/LifeOS/internal/storage"
)

// HabitSource lists habits with their completion history.
type HabitSource interface {
	HabitSummaries(ctx context.Context) ([]HabitSummary, error)
}

// TaskSource reports how many tasks exist and how many are done.
type TaskSource interface {
	Counts(ctx context.Context) (completed int, total int, err error)
}

// FinanceSource totals the transactions of the month containing month.
type FinanceSource interface {
	MonthlyTotals(ctx context.Context, month time.Time) (income float64, expenses float64, err error)
}

// ActivityScores derives the health, career and wealth updates from the
// activity stores, in that order.
func ActivityScores(ctx context.Context, habits HabitSource, tasks TaskSource, finance FinanceSource, now time.Time) ([]DimensionUpdate, error) {
	summaries, err := habits.HabitSummaries(ctx)
	if err != nil {
		return nil, err
	}
	completed, total, err := tasks.Counts(ctx)
	if err != nil {
		return nil, err
	}
	income, expenses, err := finance.MonthlyTotals(ctx, now)
	if err != nil {
		return nil, err
	}
	return []DimensionUpdate{
		{DimensionHealth, HealthScoreFromHabits(summaries, now)},
		{DimensionCareer, CareerScore(completed, total)},
		{DimensionWealth, WealthScore(income, expenses)},
	}, nil
}

type habitRepoSource struct {
	repo *storage.HabitRepo
}

func (s habitRepoSource) HabitSummaries(ctx context.Context) ([]HabitSummary, error) {
	habits, err := s.repo.ListWithCompletions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		out = append(out, HabitSummary{Name: h.Name, Completions: h.Completions})
	}
	return out, nil
}

package engine

import (
	"context"
	"time"
)

type MonthSummary struct {
	Month       time.Time
	Income      float64
	Expenses    float64
	Balance     float64
	SavingsRate float64
	Score       float64
}

// MonthSummary totals the month containing month in the service location.
func (s *Service) MonthSummary(ctx context.Context, month time.Time) (MonthSummary, error) {
	month = month.In(s.loc)
	income, expenses, err := s.transactions.MonthlyTotals(ctx, month)
	if err != nil {
		return MonthSummary{}, err
	}
	sum := MonthSummary{
		Month:    time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, s.loc),
		Income:   income,
		Expenses: expenses,
		Balance:  income - expenses,
		Score:    WealthScore(income, expenses),
	}
	if income > 0 {
		sum.SavingsRate = (income - expenses) / income
	}
	return sum, nil
}

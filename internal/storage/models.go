package storage

import "time"

type Task struct {
	ID          int64
	Title       string
	Priority    string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type Habit struct {
	ID          int64
	Name        string
	CreatedAt   time.Time
	Completions []time.Time
}

type Transaction struct {
	ID          int64
	Amount      float64
	Kind        string // "income" or "expense"
	Category    string
	Description string
	OccurredAt  time.Time
}

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

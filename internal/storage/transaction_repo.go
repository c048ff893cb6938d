package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

func (r *TransactionRepo) Insert(ctx context.Context, t Transaction) (int64, error) {
	switch t.Kind {
	case TransactionIncome, TransactionExpense:
	default:
		return 0, fmt.Errorf("invalid transaction kind: %q", t.Kind)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (amount, kind, category, description, occurred_at)
		VALUES (?, ?, ?, ?, ?)
	`, t.Amount, t.Kind, t.Category, t.Description, t.OccurredAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("transaction insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction last insert id: %w", err)
	}
	return id, nil
}

// ListBetween returns transactions with from <= occurred_at < to, oldest first.
func (r *TransactionRepo) ListBetween(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount, kind, category, description, occurred_at
		FROM transactions
		WHERE occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at ASC, id ASC
	`, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("transaction list: %w", err)
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Amount, &t.Kind, &t.Category, &t.Description, &t.OccurredAt); err != nil {
			return nil, fmt.Errorf("transaction scan: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("transaction rows: %w", err)
	}
	return out, nil
}

// MonthlyTotals sums income and expenses for the calendar month containing
// month, in month's location.
func (r *TransactionRepo) MonthlyTotals(ctx context.Context, month time.Time) (income float64, expenses float64, err error) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	end := start.AddDate(0, 1, 0)
	list, err := r.ListBetween(ctx, start, end)
	if err != nil {
		return 0, 0, err
	}
	for _, t := range list {
		switch t.Kind {
		case TransactionIncome:
			income += t.Amount
		case TransactionExpense:
			expenses += t.Amount
		}
	}
	return income, expenses, nil
}

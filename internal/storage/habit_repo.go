package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type HabitRepo struct {
	db *sql.DB
}

func NewHabitRepo(db *sql.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

func (r *HabitRepo) Insert(ctx context.Context, name string, createdAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO habits (name, created_at) VALUES (?, ?)`, name, createdAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("habit insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("habit last insert id: %w", err)
	}
	return id, nil
}

// Get returns the habit without its completions, or nil, nil when absent.
func (r *HabitRepo) Get(ctx context.Context, id int64) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM habits WHERE id = ?`, id)
	var h Habit
	if err := row.Scan(&h.ID, &h.Name, &h.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("habit get: %w", err)
	}
	return &h, nil
}

func (r *HabitRepo) AddCompletion(ctx context.Context, habitID int64, completedAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO habit_completions (habit_id, completed_at)
		VALUES (?, ?)
	`, habitID, completedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("habit completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("habit completion last insert id: %w", err)
	}
	return id, nil
}

func (r *HabitRepo) CountSince(ctx context.Context, habitID int64, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM habit_completions
		WHERE habit_id = ? AND completed_at >= ?
	`, habitID, since.UTC())
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("habit completion count: %w", err)
	}
	return n, nil
}

// ListWithCompletions returns every habit with all of its completion times,
// ordered by habit id and completion time.
func (r *HabitRepo) ListWithCompletions(ctx context.Context) ([]Habit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.id, h.name, h.created_at, c.completed_at
		FROM habits h
		LEFT JOIN habit_completions c ON c.habit_id = h.id
		ORDER BY h.id ASC, c.completed_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		var (
			h           Habit
			completedAt sql.NullTime
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.CreatedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("habit scan: %w", err)
		}
		if n := len(out); n == 0 || out[n-1].ID != h.ID {
			out = append(out, h)
		}
		if completedAt.Valid {
			last := &out[len(out)-1]
			last.Completions = append(last.Completions, completedAt.Time)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit rows: %w", err)
	}
	return out, nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Insert(ctx context.Context, title string, priority string, createdAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, priority, completed, created_at)
		VALUES (?, ?, 0, ?)
	`, title, priority, createdAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, priority, completed, created_at, completed_at
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTaskRow(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, priority, completed, created_at, completed_at
		FROM tasks
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) MarkDone(ctx context.Context, id int64, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = 1, completed_at = ? WHERE id = ?`, completedAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("task mark done: %w", err)
	}
	return nil
}

// Counts returns the number of completed tasks and the total number of tasks.
func (r *TaskRepo) Counts(ctx context.Context) (completed int, total int, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(completed), 0), COUNT(*) FROM tasks`)
	if err := row.Scan(&completed, &total); err != nil {
		return 0, 0, fmt.Errorf("task counts: %w", err)
	}
	return completed, total, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		t           Task
		completed   int
		completedAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Priority, &completed, &t.CreatedAt, &completedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	t.Completed = completed != 0
	if completedAt.Valid {
		v := completedAt.Time
		t.CompletedAt = &v
	}
	return &t, nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// BlobRepo is a key-value store of opaque snapshots backed by the blobs table.
type BlobRepo struct {
	db *sql.DB
}

func NewBlobRepo(db *sql.DB) *BlobRepo {
	return &BlobRepo{db: db}
}

// Load returns the stored bytes for key, or nil, nil when the key is absent.
func (r *BlobRepo) Load(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE key = ?`, key)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("blob load %q: %w", key, err)
	}
	return data, nil
}

// Save replaces the snapshot stored under key.
func (r *BlobRepo) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("blob save %q: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in ascending order.
func (r *BlobRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM blobs ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("blob keys: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("blob key scan: %w", err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("blob key rows: %w", err)
	}
	return out, nil
}

package storage

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestBlobRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewBlobRepo(openTestDB(t))

	got, err := repo.Load(ctx, "missing")
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if got != nil {
		t.Fatalf("Load missing=%q, want nil", got)
	}

	if err := repo.Save(ctx, "character", []byte(`{"level":1}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, "character", []byte(`{"level":2}`)); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	got, err = repo.Load(ctx, "character")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"level":2}`)) {
		t.Fatalf("Load=%q, want overwritten value", got)
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "character" {
		t.Fatalf("Keys=%v, want [character]", keys)
	}
}

func TestMemoryBlobsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBlobs()

	in := []byte("abc")
	if err := m.Save(ctx, "k", in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	in[0] = 'x'

	out, err := m.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(out) != "abc" {
		t.Fatalf("Load=%q, want abc (caller mutation leaked)", out)
	}
	out[0] = 'y'
	again, _ := m.Load(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("Load=%q, want abc (returned slice aliased)", again)
	}

	missing, err := m.Load(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("Load missing=(%q, %v), want (nil, nil)", missing, err)
	}
}

func TestTaskRepoCountsAndMarkDone(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(openTestDB(t))
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	completed, total, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts empty: %v", err)
	}
	if completed != 0 || total != 0 {
		t.Fatalf("Counts empty=(%d,%d), want (0,0)", completed, total)
	}

	var ids []int64
	for _, title := range []string{"a", "b", "c"} {
		id, err := repo.Insert(ctx, title, "high", now)
		if err != nil {
			t.Fatalf("Insert %s: %v", title, err)
		}
		ids = append(ids, id)
	}
	if err := repo.MarkDone(ctx, ids[1], now.Add(time.Hour)); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}

	completed, total, err = repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if completed != 1 || total != 3 {
		t.Fatalf("Counts=(%d,%d), want (1,3)", completed, total)
	}

	task, err := repo.Get(ctx, ids[1])
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !task.Completed || task.CompletedAt == nil {
		t.Fatalf("task not marked done: %+v", task)
	}
	if missing, err := repo.Get(ctx, 999); err != nil || missing != nil {
		t.Fatalf("Get missing=(%v, %v), want (nil, nil)", missing, err)
	}
}

func TestHabitRepoListWithCompletions(t *testing.T) {
	ctx := context.Background()
	repo := NewHabitRepo(openTestDB(t))
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	water, err := repo.Insert(ctx, "Drink water", now)
	if err != nil {
		t.Fatalf("Insert water: %v", err)
	}
	if _, err := repo.Insert(ctx, "Read", now); err != nil {
		t.Fatalf("Insert read: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := repo.AddCompletion(ctx, water, now.Add(-time.Duration(i)*24*time.Hour)); err != nil {
			t.Fatalf("AddCompletion: %v", err)
		}
	}

	habits, err := repo.ListWithCompletions(ctx)
	if err != nil {
		t.Fatalf("ListWithCompletions: %v", err)
	}
	if len(habits) != 2 {
		t.Fatalf("len(habits)=%d, want 2", len(habits))
	}
	if got := len(habits[0].Completions); got != 3 {
		t.Fatalf("water completions=%d, want 3", got)
	}
	if got := len(habits[1].Completions); got != 0 {
		t.Fatalf("read completions=%d, want 0", got)
	}

	n, err := repo.CountSince(ctx, water, now.Add(-36*time.Hour))
	if err != nil {
		t.Fatalf("CountSince: %v", err)
	}
	if n != 2 {
		t.Fatalf("CountSince=%d, want 2", n)
	}
}

func TestTransactionRepoMonthlyTotals(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepo(openTestDB(t))
	loc := time.FixedZone("test", 2*60*60)

	rows := []Transaction{
		{Amount: 3000, Kind: TransactionIncome, Category: "Salary", OccurredAt: time.Date(2026, 10, 2, 9, 0, 0, 0, loc)},
		{Amount: 1200, Kind: TransactionExpense, Category: "Housing", OccurredAt: time.Date(2026, 10, 3, 9, 0, 0, 0, loc)},
		{Amount: 150, Kind: TransactionExpense, Category: "Food", OccurredAt: time.Date(2026, 10, 31, 23, 0, 0, 0, loc)},
		// Previous month; excluded.
		{Amount: 999, Kind: TransactionExpense, Category: "Other", OccurredAt: time.Date(2026, 9, 30, 23, 59, 0, 0, loc)},
	}
	for _, r := range rows {
		if _, err := repo.Insert(ctx, r); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if _, err := repo.Insert(ctx, Transaction{Amount: 1, Kind: "gift"}); err == nil {
		t.Fatalf("expected error for invalid kind")
	}

	income, expenses, err := repo.MonthlyTotals(ctx, time.Date(2026, 10, 18, 12, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("MonthlyTotals: %v", err)
	}
	if income != 3000 {
		t.Fatalf("income=%v, want 3000", income)
	}
	if expenses != 1350 {
		t.Fatalf("expenses=%v, want 1350", expenses)
	}
}

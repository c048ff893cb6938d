package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/storage"
)

var day = time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)

func newTestBoard(t *testing.T) (boardModel, *engine.Service) {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := engine.NewService(ctx, db,
		engine.WithLocation(time.UTC),
		engine.WithClock(func() time.Time { return day.Add(8 * time.Hour) }),
	)
	for _, b := range []engine.TimeBlock{
		{Title: "Gym", Start: day.Add(18 * time.Hour), End: day.Add(19 * time.Hour), Category: engine.CategoryHealth},
		{Title: "Deep work", Start: day.Add(9 * time.Hour), End: day.Add(11 * time.Hour), Category: engine.CategoryWork},
	} {
		if _, err := svc.Scheduler().AddTimeBlock(ctx, day, b); err != nil {
			t.Fatalf("AddTimeBlock: %v", err)
		}
	}
	return newBoardModel(ctx, svc, day), svc
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m boardModel, cmd tea.Cmd) boardModel {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		next, c := m.Update(msg)
		m = next.(boardModel)
		cmd = c
	}
	return m
}

func press(t *testing.T, m boardModel, key string) boardModel {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return run(t, next.(boardModel), cmd)
}

func TestBoardLoadsSortedBlocks(t *testing.T) {
	m, _ := newTestBoard(t)
	m = run(t, m, m.Init())

	if m.loading {
		t.Fatalf("still loading")
	}
	if len(m.blocks) != 2 || m.blocks[0].Title != "Deep work" {
		t.Fatalf("blocks=%+v", m.blocks)
	}
	view := m.View()
	if !strings.Contains(view, "Level 1") || !strings.Contains(view, "09:00 - 11:00") {
		t.Fatalf("view missing header or block:\n%s", view)
	}
}

func TestBoardToggleAndDelete(t *testing.T) {
	m, svc := newTestBoard(t)
	m = run(t, m, m.Init())

	m = press(t, m, "j")
	m = press(t, m, "c")
	sched, _ := svc.Scheduler().Schedule(day)
	for _, b := range sched.Blocks {
		if b.Completed != (b.Title == "Gym") {
			t.Fatalf("block %q completed=%v", b.Title, b.Completed)
		}
	}
	if m.stats.CompletedBlocks != 1 {
		t.Fatalf("CompletedBlocks=%d, want 1", m.stats.CompletedBlocks)
	}

	m = press(t, m, "d")
	sched, _ = svc.Scheduler().Schedule(day)
	if len(sched.Blocks) != 1 || sched.Blocks[0].Title != "Deep work" {
		t.Fatalf("blocks=%+v", sched.Blocks)
	}
	if m.selected != 0 {
		t.Fatalf("selected=%d, want 0", m.selected)
	}
}

func TestBoardDayNavigation(t *testing.T) {
	m, _ := newTestBoard(t)
	m = run(t, m, m.Init())

	m = press(t, m, "l")
	if !m.day.Equal(day.AddDate(0, 0, 1)) || len(m.blocks) != 0 {
		t.Fatalf("day=%v blocks=%d", m.day, len(m.blocks))
	}
	m = press(t, m, "h")
	m = press(t, m, "h")
	if !m.day.Equal(day.AddDate(0, 0, -1)) {
		t.Fatalf("day=%v", m.day)
	}
	m = press(t, m, "t")
	if !m.day.Equal(day) || len(m.blocks) != 2 {
		t.Fatalf("day=%v blocks=%d", m.day, len(m.blocks))
	}
}

func TestBoardRescoreShowsAwards(t *testing.T) {
	m, svc := newTestBoard(t)
	ctx := context.Background()

	id, err := svc.AddTask(ctx, "Ship", engine.PriorityHigh)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, id); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	m = run(t, m, m.Init())

	var msgs []tea.Msg
	unsubscribe := subscribeAwards(svc.Events(), func(msg tea.Msg) { msgs = append(msgs, msg) })
	defer unsubscribe()

	// Career 100 awards 50 XP on top of the 20 from the task.
	m = press(t, m, "s")
	if m.character.Experience != 70 {
		t.Fatalf("Experience=%d, want 70", m.character.Experience)
	}
	if len(msgs) != 1 {
		t.Fatalf("forwarded %d messages, want 1", len(msgs))
	}
	next, cmd := m.Update(msgs[0])
	m = run(t, next.(boardModel), cmd)
	if m.lastLog != "+50 XP" {
		t.Fatalf("lastLog=%q, want %q", m.lastLog, "+50 XP")
	}
}

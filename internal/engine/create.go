package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/RicGue02/LifeOS/internal/storage"
)

type AddTransactionInput struct {
	Amount      float64
	Kind        string
	Category    string
	Description string
	OccurredAt  time.Time
}

func (s *Service) AddTask(ctx context.Context, title string, priority Priority) (int64, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return 0, err
	}
	if !priority.IsValid() {
		return 0, fmt.Errorf("invalid priority: %q", priority)
	}
	return s.tasks.Insert(ctx, t, string(priority), s.now())
}

func (s *Service) AddHabit(ctx context.Context, name string) (int64, error) {
	n, err := normalizeTitle(name)
	if err != nil {
		return 0, err
	}
	return s.habits.Insert(ctx, n, s.now())
}

// AddTransaction records income or an expense. A zero OccurredAt means now.
func (s *Service) AddTransaction(ctx context.Context, in AddTransactionInput) (int64, error) {
	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return 0, errors.New("amount must be a positive number")
	}
	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	if in.OccurredAt.IsZero() {
		in.OccurredAt = s.now()
	}
	return s.transactions.Insert(ctx, storage.Transaction{
		Amount:      in.Amount,
		Kind:        kind,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		OccurredAt:  in.OccurredAt,
	})
}

// PlanTask puts a stored task on the schedule of start's day.
func (s *Service) PlanTask(ctx context.Context, id int64, start time.Time, duration time.Duration) (TimeBlock, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return TimeBlock{}, err
	}
	if task == nil {
		return TimeBlock{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	prio := Priority(task.Priority)
	if !prio.IsValid() {
		prio = PriorityMedium
	}
	return s.scheduler.AddTaskBlock(ctx, TaskRef{
		ID:       strconv.FormatInt(task.ID, 10),
		Title:    task.Title,
		Priority: prio,
	}, start, duration)
}

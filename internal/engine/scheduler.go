package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RicGue02/LifeOS/internal/logger"
)

// Scheduler owns every DailySchedule, keyed by calendar day, and persists the
// whole collection after each mutation.
type Scheduler struct {
	mu        sync.Mutex
	gateway   Gateway
	log       *logger.Logger
	loc       *time.Location
	now       func() time.Time
	events    *Events
	schedules map[string]*DailySchedule
}

// NewScheduler loads the stored schedules. A missing or unreadable snapshot
// leaves the scheduler empty; it is logged, never returned.
func NewScheduler(ctx context.Context, gw Gateway, opts ...Option) *Scheduler {
	o := buildOptions(opts)
	s := &Scheduler{
		gateway:   gw,
		log:       o.log.With("component", "scheduler"),
		loc:       o.loc,
		now:       o.now,
		events:    o.events,
		schedules: map[string]*DailySchedule{},
	}

	data, err := gw.Load(ctx, KeySchedules)
	if err != nil {
		s.log.Warn("load schedules failed, starting empty", "error", err)
		return s
	}
	if data == nil {
		return s
	}
	loaded, err := DecodeSchedules(data, s.loc)
	if err != nil {
		s.log.Warn("stored schedules unreadable, starting empty", "error", err)
		return s
	}
	s.schedules = loaded
	s.log.Debug("schedules loaded", "days", len(loaded))
	return s
}

func (s *Scheduler) Location() *time.Location { return s.loc }

// Today returns local midnight of the current day.
func (s *Scheduler) Today() time.Time { return StartOfDay(s.now(), s.loc) }

// GetOrCreateSchedule returns the schedule for day, creating and persisting an
// empty one on first access.
func (s *Scheduler) GetOrCreateSchedule(ctx context.Context, day time.Time) DailySchedule {
	var out DailySchedule
	_ = s.mutate(func() (*Event, error) {
		sched, created := s.getOrCreate(day)
		out = *sched.clone()
		if !created {
			return nil, nil
		}
		if err := s.persist(ctx); err != nil {
			s.log.Warn("persist new schedule failed", "day", dayKey(sched.Date), "error", err)
		}
		return &Event{Kind: EventScheduleCreated, Day: sched.Date}, nil
	})
	return out
}

// Schedule returns the schedule for day without creating it.
func (s *Scheduler) Schedule(day time.Time) (DailySchedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched := s.lookup(day)
	if sched == nil {
		return DailySchedule{Date: StartOfDay(day, s.loc)}, false
	}
	return *sched.clone(), true
}

// Schedules returns a copy of every stored schedule, oldest first.
func (s *Scheduler) Schedules() []DailySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DailySchedule, 0, len(s.schedules))
	for _, sched := range s.schedules {
		out = append(out, *sched.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// AddTimeBlock validates and appends block to day's schedule. It fails with
// ErrInvalidTimeRange when End <= Start and with an *OverlapError when the
// block intersects an existing one. Missing ID and timestamps are filled in.
//
// When saving fails the block stays in memory: the filled-in block is returned
// together with the save error.
func (s *Scheduler) AddTimeBlock(ctx context.Context, day time.Time, block TimeBlock) (TimeBlock, error) {
	if !block.End.After(block.Start) {
		return TimeBlock{}, ErrInvalidTimeRange
	}

	err := s.mutate(func() (*Event, error) {
		sched, _ := s.getOrCreate(day)
		for _, existing := range sched.Blocks {
			if block.Overlaps(existing) {
				return nil, &OverlapError{
					ConflictID:    existing.ID,
					ConflictTitle: existing.Title,
					ConflictRange: existing.TimeRangeString(),
				}
			}
		}

		now := s.now()
		if block.ID == "" {
			block.ID = uuid.NewString()
		}
		if !block.Category.IsValid() {
			block.Category = CategoryOther
		}
		if block.CreatedAt.IsZero() {
			block.CreatedAt = now
		}
		if block.UpdatedAt.IsZero() {
			block.UpdatedAt = now
		}
		sched.Blocks = append(sched.Blocks, block)

		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return &Event{Kind: EventBlockAdded, Day: sched.Date, BlockID: block.ID}, nil
	})
	var overlap *OverlapError
	if errors.As(err, &overlap) {
		return TimeBlock{}, err
	}
	return block, err
}

// UpdateTimeBlock replaces the block with the same ID. An unknown ID is
// ignored. The new time range is not checked against other blocks.
func (s *Scheduler) UpdateTimeBlock(ctx context.Context, day time.Time, block TimeBlock) error {
	return s.mutate(func() (*Event, error) {
		sched := s.lookup(day)
		if sched == nil {
			return nil, nil
		}
		i := sched.indexOf(block.ID)
		if i < 0 {
			return nil, nil
		}
		if block.CreatedAt.IsZero() {
			block.CreatedAt = sched.Blocks[i].CreatedAt
		}
		block.UpdatedAt = s.now()
		sched.Blocks[i] = block

		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return &Event{Kind: EventBlockUpdated, Day: sched.Date, BlockID: block.ID}, nil
	})
}

// RemoveTimeBlock deletes the block with id. An unknown ID is ignored.
func (s *Scheduler) RemoveTimeBlock(ctx context.Context, day time.Time, id string) error {
	return s.mutate(func() (*Event, error) {
		sched := s.lookup(day)
		if sched == nil {
			return nil, nil
		}
		i := sched.indexOf(id)
		if i < 0 {
			return nil, nil
		}
		sched.Blocks = append(sched.Blocks[:i], sched.Blocks[i+1:]...)

		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return &Event{Kind: EventBlockRemoved, Day: sched.Date, BlockID: id}, nil
	})
}

// ToggleCompletion flips the completion flag of the block with id. An unknown
// ID is ignored.
func (s *Scheduler) ToggleCompletion(ctx context.Context, day time.Time, id string) error {
	return s.mutate(func() (*Event, error) {
		sched := s.lookup(day)
		if sched == nil {
			return nil, nil
		}
		i := sched.indexOf(id)
		if i < 0 {
			return nil, nil
		}
		sched.Blocks[i].Completed = !sched.Blocks[i].Completed
		sched.Blocks[i].UpdatedAt = s.now()

		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return &Event{Kind: EventBlockToggled, Day: sched.Date, BlockID: id}, nil
	})
}

// SaveReview attaches review to day's schedule, replacing any previous one.
func (s *Scheduler) SaveReview(ctx context.Context, day time.Time, review DailyReview) (DailyReview, error) {
	if err := review.Validate(); err != nil {
		return DailyReview{}, err
	}

	err := s.mutate(func() (*Event, error) {
		sched, _ := s.getOrCreate(day)
		if review.ID == "" {
			review.ID = uuid.NewString()
		}
		if review.CreatedAt.IsZero() {
			review.CreatedAt = s.now()
		}
		review.Date = sched.Date
		r := review
		sched.Review = &r

		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return &Event{Kind: EventReviewSaved, Day: sched.Date}, nil
	})
	return review, err
}

// TaskRef is the part of a task needed to put it on the schedule.
type TaskRef struct {
	ID       string
	Title    string
	Notes    string
	Priority Priority
}

// AddTaskBlock schedules a task at start for duration. The block category is
// derived from the task priority.
func (s *Scheduler) AddTaskBlock(ctx context.Context, task TaskRef, start time.Time, duration time.Duration) (TimeBlock, error) {
	block := TimeBlock{
		Title:    task.Title,
		Start:    start,
		End:      start.Add(duration),
		Category: task.Priority.BlockCategory(),
		TaskID:   task.ID,
		Notes:    task.Notes,
	}
	return s.AddTimeBlock(ctx, start, block)
}

// mutate runs fn with mu held and emits the event it returns, if any, once mu
// is released.
func (s *Scheduler) mutate(fn func() (*Event, error)) error {
	s.mu.Lock()
	ev, err := fn()
	s.mu.Unlock()

	if ev != nil {
		s.events.emit(*ev)
	}
	return err
}

func (s *Scheduler) lookup(day time.Time) *DailySchedule {
	return s.schedules[dayKey(StartOfDay(day, s.loc))]
}

func (s *Scheduler) getOrCreate(day time.Time) (*DailySchedule, bool) {
	d := StartOfDay(day, s.loc)
	key := dayKey(d)
	if sched, ok := s.schedules[key]; ok {
		return sched, false
	}
	sched := &DailySchedule{Date: d, Blocks: []TimeBlock{}}
	s.schedules[key] = sched
	return sched, true
}

func (s *Scheduler) persist(ctx context.Context) error {
	data, err := EncodeSchedules(s.schedules)
	if err != nil {
		s.log.Error("encode schedules failed", "error", err)
		return err
	}
	if err := s.gateway.Save(ctx, KeySchedules, data); err != nil {
		s.log.Warn("save schedules failed", "error", err)
		return fmt.Errorf("save schedules: %w", err)
	}
	s.log.Debug("schedules saved", "days", len(s.schedules), "bytes", len(data))
	return nil
}

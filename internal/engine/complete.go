package engine

import (
	"context"
	"fmt"
	"time"
)

type CompleteResult struct {
	TaskID int64
	AwardResult
}

type HabitResult struct {
	HabitID   int64
	WeekCount int
	AwardResult
}

type ReviewResult struct {
	Review         DailyReview
	CompletionRate float64
	Updates        []DimensionUpdate
	AwardResult
}

// CompleteTask marks the task done and awards XP for its priority. When only
// the character save fails the result is returned together with the error.
func (s *Service) CompleteTask(ctx context.Context, id int64) (*CompleteResult, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if task.Completed {
		return nil, fmt.Errorf("task %d is already done", id)
	}

	if err := s.tasks.MarkDone(ctx, id, s.now()); err != nil {
		return nil, err
	}

	award, err := s.characters.CompleteTaskAward(ctx, Priority(task.Priority))
	return &CompleteResult{TaskID: id, AwardResult: award}, err
}

// CompleteHabit records a completion at the current time and awards HabitXP.
func (s *Service) CompleteHabit(ctx context.Context, id int64) (*HabitResult, error) {
	habit, err := s.habits.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, fmt.Errorf("%w: %d", ErrHabitNotFound, id)
	}

	now := s.now()
	if _, err := s.habits.AddCompletion(ctx, id, now); err != nil {
		return nil, err
	}
	week, err := s.habits.CountSince(ctx, id, now.Add(-healthWindow))
	if err != nil {
		return nil, err
	}

	award, err := s.characters.CompleteHabitAward(ctx)
	return &HabitResult{HabitID: id, WeekCount: week, AwardResult: award}, err
}

// SubmitReview saves the review for day, awards review XP based on the day's
// completion rate and applies the per-category dimension scores.
func (s *Service) SubmitReview(ctx context.Context, day time.Time, review DailyReview) (*ReviewResult, error) {
	saved, err := s.scheduler.SaveReview(ctx, day, review)
	if err != nil && saved.ID == "" {
		return nil, err
	}
	saveErr := err

	sched, _ := s.scheduler.Schedule(day)
	stats := ComputeStatistics(sched)

	award, err := s.characters.ReviewCompletionAward(ctx, saved, stats.CompletionRate)
	if err != nil {
		saveErr = err
	}
	updates := ReviewDimensionScores(sched)
	for _, u := range updates {
		if _, err := s.characters.UpdateDimensionScore(ctx, u.Dimension, u.Score); err != nil {
			saveErr = err
		}
	}

	final := s.characters.Character().Level
	award.LevelAfter = final
	award.LevelUp = final > award.LevelBefore

	return &ReviewResult{
		Review:         saved,
		CompletionRate: stats.CompletionRate,
		Updates:        updates,
		AwardResult:    award,
	}, saveErr
}

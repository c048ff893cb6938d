package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrOverlappingBlock = errors.New("time block overlaps an existing block")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrTaskNotFound     = errors.New("task not found")
	ErrHabitNotFound    = errors.New("habit not found")
)

// OverlapError names the block a rejected time block collides with.
// It matches ErrOverlappingBlock under errors.Is.
type OverlapError struct {
	ConflictID    string
	ConflictTitle string
	ConflictRange string
}

func (e *OverlapError) Error() string {
	if e.ConflictTitle == "" {
		return ErrOverlappingBlock.Error()
	}
	return fmt.Sprintf("time block overlaps %q (%s)", e.ConflictTitle, e.ConflictRange)
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlappingBlock
}

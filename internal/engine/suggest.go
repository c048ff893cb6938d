package engine

import (
	"context"
	"time"
)

const slotStep = 15 * time.Minute

// SuggestSlot returns the earliest start, on a 15-minute boundary, at which a
// block of the given duration fits without overlapping day's blocks.
//
// The search starts at after, or at now when after lies earlier today. The
// result is not clamped to day and may fall after midnight.
func (s *Scheduler) SuggestSlot(_ context.Context, day time.Time, duration time.Duration, after time.Time) time.Time {
	sched, _ := s.Schedule(day)
	now := s.now()

	start := after
	if StartOfDay(after, s.loc).Equal(StartOfDay(now, s.loc)) && now.After(after) {
		start = now
	}
	return firstFreeSlot(sched.SortedBlocks(), roundUpToStep(start.In(s.loc)), duration)
}

func firstFreeSlot(blocks []TimeBlock, candidate time.Time, duration time.Duration) time.Time {
	for {
		trial := TimeBlock{Start: candidate, End: candidate.Add(duration)}
		moved := false
		for _, b := range blocks {
			if trial.Overlaps(b) {
				candidate = roundUpToStep(b.End.In(candidate.Location()))
				trial = TimeBlock{Start: candidate, End: candidate.Add(duration)}
				moved = true
			}
		}
		if !moved {
			return candidate
		}
	}
}

// roundUpToStep moves t forward to the next quarter hour on the wall clock.
// Instants already on a boundary are returned unchanged.
func roundUpToStep(t time.Time) time.Time {
	floor := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()-t.Minute()%15, 0, 0, t.Location())
	if floor.Equal(t) {
		return t
	}
	return floor.Add(slotStep)
}

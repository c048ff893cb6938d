package engine

import (
	"context"
	"time"
)

// DailyStatistics is derived from a schedule on every call and never stored.
type DailyStatistics struct {
	TotalBlocks      int
	CompletedBlocks  int
	TotalMinutes     int
	CompletedMinutes int
	CategoryMinutes  map[BlockCategory]int
	CompletionRate   float64
}

func (s DailyStatistics) TotalHours() float64     { return float64(s.TotalMinutes) / 60 }
func (s DailyStatistics) CompletedHours() float64 { return float64(s.CompletedMinutes) / 60 }

// ComputeStatistics aggregates a schedule. An empty schedule has a
// completion rate of 0.
func ComputeStatistics(sched DailySchedule) DailyStatistics {
	st := DailyStatistics{CategoryMinutes: map[BlockCategory]int{}}
	for _, b := range sched.Blocks {
		minutes := b.DurationMinutes()
		st.TotalBlocks++
		st.TotalMinutes += minutes
		st.CategoryMinutes[b.Category] += minutes
		if b.Completed {
			st.CompletedBlocks++
			st.CompletedMinutes += minutes
		}
	}
	if st.TotalBlocks > 0 {
		st.CompletionRate = float64(st.CompletedBlocks) / float64(st.TotalBlocks)
	}
	return st
}

// Statistics computes statistics for day. A day without a schedule yields
// zero values and is not created.
func (s *Scheduler) Statistics(_ context.Context, day time.Time) DailyStatistics {
	sched, _ := s.Schedule(day)
	return ComputeStatistics(sched)
}

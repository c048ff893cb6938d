package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const (
	KeySchedules = "daily_schedules"
	KeyCharacter = "character"
)

// Gateway persists whole-state snapshots under string keys. Load returns
// nil, nil when nothing is stored under key.
type Gateway interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// EncodeSchedules serializes every schedule, ordered by date.
func EncodeSchedules(schedules map[string]*DailySchedule) ([]byte, error) {
	list := make([]*DailySchedule, 0, len(schedules))
	for _, s := range schedules {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })

	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode schedules: %w", err)
	}
	return data, nil
}

// DecodeSchedules parses a snapshot written by EncodeSchedules. Dates are
// re-normalized to midnight in loc and instants are moved into loc.
func DecodeSchedules(data []byte, loc *time.Location) (map[string]*DailySchedule, error) {
	var list []*DailySchedule
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode schedules: %w", err)
	}

	out := make(map[string]*DailySchedule, len(list))
	for _, s := range list {
		if s == nil {
			continue
		}
		s.Date = StartOfDay(s.Date, loc)
		for i := range s.Blocks {
			b := &s.Blocks[i]
			b.Start = b.Start.In(loc)
			b.End = b.End.In(loc)
			b.CreatedAt = b.CreatedAt.In(loc)
			b.UpdatedAt = b.UpdatedAt.In(loc)
		}
		if s.Review != nil {
			s.Review.Date = StartOfDay(s.Review.Date, loc)
			s.Review.CreatedAt = s.Review.CreatedAt.In(loc)
		}
		key := dayKey(s.Date)
		if existing, ok := out[key]; ok {
			// Two entries for one day can only come from a timezone change;
			// keep both days' blocks.
			existing.Blocks = append(existing.Blocks, s.Blocks...)
			if existing.Review == nil {
				existing.Review = s.Review
			}
			continue
		}
		out[key] = s
	}
	return out, nil
}

func EncodeCharacter(c Character) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode character: %w", err)
	}
	return data, nil
}

func DecodeCharacter(data []byte) (Character, error) {
	var c Character
	if err := json.Unmarshal(data, &c); err != nil {
		return Character{}, fmt.Errorf("decode character: %w", err)
	}
	if c.Level < 1 {
		return Character{}, fmt.Errorf("decode character: invalid level %d", c.Level)
	}
	return c, nil
}

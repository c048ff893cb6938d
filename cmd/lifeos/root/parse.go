package root

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RicGue02/LifeOS/internal/engine"
)

const dateLayout = "2006-01-02"

// parseDay resolves a --date flag. Empty input means today.
func parseDay(input string, today time.Time) (time.Time, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	d, err := time.ParseInLocation(dateLayout, s, today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", input)
	}
	return d, nil
}

// parseClock turns "HH:MM" into an instant on day. "24:00" is midnight at the
// end of day.
func parseClock(input string, day time.Time) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(input), ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM)", input)
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM)", input)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

func parseID(input string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer, got %q", input)
	}
	return id, nil
}

// resolveBlock finds the block whose ID equals or uniquely starts with prefix.
func resolveBlock(sched engine.DailySchedule, prefix string) (engine.TimeBlock, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return engine.TimeBlock{}, fmt.Errorf("block id is required")
	}
	var matches []engine.TimeBlock
	for _, b := range sched.Blocks {
		if b.ID == prefix {
			return b, nil
		}
		if strings.HasPrefix(b.ID, prefix) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return engine.TimeBlock{}, fmt.Errorf("no block %q on %s", prefix, sched.Date.Format(dateLayout))
	case 1:
		return matches[0], nil
	default:
		return engine.TimeBlock{}, fmt.Errorf("block id %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

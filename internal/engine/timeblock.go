package engine

import (
	"fmt"
	"sort"
	"time"
)

// TimeBlock is a scheduled interval of a day. TaskID is a weak reference to a
// task; it may point at a task that no longer exists.
type TimeBlock struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	Category  BlockCategory `json:"category"`
	TaskID    string        `json:"task_id,omitempty"`
	Notes     string        `json:"notes"`
	Completed bool          `json:"completed"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (b TimeBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

func (b TimeBlock) DurationMinutes() int {
	return int(b.Duration() / time.Minute)
}

// DurationString renders the duration as "1h 30m" or "45m".
func (b TimeBlock) DurationString() string {
	d := b.Duration()
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func (b TimeBlock) TimeRangeString() string {
	return b.Start.Format("15:04") + " - " + b.End.Format("15:04")
}

// Overlaps reports whether the half-open intervals [Start, End) intersect.
// Blocks that only touch at an endpoint do not overlap.
func (b TimeBlock) Overlaps(other TimeBlock) bool {
	return b.Start.Before(other.End) && b.End.After(other.Start)
}

// DailySchedule holds the time blocks and optional review for one day.
type DailySchedule struct {
	Date   time.Time    `json:"date"`
	Blocks []TimeBlock  `json:"blocks"`
	Review *DailyReview `json:"review,omitempty"`
}

// SortedBlocks returns a copy of the blocks ordered by start time.
func (s *DailySchedule) SortedBlocks() []TimeBlock {
	out := append([]TimeBlock(nil), s.Blocks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

func (s *DailySchedule) TotalPlannedMinutes() int {
	total := 0
	for _, b := range s.Blocks {
		total += b.DurationMinutes()
	}
	return total
}

func (s *DailySchedule) CompletionRate() float64 {
	if len(s.Blocks) == 0 {
		return 0
	}
	done := 0
	for _, b := range s.Blocks {
		if b.Completed {
			done++
		}
	}
	return float64(done) / float64(len(s.Blocks))
}

func (s *DailySchedule) indexOf(id string) int {
	for i := range s.Blocks {
		if s.Blocks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *DailySchedule) clone() *DailySchedule {
	c := &DailySchedule{Date: s.Date, Blocks: append([]TimeBlock(nil), s.Blocks...)}
	if s.Review != nil {
		r := *s.Review
		c.Review = &r
	}
	return c
}

// DailyReview is the end-of-day reflection attached to a schedule.
type DailyReview struct {
	ID                  string    `json:"id"`
	Date                time.Time `json:"date"`
	Accomplishments     string    `json:"accomplishments"`
	Challenges          string    `json:"challenges"`
	LessonsLearned      string    `json:"lessons_learned"`
	TomorrowsPriorities string    `json:"tomorrows_priorities"`
	Gratitude           string    `json:"gratitude"`
	MoodRating          int       `json:"mood_rating"`
	EnergyRating        int       `json:"energy_rating"`
	ProductivityRating  int       `json:"productivity_rating"`
	CreatedAt           time.Time `json:"created_at"`
}

const DefaultRating = 3

// NewDailyReview returns a review with neutral ratings.
func NewDailyReview(date time.Time) DailyReview {
	return DailyReview{
		Date:               date,
		MoodRating:         DefaultRating,
		EnergyRating:       DefaultRating,
		ProductivityRating: DefaultRating,
	}
}

func (r DailyReview) Validate() error {
	for _, v := range []int{r.MoodRating, r.EnergyRating, r.ProductivityRating} {
		if v < 1 || v > 5 {
			return fmt.Errorf("%w: got %d", ErrInvalidRating, v)
		}
	}
	return nil
}

// StartOfDay returns local midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func dayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

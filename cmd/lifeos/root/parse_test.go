package root

import (
	"testing"
	"time"

	"github.com/RicGue02/LifeOS/internal/engine"
)

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"", today},
		{"Today", today},
		{"tomorrow", today.AddDate(0, 0, 1)},
		{"yesterday", today.AddDate(0, 0, -1)},
		{"2025-12-31", time.Date(2025, 12, 31, 0, 0, 0, 0, loc)},
	}
	for _, tc := range cases {
		got, err := parseDay(tc.in, today)
		if err != nil {
			t.Fatalf("parseDay(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("parseDay(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := parseDay("31/12/2025", today); err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestParseClock(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := parseClock("09:30", day)
	if err != nil || !got.Equal(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("parseClock(09:30)=%v, %v", got, err)
	}
	got, err = parseClock("24:00", day)
	if err != nil || !got.Equal(day.AddDate(0, 0, 1)) {
		t.Fatalf("parseClock(24:00)=%v, %v", got, err)
	}
	for _, bad := range []string{"9", "25:00", "24:30", "10:60", "ab:cd", "-1:00"} {
		if _, err := parseClock(bad, day); err == nil {
			t.Fatalf("parseClock(%q): expected error", bad)
		}
	}
}

func TestResolveBlock(t *testing.T) {
	sched := engine.DailySchedule{Blocks: []engine.TimeBlock{
		{ID: "abc123", Title: "one"},
		{ID: "abd456", Title: "two"},
		{ID: "ab", Title: "exact"},
	}}

	cases := []struct {
		prefix string
		want   string
		ok     bool
	}{
		{"abc", "one", true},
		{"abd4", "two", true},
		{"ab", "exact", true},
		{"a", "", false},
		{"zzz", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		b, err := resolveBlock(sched, tc.prefix)
		if tc.ok != (err == nil) {
			t.Fatalf("resolveBlock(%q) err=%v, want ok=%v", tc.prefix, err, tc.ok)
		}
		if tc.ok && b.Title != tc.want {
			t.Fatalf("resolveBlock(%q)=%q, want %q", tc.prefix, b.Title, tc.want)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID(" 42 "); err != nil || id != 42 {
		t.Fatalf("parseID=%d, %v", id, err)
	}
	for _, bad := range []string{"0", "-3", "x"} {
		if _, err := parseID(bad); err == nil {
			t.Fatalf("parseID(%q): expected error", bad)
		}
	}
}

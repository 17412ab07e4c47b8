package exams

import (
	"errors"
	"testing"
	"time"
)

func TestFixturesAreValidAndOrdered(t *testing.T) {
	list := Fixtures()
	if len(list) != 7 {
		t.Fatalf("expected 7 exams, got %d", len(list))
	}
	seen := make(map[int64]bool, len(list))
	for i, exam := range list {
		if err := exam.Validate(); err != nil {
			t.Fatalf("fixture %d invalid: %v", exam.ID, err)
		}
		if seen[exam.ID] {
			t.Fatalf("duplicate exam id %d", exam.ID)
		}
		seen[exam.ID] = true
		if i > 0 && exam.StartAt.Before(list[i-1].StartAt) {
			t.Fatalf("fixtures out of chronological order at index %d", i)
		}
	}
}

func TestParseStartAtBareTime(t *testing.T) {
	start, end, err := ParseStartAt("2025-06-01", "09:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, 6, 1, 9, 30, 0, 0, time.Local)
	if !start.Equal(want) {
		t.Fatalf("expected %s, got %s", want, start)
	}
	if end != nil {
		t.Fatalf("expected no end for bare time, got %s", end)
	}
}

func TestParseStartAtRange(t *testing.T) {
	start, end, err := ParseStartAt("2025-06-01", "09:30 - 11:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if start.Hour() != 9 || start.Minute() != 30 {
		t.Fatalf("unexpected start: %s", start)
	}
	if end == nil {
		t.Fatal("expected end instant for range")
	}
	if end.Sub(start) != 2*time.Hour {
		t.Fatalf("expected 2h window, got %s", end.Sub(start))
	}
}

func TestParseStartAtRejectsGarbage(t *testing.T) {
	cases := []struct{ date, timeRange string }{
		{"2025-06-01", "quarter past nine"},
		{"not-a-date", "09:30"},
		{"2025-06-01", "09:30 - soon"},
		{"2025-06-01", "11:30 - 09:30"},
	}
	for _, tc := range cases {
		if _, _, err := ParseStartAt(tc.date, tc.timeRange); !errors.Is(err, ErrBadTimeRange) {
			t.Fatalf("expected ErrBadTimeRange for %q %q, got: %v", tc.date, tc.timeRange, err)
		}
	}
}

// Package exams supplies the built-in exam schedule. The list is
// created once at startup and treated as read-only everywhere else.
package exams

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"examdeck/internal/model"
)

var ErrBadTimeRange = errors.New("exams: bad time range")

const (
	dateTimeLayout = "2006-01-02T15:04"
	clockLayout    = "15:04"
)

type seed struct {
	id        int64
	subject   string
	date      string
	timeRange string
	day       string
}

// The spring 2025 finals schedule the app ships with.
var schedule = []seed{
	{1, "Societal Issues", "2025-05-22", "01:15", "Thursday"},
	{2, "Computer Programming 1", "2025-05-24", "02:00", "Saturday"},
	{3, "Electromagnetic Mechanics", "2025-05-31", "02:00", "Saturday"},
	{4, "Probability and Statistics", "2025-06-01", "09:30", "Sunday"},
	{5, "Logic Design", "2025-06-17", "09:30", "Tuesday"},
	{6, "Applied Number Theory and Field Theory", "2025-06-19", "02:00", "Thursday"},
	{7, "Mathematics 2", "2025-06-21", "11:45", "Saturday"},
}

// Fixtures builds the built-in schedule. A seed that fails to parse is
// skipped and logged; it never aborts the rest of the list.
func Fixtures() []model.Exam {
	out := make([]model.Exam, 0, len(schedule))
	for _, s := range schedule {
		start, end, err := ParseStartAt(s.date, s.timeRange)
		if err != nil {
			log.Printf("exams: skipping %q: %v", s.subject, err)
			continue
		}
		out = append(out, model.Exam{
			ID:       s.id,
			Subject:  s.subject,
			StartAt:  start,
			EndAt:    end,
			Day:      s.day,
			ExamType: "Final",
			Duration: "2 hours",
		})
	}
	return out
}

// ParseStartAt turns a date plus a time-of-day value into the exam's
// start instant, interpreted in the local clock. The time may be a
// bare "HH:MM" or a range "HH:MM - HH:MM"; a range also yields the end
// instant.
func ParseStartAt(date, timeRange string) (time.Time, *time.Time, error) {
	startPart, endPart, isRange := strings.Cut(timeRange, " - ")
	startPart = strings.TrimSpace(startPart)

	start, err := time.ParseInLocation(dateTimeLayout, date+"T"+startPart, time.Local)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: %q %q: %v", ErrBadTimeRange, date, timeRange, err)
	}
	if !isRange {
		return start, nil, nil
	}

	endClock, err := time.ParseInLocation(clockLayout, strings.TrimSpace(endPart), time.Local)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: %q %q: %v", ErrBadTimeRange, date, timeRange, err)
	}
	end := time.Date(start.Year(), start.Month(), start.Day(), endClock.Hour(), endClock.Minute(), 0, 0, time.Local)
	if end.Before(start) {
		return time.Time{}, nil, fmt.Errorf("%w: end %q before start %q", ErrBadTimeRange, endPart, startPart)
	}
	return start, &end, nil
}

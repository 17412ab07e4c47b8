// Package clock holds pure exam-date arithmetic: everything is a
// function of an exam record and a caller-supplied "now".
package clock

import (
	"fmt"
	"time"

	"examdeck/internal/model"
)

// Remaining is the duration until the exam starts; negative once the
// exam has started or passed.
func Remaining(exam model.Exam, now time.Time) time.Duration {
	return exam.StartAt.Sub(now)
}

func IsUpcoming(exam model.Exam, now time.Time) bool {
	return Remaining(exam, now) > 0
}

// IsPast reports whether the exam start has passed. An exam starting
// exactly at now is neither upcoming nor past.
func IsPast(exam model.Exam, now time.Time) bool {
	return Remaining(exam, now) < 0
}

// DaysUntil is the remaining time in whole days, rounded up: 0.1 days
// and 0.9 days both report 1. Threshold firing relies on this
// discretization as much as the "N days remaining" label does.
func DaysUntil(exam model.Exam, now time.Time) int {
	return ceilUnits(Remaining(exam, now), 24*time.Hour)
}

func HoursUntil(exam model.Exam, now time.Time) int {
	return ceilUnits(Remaining(exam, now), time.Hour)
}

func MinutesUntil(exam model.Exam, now time.Time) int {
	return ceilUnits(Remaining(exam, now), time.Minute)
}

// NextExam picks the upcoming exam with the smallest StartAt. Ties are
// broken by input order. The second return is false when nothing is
// upcoming.
func NextExam(exams []model.Exam, now time.Time) (model.Exam, bool) {
	var next model.Exam
	found := false
	for _, exam := range exams {
		if !IsUpcoming(exam, now) {
			continue
		}
		if !found || exam.StartAt.Before(next.StartAt) {
			next = exam
			found = true
		}
	}
	return next, found
}

func UpcomingCount(exams []model.Exam, now time.Time) int {
	count := 0
	for _, exam := range exams {
		if IsUpcoming(exam, now) {
			count++
		}
	}
	return count
}

// Breakdown is a calendar-naive decomposition of a duration, for the
// countdown display.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Decompose splits a duration into whole days, hours, minutes and
// seconds. Negative durations decompose to all zeros: the timer shows
// 00:00:00:00 once the exam starts, never negative components.
func Decompose(d time.Duration) Breakdown {
	total := int(d / time.Second)
	if total < 0 {
		return Breakdown{}
	}
	return Breakdown{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// FormatBreakdown renders a breakdown as the countdown display string.
func FormatBreakdown(b Breakdown) string {
	return fmt.Sprintf("%02dd %02dh %02dm %02ds", b.Days, b.Hours, b.Minutes, b.Seconds)
}

// ceilUnits rounds a duration up to whole units. Truncation already
// rounds toward zero for non-positive values, which is the ceiling.
func ceilUnits(d, unit time.Duration) int {
	if d <= 0 {
		return int(d / unit)
	}
	return int((d + unit - 1) / unit)
}

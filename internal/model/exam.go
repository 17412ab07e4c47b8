package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidExamID = errors.New("model: invalid exam id")
	ErrInvalidWindow = errors.New("model: exam end before start")
)

// Exam is one scheduled exam. Records are immutable once loaded; the
// schedule is built at startup and replaced wholesale if it changes.
type Exam struct {
	ID       int64
	Subject  string
	StartAt  time.Time
	EndAt    *time.Time
	Day      string
	Location string
	ExamType string
	Duration string
}

func (e Exam) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidExamID, e.ID)
	}
	if strings.TrimSpace(e.Subject) == "" {
		return errors.New("model: exam subject is required")
	}
	if e.StartAt.IsZero() {
		return errors.New("model: exam start_at is required")
	}
	if e.EndAt != nil && e.EndAt.Before(e.StartAt) {
		return fmt.Errorf("%w: %s", ErrInvalidWindow, e.Subject)
	}
	return nil
}

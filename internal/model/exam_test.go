package model

import (
	"errors"
	"testing"
	"time"
)

func TestExamValidate(t *testing.T) {
	start := time.Date(2025, 5, 22, 1, 15, 0, 0, time.Local)
	end := start.Add(2 * time.Hour)

	exam := Exam{ID: 1, Subject: "Logic Design", StartAt: start, EndAt: &end}
	if err := exam.Validate(); err != nil {
		t.Fatalf("expected valid exam, got: %v", err)
	}
}

func TestExamValidateRejectsBadID(t *testing.T) {
	exam := Exam{ID: 0, Subject: "Logic Design", StartAt: time.Now()}
	if err := exam.Validate(); !errors.Is(err, ErrInvalidExamID) {
		t.Fatalf("expected ErrInvalidExamID, got: %v", err)
	}
}

func TestExamValidateRejectsEmptySubject(t *testing.T) {
	exam := Exam{ID: 1, Subject: "  ", StartAt: time.Now()}
	if err := exam.Validate(); err == nil {
		t.Fatal("expected error for empty subject")
	}
}

func TestExamValidateRejectsMissingStart(t *testing.T) {
	exam := Exam{ID: 1, Subject: "Math"}
	if err := exam.Validate(); err == nil {
		t.Fatal("expected error for zero start_at")
	}
}

func TestExamValidateRejectsEndBeforeStart(t *testing.T) {
	start := time.Date(2025, 5, 22, 9, 30, 0, 0, time.Local)
	end := start.Add(-time.Hour)
	exam := Exam{ID: 1, Subject: "Math", StartAt: start, EndAt: &end}
	if err := exam.Validate(); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got: %v", err)
	}
}

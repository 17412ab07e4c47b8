package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"examdeck/internal/clock"
	"examdeck/internal/model"
)

func (m Model) handleScheduleKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Schedule.Cursor > 0 {
			m.Schedule.Cursor--
		}
		m.syncSelectedExamToCursor()
	case "down", "j":
		if m.Schedule.Cursor < len(m.Exams)-1 {
			m.Schedule.Cursor++
		}
		m.syncSelectedExamToCursor()
	}
	return m
}

func (m *Model) syncSelectedExamToCursor() {
	if exam, ok := m.currentExam(); ok {
		m.SelectedExamID = exam.ID
	}
}

func (m Model) currentExam() (model.Exam, bool) {
	if len(m.Exams) == 0 {
		return model.Exam{}, false
	}
	if m.Schedule.Cursor < 0 || m.Schedule.Cursor >= len(m.Exams) {
		return model.Exam{}, false
	}
	return m.Exams[m.Schedule.Cursor], true
}

func examStatus(exam model.Exam, now time.Time) string {
	switch {
	case clock.IsPast(exam, now):
		return "past"
	case clock.IsUpcoming(exam, now):
		return "upcoming"
	default:
		return "now"
	}
}

func remainingLabel(exam model.Exam, now time.Time) string {
	if clock.IsPast(exam, now) {
		return "finished"
	}
	if !clock.IsUpcoming(exam, now) {
		return "starting now"
	}
	days := clock.DaysUntil(exam, now)
	if days == 1 {
		return "tomorrow"
	}
	return fmt.Sprintf("%d days remaining", days)
}

func examTimeLabel(exam model.Exam) string {
	label := exam.StartAt.Format("15:04")
	if exam.EndAt != nil {
		label += " - " + exam.EndAt.Format("15:04")
	}
	return label
}

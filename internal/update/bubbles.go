package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"

	"examdeck/internal/views"
)

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "Subject", Width: 22},
		{Title: "Day", Width: 10},
		{Title: "Date", Width: 11},
		{Title: "Time", Width: 13},
		{Title: "Status", Width: 10},
	}
	m.scheduleTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(9))

	m.countdownProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
	m.metaViewport = viewport.New(54, 10)
}

func (m *Model) syncBubbleData() {
	now := m.now()

	rows := make([]table.Row, 0, len(m.Exams))
	for _, exam := range m.Exams {
		rows = append(rows, table.Row{
			exam.Subject,
			exam.Day,
			exam.StartAt.Format("2006-01-02"),
			examTimeLabel(exam),
			strings.ToUpper(examStatus(exam, now)),
		})
	}
	m.scheduleTable.SetRows(rows)
	if len(rows) > 0 && m.Schedule.Cursor < len(rows) {
		m.scheduleTable.SetCursor(m.Schedule.Cursor)
	}

	if exam, ok := m.currentExam(); ok {
		md := fmt.Sprintf("# %s\n\n- **Day:** %s\n- **Date:** %s\n- **Time:** %s\n- **Location:** %s\n- **Type:** %s\n- **Duration:** %s\n\n%s",
			exam.Subject,
			exam.Day,
			exam.StartAt.Format("2006-01-02"),
			examTimeLabel(exam),
			exam.Location,
			exam.ExamType,
			exam.Duration,
			remainingLabel(exam, now),
		)
		m.metaViewport.SetContent(views.RenderMarkdown(md))
	} else {
		m.metaViewport.SetContent(views.RenderMarkdown("_No exam selected_"))
	}
}

package update

import (
	"strconv"
	"strings"
	"time"

	"examdeck/internal/clock"
	"examdeck/internal/views"
)

func (m Model) renderScheduleView() string {
	now := m.now()
	items := make([]views.ScheduleItemData, 0, len(m.Exams))
	for _, exam := range m.Exams {
		items = append(items, views.ScheduleItemData{
			ID:             strconv.FormatInt(exam.ID, 10),
			Subject:        exam.Subject,
			Day:            exam.Day,
			Date:           exam.StartAt.Format("2006-01-02"),
			Time:           examTimeLabel(exam),
			Status:         examStatus(exam, now),
			RemainingLabel: remainingLabel(exam, now),
		})
	}
	return views.RenderSchedulePanel(views.SchedulePanelData{
		TableView:     m.scheduleTable.View(),
		Items:         items,
		SelectedID:    strconv.FormatInt(m.SelectedExamID, 10),
		UpcomingCount: clock.UpcomingCount(m.Exams, now),
		TotalCount:    len(m.Exams),
	})
}

func (m Model) renderCountdownView() string {
	return views.RenderCountdownPanel(views.CountdownPanelData{
		HasNext:      m.Countdown.HasNext,
		Subject:      m.Countdown.Subject,
		When:         m.Countdown.When,
		Remaining:    clock.FormatBreakdown(m.Countdown.Remaining),
		ProgressView: m.countdownProgress.ViewAs(m.Countdown.Pct),
		ProgressPct:  int(m.Countdown.Pct * 100),
	})
}

func (m Model) renderSettingsView() string {
	rows := settingRows()
	data := make([]views.SettingRowData, 0, len(rows))
	for _, row := range rows {
		data = append(data, views.SettingRowData{Label: row.label, On: row.value(m.Settings)})
	}
	active := m.Scheduler != nil && m.Scheduler.Running()
	return views.RenderSettingsPanel(views.SettingsPanelData{
		Rows:   data,
		Cursor: m.SettingsCursor,
		Active: active,
	})
}

func (m Model) renderExamMetadataPane() string {
	exam, ok := m.currentExam()
	if !ok {
		return "metadata:\n(no selection)"
	}
	return views.RenderExamMetadataPane(views.ExamMetadataData{
		SelectedID:       strconv.FormatInt(exam.ID, 10),
		Subject:          exam.Subject,
		ExamType:         exam.ExamType,
		Duration:         exam.Duration,
		MarkdownMetaView: m.metaViewport.View(),
	})
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string, silent bool) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title:  title,
		Body:   body,
		Level:  level,
		Silent: silent,
		At:     time.Now(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	// Best effort: the scheduler never observes sink failures.
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}

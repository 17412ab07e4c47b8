package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"examdeck/internal/model"
	"examdeck/internal/storage"
)

type settingRow struct {
	label  string
	value  func(model.ReminderSettings) bool
	toggle func(*model.ReminderSettings)
}

func settingRows() []settingRow {
	return []settingRow{
		{
			label:  "reminders enabled",
			value:  func(s model.ReminderSettings) bool { return s.Enabled },
			toggle: func(s *model.ReminderSettings) { s.Enabled = !s.Enabled },
		},
		{
			label:  "3 days before",
			value:  func(s model.ReminderSettings) bool { return s.ThreeDaysBefore },
			toggle: func(s *model.ReminderSettings) { s.ThreeDaysBefore = !s.ThreeDaysBefore },
		},
		{
			label:  "1 day before",
			value:  func(s model.ReminderSettings) bool { return s.OneDayBefore },
			toggle: func(s *model.ReminderSettings) { s.OneDayBefore = !s.OneDayBefore },
		},
		{
			label:  "1 hour before",
			value:  func(s model.ReminderSettings) bool { return s.OneHourBefore },
			toggle: func(s *model.ReminderSettings) { s.OneHourBefore = !s.OneHourBefore },
		},
		{
			label:  "30 minutes before",
			value:  func(s model.ReminderSettings) bool { return s.ThirtyMinutesBefore },
			toggle: func(s *model.ReminderSettings) { s.ThirtyMinutesBefore = !s.ThirtyMinutesBefore },
		},
		{
			label:  "notification sound",
			value:  func(s model.ReminderSettings) bool { return s.Sound },
			toggle: func(s *model.ReminderSettings) { s.Sound = !s.Sound },
		},
	}
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) Model {
	rows := settingRows()
	switch msg.String() {
	case "up", "k":
		if m.SettingsCursor > 0 {
			m.SettingsCursor--
		}
	case "down", "j":
		if m.SettingsCursor < len(rows)-1 {
			m.SettingsCursor++
		}
	case " ", "enter":
		m.toggleSettingAtCursor()
	}
	return m
}

func (m *Model) toggleSettingAtCursor() {
	rows := settingRows()
	if m.SettingsCursor < 0 || m.SettingsCursor >= len(rows) {
		return
	}
	row := rows[m.SettingsCursor]

	prev := m.Settings
	next := m.Settings
	row.toggle(&next)

	// Permission gate: enabling reminders requires an available
	// notification sink. A denied gate leaves everything unchanged.
	if next.Enabled && !prev.Enabled {
		if m.notifier == nil || !m.notifier.Available() {
			m.Status = StatusBar{Text: "notifications unavailable on this system; reminders stay off", IsError: true}
			return
		}
	}

	m.Settings = next
	m.applySettingsChange(prev)
}

// applySettingsChange pushes the new settings to the scheduler,
// mapping the enabled flag to scheduler start/stop, and persists them.
// In-memory settings stay authoritative when the write fails.
func (m *Model) applySettingsChange(prev model.ReminderSettings) {
	if m.Scheduler != nil {
		m.Scheduler.UpdateSettings(m.Settings)
		if m.Settings.Enabled && !prev.Enabled {
			m.Scheduler.Start()
		}
		if !m.Settings.Enabled && prev.Enabled {
			m.Scheduler.Stop()
		}
	}

	if err := storage.SaveSettings(context.Background(), m.store, m.Settings); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("settings not persisted: %v", err), IsError: true}
		return
	}
	m.Status = StatusBar{Text: "settings saved", IsError: false}
}

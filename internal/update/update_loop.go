package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"examdeck/internal/scheduler"
	"examdeck/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{countdownTickCmd()}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForReminderCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.String() {
		case m.Keys.Schedule:
			m.CurrentView = ViewSchedule
			return m, nil
		case m.Keys.Countdown:
			m.CurrentView = ViewCountdown
			return m, nil
		case m.Keys.Settings:
			m.CurrentView = ViewSettings
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			if m.Scheduler != nil {
				m.Scheduler.Stop()
			}
			return m, tea.Quit
		}
		if m.CurrentView == ViewSchedule {
			m = m.handleScheduleKey(typed)
			return m, nil
		}
		if m.CurrentView == ViewSettings {
			m = m.handleSettingsKey(typed)
			return m, nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("examdeck", typed.Err.Error(), levelFromError(true), true)
		}
		return m, nil
	case CountdownTickMsg:
		m.refreshCountdown(m.now())
		return m, countdownTickCmd()
	case ReminderDueMsg:
		m.ReminderLog = append(m.ReminderLog, typed.Event)
		if len(m.ReminderLog) > 20 {
			m.ReminderLog = m.ReminderLog[len(m.ReminderLog)-20:]
		}
		m.notify(typed.Event.Title, typed.Event.Body, "info", typed.Event.Silent)
		m.Status = StatusBar{Text: typed.Event.Body, IsError: false}
		if m.Scheduler != nil {
			return m, waitForReminderCmd(m.Scheduler.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		status = fmt.Sprintf("status: %s", m.Status.Text)
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewSchedule:
		leftPane = m.renderScheduleView()
		rightPane = m.renderExamMetadataPane() + m.renderHelpIfVisible()
	case ViewCountdown:
		leftPane = m.renderCountdownView()
		rightPane = m.renderExamMetadataPane() + m.renderHelpIfVisible()
	case ViewSettings:
		leftPane = m.renderSettingsView()
		rightPane = m.renderHelpIfVisible()
	}

	notificationView := ""
	if len(m.ReminderLog) > 0 {
		last := m.ReminderLog[len(m.ReminderLog)-1]
		notificationView = fmt.Sprintf("last-reminder: %s (%s)", last.Body, last.Exam.StartAt.Format("2006-01-02 15:04"))
	}
	if n := m.renderNotificationsView(); n != "" {
		notificationView += n
	}

	header := fmt.Sprintf("examdeck | view: %s", m.CurrentView)
	if m.Countdown.HasNext {
		header += fmt.Sprintf(" | next: %s", m.Countdown.Subject)
	}

	return views.RenderApp(views.AppData{
		Header:       header,
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusIsErr:  m.Status.IsError,
		Notification: notificationView,
		Footer:       fmt.Sprintf("keys: %s schedule | %s countdown | %s settings | %s help | %s quit", m.Keys.Schedule, m.Keys.Countdown, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewSchedule, ViewCountdown, ViewSettings:
		return true
	default:
		return false
	}
}

func countdownTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return CountdownTickMsg{} })
}

func waitForReminderCmd(ch <-chan scheduler.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}

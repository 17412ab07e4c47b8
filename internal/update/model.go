package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"

	"examdeck/internal/clock"
	"examdeck/internal/model"
	"examdeck/internal/scheduler"
	"examdeck/internal/storage"
)

type View string

const (
	ViewSchedule  View = "Schedule"
	ViewCountdown View = "Countdown"
	ViewSettings  View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Schedule  string
	Countdown string
	Settings  string
	Help      string
	Quit      string
}

type ScheduleState struct {
	Cursor int
}

type CountdownState struct {
	HasNext   bool
	Subject   string
	When      string
	Remaining clock.Breakdown
	Pct       float64
}

type Model struct {
	CurrentView    View
	Exams          []model.Exam
	Settings       model.ReminderSettings
	Schedule       ScheduleState
	Countdown      CountdownState
	SettingsCursor int
	SelectedExamID int64
	Scheduler      *scheduler.Scheduler
	ReminderLog    []scheduler.Event
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	store          storage.Store
	Status         StatusBar
	Keys           GlobalKeyMap
	HelpVisible    bool
	Quitting       bool
	LastError      error
	now            func() time.Time
	// Bubble components used for rich TUI controls
	scheduleTable     table.Model
	countdownProgress progress.Model
	helpModel         help.Model
	metaViewport      viewport.Model
}

type Notification struct {
	Title  string
	Body   string
	Level  string
	Silent bool
	At     time.Time
}

// DesktopNotifier is the notification sink. Available acts as the
// permission gate: reminders cannot be enabled while it reports false.
type DesktopNotifier interface {
	Send(Notification) error
	Available() bool
}

// NoopDesktopNotifier keeps notifications in-app only; the in-app log
// is always available.
type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }
func (NoopDesktopNotifier) Available() bool         { return true }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", notifySendArgs(n)...).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		if !n.Silent {
			script += ` sound name "default"`
		}
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// notifySendArgs shapes the notify-send invocation; a silent
// notification suppresses the notification sound.
func notifySendArgs(n Notification) []string {
	args := make([]string, 0, 3)
	if n.Silent {
		args = append(args, "--hint=int:suppress-sound:1")
	}
	return append(args, n.Title, n.Body)
}

func (ExecDesktopNotifier) Available() bool {
	switch runtime.GOOS {
	case "linux":
		_, err := exec.LookPath("notify-send")
		return err == nil
	case "darwin":
		_, err := exec.LookPath("osascript")
		return err == nil
	default:
		return false
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type CountdownTickMsg struct{}

type ReminderDueMsg struct {
	Event scheduler.Event
}

func NewModel(exams []model.Exam, settings model.ReminderSettings) Model {
	m := Model{
		CurrentView: ViewSchedule,
		Exams:       exams,
		Settings:    settings,
		store:       storage.NewMemoryStore(),
		notifier:    NoopDesktopNotifier{},
		now:         time.Now,
		Keys: GlobalKeyMap{
			Schedule:  "1",
			Countdown: "2",
			Settings:  "3",
			Help:      "?",
			Quit:      "q",
		},
	}
	m.initBubbleComponents()
	m.syncSelectedExamToCursor()
	m.refreshCountdown(m.now())
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(exams []model.Exam, settings model.ReminderSettings, sched *scheduler.Scheduler, store storage.Store, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel(exams, settings)
	m.Scheduler = sched
	m.DesktopEnabled = cfg.DesktopNotifications
	if store != nil {
		m.store = store
	}
	if notifier != nil {
		m.notifier = notifier
	}
	return m
}

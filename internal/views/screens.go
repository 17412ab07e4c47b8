package views

import (
	"fmt"
	"strings"
)

type ScheduleItemData struct {
	ID             string
	Subject        string
	Day            string
	Date           string
	Time           string
	Status         string // upcoming | past | now
	RemainingLabel string
}

type SchedulePanelData struct {
	TableView     string
	Items         []ScheduleItemData
	SelectedID    string
	UpcomingCount int
	TotalCount    int
}

type CountdownPanelData struct {
	HasNext      bool
	Subject      string
	When         string
	Remaining    string
	ProgressView string
	ProgressPct  int
}

type SettingRowData struct {
	Label string
	On    bool
}

type SettingsPanelData struct {
	Rows   []SettingRowData
	Cursor int
	Active bool // scheduler currently running
}

type ExamMetadataData struct {
	SelectedID       string
	Subject          string
	ExamType         string
	Duration         string
	MarkdownMetaView string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderSchedulePanel(data SchedulePanelData) string {
	var b strings.Builder
	b.WriteString("schedule:\n")
	b.WriteString(fmt.Sprintf("remaining: %d of %d exams\n", data.UpcomingCount, data.TotalCount))
	b.WriteString("actions: [j/k]move [1]schedule [2]countdown [3]settings\n")
	b.WriteString(data.TableView + "\n")
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, statusBadge(item.Status), item.Subject))
		b.WriteString(fmt.Sprintf(" | %s %s %s", item.Day, item.Date, item.Time))
		if item.RemainingLabel != "" {
			b.WriteString(" | " + item.RemainingLabel)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCountdownPanel(data CountdownPanelData) string {
	var b strings.Builder
	b.WriteString("countdown:\n")
	if !data.HasNext {
		b.WriteString("(no upcoming exams)")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("next exam: %s\n", data.Subject))
	b.WriteString(fmt.Sprintf("when: %s\n", data.When))
	b.WriteString(fmt.Sprintf("remaining: %s\n", data.Remaining))
	b.WriteString(fmt.Sprintf("progress: %s %d%%", data.ProgressView, data.ProgressPct))
	return b.String()
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("reminder settings:\n")
	if data.Active {
		b.WriteString("scheduler: running\n")
	} else {
		b.WriteString("scheduler: stopped\n")
	}
	b.WriteString("actions: [j/k]move [space]toggle\n")
	for i, row := range data.Rows {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, onOff(row.On), row.Label))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderExamMetadataPane(data ExamMetadataData) string {
	if strings.TrimSpace(data.SelectedID) == "" {
		return "metadata:\n(no selection)"
	}
	return fmt.Sprintf("metadata:\nid: %s\nsubject: %s\ntype: %s\nduration: %s\n\ndetails:\n%s",
		data.SelectedID,
		data.Subject,
		data.ExamType,
		data.Duration,
		data.MarkdownMetaView,
	)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func statusBadge(status string) string {
	switch status {
	case "past":
		return "[PAST]"
	case "now":
		return "[NOW]"
	default:
		return "[UPCOMING]"
	}
}

func onOff(v bool) string {
	if v {
		return "[on] "
	}
	return "[off]"
}

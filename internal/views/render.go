// Package views renders the TUI frame and the per-view panels as
// plain strings; all interactive state lives in the update package.
package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	StatusLine   string
	StatusIsErr  bool
	Notification string
	Footer       string
}

const paneWidth = 58

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	paneStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(paneWidth)
	okStatusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStatusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	notificationStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1).Foreground(lipgloss.Color("11"))
	footerStyle       = lipgloss.NewStyle().Faint(true)
)

// RenderApp assembles the full frame: header, two side-by-side panes,
// status line, optional notification strip, footer.
func RenderApp(data AppData) string {
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(data.LeftPane),
		paneStyle.Render(data.RightPane),
	)

	status := okStatusStyle.Render(data.StatusLine)
	if data.StatusIsErr {
		status = errStatusStyle.Render(data.StatusLine)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(data.Header))
	b.WriteString("\n")
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(status)
	if data.Notification != "" {
		b.WriteString("\n")
		b.WriteString(notificationStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(data.Footer))
	}
	return b.String()
}

// RenderMarkdown renders exam detail markdown for the metadata
// viewport, falling back to the raw text if glamour chokes on it.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

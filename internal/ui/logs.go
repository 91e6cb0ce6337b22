package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/thru/internal/logtail"
)

// updateLogViewport sizes the log viewport and re-renders its entries.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	follow := m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0

	m.logViewport.Width = max(m.width-4, 0)
	m.logViewport.Height = max(m.contentHeight()-2, 0)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent())

	if follow {
		m.logViewport.GotoBottom()
	}
}

// renderLogs renders the log pane.
func (m Model) renderLogs() string {
	title := "Log"
	if m.logFile != "" {
		title = "Log · " + m.logFile
	}
	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.contentHeight(), true)
}

// renderLogContent colors each entry by level.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	if len(m.logEntries) == 0 {
		if m.logFile == "" {
			return bg.Render("Logging to file is disabled", styles.MutedText)
		}
		return bg.Render("No log entries yet", styles.MutedText)
	}

	lines := make([]string, 0, len(m.logEntries))
	for _, e := range m.logEntries {
		if e.Level == "" && e.Message == "" {
			lines = append(lines, bg.Render(e.Raw, styles.FaintText))
			continue
		}
		var parts []string
		if !e.Time.IsZero() {
			parts = append(parts, bg.Render(e.Time.Format("15:04:05"), styles.FaintText))
		}
		parts = append(parts, bg.Render(padRight(e.Level, 5), levelStyle(e.Level, styles)))
		if e.Component != "" {
			parts = append(parts, bg.Render("["+e.Component+"]", styles.AccentText))
		}
		parts = append(parts, bg.Render(e.Message, styles.Text))
		for _, a := range e.Attrs {
			parts = append(parts, bg.Render(a.Key+"=", styles.MutedText)+bg.Render(a.Value, styles.InfoText))
		}
		lines = append(lines, bg.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "ERROR":
		return styles.DangerText
	case "WARN":
		return styles.WarningText.Bold(true)
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.SuccessText
	}
}

// handleLogsKey processes keys while the log pane is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleLogs), key.Matches(msg, m.keys.Escape):
		m.showLogs = false
		m.logGen++
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// warnCount returns how many loaded entries are warnings or worse.
func (m Model) warnCount() int {
	return len(logtail.AtLeast(m.logEntries, "WARN")) - m.unleveled()
}

func (m Model) unleveled() int {
	n := 0
	for _, e := range m.logEntries {
		if e.Level == "" {
			n++
		}
	}
	return n
}

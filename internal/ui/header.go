package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/thru/internal/state"
)

const tagline = "Your GPS Just Died. Good."

// renderHeader renders the logo, tagline and catalog counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	parts := []string{bg.Render("thru", styles.Logo)}
	if !compact {
		parts = append(parts, bg.Render(tagline, styles.MutedText.Italic(true)))
	}

	parts = append(parts,
		bg.Render(fmt.Sprintf("%d", m.trails.Len()), styles.AccentText.Bold(true))+bg.Space()+
			bg.Render("Epic Trails", styles.MutedText)+
			sep+bg.Render("•", styles.FaintText)+sep+
			bg.Render(fmt.Sprintf("%d", m.trails.Countries()), styles.AccentText.Bold(true))+bg.Space()+
			bg.Render("Countries", styles.MutedText),
	)

	parts = append(parts,
		bg.Render("View:", styles.MutedText)+bg.Space()+bg.Render(m.sel.ViewMode.String(), styles.Text))

	if m.sel.HasSelection() {
		name := m.sel.Selected
		if compact {
			name = truncate(name, 24)
		}
		parts = append(parts,
			bg.Render("◉", styles.SelectedMarker)+bg.Space()+bg.Render(name, styles.Text.Bold(true)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.filtering:
		commands = []cmd{
			{"enter", "Apply"},
			{"esc", "Cancel"},
		}
	case m.showLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"L", "Close"},
			{"?", "More"},
		}
	case m.sel.ViewMode == state.ViewGrid:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Select"},
			{"m", "Learn more"},
			{"/", "Filter"},
			{"v", "Map"},
			{"esc", "Clear"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Select"},
			{"m", "Learn more"},
			{"+/-", "Zoom"},
			{"←/→", "Pan"},
			{"t", labelToggle(m.labels)},
			{"f", "Fullscreen"},
			{"r", "Reset"},
			{"v", "Grid"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if m.query != "" && !m.filtering {
		segments = append(segments, bg.Render("/"+truncate(m.query, 18), styles.AccentText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

func labelToggle(on bool) string {
	if on {
		return "Hide labels"
	}
	return "Labels"
}

// renderStatusLine renders the line under the content: the selected
// trail's popup on the map, the filter input in the grid.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string
	switch {
	case m.filtering:
		parts = append(parts, m.filter.View())
	case m.showLogs:
		parts = append(parts, bg.Render(fmt.Sprintf("%d entries", len(m.logEntries)), styles.MutedText))
		if warn := m.warnCount(); warn > 0 {
			parts = append(parts, bg.Render(fmt.Sprintf("%d warnings", warn), styles.WarningText))
		}
		if m.logErr != nil {
			parts = append(parts, bg.Render(truncate(m.logErr.Error(), 60), styles.DangerText))
		}
	default:
		if popup := m.popupText(); popup != "" {
			parts = append(parts, bg.Render("◉", styles.SelectedMarker)+bg.Space()+bg.Render(popup, styles.Text))
		} else if m.sel.ViewMode == state.ViewMap {
			parts = append(parts, bg.Render("Select a trail to preview it", styles.FaintText))
		} else {
			parts = append(parts, bg.Render(fmt.Sprintf("%d trails", len(m.visibleTrails())), styles.MutedText))
		}
		if m.notice != "" {
			noticeStyle := styles.InfoText
			if m.surface != nil && m.surface.Overlays().Err() != nil {
				noticeStyle = styles.WarningText
			}
			parts = append(parts, bg.Render(m.notice, noticeStyle))
		}
		if m.sel.ViewMode == state.ViewMap && m.width >= LayoutCompactWidth {
			if credit := m.mapCredit(); credit != "" {
				parts = append(parts, bg.Render(credit, styles.FaintText))
			}
		}
	}

	line := strings.Join(parts, sep)
	return styles.Header.Width(m.width).MaxHeight(1).Render(line)
}

// popupText is the one-line preview of the selected trail.
func (m Model) popupText() string {
	if !m.sel.HasSelection() {
		return ""
	}
	t, ok := m.trails.ByName(m.sel.Selected)
	if !ok {
		return ""
	}
	limit := max(m.width/2, 20)
	return truncate(joinNonEmpty(" · ",
		t.Name,
		joinNonEmpty(", ", t.Subtitle, t.Country),
		t.Distance,
		t.EstimatedDuration,
		t.Landscape,
	), limit)
}

// mapCredit is the attribution plus the tile under the map center.
func (m Model) mapCredit() string {
	if m.surface == nil {
		return m.attribution
	}
	return joinNonEmpty("  ", m.attribution, truncate(m.surface.TileURL(), 60))
}

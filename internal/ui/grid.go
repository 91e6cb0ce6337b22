package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/thru/internal/catalog"
)

// gridColumns returns how many cards fit side by side.
func (m Model) gridColumns() int {
	return max((m.width-2)/(CardWidth+1), 1)
}

// renderGrid renders the "Discover Epic Trails" card grid.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	h := m.contentHeight()

	heading := styles.Text.Bold(true).Render("Discover Epic Trails")
	if m.query != "" {
		heading += styles.MutedText.Render(fmt.Sprintf("  matching %q", m.query))
	}

	trails := m.visibleTrails()
	if len(trails) == 0 {
		empty := styles.MutedText.Render("No trails match the filter")
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, heading+"\n\n"+empty)
	}

	cols := m.gridColumns()
	cursor := clampIndex(m.cursor, len(trails))
	visibleRows := max((h-2)/CardHeight, 1)
	cursorRow := cursor / cols
	firstRow := 0
	if cursorRow >= visibleRows {
		firstRow = cursorRow - visibleRows + 1
	}

	var rows []string
	for r := firstRow; r < firstRow+visibleRows; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(trails) {
				break
			}
			cards = append(cards, m.renderCard(catalog.Summarize(trails[i]), i == cursor))
		}
		if len(cards) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	body := heading + "\n\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Width(m.width).
		Height(h).
		MaxHeight(h).
		Padding(0, 1).
		Render(body)
}

// renderCard renders one trail card.
func (m Model) renderCard(s catalog.CardSummary, focused bool) string {
	bgColor := m.theme.SurfaceAlt
	border := m.theme.Border
	if focused {
		bgColor = m.theme.FocusBg
		border = m.theme.BorderFocus
	}
	if m.sel.IsSelected(s.Name) {
		border = m.theme.Selected
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	inner := CardWidth - 4

	name := truncate(s.Name, inner-lipgloss.Width(s.Duration)-1)
	top := bg.Render(name, styles.Text.Bold(true))
	if gap := inner - lipgloss.Width(name) - lipgloss.Width(s.Duration); gap > 0 {
		top += bg.Spaces(gap) + bg.Render(s.Duration, styles.InfoText)
	}

	lines := []string{
		top,
		bg.Render(truncate(joinNonEmpty(" · ", s.Subtitle, s.Country), inner), styles.MutedText),
		bg.Render(truncate(s.Landscape, inner), styles.FaintText),
		bg.Render("Distance", styles.MutedText) + bg.Spaces(2) + bg.Render(s.Distance, styles.Text),
		m.starRow(bg, styles, "Physical", s.Physical),
		m.starRow(bg, styles, "Adventure", s.Adventure),
		m.starRow(bg, styles, "Scenery", s.Scenery),
		bg.Render("Budget", styles.MutedText) + bg.Spaces(4) +
			bg.Render(truncate(s.Budget, inner-18), styles.BudgetStyle(s.BudgetCategory)) + bg.Space() +
			bg.Render("("+s.BudgetCategory.String()+")", styles.FaintText),
	}
	footer := bg.Render("enter select · m learn more", styles.FaintText)
	if s.HasRoute {
		footer += bg.Spaces(2) + bg.Render("route", styles.Track)
	}
	lines = append(lines, footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Width(CardWidth - 2).
		MarginRight(1).
		Render(strings.Join(lines, "\n"))
}

// starRow renders a labelled rating row.
func (m Model) starRow(bg BgStyle, styles Styles, label string, filled int) string {
	filled = max(min(filled, catalog.MaxStars), 0)
	return bg.Render(padRight(label, 10), styles.MutedText) +
		bg.Render(strings.Repeat("★", filled), styles.WarningText) +
		bg.Render(strings.Repeat("☆", catalog.MaxStars-filled), styles.FaintText)
}

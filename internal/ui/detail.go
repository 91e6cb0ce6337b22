package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/thru/internal/catalog"
)

// detailSize returns the inner size of the detail modal.
func (m Model) detailSize() (int, int) {
	w := min(m.width-8, 78)
	h := m.height - 6
	return max(w, 20), max(h, 5)
}

// updateDetailViewport refreshes the modal content for the selected trail.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	w, h := m.detailSize()
	m.detailViewport.Width = w
	m.detailViewport.Height = h - 2
	if !m.sel.DetailOpen {
		return
	}
	t, ok := m.trails.ByName(m.sel.Selected)
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.detailContent(t, w))
	m.detailViewport.GotoTop()
}

// renderDetail renders the detail modal centered over the screen.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	w, _ := m.detailSize()

	hint := styles.FaintText.Render("esc close · j/k scroll")
	if pct := m.detailViewport.ScrollPercent(); m.detailViewport.TotalLineCount() > m.detailViewport.Height {
		hint += styles.FaintText.Render(fmt.Sprintf(" · %d%%", int(pct*100)))
	}
	body := m.detailViewport.View() + "\n\n" + hint

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 2).
		Width(w + 4)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(body),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// detailContent renders every attribute of a trail.
func (m Model) detailContent(t catalog.Trail, width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Logo.Render(t.Name))
	if t.Subtitle != "" {
		b.WriteString(styles.MutedText.Render("  " + t.Subtitle))
	}
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render(joinNonEmpty(" · ", t.Country, t.Specificity)))
	b.WriteString("\n")
	if t.Landscape != "" {
		b.WriteString(styles.FaintText.Render(t.Landscape))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	bg := NewBgStyle(m.theme.Background)
	plain := styles.WithBackground(m.theme.Background)
	b.WriteString(m.starRow(bg, plain, "Physical", catalog.Stars(t.PhysicalDifficulty)))
	b.WriteString("\n")
	b.WriteString(m.starRow(bg, plain, "Adventure", catalog.Stars(t.AdventureDifficulty)))
	b.WriteString("\n")
	b.WriteString(m.starRow(bg, plain, "Scenery", catalog.Stars(t.SceneryRating)))
	b.WriteString("\n\n")

	cards := []struct{ label, value string }{
		{"Best Time", t.IdealWindow},
		{"Highest Point", catalog.ShortHighestPoint(t.HighestPoint)},
		{"Monthly Budget", t.Budget},
		{"Distance", t.Distance},
		{"Duration", t.EstimatedDuration},
	}
	cardWidth := max((width-2)/2, 18)
	var cells []string
	for i, c := range cards {
		valueStyle := styles.Text.Bold(true)
		if c.label == "Monthly Budget" {
			valueStyle = styles.BudgetStyle(catalog.CategoryForBudget(t.BudgetLevel))
		}
		cell := lipgloss.NewStyle().Width(cardWidth).Render(
			styles.MutedText.Render(c.label) + "\n" + valueStyle.Render(truncate(orDash(c.value), cardWidth-1)))
		cells = append(cells, cell)
		if len(cells) == 2 || i == len(cards)-1 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			b.WriteString("\n")
			cells = cells[:0]
		}
	}
	b.WriteString("\n")

	b.WriteString(m.scaleBar("Social", t.Social, t.SocialScale, "Solitary", "Very social", width))
	b.WriteString("\n")
	b.WriteString(m.scaleBar("Wilderness", "", t.WildernessScale, "Civilized", "Remote", width))
	b.WriteString("\n\n")

	m.writeList(&b, "Dangers", t.Dangers, styles.DangerText)
	m.writeList(&b, "Regions", t.RegionsTraversed, styles.InfoText)
	m.writeParagraph(&b, "Why", t.Why, width)
	m.writeParagraph(&b, "Terrain", t.Terrain, width)
	if t.HighestPoint != "" {
		m.writeParagraph(&b, "Highest Point", t.HighestPoint, width)
	}
	if t.HasRoute() {
		m.writeParagraph(&b, "Route", t.RouteURL, width)
	}

	return strings.TrimRight(b.String(), "\n")
}

// scaleBar renders a 1-5 scale as a marker on a bar.
func (m Model) scaleBar(label, caption string, value int, low, high string, width int) string {
	styles := m.theme.Styles()
	barWidth := max(min(width-26, 30), 10)
	pos := catalog.ScalePercent(value) * (barWidth - 1) / 100

	bar := styles.FaintText.Render(strings.Repeat("─", pos)) +
		styles.AccentText.Bold(true).Render("●") +
		styles.FaintText.Render(strings.Repeat("─", barWidth-pos-1))

	line := styles.MutedText.Render(padRight(label, 11)) +
		styles.FaintText.Render(low+" ") + bar + styles.FaintText.Render(" "+high)
	if caption != "" {
		line += "\n" + styles.MutedText.Render(strings.Repeat(" ", 11)) + styles.Text.Render(caption)
	}
	return line
}

func (m Model) writeList(b *strings.Builder, title string, items []string, style lipgloss.Style) {
	if len(items) == 0 {
		return
	}
	styles := m.theme.Styles()
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(style.Render("  • "))
		b.WriteString(styles.Text.Render(item))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m Model) writeParagraph(b *strings.Builder, title, text string, width int) {
	if strings.TrimSpace(text) == "" {
		return
	}
	styles := m.theme.Styles()
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")
	wrapped := wordwrap.String(strings.Join(strings.Fields(text), " "), max(width-2, 1))
	for _, line := range strings.Split(wrapped, "\n") {
		b.WriteString(styles.Text.Render("  " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

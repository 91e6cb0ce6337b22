package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/thru/internal/mapview"
	"github.com/five82/thru/internal/route"
)

// mapPaneSize returns the outer size of the map box. The trail list takes
// the remaining width when there is room for both, unless the map is
// fullscreen.
func (m Model) mapPaneSize() (int, int) {
	if m.fullscreen {
		return m.width, max(m.height-1, 0)
	}
	h := m.contentHeight()
	if m.width-LayoutSideListWidth < LayoutMinMapWidth {
		return m.width, h
	}
	return m.width - LayoutSideListWidth, h
}

// renderMap renders the map pane and the trail list beside it.
func (m Model) renderMap() string {
	mapW, h := m.mapPaneSize()
	title := "Map"
	if m.surface != nil {
		view := m.surface.Camera().View()
		title = fmt.Sprintf("Map · %.1f, %.1f · z%d", view.Center.Lat, view.Center.Lon, view.Zoom)
	}
	mapBox := m.renderTitledBox(title, m.renderCanvas(), mapW, h, false)

	listW := m.width - mapW
	if listW <= 0 {
		return mapBox
	}
	listBox := m.renderTitledBox("Trails", m.renderTrailList(listW-2, h-2), listW, h, true)
	return lipgloss.JoinHorizontal(lipgloss.Top, mapBox, listBox)
}

// renderCanvas draws the map canvas with a style per cell kind.
func (m Model) renderCanvas() string {
	if m.surface == nil {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	canvas := m.surface.Draw(m.sel, m.labels)

	styleFor := func(kind mapview.CellKind) lipgloss.Style {
		switch kind {
		case mapview.CellGrid:
			return styles.FaintText
		case mapview.CellTrack:
			return styles.Track
		case mapview.CellLabel:
			return styles.MutedText
		case mapview.CellMarker:
			return styles.Marker
		case mapview.CellSelected:
			return styles.SelectedMarker
		default:
			return styles.Text
		}
	}

	lines := make([]string, 0, canvas.Height)
	for row := 0; row < canvas.Height; row++ {
		var b strings.Builder
		cells := canvas.Row(row)
		for start := 0; start < len(cells); {
			end := start + 1
			for end < len(cells) && cells[end].Kind == cells[start].Kind {
				end++
			}
			var run strings.Builder
			for _, c := range cells[start:end] {
				run.WriteRune(c.Rune)
			}
			b.WriteString(styleFor(cells[start].Kind).Render(run.String()))
			start = end
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// renderTrailList renders the geocoded trails with the cursor and the
// selected marker.
func (m Model) renderTrailList(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	trails := m.visibleTrails()
	if len(trails) == 0 {
		return styles.MutedText.Render("No trails on the map")
	}

	cursor := clampIndex(m.cursor, len(trails))
	start := 0
	if height > 0 && cursor >= height {
		start = cursor - height + 1
	}

	var lines []string
	for i := start; i < len(trails) && len(lines) < max(height, 1); i++ {
		t := trails[i]
		glyph := string(mapview.GlyphMarker)
		glyphStyle := styles.Marker
		if m.sel.IsSelected(t.Name) {
			glyph = string(mapview.GlyphSelected)
			glyphStyle = styles.SelectedMarker
		}
		name := truncate(t.Name, max(width-4, 1))

		if i == cursor {
			sel := m.theme.Styles().Selected
			lines = append(lines, sel.Width(width).Render(" "+glyph+" "+name))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.FocusBg)).
			Width(width).
			Render(styles.Text.Render(" ")+glyphStyle.Render(glyph)+styles.Text.Render(" "+name)))
	}
	return strings.Join(lines, "\n")
}

// routeNotice summarizes a loaded route for the status line.
func routeNotice(t route.Track) string {
	notice := fmt.Sprintf("Route: %d pts · %.0f km", t.Len(), t.Length()/1000)
	if lo, hi, ok := t.Elevation(); ok {
		notice += fmt.Sprintf(" · %.0f-%.0f m", lo, hi)
	}
	if t.Name != "" {
		notice = t.Name + " · " + notice
	}
	return notice
}

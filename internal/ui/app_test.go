package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/thru/internal/catalog"
	"github.com/five82/thru/internal/geo"
	"github.com/five82/thru/internal/mapview"
	"github.com/five82/thru/internal/prefs"
	"github.com/five82/thru/internal/route"
	"github.com/five82/thru/internal/state"
)

// fakeFetcher returns a two-point track named after the requested ref.
type fakeFetcher struct {
	fail map[string]error
}

func (f fakeFetcher) Fetch(_ context.Context, ref string) (route.Track, error) {
	if err := f.fail[ref]; err != nil {
		return route.Track{}, err
	}
	return route.Track{
		Name: ref,
		Points: []route.Point{
			{Lat: 40, Lon: -120, Ele: 1200, HasEle: true},
			{Lat: 41, Lon: -121, Ele: 2100, HasEle: true},
		},
	}, nil
}

func newTestModel(t *testing.T, fetcher route.Fetcher) Model {
	t.Helper()
	doc, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	cat, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	entries := make([]geo.Entry, 0, len(doc.Locations))
	for _, loc := range doc.Locations {
		entries = append(entries, geo.Entry{Name: loc.Name, At: geo.LatLon{Lat: loc.Lat, Lon: loc.Lon}})
	}
	surface := mapview.NewSurface(cat, geo.NewTable(entries), mapview.Options{
		Home:    geo.Viewport{Center: geo.LatLon{Lat: 30}, Zoom: 2},
		MinZoom: 2,
		MaxZoom: 10,
	}, nil)

	m := New(Options{
		Store:     state.NewStore(cat, nil),
		Catalog:   cat,
		Surface:   surface,
		Fetcher:   fetcher,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	return update(t, m, tea.WindowSizeMsg{Width: 140, Height: 44})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press sends one key and returns the model and the command it produced.
func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(k))
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModel_EnterSelectsWithoutOpeningDetail(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, cmd := press(t, m, "enter")
	sel := m.Selection()
	if sel.Selected != "Pacific Crest Trail" || sel.DetailOpen {
		t.Fatalf("selection = %#v, want PCT with detail closed", sel)
	}
	if cmd == nil {
		t.Fatalf("selecting a trail with a route returned no fetch command")
	}

	m = update(t, m, cmd())
	track, shown := m.surface.Overlays().Track()
	if !shown || track.Name != "builtin:routes/pct.gpx" {
		t.Fatalf("overlay = %q shown=%v, want pct route", track.Name, shown)
	}
	if !strings.Contains(m.notice, "2 pts") {
		t.Fatalf("notice = %q, want route summary", m.notice)
	}
	if out := m.View(); !strings.Contains(out, "Pacific Crest Trail") {
		t.Fatalf("View() does not mention the selected trail")
	}
}

func TestModel_StaleRouteIsDiscarded(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, first := press(t, m, "enter")
	m, _ = press(t, m, "j")
	m, second := press(t, m, "enter")
	if m.Selection().Selected != "Appalachian Trail" {
		t.Fatalf("selected = %q, want Appalachian Trail", m.Selection().Selected)
	}
	if first == nil || second == nil {
		t.Fatalf("expected two fetch commands")
	}

	// Newer fetch completes first, then the stale one.
	m = update(t, m, second())
	m = update(t, m, first())

	track, shown := m.surface.Overlays().Track()
	if !shown || track.Name != "builtin:routes/at.gpx" {
		t.Fatalf("overlay = %q shown=%v, want at route", track.Name, shown)
	}
}

func TestModel_FailedRouteKeepsMapUsable(t *testing.T) {
	m := newTestModel(t, fakeFetcher{fail: map[string]error{
		"builtin:routes/pct.gpx": errors.New("route returned status 404"),
	}})

	m, cmd := press(t, m, "enter")
	m = update(t, m, cmd())

	if _, shown := m.surface.Overlays().Track(); shown {
		t.Fatalf("overlay shown after failed fetch")
	}
	if m.notice != "Route unavailable" {
		t.Fatalf("notice = %q, want Route unavailable", m.notice)
	}
	if m.Selection().Selected != "Pacific Crest Trail" {
		t.Fatalf("failed fetch changed selection to %q", m.Selection().Selected)
	}
	m, _ = press(t, m, "+")
	if got := m.surface.Camera().View().Zoom; got != 3 {
		t.Fatalf("zoom after + = %d, want 3", got)
	}
}

func TestModel_LearnMoreAndEscape(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, _ = press(t, m, "j")
	m, _ = press(t, m, "m")
	sel := m.Selection()
	if sel.Selected != "Appalachian Trail" || !sel.DetailOpen {
		t.Fatalf("learn more = %#v, want AT open", sel)
	}
	out := m.View()
	for _, want := range []string{"Appalachian Trail", "Physical", "Monthly Budget", "Dangers"} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail view missing %q", want)
		}
	}

	m, _ = press(t, m, "esc")
	sel = m.Selection()
	if sel.Selected != "Appalachian Trail" || sel.DetailOpen {
		t.Fatalf("first esc = %#v, want AT kept, detail closed", sel)
	}

	m, _ = press(t, m, "esc")
	if m.Selection().HasSelection() {
		t.Fatalf("second esc kept selection %q", m.Selection().Selected)
	}
}

func TestModel_LearnMoreOnMapPrefersSelection(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "G")
	m, _ = press(t, m, "l")
	if got := m.Selection(); got.Selected != "Pacific Crest Trail" || !got.DetailOpen {
		t.Fatalf("learn more = %#v, want selected PCT opened", got)
	}
}

func TestModel_ViewToggleKeepsSelection(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "v")
	sel := m.Selection()
	if sel.ViewMode != state.ViewGrid || sel.Selected != "Pacific Crest Trail" {
		t.Fatalf("after v = %#v, want grid with PCT", sel)
	}
	if out := m.View(); !strings.Contains(out, "Discover Epic Trails") {
		t.Fatalf("grid view missing heading")
	}

	m, _ = press(t, m, "v")
	if m.Selection().ViewMode != state.ViewMap {
		t.Fatalf("second v = %v, want Map", m.Selection().ViewMode)
	}
}

func TestModel_ResetClearsSelectionAndCamera(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, cmd := press(t, m, "enter")
	m = update(t, m, cmd())
	if m.surface.Camera().View() == m.surface.Camera().Home() {
		t.Fatalf("camera did not fit the loaded route")
	}

	m, _ = press(t, m, "r")
	if m.Selection().HasSelection() {
		t.Fatalf("reset kept selection %q", m.Selection().Selected)
	}
	if m.surface.Camera().View() != m.surface.Camera().Home() {
		t.Fatalf("reset view = %#v, want home", m.surface.Camera().View())
	}
	if _, shown := m.surface.Overlays().Track(); shown {
		t.Fatalf("reset left the route overlay on the map")
	}
}

func TestModel_GridFilter(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, _ = press(t, m, "v")
	m, _ = press(t, m, "/")
	if !m.filtering {
		t.Fatalf("filter input not active after /")
	}
	m, _ = press(t, m, "japan")
	m, _ = press(t, m, "enter")

	trails := m.visibleTrails()
	if len(trails) != 1 || trails[0].Name != "Michinoku Coastal Trail" {
		t.Fatalf("filtered trails = %d, want Michinoku Coastal Trail only", len(trails))
	}
	if m.Selection().HasSelection() {
		t.Fatalf("applying the filter selected %q", m.Selection().Selected)
	}

	m, _ = press(t, m, "enter")
	if m.Selection().Selected != "Michinoku Coastal Trail" {
		t.Fatalf("enter in filtered grid selected %q", m.Selection().Selected)
	}

	m, _ = press(t, m, "esc")
	if m.query != "" || len(m.visibleTrails()) != 12 {
		t.Fatalf("esc did not clear the filter: query=%q", m.query)
	}
}

func TestModel_ThemeAndLabelsPersist(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, _ = press(t, m, "T")
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}
	m, _ = press(t, m, "t")

	got := prefs.Load(m.prefsPath)
	if got.Theme != "Slate" || got.Labels != m.labels || !m.labels {
		t.Fatalf("saved prefs = %#v, want Slate with labels on", got)
	}
}

func TestModel_HelpClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, _ = press(t, m, "?")
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m, _ = press(t, m, "enter")
	if m.showHelp {
		t.Fatalf("help still open")
	}
	if m.Selection().HasSelection() {
		t.Fatalf("key that closed help also selected a trail")
	}
}

func TestModel_LogPane(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, cmd := press(t, m, "L")
	if !m.showLogs || cmd == nil {
		t.Fatalf("L did not open the log pane")
	}
	if out := m.View(); !strings.Contains(out, "Logging to file is disabled") {
		t.Fatalf("log pane without a file should say so")
	}
	m, _ = press(t, m, "L")
	if m.showLogs {
		t.Fatalf("second L did not close the log pane")
	}
}

func TestModel_LogRefreshStopsWhenPaneCloses(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, _ = press(t, m, "L")
	stale := logTickMsg{gen: m.logGen}
	m, _ = press(t, m, "L")
	m, _ = press(t, m, "L")
	if !m.showLogs {
		t.Fatalf("log pane not reopened")
	}

	if _, cmd := m.Update(stale); cmd != nil {
		t.Fatalf("tick from the first opening kept refreshing")
	}
	if _, cmd := m.Update(logTickMsg{gen: m.logGen}); cmd == nil {
		t.Fatalf("tick from the current opening stopped refreshing")
	}

	m, _ = press(t, m, "esc")
	if _, cmd := m.Update(logTickMsg{gen: m.logGen - 1}); cmd != nil {
		t.Fatalf("tick kept refreshing after the pane closed")
	}
}

func TestModel_FullscreenMap(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	if w, h := m.surface.Size(); w != 106 || h != 39 {
		t.Fatalf("map canvas = %dx%d, want 106x39 beside the trail list", w, h)
	}

	m, _ = press(t, m, "f")
	if w, h := m.surface.Size(); w != 138 || h != 41 {
		t.Fatalf("fullscreen canvas = %dx%d, want 138x41", w, h)
	}
	out := m.View()
	if strings.Contains(out, "Epic") {
		t.Fatalf("fullscreen map still shows the header")
	}
	if strings.Contains(out, "Michinoku") {
		t.Fatalf("fullscreen map still shows the trail list")
	}

	m, _ = press(t, m, "f")
	if w, h := m.surface.Size(); w != 106 || h != 39 {
		t.Fatalf("canvas after leaving fullscreen = %dx%d, want 106x39", w, h)
	}
	if !strings.Contains(m.View(), "Epic") {
		t.Fatalf("header missing after leaving fullscreen")
	}
}

func TestModel_UnlocatedTrailListedInGridOnly(t *testing.T) {
	cat, err := catalog.New([]catalog.Trail{
		{Name: "Ridgeline", Country: "Norway", SceneryRating: "4/5", BudgetLevel: 2},
		{Name: "Uncharted", Country: "Chile", SceneryRating: "5/5", BudgetLevel: 1},
		{Name: "Coastway", Country: "Japan", SceneryRating: "3/5", BudgetLevel: 3},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	table := geo.NewTable([]geo.Entry{
		{Name: "Ridgeline", At: geo.LatLon{Lat: 61, Lon: 8}},
		{Name: "Coastway", At: geo.LatLon{Lat: 39, Lon: 141}},
	})
	surface := mapview.NewSurface(cat, table, mapview.Options{
		Home:    geo.Viewport{Center: geo.LatLon{Lat: 30}, Zoom: 2},
		MinZoom: 2,
		MaxZoom: 10,
	}, nil)
	m := New(Options{
		Store:     state.NewStore(cat, nil),
		Catalog:   cat,
		Surface:   surface,
		Fetcher:   fakeFetcher{},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 44})

	for _, tr := range m.visibleTrails() {
		if tr.Name == "Uncharted" {
			t.Fatalf("unlocated trail listed beside the map")
		}
	}
	if strings.Contains(m.View(), "Uncharted") {
		t.Fatalf("map view shows the unlocated trail")
	}

	m, _ = press(t, m, "v")
	names := make([]string, 0, 3)
	for _, tr := range m.visibleTrails() {
		names = append(names, tr.Name)
	}
	if strings.Join(names, ",") != "Ridgeline,Uncharted,Coastway" {
		t.Fatalf("grid trails = %v, want all three in catalog order", names)
	}
	if !strings.Contains(m.View(), "Uncharted") {
		t.Fatalf("grid view does not show the unlocated trail")
	}
}

func TestModel_EscapeOnMapIgnoresGridFilter(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	m, _ = press(t, m, "v")
	m, _ = press(t, m, "/")
	m, _ = press(t, m, "japan")
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "v")
	m, _ = press(t, m, "enter")
	if !m.Selection().HasSelection() {
		t.Fatalf("enter on the map selected nothing")
	}

	m, _ = press(t, m, "esc")
	if m.Selection().HasSelection() {
		t.Fatalf("first esc on the map kept selection %q", m.Selection().Selected)
	}
	if m.query != "japan" {
		t.Fatalf("esc on the map changed the grid filter to %q", m.query)
	}
}

func TestWriteParagraph_WrapsToWidth(t *testing.T) {
	m := newTestModel(t, fakeFetcher{})

	var b strings.Builder
	m.writeParagraph(&b, "Why", "alpha beta   gamma delta epsilon zeta eta theta iota kappa", 20)

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("paragraph not wrapped: %q", out)
	}
	for _, line := range lines {
		if w := lipgloss.Width(line); w > 20 {
			t.Fatalf("line %q is %d wide, want <= 20", line, w)
		}
	}
	if !strings.Contains(out, "alpha beta gamma") {
		t.Fatalf("repeated spaces not collapsed: %q", out)
	}
}

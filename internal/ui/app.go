package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/thru/internal/catalog"
	"github.com/five82/thru/internal/logtail"
	"github.com/five82/thru/internal/mapview"
	"github.com/five82/thru/internal/prefs"
	"github.com/five82/thru/internal/route"
	"github.com/five82/thru/internal/state"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Catalog     *catalog.Catalog
	Surface     *mapview.Surface
	Fetcher     route.Fetcher
	Logger      *slog.Logger
	Attribution string
	LogFile     string
	ThemeName   string
	Labels      bool
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx         context.Context
	store       *state.Store
	trails      *catalog.Catalog
	surface     *mapview.Surface
	fetcher     route.Fetcher
	logger      *slog.Logger
	keys        keyMap
	prefsPath   string
	logFile     string
	attribution string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	labels     bool
	fullscreen bool
	notice     string

	// Data state
	sel    state.Selection
	cursor int

	// Grid filter
	filter    textinput.Model
	filtering bool
	query     string

	// Detail panel
	detailViewport viewport.Model

	// Log pane
	showLogs    bool
	logGen      uint64
	logViewport viewport.Model
	logEntries  []logtail.Entry
	logErr      error

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultTheme().Name
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Filter by name, country, region..."
	ti.Prompt = "/"
	ti.CharLimit = 64

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		trails:      opts.Catalog,
		surface:     opts.Surface,
		fetcher:     opts.Fetcher,
		logger:      logger.With("component", "ui"),
		keys:        DefaultKeyMap(),
		prefsPath:   prefsPath,
		logFile:     opts.LogFile,
		attribution: opts.Attribution,
		theme:       GetTheme(themeName),
		labels:      opts.Labels,
		filter:      ti,
	}
	if m.store != nil {
		m.sel = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
			m.logViewport = viewport.New(0, 0)
		}
		m.ready = true
		m.resizeSurface()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case overlayLoadedMsg:
		m.handleOverlayLoaded(msg)
		return m, nil

	case logsLoadedMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil

	case logTickMsg:
		if !m.showLogs || msg.gen != m.logGen {
			return m, nil
		}
		return m, tea.Batch(loadLogsCmd(m.logFile), logTickCmd(m.logGen))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.sel.DetailOpen {
		return m.renderDetail()
	}
	return m.renderMain()
}

// Selection returns the last Selection applied to the UI.
func (m Model) Selection() state.Selection {
	return m.sel
}

// dispatch applies an intent and syncs the map overlay with the new
// Selection. A route fetch is returned as a command when one is needed.
func (m Model) dispatch(in state.Intent) (Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	m.sel = m.store.Apply(in)
	m.logger.Debug("applied intent", "kind", in.Kind.String(), "trail", in.Trail, "selected", m.sel.Selected)

	var cmd tea.Cmd
	if m.surface != nil {
		if req, ok := m.surface.Sync(m.sel); ok {
			m.notice = "Loading route..."
			cmd = fetchOverlayCmd(m.ctx, m.fetcher, req)
		} else if !m.sel.Overlay.Active() {
			m.notice = ""
		}
	}
	m.updateDetailViewport()
	return m, cmd
}

// handleOverlayLoaded applies a route fetch result unless a newer selection
// has replaced it.
func (m *Model) handleOverlayLoaded(msg overlayLoadedMsg) {
	if m.surface == nil || m.store == nil {
		return
	}
	switch m.surface.Apply(mapview.Result(msg), m.store.IsCurrent) {
	case mapview.Shown:
		track, _ := m.surface.Overlays().Track()
		m.notice = routeNotice(track)
	case mapview.Failed:
		m.notice = "Route unavailable"
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil
	}

	if m.sel.DetailOpen {
		return m.handleDetailKey(msg)
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		if m.sel.ViewMode == state.ViewGrid && m.query != "" {
			m.query = ""
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		}
		return m.dispatch(state.Clear())

	case key.Matches(msg, m.keys.ToggleView):
		mode := state.ViewGrid
		if m.sel.ViewMode == state.ViewGrid {
			mode = state.ViewMap
		}
		m.cursor = 0
		next, cmd := m.dispatch(state.SetMode(mode))
		next.cursorToSelection()
		return next, cmd

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = true
		m.logGen++
		m.updateLogViewport()
		return m, tea.Batch(loadLogsCmd(m.logFile), logTickCmd(m.logGen))

	case key.Matches(msg, m.keys.Reset):
		if m.surface == nil {
			return m.dispatch(state.Clear())
		}
		return m.dispatch(m.surface.ResetView())

	case key.Matches(msg, m.keys.Select):
		if t, ok := m.cursorTrail(); ok {
			return m.dispatch(state.Select(t.Name))
		}
		return m, nil

	case key.Matches(msg, m.keys.LearnMore):
		return m.learnMore()

	case key.Matches(msg, m.keys.Filter):
		if m.sel.ViewMode != state.ViewGrid {
			return m, nil
		}
		m.filtering = true
		m.filter.SetValue(m.query)
		m.filter.CursorEnd()
		return m, m.filter.Focus()
	}

	if m.moveCursor(msg) {
		return m, nil
	}
	if m.sel.ViewMode == state.ViewMap {
		m.handleMapKey(msg)
	}
	return m, nil
}

// learnMore opens the detail panel. On the map the selected trail wins over
// the cursor, mirroring the popup's "Learn more" link.
func (m Model) learnMore() (tea.Model, tea.Cmd) {
	if m.sel.ViewMode == state.ViewMap && m.sel.HasSelection() {
		return m.dispatch(state.Open(m.sel.Selected))
	}
	if t, ok := m.cursorTrail(); ok {
		return m.dispatch(state.Open(t.Name))
	}
	return m, nil
}

// moveCursor handles list navigation. It reports whether msg was consumed.
func (m *Model) moveCursor(msg tea.KeyMsg) bool {
	n := len(m.visibleTrails())
	page := max(m.pageSize(), 1)
	switch {
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampIndex(m.cursor+1, n)
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampIndex(m.cursor-1, n)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = clampIndex(n-1, n)
	case key.Matches(msg, m.keys.PageDown):
		m.cursor = clampIndex(m.cursor+page, n)
	case key.Matches(msg, m.keys.PageUp):
		m.cursor = clampIndex(m.cursor-page, n)
	default:
		return false
	}
	return true
}

// handleMapKey processes camera and label keys.
func (m *Model) handleMapKey(msg tea.KeyMsg) {
	if m.surface == nil {
		return
	}
	cam := m.surface.Camera()
	w, h := m.surface.Size()
	switch {
	case key.Matches(msg, m.keys.ZoomIn):
		cam.Zoom(1)
	case key.Matches(msg, m.keys.ZoomOut):
		cam.Zoom(-1)
	case key.Matches(msg, m.keys.PanLeft):
		cam.Pan(-max(w/4, 1), 0)
	case key.Matches(msg, m.keys.PanRight):
		cam.Pan(max(w/4, 1), 0)
	case key.Matches(msg, m.keys.PanUp):
		cam.Pan(0, max(h/4, 1))
	case key.Matches(msg, m.keys.PanDown):
		cam.Pan(0, -max(h/4, 1))
	case key.Matches(msg, m.keys.ToggleLabel):
		m.labels = !m.labels
		m.savePrefs()
	case key.Matches(msg, m.keys.Fullscreen):
		m.fullscreen = !m.fullscreen
		m.resizeSurface()
	}
}

// handleDetailKey processes keys while the detail panel is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		return m.dispatch(state.Close())
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleFilterKey feeds the grid filter input.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.query = strings.TrimSpace(m.filter.Value())
		m.cursor = 0
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue(m.query)
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.query = strings.TrimSpace(m.filter.Value())
	m.cursor = 0
	return m, cmd
}

// visibleTrails returns the trails the cursor moves over: geocoded trails on
// the map, filtered trails in the grid.
func (m Model) visibleTrails() []catalog.Trail {
	if m.sel.ViewMode == state.ViewGrid {
		if m.query == "" {
			return m.trails.Trails()
		}
		return m.trails.Filter(m.query)
	}
	if m.surface == nil {
		return m.trails.Trails()
	}
	markers := m.surface.Markers(m.sel)
	out := make([]catalog.Trail, 0, len(markers))
	for _, mk := range markers {
		if t, ok := m.trails.ByName(mk.Name); ok {
			out = append(out, t)
		}
	}
	return out
}

// cursorTrail returns the trail under the cursor.
func (m Model) cursorTrail() (catalog.Trail, bool) {
	trails := m.visibleTrails()
	if len(trails) == 0 {
		return catalog.Trail{}, false
	}
	return trails[clampIndex(m.cursor, len(trails))], true
}

// cursorToSelection moves the cursor onto the selected trail if it is listed.
func (m *Model) cursorToSelection() {
	if !m.sel.HasSelection() {
		return
	}
	for i, t := range m.visibleTrails() {
		if t.Name == m.sel.Selected {
			m.cursor = i
			return
		}
	}
}

// pageSize is how far page up/down moves the cursor.
func (m Model) pageSize() int {
	if m.sel.ViewMode == state.ViewGrid {
		return m.gridColumns() * max(m.contentHeight()/CardHeight, 1)
	}
	return m.contentHeight() - 2
}

// contentHeight is the height left below the header and command bar and
// above the status line. A fullscreen map keeps only the status line.
func (m Model) contentHeight() int {
	if m.mapFullscreen() {
		return max(m.height-1, 0)
	}
	return max(m.height-3, 0)
}

// mapFullscreen reports whether the map canvas owns the content area.
func (m Model) mapFullscreen() bool {
	return m.fullscreen && m.sel.ViewMode == state.ViewMap && !m.showLogs
}

// resizeSurface sizes the map canvas to the map pane interior.
func (m *Model) resizeSurface() {
	if m.surface == nil {
		return
	}
	w, h := m.mapPaneSize()
	m.surface.Resize(w-2, h-2)
}

// savePrefs persists the theme and label toggle. Failures are logged only.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Labels: m.labels}); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	if !m.mapFullscreen() {
		b.WriteString(m.renderHeader())
		b.WriteString("\n")
		b.WriteString(m.renderCommandBar())
		b.WriteString("\n")
	}

	switch {
	case m.showLogs:
		b.WriteString(m.renderLogs())
	case m.sel.ViewMode == state.ViewGrid:
		b.WriteString(m.renderGrid())
	default:
		b.WriteString(m.renderMap())
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

// Messages

type overlayLoadedMsg mapview.Result

type logsLoadedMsg struct {
	entries []logtail.Entry
	err     error
}

// logTickMsg carries the log pane generation that scheduled it. Opening or
// closing the pane starts a new generation, so older refresh chains stop.
type logTickMsg struct {
	gen uint64
}

// Commands

func fetchOverlayCmd(ctx context.Context, fetcher route.Fetcher, req mapview.Request) tea.Cmd {
	if fetcher == nil {
		return nil
	}
	return func() tea.Msg {
		track, err := fetcher.Fetch(ctx, req.URL)
		return overlayLoadedMsg{Token: req.Token, Track: track, Err: err}
	}
}

func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logsLoadedMsg{}
		}
		entries, err := logtail.ReadEntries(path, LogTailLines)
		return logsLoadedMsg{entries: entries, err: err}
	}
}

func logTickCmd(gen uint64) tea.Cmd {
	return tea.Tick(LogRefreshInterval, func(time.Time) tea.Msg {
		return logTickMsg{gen: gen}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		if m.ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

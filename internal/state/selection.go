package state

// ViewMode selects how the catalog is presented.
type ViewMode int

const (
	ViewMap ViewMode = iota
	ViewGrid
)

func (v ViewMode) String() string {
	if v == ViewGrid {
		return "Grid"
	}
	return "Map"
}

// Overlay names the route the map should display and the request token
// current for it. A fetch result is applied only while its token matches.
type Overlay struct {
	URL   string
	Token uint64
}

// Active reports whether a route should be shown.
func (o Overlay) Active() bool {
	return o.URL != ""
}

// Selection is the immutable view-model shared by every surface.
type Selection struct {
	Selected   string // trail name, empty for none
	DetailOpen bool
	ViewMode   ViewMode
	Overlay    Overlay
}

// HasSelection reports whether a trail is selected.
func (s Selection) HasSelection() bool {
	return s.Selected != ""
}

// IsSelected reports whether name is the selected trail.
func (s Selection) IsSelected(name string) bool {
	return s.Selected != "" && s.Selected == name
}

// IntentKind names a user intent.
type IntentKind int

const (
	IntentSelect IntentKind = iota + 1
	IntentClear
	IntentOpenDetail
	IntentCloseDetail
	IntentSetViewMode
)

func (k IntentKind) String() string {
	switch k {
	case IntentSelect:
		return "select"
	case IntentClear:
		return "clear"
	case IntentOpenDetail:
		return "open_detail"
	case IntentCloseDetail:
		return "close_detail"
	case IntentSetViewMode:
		return "set_view_mode"
	default:
		return "unknown"
	}
}

// Intent is a request from a surface to change the Selection.
type Intent struct {
	Kind  IntentKind
	Trail string
	Mode  ViewMode
}

// Select returns the intent emitted by a marker or card click.
func Select(name string) Intent { return Intent{Kind: IntentSelect, Trail: name} }

// Clear returns the intent that drops the selection.
func Clear() Intent { return Intent{Kind: IntentClear} }

// Open returns the "learn more" intent.
func Open(name string) Intent { return Intent{Kind: IntentOpenDetail, Trail: name} }

// Close returns the intent that dismisses the detail panel.
func Close() Intent { return Intent{Kind: IntentCloseDetail} }

// SetMode returns the intent that switches between map and grid.
func SetMode(mode ViewMode) Intent { return Intent{Kind: IntentSetViewMode, Mode: mode} }

package state

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/five82/thru/internal/catalog"
)

// Store owns the Selection. Every intent replaces it atomically, in the
// order the intents arrive.
type Store struct {
	mu        sync.RWMutex
	trails    *catalog.Catalog
	logger    *slog.Logger
	current   Selection
	lastToken uint64
}

// NewStore returns a Store with nothing selected, the detail panel closed and
// the map view active.
func NewStore(trails *catalog.Catalog, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		trails:  trails,
		logger:  logger.With("component", "selection"),
		current: Selection{ViewMode: ViewMap},
	}
}

// Snapshot returns the current Selection.
func (s *Store) Snapshot() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsCurrent reports whether an overlay fetch tagged with token should still
// take visible effect.
func (s *Store) IsCurrent(token uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Overlay.Active() && s.current.Overlay.Token == token
}

// Apply dispatches an intent and returns the resulting Selection.
func (s *Store) Apply(in Intent) Selection {
	switch in.Kind {
	case IntentSelect:
		return s.SelectTrail(in.Trail)
	case IntentClear:
		return s.ClearSelection()
	case IntentOpenDetail:
		return s.OpenDetail(in.Trail)
	case IntentCloseDetail:
		return s.CloseDetail()
	case IntentSetViewMode:
		return s.SetViewMode(in.Mode)
	default:
		s.logger.Warn("ignoring unknown intent", "kind", int(in.Kind))
		return s.Snapshot()
	}
}

// SelectTrail selects a trail without opening the detail panel. The
// overlay follows the trail's route.
func (s *Store) SelectTrail(name string) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	trail, ok := s.lookup(name, IntentSelect)
	if !ok {
		return s.current
	}
	next := s.current
	next.Selected = trail.Name
	s.setOverlay(&next, trail.RouteURL)
	s.current = next
	return next
}

// ClearSelection drops the selection, closes the detail panel and removes
// the overlay. It is valid from any state.
func (s *Store) ClearSelection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	next.Selected = ""
	next.DetailOpen = false
	s.setOverlay(&next, "")
	s.current = next
	return next
}

// OpenDetail selects a trail and opens its detail panel.
func (s *Store) OpenDetail(name string) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	trail, ok := s.lookup(name, IntentOpenDetail)
	if !ok {
		return s.current
	}
	next := s.current
	next.Selected = trail.Name
	next.DetailOpen = true
	s.setOverlay(&next, trail.RouteURL)
	s.current = next
	return next
}

// CloseDetail dismisses the detail panel and keeps the selection.
func (s *Store) CloseDetail() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.DetailOpen = false
	return s.current
}

// SetViewMode switches between map and grid presentation.
func (s *Store) SetViewMode(mode ViewMode) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode != ViewMap && mode != ViewGrid {
		s.logger.Warn("ignoring unknown view mode", "mode", int(mode))
		return s.current
	}
	s.current.ViewMode = mode
	return s.current
}

// lookup resolves a trail. Unknown names leave the state untouched.
func (s *Store) lookup(name string, kind IntentKind) (catalog.Trail, bool) {
	trail, ok := s.trails.ByName(name)
	if !ok {
		s.logger.Warn("trail not in catalog", "trail", name, "intent", kind.String())
	}
	return trail, ok
}

// setOverlay points the overlay at url. A new token is issued only when the
// URL actually changes so re-selecting the same trail keeps its fetch.
func (s *Store) setOverlay(next *Selection, url string) {
	url = strings.TrimSpace(url)
	if next.Overlay.URL == url {
		return
	}
	s.lastToken++
	next.Overlay = Overlay{URL: url, Token: s.lastToken}
}

package mapview

import (
	"log/slog"

	"github.com/five82/thru/internal/catalog"
	"github.com/five82/thru/internal/geo"
	"github.com/five82/thru/internal/state"
)

// Options configures a Surface.
type Options struct {
	Home    geo.Viewport
	MinZoom int
	MaxZoom int
	Tiles   geo.TileTemplate
}

// Surface is the map pane model: the camera, the overlay and the inputs
// markers are derived from.
type Surface struct {
	trails   *catalog.Catalog
	table    *geo.Table
	tiles    geo.TileTemplate
	camera   *Camera
	overlays *Overlays
	width    int
	height   int
}

// NewSurface builds a map surface over a catalog and its geocoding table.
func NewSurface(trails *catalog.Catalog, table *geo.Table, opts Options, logger *slog.Logger) *Surface {
	return &Surface{
		trails:   trails,
		table:    table,
		tiles:    opts.Tiles,
		camera:   NewCamera(opts.Home, opts.MinZoom, opts.MaxZoom),
		overlays: NewOverlays(logger),
	}
}

// Resize records the canvas size used for fitting and drawing.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
}

// Size returns the canvas size.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Camera exposes the viewport controls.
func (s *Surface) Camera() *Camera {
	return s.camera
}

// Overlays exposes the route overlay.
func (s *Surface) Overlays() *Overlays {
	return s.overlays
}

// Markers derives the markers for sel.
func (s *Surface) Markers(sel state.Selection) []Marker {
	return Markers(s.trails, s.table, sel)
}

// Sync forwards to the overlay manager.
func (s *Surface) Sync(sel state.Selection) (Request, bool) {
	return s.overlays.Sync(sel)
}

// Apply installs a fetch result and fits the camera to the track when it
// is shown.
func (s *Surface) Apply(res Result, isCurrent func(uint64) bool) Outcome {
	outcome := s.overlays.Apply(res, isCurrent)
	if outcome == Shown {
		track, _ := s.overlays.Track()
		s.camera.Fit(track.Bounds(), s.width, s.height)
	}
	return outcome
}

// ResetView sends the camera home and returns the clear intent.
func (s *Surface) ResetView() state.Intent {
	return s.camera.ResetView()
}

// Draw renders the map for sel.
func (s *Surface) Draw(sel state.Selection, labels bool) *Canvas {
	layers := Layers{Markers: s.Markers(sel), Labels: labels}
	if track, ok := s.overlays.Track(); ok {
		layers.Track = track.LatLons()
	}
	return Draw(s.camera.View(), s.width, s.height, layers)
}

// TileURL returns the tile under the map center.
func (s *Surface) TileURL() string {
	if s.tiles.URL == "" {
		return ""
	}
	view := s.camera.View()
	return s.tiles.At(view.Center, view.Zoom)
}

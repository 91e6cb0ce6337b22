package mapview

import (
	"github.com/five82/thru/internal/geo"
	"github.com/five82/thru/internal/state"
)

// Camera tracks the map viewport and its home position.
type Camera struct {
	home    geo.Viewport
	view    geo.Viewport
	minZoom int
	maxZoom int
}

// NewCamera starts at home.
func NewCamera(home geo.Viewport, minZoom, maxZoom int) *Camera {
	home = home.Clamp(minZoom, maxZoom)
	return &Camera{home: home, view: home, minZoom: minZoom, maxZoom: maxZoom}
}

// View returns the current viewport.
func (c *Camera) View() geo.Viewport {
	return c.view
}

// Home returns the default viewport.
func (c *Camera) Home() geo.Viewport {
	return c.home
}

// Zoom changes the zoom level by delta.
func (c *Camera) Zoom(delta int) {
	c.view = c.view.ZoomBy(delta, c.minZoom, c.maxZoom)
}

// Pan moves the center by whole cells.
func (c *Camera) Pan(cols, rows int) {
	c.view = c.view.Pan(cols, rows)
}

// Fit frames b on a width x height canvas. An empty box leaves the view as is.
func (c *Camera) Fit(b geo.Bounds, width, height int) {
	if b.Empty() {
		return
	}
	c.view = geo.Fit(b, width, height, c.minZoom, c.maxZoom)
}

// ResetView returns the camera home and yields the intent that clears the
// selection.
func (c *Camera) ResetView() state.Intent {
	c.view = c.home
	return state.Clear()
}

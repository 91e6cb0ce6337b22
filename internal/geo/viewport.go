package geo

import "math"

// Viewport is the map camera: a center and an integer zoom level.
type Viewport struct {
	Center LatLon
	Zoom   int
}

// worldColumns is how many terminal columns span 360 degrees at zoom 0.
// Each zoom level doubles it, matching slippy-map tile scaling.
const worldColumns = 32

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// LonPerColumn returns the longitude covered by one column at zoom.
func LonPerColumn(zoom int) float64 {
	return 360 / (worldColumns * math.Exp2(float64(zoom)))
}

// LatPerRow returns the latitude covered by one row at zoom.
func LatPerRow(zoom int) float64 {
	return LonPerColumn(zoom) * cellAspect
}

// Clamp bounds the zoom to [minZoom, maxZoom] and normalizes the center.
func (v Viewport) Clamp(minZoom, maxZoom int) Viewport {
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	if v.Zoom < minZoom {
		v.Zoom = minZoom
	}
	if v.Zoom > maxZoom {
		v.Zoom = maxZoom
	}
	v.Center.Lat = clampFloat(v.Center.Lat, -85, 85)
	v.Center.Lon = normalizeLon(v.Center.Lon)
	return v
}

// ZoomBy changes the zoom by delta, staying within [minZoom, maxZoom].
func (v Viewport) ZoomBy(delta, minZoom, maxZoom int) Viewport {
	v.Zoom += delta
	return v.Clamp(minZoom, maxZoom)
}

// Pan moves the center by a number of columns and rows at the current zoom.
// Positive rows move north.
func (v Viewport) Pan(cols, rows int) Viewport {
	v.Center.Lon = normalizeLon(v.Center.Lon + float64(cols)*LonPerColumn(v.Zoom))
	v.Center.Lat = clampFloat(v.Center.Lat+float64(rows)*LatPerRow(v.Zoom), -85, 85)
	return v
}

// Fit returns a viewport centered on b at the highest zoom in
// [minZoom, maxZoom] that shows the whole box on a width x height canvas
// with a one-cell margin on each side.
func Fit(b Bounds, width, height, minZoom, maxZoom int) Viewport {
	if b.Empty() {
		return Viewport{Zoom: minZoom}.Clamp(minZoom, maxZoom)
	}
	latSpan, lonSpan := b.Span()
	usableW := float64(max(width-2, 1))
	usableH := float64(max(height-2, 1))

	zoom := minZoom
	for z := maxZoom; z >= minZoom; z-- {
		if lonSpan <= usableW*LonPerColumn(z) && latSpan <= usableH*LatPerRow(z) {
			zoom = z
			break
		}
	}
	return Viewport{Center: b.Center(), Zoom: zoom}.Clamp(minZoom, maxZoom)
}

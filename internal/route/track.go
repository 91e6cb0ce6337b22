// Package route loads route overlays: ordered point tracks read from GPX or
// FIT files, fetched over HTTP or from disk.
package route

import (
	"errors"

	"github.com/five82/thru/internal/geo"
)

var (
	// ErrNoPoints is returned when a file parses but holds no positions.
	ErrNoPoints = errors.New("route has no points")
	// ErrUnsupportedFormat is returned when a file is neither GPX nor FIT.
	ErrUnsupportedFormat = errors.New("unsupported route format")
)

// Point is one track position. Ele is meters above sea level when HasEle.
type Point struct {
	Lat    float64
	Lon    float64
	Ele    float64
	HasEle bool
}

// LatLon drops the elevation.
func (p Point) LatLon() geo.LatLon {
	return geo.LatLon{Lat: p.Lat, Lon: p.Lon}
}

// Track is an ordered sequence of points.
type Track struct {
	Name   string
	Points []Point
}

// Len returns the number of points.
func (t Track) Len() int {
	return len(t.Points)
}

// LatLons returns the positions in order.
func (t Track) LatLons() []geo.LatLon {
	out := make([]geo.LatLon, len(t.Points))
	for i, p := range t.Points {
		out[i] = p.LatLon()
	}
	return out
}

// Bounds returns the bounding box of the track.
func (t Track) Bounds() geo.Bounds {
	var b geo.Bounds
	for _, p := range t.Points {
		b = b.Extend(p.LatLon())
	}
	return b
}

// Length sums the great-circle distance between consecutive points, in meters.
func (t Track) Length() float64 {
	total := 0.0
	for i := 1; i < len(t.Points); i++ {
		total += geo.Haversine(t.Points[i-1].LatLon(), t.Points[i].LatLon())
	}
	return total
}

// Elevation returns the lowest and highest elevation. ok is false when no
// point carries one.
func (t Track) Elevation() (lo, hi float64, ok bool) {
	for _, p := range t.Points {
		if !p.HasEle {
			continue
		}
		if !ok {
			lo, hi, ok = p.Ele, p.Ele, true
			continue
		}
		lo = min(lo, p.Ele)
		hi = max(hi, p.Ele)
	}
	return lo, hi, ok
}

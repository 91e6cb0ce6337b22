package geo

import "math"

// Projection maps coordinates onto a width x height character grid using an
// equirectangular projection around the viewport center.
type Projection struct {
	View   Viewport
	Width  int
	Height int
}

// Cell returns the column and row for ll. ok is false when the point falls
// outside the grid.
func (p Projection) Cell(ll LatLon) (col, row int, ok bool) {
	if p.Width <= 0 || p.Height <= 0 {
		return 0, 0, false
	}
	dLon := normalizeLon(ll.Lon - p.View.Center.Lon)
	dLat := ll.Lat - p.View.Center.Lat

	x := float64(p.Width)/2 + dLon/LonPerColumn(p.View.Zoom)
	y := float64(p.Height)/2 - dLat/LatPerRow(p.View.Zoom)
	col = int(math.Floor(x))
	row = int(math.Floor(y))
	if col < 0 || col >= p.Width || row < 0 || row >= p.Height {
		return col, row, false
	}
	return col, row, true
}

// Visible reports whether ll lands on the grid.
func (p Projection) Visible(ll LatLon) bool {
	_, _, ok := p.Cell(ll)
	return ok
}

// LatLonAt returns the coordinate at the center of a cell.
func (p Projection) LatLonAt(col, row int) LatLon {
	dx := float64(col) + 0.5 - float64(p.Width)/2
	dy := float64(row) + 0.5 - float64(p.Height)/2
	return LatLon{
		Lat: p.View.Center.Lat - dy*LatPerRow(p.View.Zoom),
		Lon: normalizeLon(p.View.Center.Lon + dx*LonPerColumn(p.View.Zoom)),
	}
}

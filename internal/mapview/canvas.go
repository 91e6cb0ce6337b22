package mapview

import (
	"strings"

	"github.com/five82/thru/internal/geo"
)

// CellKind says what occupies a canvas cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellGrid
	CellTrack
	CellLabel
	CellMarker
	CellSelected
)

// Glyphs used on the canvas.
const (
	GlyphGrid     = '+'
	GlyphTrack    = '·'
	GlyphMarker   = '●'
	GlyphSelected = '◉'
)

// graticuleStep is the spacing of the background grid, in degrees.
const graticuleStep = 30.0

// Cell is one character of the map.
type Cell struct {
	Rune rune
	Kind CellKind
}

// Canvas is a projected character grid.
type Canvas struct {
	Width  int
	Height int
	cells  []Cell
}

// Layers is what gets drawn, bottom to top: graticule, track, labels,
// markers, then the highlighted marker.
type Layers struct {
	Markers []Marker
	Track   []geo.LatLon
	Labels  bool
}

// Draw projects layers onto a width x height canvas around view.
func Draw(view geo.Viewport, width, height int, layers Layers) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{Width: width, Height: height, cells: make([]Cell, width*height)}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
	if width == 0 || height == 0 {
		return c
	}
	proj := geo.Projection{View: view, Width: width, Height: height}

	c.drawGraticule(proj)
	c.drawTrack(proj, layers.Track)

	var selected *Marker
	for i := range layers.Markers {
		m := &layers.Markers[i]
		if m.Highlighted {
			selected = m
			continue
		}
		if col, row, ok := proj.Cell(m.At); ok {
			c.set(col, row, Cell{Rune: GlyphMarker, Kind: CellMarker})
		}
	}
	if selected != nil {
		if col, row, ok := proj.Cell(selected.At); ok {
			c.set(col, row, Cell{Rune: GlyphSelected, Kind: CellSelected})
			c.label(col+2, row, selected.Name, true)
		}
	}
	if layers.Labels {
		for _, m := range layers.Markers {
			if m.Highlighted {
				continue
			}
			if col, row, ok := proj.Cell(m.At); ok {
				c.label(col+2, row, m.Name, false)
			}
		}
	}
	return c
}

// At returns the cell at col,row. Out-of-range positions are empty.
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || col >= c.Width || row < 0 || row >= c.Height {
		return Cell{Rune: ' '}
	}
	return c.cells[row*c.Width+col]
}

// Row returns one line of cells.
func (c *Canvas) Row(row int) []Cell {
	if row < 0 || row >= c.Height {
		return nil
	}
	return c.cells[row*c.Width : (row+1)*c.Width]
}

// String renders the canvas without styling.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range c.Row(row) {
			b.WriteRune(cell.Rune)
		}
	}
	return b.String()
}

// Count returns how many cells hold kind.
func (c *Canvas) Count(kind CellKind) int {
	n := 0
	for _, cell := range c.cells {
		if cell.Kind == kind {
			n++
		}
	}
	return n
}

func (c *Canvas) set(col, row int, cell Cell) {
	if col < 0 || col >= c.Width || row < 0 || row >= c.Height {
		return
	}
	c.cells[row*c.Width+col] = cell
}

func (c *Canvas) drawGraticule(proj geo.Projection) {
	for lat := -60.0; lat <= 60; lat += graticuleStep {
		for lon := -180.0; lon < 180; lon += graticuleStep {
			if col, row, ok := proj.Cell(geo.LatLon{Lat: lat, Lon: lon}); ok {
				c.set(col, row, Cell{Rune: GlyphGrid, Kind: CellGrid})
			}
		}
	}
}

// drawTrack simplifies the track to roughly one point per cell and joins
// consecutive points with straight lines.
func (c *Canvas) drawTrack(proj geo.Projection, track []geo.LatLon) {
	if len(track) == 0 {
		return
	}
	points := geo.Simplify(track, geo.LonPerColumn(proj.View.Zoom)/2)

	prevCol, prevRow := 0, 0
	for i, p := range points {
		col, row, _ := proj.Cell(p)
		if i == 0 {
			c.set(col, row, Cell{Rune: GlyphTrack, Kind: CellTrack})
		} else {
			c.line(prevCol, prevRow, col, row)
		}
		prevCol, prevRow = col, row
	}
}

// line draws a Bresenham segment. Segments far off canvas are skipped.
func (c *Canvas) line(x0, y0, x1, y1 int) {
	limit := 4 * (c.Width + c.Height)
	if abs(x1-x0) > limit || abs(y1-y0) > limit {
		return
	}
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, Cell{Rune: GlyphTrack, Kind: CellTrack})
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// label writes text starting at col. Unforced labels only use free cells and
// stop at the first obstacle.
func (c *Canvas) label(col, row int, text string, force bool) {
	for _, r := range text {
		if col >= c.Width {
			return
		}
		cur := c.At(col, row)
		if !force && cur.Kind >= CellLabel {
			return
		}
		if force && cur.Kind >= CellMarker {
			return
		}
		c.set(col, row, Cell{Rune: r, Kind: CellLabel})
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

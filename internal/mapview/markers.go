// Package mapview derives what the terminal map shows from a Selection:
// trail markers, the route overlay and the camera.
package mapview

import (
	"github.com/five82/thru/internal/catalog"
	"github.com/five82/thru/internal/geo"
	"github.com/five82/thru/internal/state"
)

// Marker is one trail pinned on the map.
type Marker struct {
	Name        string
	At          geo.LatLon
	Highlighted bool
}

// Markers returns one marker per geocoded trail, in catalog order. Trails
// without a table entry are skipped. It is recomputed from scratch on every
// call; the only marker highlighted is the selected trail's.
func Markers(cat *catalog.Catalog, table *geo.Table, sel state.Selection) []Marker {
	markers := make([]Marker, 0, cat.Len())
	for _, t := range cat.Trails() {
		at, ok := table.Lookup(t.Name)
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			Name:        t.Name,
			At:          at,
			Highlighted: sel.IsSelected(t.Name),
		})
	}
	return markers
}

// Highlighted returns the highlighted marker, if any.
func Highlighted(markers []Marker) (Marker, bool) {
	for _, m := range markers {
		if m.Highlighted {
			return m, true
		}
	}
	return Marker{}, false
}

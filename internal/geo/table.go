package geo

import "strings"

// Entry places a named trail on the map.
type Entry struct {
	Name string
	At   LatLon
}

// Table maps trail names to coordinates. It is read-only after NewTable.
type Table struct {
	byName map[string]LatLon
}

// NewTable builds a lookup table. Entries with an empty name or an
// out-of-range coordinate are dropped; later duplicates win.
func NewTable(entries []Entry) *Table {
	t := &Table{byName: make(map[string]LatLon, len(entries))}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" || !e.At.Valid() {
			continue
		}
		t.byName[name] = e.At
	}
	return t
}

// Lookup returns the coordinate for a trail name.
func (t *Table) Lookup(name string) (LatLon, bool) {
	if t == nil {
		return LatLon{}, false
	}
	ll, ok := t.byName[name]
	return ll, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned when a trail has no name.
	ErrEmptyName = errors.New("trail name is empty")
	// ErrDuplicateName is returned when two trails share a name.
	ErrDuplicateName = errors.New("duplicate trail name")
)

// Catalog is the ordered, read-only set of trails loaded at startup.
type Catalog struct {
	trails []Trail
	index  map[string]int
}

// New validates trails and builds a Catalog. Names are trimmed and must be
// unique; the input slice is copied.
func New(trails []Trail) (*Catalog, error) {
	c := &Catalog{
		trails: make([]Trail, 0, len(trails)),
		index:  make(map[string]int, len(trails)),
	}
	for i, t := range trails {
		t = t.clone()
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			return nil, fmt.Errorf("trail %d: %w", i, ErrEmptyName)
		}
		if _, dup := c.index[t.Name]; dup {
			return nil, fmt.Errorf("trail %q: %w", t.Name, ErrDuplicateName)
		}
		c.index[t.Name] = len(c.trails)
		c.trails = append(c.trails, t)
	}
	return c, nil
}

// Len returns the number of trails.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.trails)
}

// At returns the trail at position i in catalog order.
func (c *Catalog) At(i int) (Trail, bool) {
	if c == nil || i < 0 || i >= len(c.trails) {
		return Trail{}, false
	}
	return c.trails[i].clone(), true
}

// ByName looks up a trail by its unique name.
func (c *Catalog) ByName(name string) (Trail, bool) {
	if c == nil {
		return Trail{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Trail{}, false
	}
	return c.trails[i].clone(), true
}

// Contains reports whether a trail with this name exists.
func (c *Catalog) Contains(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[name]
	return ok
}

// Trails returns a copy of every trail in catalog order.
func (c *Catalog) Trails() []Trail {
	if c == nil {
		return nil
	}
	out := make([]Trail, len(c.trails))
	for i, t := range c.trails {
		out[i] = t.clone()
	}
	return out
}

// Countries returns the number of distinct countries in the catalog.
func (c *Catalog) Countries() int {
	if c == nil {
		return 0
	}
	seen := make(map[string]struct{}, len(c.trails))
	for _, t := range c.trails {
		country := strings.TrimSpace(t.Country)
		if country == "" {
			continue
		}
		seen[country] = struct{}{}
	}
	return len(seen)
}

// Filter returns the trails whose name, subtitle, country, landscape or regions contain
// query, case-insensitively. An empty query returns every trail.
func (c *Catalog) Filter(query string) []Trail {
	query = strings.ToLower(strings.TrimSpace(query))
	if c == nil || query == "" {
		return c.Trails()
	}
	var out []Trail
	for _, t := range c.trails {
		if matches(t, query) {
			out = append(out, t.clone())
		}
	}
	return out
}

func matches(t Trail, query string) bool {
	fields := []string{t.Name, t.Subtitle, t.Country, t.Landscape}
	fields = append(fields, t.RegionsTraversed...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

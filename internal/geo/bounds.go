package geo

// Bounds is an axis-aligned lat/lon box. The zero value is empty.
type Bounds struct {
	Min, Max LatLon
	set      bool
}

// BoundsOf returns the smallest box containing every point.
func BoundsOf(points []LatLon) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// Extend returns b grown to include p.
func (b Bounds) Extend(p LatLon) Bounds {
	if !b.set {
		return Bounds{Min: p, Max: p, set: true}
	}
	if p.Lat < b.Min.Lat {
		b.Min.Lat = p.Lat
	}
	if p.Lat > b.Max.Lat {
		b.Max.Lat = p.Lat
	}
	if p.Lon < b.Min.Lon {
		b.Min.Lon = p.Lon
	}
	if p.Lon > b.Max.Lon {
		b.Max.Lon = p.Lon
	}
	return b
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool {
	return !b.set
}

// Center returns the midpoint of the box.
func (b Bounds) Center() LatLon {
	return LatLon{
		Lat: (b.Min.Lat + b.Max.Lat) / 2,
		Lon: (b.Min.Lon + b.Max.Lon) / 2,
	}
}

// Span returns the latitude and longitude extents in degrees.
func (b Bounds) Span() (lat, lon float64) {
	return b.Max.Lat - b.Min.Lat, b.Max.Lon - b.Min.Lon
}

// Contains reports whether p lies inside the box, edges included.
func (b Bounds) Contains(p LatLon) bool {
	if !b.set {
		return false
	}
	return p.Lat >= b.Min.Lat && p.Lat <= b.Max.Lat &&
		p.Lon >= b.Min.Lon && p.Lon <= b.Max.Lon
}

package geo

import "math"

// Simplify reduces a polyline with the Douglas-Peucker algorithm. epsilon is
// in degrees. The first and last points are always kept.
func Simplify(points []LatLon, epsilon float64) []LatLon {
	if len(points) < 3 || epsilon <= 0 {
		out := make([]LatLon, len(points))
		copy(out, points)
		return out
	}

	first, last := points[0], points[len(points)-1]
	maxDist, maxIdx := 0.0, 0
	for i := 1; i < len(points)-1; i++ {
		if d := segmentDistance(points[i], first, last); d > maxDist {
			maxDist, maxIdx = d, i
		}
	}

	if maxDist > epsilon {
		left := Simplify(points[:maxIdx+1], epsilon)
		right := Simplify(points[maxIdx:], epsilon)
		return append(left[:len(left)-1], right...)
	}
	return []LatLon{first, last}
}

// segmentDistance is the planar distance from p to the segment a-b.
func segmentDistance(p, a, b LatLon) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat
	if dx == 0 && dy == 0 {
		return math.Hypot(p.Lon-a.Lon, p.Lat-a.Lat)
	}
	t := ((p.Lon-a.Lon)*dx + (p.Lat-a.Lat)*dy) / (dx*dx + dy*dy)
	t = clampFloat(t, 0, 1)
	return math.Hypot(p.Lon-(a.Lon+t*dx), p.Lat-(a.Lat+t*dy))
}

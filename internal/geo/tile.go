package geo

import (
	"math"
	"strconv"
	"strings"
)

// TileXY returns the slippy-map tile containing ll at zoom.
func TileXY(ll LatLon, zoom int) (x, y int) {
	n := math.Exp2(float64(zoom))
	lat := clampFloat(ll.Lat, -85.05112878, 85.05112878)
	latRad := toRad(lat)

	x = int(math.Floor((normalizeLon(ll.Lon) + 180) / 360 * n))
	y = int(math.Floor((1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n))

	limit := int(n) - 1
	return min(max(x, 0), limit), min(max(y, 0), limit)
}

// TileTemplate expands Leaflet-style tile URL templates with the {s}, {z},
// {x}, {y} and {r} placeholders.
type TileTemplate struct {
	URL        string
	Subdomains string
	Retina     bool
}

// Tile returns the URL for tile (x, y) at zoom z. Subdomains rotate on x+y
// so neighbouring tiles spread across hosts.
func (t TileTemplate) Tile(x, y, z int) string {
	sub := ""
	if subs := []rune(t.Subdomains); len(subs) > 0 {
		sub = string(subs[abs(x+y)%len(subs)])
	}
	retina := ""
	if t.Retina {
		retina = "@2x"
	}
	return strings.NewReplacer(
		"{s}", sub,
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
		"{r}", retina,
	).Replace(t.URL)
}

// At returns the URL of the tile that contains ll at zoom.
func (t TileTemplate) At(ll LatLon, zoom int) string {
	x, y := TileXY(ll, zoom)
	return t.Tile(x, y, zoom)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package route

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseGPX streams a GPX document and collects its positions. Track points
// are preferred; route points are used when there are no track points, and
// waypoints only when neither exists.
func ParseGPX(r io.Reader) (Track, error) {
	dec := xml.NewDecoder(r)

	var (
		track                Track
		trkpts, rtepts, wpts []Point
		current              *Point
		kind                 string
		parents              []string
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Track{}, fmt.Errorf("decode gpx: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			parent := ""
			if len(parents) > 0 {
				parent = parents[len(parents)-1]
			}

			switch el.Name.Local {
			case "ele":
				if current == nil {
					break
				}
				var s string
				if err := dec.DecodeElement(&s, &el); err != nil {
					return Track{}, fmt.Errorf("decode gpx ele: %w", err)
				}
				if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
					current.Ele, current.HasEle = v, true
				}
				continue
			case "name":
				if track.Name != "" || (parent != "trk" && parent != "rte") {
					break
				}
				var s string
				if err := dec.DecodeElement(&s, &el); err != nil {
					return Track{}, fmt.Errorf("decode gpx name: %w", err)
				}
				track.Name = strings.TrimSpace(s)
				continue
			case "trkpt", "rtept", "wpt":
				if p, ok := pointAttrs(el.Attr); ok {
					current, kind = &p, el.Name.Local
				}
			}
			parents = append(parents, el.Name.Local)

		case xml.EndElement:
			if len(parents) > 0 {
				parents = parents[:len(parents)-1]
			}
			if current == nil || el.Name.Local != kind {
				continue
			}
			switch kind {
			case "trkpt":
				trkpts = append(trkpts, *current)
			case "rtept":
				rtepts = append(rtepts, *current)
			case "wpt":
				wpts = append(wpts, *current)
			}
			current = nil
		}
	}

	switch {
	case len(trkpts) > 0:
		track.Points = trkpts
	case len(rtepts) > 0:
		track.Points = rtepts
	default:
		track.Points = wpts
	}
	if len(track.Points) == 0 {
		return Track{}, ErrNoPoints
	}
	return track, nil
}

func pointAttrs(attrs []xml.Attr) (Point, bool) {
	var (
		p                Point
		haveLat, haveLon bool
	)
	for _, a := range attrs {
		switch a.Name.Local {
		case "lat":
			v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
			if err != nil || v < -90 || v > 90 {
				return Point{}, false
			}
			p.Lat, haveLat = v, true
		case "lon":
			v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
			if err != nil || v < -180 || v > 180 {
				return Point{}, false
			}
			p.Lon, haveLon = v, true
		}
	}
	return p, haveLat && haveLon
}

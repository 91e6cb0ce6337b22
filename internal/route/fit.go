package route

import (
	"fmt"
	"io"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
)

const (
	semicircleDegrees = 11930464.7111 // 2^31 / 180
	invalidPosition   = 0x7FFFFFFF
	invalidAltitude   = 0xFFFF
)

// ParseFIT reads the record messages of a FIT course or activity file and
// returns those with a valid position. Chained FIT files are read in full.
func ParseFIT(r io.Reader) (Track, error) {
	dec := decoder.New(r)

	var track Track
	for dec.Next() {
		fit, err := dec.Decode()
		if err != nil {
			return Track{}, fmt.Errorf("decode fit: %w", err)
		}
		for i := range fit.Messages {
			msg := &fit.Messages[i]
			switch msg.Num {
			case typedef.MesgNumCourse:
				if track.Name == "" {
					track.Name = mesgdef.NewCourse(msg).Name
				}
			case typedef.MesgNumRecord:
				if p, ok := recordPoint(mesgdef.NewRecord(msg)); ok {
					track.Points = append(track.Points, p)
				}
			}
		}
	}

	if len(track.Points) == 0 {
		return Track{}, ErrNoPoints
	}
	return track, nil
}

func recordPoint(rec *mesgdef.Record) (Point, bool) {
	if rec.PositionLat == invalidPosition || rec.PositionLong == invalidPosition {
		return Point{}, false
	}
	p := Point{
		Lat: float64(rec.PositionLat) / semicircleDegrees,
		Lon: float64(rec.PositionLong) / semicircleDegrees,
	}
	if rec.Altitude != invalidAltitude {
		// Stored as 5 * (meters + 500).
		p.Ele = float64(rec.Altitude)/5 - 500
		p.HasEle = true
	}
	return p, true
}

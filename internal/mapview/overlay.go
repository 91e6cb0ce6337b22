package mapview

import (
	"io"
	"log/slog"

	"github.com/five82/thru/internal/route"
	"github.com/five82/thru/internal/state"
)

// Request asks for a route to be fetched. Token identifies the selection
// that wanted it.
type Request struct {
	URL   string
	Token uint64
}

// Result is a completed fetch.
type Result struct {
	Token uint64
	Track route.Track
	Err   error
}

// Outcome reports what Apply did with a Result.
type Outcome int

const (
	// Discarded means the result belonged to an older selection.
	Discarded Outcome = iota
	// Failed means the fetch was current but produced no track.
	Failed
	// Shown means the track is now displayed.
	Shown
)

func (o Outcome) String() string {
	switch o {
	case Shown:
		return "shown"
	case Failed:
		return "failed"
	default:
		return "discarded"
	}
}

// Overlays holds at most one displayed route and the request it is waiting
// for.
type Overlays struct {
	logger  *slog.Logger
	url     string
	token   uint64
	track   route.Track
	shown   bool
	pending bool
	err     error
}

// NewOverlays returns an empty overlay manager.
func NewOverlays(logger *slog.Logger) *Overlays {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Overlays{logger: logger.With("component", "overlay")}
}

// Sync brings the overlay in line with sel. It returns a Request when a new
// route must be fetched. The previous track is removed first, so at most one
// route is ever visible. A selection without a route just clears the track.
func (o *Overlays) Sync(sel state.Selection) (Request, bool) {
	want := sel.Overlay
	if want.URL == o.url && want.Token == o.token {
		return Request{}, false
	}

	o.url = want.URL
	o.token = want.Token
	o.track = route.Track{}
	o.shown = false
	o.err = nil
	o.pending = want.Active()

	if !want.Active() {
		return Request{}, false
	}
	o.logger.Debug("requesting route", "url", want.URL, "token", want.Token)
	return Request{URL: want.URL, Token: want.Token}, true
}

// Apply installs a completed fetch. Results for any token other than the
// one last requested are discarded, as are results isCurrent rejects. A
// failed fetch leaves no overlay and is only logged.
func (o *Overlays) Apply(res Result, isCurrent func(uint64) bool) Outcome {
	if res.Token != o.token || !o.pending || (isCurrent != nil && !isCurrent(res.Token)) {
		o.logger.Debug("discarding stale route", "token", res.Token, "current", o.token)
		return Discarded
	}
	o.pending = false

	if res.Err == nil && res.Track.Len() == 0 {
		res.Err = route.ErrNoPoints
	}
	if res.Err != nil {
		o.err = res.Err
		o.logger.Warn("route overlay failed", "url", o.url, "error", res.Err)
		return Failed
	}

	o.track = res.Track
	o.shown = true
	o.logger.Info("route overlay loaded", "url", o.url, "points", res.Track.Len())
	return Shown
}

// Track returns the displayed route.
func (o *Overlays) Track() (route.Track, bool) {
	return o.track, o.shown
}

// Pending reports whether a fetch is outstanding.
func (o *Overlays) Pending() bool {
	return o.pending
}

// Err returns the last failure for the current route, if any.
func (o *Overlays) Err() error {
	return o.err
}

// URL returns the route currently requested or displayed.
func (o *Overlays) URL() string {
	return o.url
}

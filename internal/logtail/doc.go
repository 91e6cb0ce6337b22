// Package logtail reads the tail of the thru log file and parses its
// log/slog text lines for the in-app log pane.
//
// # Reading
//
// Read scans the file once and keeps at most twice maxLines lines while
// doing so, so memory stays proportional to the lines returned rather than
// the file size. A missing file yields no lines and no error. Tail does the
// same for any io.Reader.
//
//	lines, err := logtail.Read("~/.local/state/thru/thru.log", 200)
//
// # Parsing
//
// ParseEntry decodes the slog TextHandler format with go-logfmt:
//
//	time=2026-10-19T09:12:44.120+02:00 level=WARN msg="route overlay failed" component=overlay url=https://example.com/gr20.gpx error="route returned status 404"
//
// time, level, msg and component become fields; everything else is kept in
// order as Attrs. Lines that do not look like slog output are returned with
// only Raw set, never as errors.
package logtail

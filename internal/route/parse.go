package route

import (
	"bufio"
	"bytes"
	"io"
	"net/url"
	"path"
	"strings"
)

// Format identifies a route file encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatGPX
	FormatFIT
)

func (f Format) String() string {
	switch f {
	case FormatGPX:
		return "gpx"
	case FormatFIT:
		return "fit"
	default:
		return "unknown"
	}
}

// FormatFromName guesses the format from a file name or URL path.
func FormatFromName(name string) Format {
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		name = u.Path
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".gpx", ".xml":
		return FormatGPX
	case ".fit":
		return FormatFIT
	default:
		return FormatUnknown
	}
}

// sniff looks at the first bytes of a file. FIT files carry ".FIT" at
// offset 8 of their header; GPX is XML.
func sniff(head []byte) Format {
	if len(head) >= 12 && string(head[8:12]) == ".FIT" {
		return FormatFIT
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n\xef\xbb\xbf")
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return FormatGPX
	}
	return FormatUnknown
}

// Parse decodes a route file. The name's extension decides the format;
// when it is inconclusive the content is sniffed.
func Parse(name string, r io.Reader) (Track, error) {
	format := FormatFromName(name)
	if format == FormatUnknown {
		br := bufio.NewReader(r)
		head, _ := br.Peek(64)
		format = sniff(head)
		r = br
	}

	switch format {
	case FormatGPX:
		return ParseGPX(r)
	case FormatFIT:
		return ParseFIT(r)
	default:
		return Track{}, ErrUnsupportedFormat
	}
}

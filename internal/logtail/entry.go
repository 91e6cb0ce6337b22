package logtail

import (
	"strings"
	"time"

	"github.com/go-logfmt/logfmt"
)

// Attr is one key=value pair after the message.
type Attr struct {
	Key   string
	Value string
}

// Entry is a parsed log/slog text line.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Attrs     []Attr
	Raw       string
}

// ParseEntry splits a slog TextHandler line into its fields. ok is false for
// lines that carry neither level nor msg; Raw is always set.
func ParseEntry(line string) (Entry, bool) {
	e := Entry{Raw: line}
	pairs := splitPairs(line)
	found := false
	for _, p := range pairs {
		switch p.Key {
		case "time":
			if t, err := time.Parse(time.RFC3339Nano, p.Value); err == nil {
				e.Time = t
			}
		case "level":
			e.Level = strings.ToUpper(p.Value)
			found = true
		case "msg":
			e.Message = p.Value
			found = true
		case "component":
			e.Component = p.Value
		default:
			e.Attrs = append(e.Attrs, p)
		}
	}
	return e, found
}

// ParseLines parses every line, keeping unparsable ones as raw entries.
func ParseLines(lines []string) []Entry {
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, _ := ParseEntry(line)
		out = append(out, e)
	}
	return out
}

// AtLeast keeps entries whose level is at or above min. Entries without a
// level are kept.
func AtLeast(entries []Entry, min string) []Entry {
	floor := levelRank(min)
	var out []Entry
	for _, e := range entries {
		if e.Level == "" || levelRank(e.Level) >= floor {
			out = append(out, e)
		}
	}
	return out
}

func levelRank(level string) int {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return -4
	case "WARN", "WARNING":
		return 4
	case "ERROR":
		return 8
	default:
		return 0
	}
}

// splitPairs decodes the logfmt key=value pairs of one slog text line.
// Pairs decoded before a syntax error are kept.
func splitPairs(line string) []Attr {
	var pairs []Attr
	dec := logfmt.NewDecoder(strings.NewReader(line))
	for dec.ScanRecord() {
		for dec.ScanKeyval() {
			if dec.Value() == nil {
				continue
			}
			pairs = append(pairs, Attr{Key: string(dec.Key()), Value: string(dec.Value())})
		}
	}
	return pairs
}

package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if lines != nil {
		t.Fatalf("Read() = %v, want nil", lines)
	}
}

func TestParseEntry(t *testing.T) {
	line := `time=2026-10-19T09:12:44.120+02:00 level=WARN msg="route overlay failed" component=overlay url=https://example.com/gr20.gpx error="route returned status 404"`

	e, ok := ParseEntry(line)
	if !ok {
		t.Fatalf("ParseEntry() ok = false, want true")
	}
	if e.Level != "WARN" || e.Message != "route overlay failed" || e.Component != "overlay" {
		t.Fatalf("ParseEntry() = %#v", e)
	}
	if e.Time.IsZero() || e.Time.Minute() != 12 {
		t.Fatalf("Time = %v, want 09:12:44", e.Time)
	}
	want := []Attr{
		{Key: "url", Value: "https://example.com/gr20.gpx"},
		{Key: "error", Value: "route returned status 404"},
	}
	if !reflect.DeepEqual(e.Attrs, want) {
		t.Fatalf("Attrs = %#v, want %#v", e.Attrs, want)
	}
	if e.Raw != line {
		t.Fatalf("Raw = %q, want original line", e.Raw)
	}
}

func TestParseEntry_QuotedEscapes(t *testing.T) {
	e, ok := ParseEntry(`level=INFO msg="say \"hi\" to GR20" trail="Tour du Mont Blanc"`)
	if !ok {
		t.Fatalf("ParseEntry() ok = false")
	}
	if e.Message != `say "hi" to GR20` {
		t.Fatalf("Message = %q", e.Message)
	}
	if len(e.Attrs) != 1 || e.Attrs[0].Value != "Tour du Mont Blanc" {
		t.Fatalf("Attrs = %#v", e.Attrs)
	}
}

func TestParseEntry_PlainText(t *testing.T) {
	e, ok := ParseEntry("panic: something went wrong")
	if ok {
		t.Fatalf("ParseEntry() ok = true for plain text, entry %#v", e)
	}
	if e.Raw != "panic: something went wrong" {
		t.Fatalf("Raw = %q", e.Raw)
	}
}

func TestParseLinesAndAtLeast(t *testing.T) {
	entries := ParseLines([]string{
		"level=DEBUG msg=requesting",
		"",
		"level=INFO msg=loaded",
		"level=WARN msg=failed",
		"stray output",
		"level=ERROR msg=boom",
	})
	if len(entries) != 5 {
		t.Fatalf("ParseLines() returned %d entries, want 5", len(entries))
	}

	var got []string
	for _, e := range AtLeast(entries, "warn") {
		got = append(got, e.Message)
	}
	want := []string{"failed", "", "boom"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AtLeast(warn) messages = %#v, want %#v", got, want)
	}
}

func TestTail_LongInput(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 1000; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	got, err := Tail(strings.NewReader(b.String()), 3)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	want := []string{"line 998", "line 999", "line 1000"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tail = %v, want %v", got, want)
	}
}

func TestReadEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "thru.log")
	content := `time=2026-10-19T10:00:00.000Z level=INFO msg="thru starting" component=app trails=12
time=2026-10-19T10:00:01.000Z level=WARN msg="route fetch failed" component=overlay url=builtin:routes/x.gpx
`
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadEntries(logPath, 1)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Level != "WARN" || entries[0].Component != "overlay" {
		t.Fatalf("entry = %+v, want WARN from overlay", entries[0])
	}
}

func TestParseEntry_KeepsPairsBeforeSyntaxError(t *testing.T) {
	e, ok := ParseEntry(`level=ERROR component=route msg="cut off mid`)
	if !ok {
		t.Fatalf("ParseEntry() ok = false, want true from level")
	}
	if e.Level != "ERROR" || e.Component != "route" {
		t.Fatalf("ParseEntry() = %#v, want ERROR from route", e)
	}
}

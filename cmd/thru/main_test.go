package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/five82/thru/internal/catalog"
)

// execute runs the CLI with a config path that does not exist, so defaults
// and the embedded catalog are used.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.toml"),
		"--prefs", filepath.Join(dir, "prefs.toml"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestList_AllTrails(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13, "header plus 12 trails")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "Pacific Crest Trail")
	assert.Contains(t, out, "Michinoku Coastal Trail")
}

func TestList_Filter(t *testing.T) {
	out, err := execute(t, "list", "--filter", "japan")
	require.NoError(t, err)
	assert.Contains(t, out, "Michinoku Coastal Trail")
	assert.NotContains(t, out, "Pacific Crest Trail")

	out, err = execute(t, "list", "-f", "no-such-place")
	require.NoError(t, err)
	assert.Contains(t, out, "No trails found")
}

func TestShow_Text(t *testing.T) {
	out, err := execute(t, "show", "Pacific Crest Trail")
	require.NoError(t, err)
	assert.Contains(t, out, "Pacific Crest Trail")
	assert.Contains(t, out, "Coordinates:")
	assert.Contains(t, out, "Map tile:")
	assert.Contains(t, out, "builtin:routes/pct.gpx")
}

func TestShow_TOMLRoundTrips(t *testing.T) {
	out, err := execute(t, "show", "Te Araroa", "--format", "toml")
	require.NoError(t, err)

	var doc catalog.Document
	require.NoError(t, toml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Trails, 1)
	assert.Equal(t, "Te Araroa", doc.Trails[0].Name)
	require.Len(t, doc.Locations, 1)
	assert.Equal(t, "Te Araroa", doc.Locations[0].Name)
}

func TestShow_YAML(t *testing.T) {
	out, err := execute(t, "show", "Hexatrek", "-o", "yaml")
	require.NoError(t, err)

	var doc catalog.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Trails, 1)
	assert.Equal(t, "Hexatrek", doc.Trails[0].Name)
}

func TestShow_Errors(t *testing.T) {
	_, err := execute(t, "show", "Nowhere Trail")
	assert.ErrorContains(t, err, "not found")

	_, err = execute(t, "show", "Hexatrek", "--format", "json")
	assert.ErrorContains(t, err, "unknown format")
}

func TestValidate_Embedded(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "embedded catalog: 12 trails ok, 0 warnings")
}

func TestValidate_FileWithProblems(t *testing.T) {
	path := writeFile(t, "bad.toml", `
version = 1

[[trails]]
name = "Dup"
scenery_rating = "9/5"

[[trails]]
name = "Dup"
`)
	out, err := execute(t, "validate", path)
	require.ErrorIs(t, err, errInvalidCatalog)
	assert.Contains(t, out, "duplicate")
	assert.Contains(t, out, "warning:")
	assert.Contains(t, out, "errors")
}

func TestRoute_ByTrailName(t *testing.T) {
	out, err := execute(t, "route", "Pacific Crest Trail")
	require.NoError(t, err)
	assert.Contains(t, out, "Pacific Crest Trail (outline)")
	assert.Contains(t, out, "Points:    18")
	assert.Contains(t, out, "Elevation: 60-4009 m")
}

func TestRoute_FileRef(t *testing.T) {
	path := writeFile(t, "mini.gpx", `<?xml version="1.0"?>
<gpx version="1.1" xmlns="http://www.topografix.com/GPX/1/1">
  <trk><name>Mini</name><trkseg>
    <trkpt lat="45.0" lon="7.0"></trkpt>
    <trkpt lat="45.1" lon="7.1"></trkpt>
  </trkseg></trk>
</gpx>`)
	out, err := execute(t, "route", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Mini")
	assert.Contains(t, out, "Points:    2")
	assert.NotContains(t, out, "Elevation:")
}

func TestRoute_TrailWithoutRoute(t *testing.T) {
	_, err := execute(t, "route", "Hexatrek")
	assert.ErrorContains(t, err, "has no route")
}

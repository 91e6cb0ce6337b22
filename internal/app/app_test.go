package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/thru/internal/config"
)

func TestLoadTrails_Embedded(t *testing.T) {
	trails, err := LoadTrails("")
	if err != nil {
		t.Fatalf("LoadTrails: %v", err)
	}
	if trails.Catalog.Len() == 0 {
		t.Fatal("expected embedded trails")
	}
	if trails.Table.Len() != len(trails.Document.Locations) {
		t.Fatalf("table has %d entries, document has %d locations", trails.Table.Len(), len(trails.Document.Locations))
	}
	first, _ := trails.Catalog.At(0)
	if _, ok := trails.Table.Lookup(first.Name); !ok {
		t.Fatalf("first trail %q not located", first.Name)
	}
}

func TestLoadTrails_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trails.yaml")
	doc := `version: 1
trails:
  - name: Test Trail
    country: Nowhere
    scenery_rating: 4/5
    budget_level: 2
locations:
  - name: Test Trail
    lat: 10
    lon: 20
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	trails, err := LoadTrails(path)
	if err != nil {
		t.Fatalf("LoadTrails: %v", err)
	}
	if trails.Catalog.Len() != 1 {
		t.Fatalf("expected 1 trail, got %d", trails.Catalog.Len())
	}
	at, ok := trails.Table.Lookup("Test Trail")
	if !ok || at.Lat != 10 || at.Lon != 20 {
		t.Fatalf("unexpected location %+v ok=%v", at, ok)
	}
}

func TestLoadTrails_MissingFile(t *testing.T) {
	if _, err := LoadTrails(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing catalog")
	}
}

func TestCatalogPath(t *testing.T) {
	cfg := config.Default()
	cfg.CatalogPath = "/etc/thru/trails.toml"

	got, err := CatalogPath(cfg, "")
	if err != nil || got != cfg.CatalogPath {
		t.Fatalf("expected config path, got %q err=%v", got, err)
	}

	override := filepath.Join(t.TempDir(), "mine.yaml")
	got, err = CatalogPath(cfg, override)
	if err != nil || got != override {
		t.Fatalf("expected override, got %q err=%v", got, err)
	}
}

func TestNewSurface_UsesMapConfig(t *testing.T) {
	trails, err := LoadTrails("")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Map.CenterLat = 45
	cfg.Map.CenterLon = 7
	cfg.Map.Zoom = 4

	surface := NewSurface(cfg, trails, nil)
	home := surface.Camera().Home()
	if home.Center.Lat != 45 || home.Center.Lon != 7 || home.Zoom != 4 {
		t.Fatalf("unexpected home viewport %+v", home)
	}
	if url := surface.TileURL(); !strings.Contains(url, "basemaps.cartocdn.com") {
		t.Fatalf("unexpected tile url %q", url)
	}
}

func TestNewLogger_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.Info("booted")
	logger.With("component", "selection").Info("selected", "trail", "GR20")
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "component=app") {
		t.Fatalf("default component missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "component=selection") || strings.Contains(lines[1], "component=app") {
		t.Fatalf("explicit component not kept: %q", lines[1])
	}
}

func TestOpenLog_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "thru.log")
	logger, closer, err := OpenLog(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Fatalf("log line missing: %q", data)
	}
}

func TestOpenLog_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := OpenLog("", slog.LevelInfo)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewLogger_ComponentStaysTopLevelInGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.WithGroup("route").Info("fetched", "points", 18)

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " component=app ") {
		t.Fatalf("component not top level: %q", line)
	}
	if strings.Contains(line, "route.component") {
		t.Fatalf("component nested in group: %q", line)
	}
	if !strings.Contains(line, "route.points=18") {
		t.Fatalf("group attr missing: %q", line)
	}
}

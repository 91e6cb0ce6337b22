package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/five82/thru/internal/catalog"
	"github.com/five82/thru/internal/config"
	"github.com/five82/thru/internal/geo"
	"github.com/five82/thru/internal/mapview"
	"github.com/five82/thru/internal/prefs"
	"github.com/five82/thru/internal/route"
	"github.com/five82/thru/internal/state"
	"github.com/five82/thru/internal/ui"
)

// Options configure the thru application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/thru/prefs.toml
	CatalogPath string // overrides the config file; empty uses it or the embedded catalog
}

// Trails is a loaded catalog together with its geocoding table.
type Trails struct {
	Document catalog.Document
	Catalog  *catalog.Catalog
	Table    *geo.Table
}

// LoadTrails reads a catalog file, or the embedded catalog when path is
// empty, and builds its lookup tables.
func LoadTrails(path string) (Trails, error) {
	doc, err := catalog.Load(path)
	if err != nil {
		return Trails{}, err
	}
	cat, err := doc.Build()
	if err != nil {
		return Trails{}, fmt.Errorf("build catalog: %w", err)
	}
	entries := make([]geo.Entry, 0, len(doc.Locations))
	for _, loc := range doc.Locations {
		entries = append(entries, geo.Entry{Name: loc.Name, At: geo.LatLon{Lat: loc.Lat, Lon: loc.Lon}})
	}
	return Trails{Document: doc, Catalog: cat, Table: geo.NewTable(entries)}, nil
}

// NewRouteClient builds the route fetcher from config. Built-in routes
// resolve against the embedded catalog data.
func NewRouteClient(cfg config.Config) *route.Client {
	return route.NewClient(
		route.WithTimeout(cfg.Route.Timeout),
		route.WithUserAgent(cfg.Route.UserAgent),
		route.WithBuiltin(catalog.Routes()),
	)
}

// NewSurface builds the map surface from the [map] config section.
func NewSurface(cfg config.Config, trails Trails, logger *slog.Logger) *mapview.Surface {
	return mapview.NewSurface(trails.Catalog, trails.Table, mapview.Options{
		Home: geo.Viewport{
			Center: geo.LatLon{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon},
			Zoom:   cfg.Map.Zoom,
		},
		MinZoom: cfg.Map.MinZoom,
		MaxZoom: cfg.Map.MaxZoom,
		Tiles:   TileTemplate(cfg),
	}, logger)
}

// TileTemplate returns the configured tile URL template.
func TileTemplate(cfg config.Config) geo.TileTemplate {
	return geo.TileTemplate{URL: cfg.Map.TileURL, Subdomains: cfg.Map.Subdomains}
}

// CatalogPath picks the catalog file: the explicit override, then config.
func CatalogPath(cfg config.Config, override string) (string, error) {
	if override == "" {
		return cfg.CatalogPath, nil
	}
	return config.ExpandPath(override)
}

// Run boots the thru TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile := cfg.LogFile
	logger, closer, err := OpenLog(logFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "thru: logging disabled: %v\n", err)
		logger, closer, logFile = slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), ""
	}
	defer func() { _ = closer.Close() }()

	catalogPath, err := CatalogPath(cfg, opts.CatalogPath)
	if err != nil {
		return fmt.Errorf("resolve catalog path: %w", err)
	}
	trails, err := LoadTrails(catalogPath)
	if err != nil {
		return err
	}
	if missing := trails.Document.Unlocated(); len(missing) > 0 {
		logger.Warn("trails without coordinates are left off the map", "trails", missing)
	}
	logger.Info("thru starting",
		"trails", trails.Catalog.Len(),
		"located", trails.Table.Len(),
		"catalog", catalogPathLabel(catalogPath),
	)

	userPrefs := prefs.Load(opts.PrefsPath)

	err = ui.Run(ui.Options{
		Context:     ctx,
		Store:       state.NewStore(trails.Catalog, logger),
		Catalog:     trails.Catalog,
		Surface:     NewSurface(cfg, trails, logger),
		Fetcher:     NewRouteClient(cfg),
		Logger:      logger,
		Attribution: cfg.Map.Attribution,
		LogFile:     logFile,
		ThemeName:   userPrefs.Theme,
		Labels:      userPrefs.Labels,
		PrefsPath:   opts.PrefsPath,
	})
	logger.Info("thru stopped", "error", err)
	return err
}

func catalogPathLabel(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

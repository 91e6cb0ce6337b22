package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings for thru.
type Config struct {
	CatalogPath string // empty uses the embedded catalog
	LogFile     string
	LogLevel    slog.Level
	Map         MapConfig
	Route       RouteConfig
}

// MapConfig describes the tile provider and the default viewport.
type MapConfig struct {
	TileURL     string
	Subdomains  string
	Attribution string
	CenterLat   float64
	CenterLon   float64
	Zoom        int
	MinZoom     int
	MaxZoom     int
}

// RouteConfig controls route overlay fetching.
type RouteConfig struct {
	Timeout   time.Duration
	UserAgent string
}

const (
	defaultConfigPath  = "~/.config/thru/config.toml"
	defaultLogFile     = "~/.local/state/thru/thru.log"
	defaultTileURL     = "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png"
	defaultSubdomains  = "abcd"
	defaultAttribution = "(c) OpenStreetMap contributors (c) CARTO"
	defaultCenterLat   = 30.0
	defaultCenterLon   = 0.0
	defaultZoom        = 2
	defaultMinZoom     = 2
	defaultMaxZoom     = 10
	defaultTimeout     = 10 * time.Second
	defaultUserAgent   = "thru/0.1"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: slog.LevelInfo,
		Map: MapConfig{
			TileURL:     defaultTileURL,
			Subdomains:  defaultSubdomains,
			Attribution: defaultAttribution,
			CenterLat:   defaultCenterLat,
			CenterLon:   defaultCenterLon,
			Zoom:        defaultZoom,
			MinZoom:     defaultMinZoom,
			MaxZoom:     defaultMaxZoom,
		},
		Route: RouteConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
	}
}

type rawConfig struct {
	Catalog  string `toml:"catalog"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
	Map      struct {
		TileURL     string   `toml:"tile_url"`
		Subdomains  string   `toml:"subdomains"`
		Attribution string   `toml:"attribution"`
		CenterLat   *float64 `toml:"center_lat"`
		CenterLon   *float64 `toml:"center_lon"`
		Zoom        *int     `toml:"zoom"`
		MinZoom     *int     `toml:"min_zoom"`
		MaxZoom     *int     `toml:"max_zoom"`
	} `toml:"map"`
	Route struct {
		Timeout   string `toml:"timeout"`
		UserAgent string `toml:"user_agent"`
	} `toml:"route"`
}

// Load locates and parses the thru config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if catalog := strings.TrimSpace(raw.Catalog); catalog != "" {
		cfg.CatalogPath = mustExpand(catalog)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	cfg.LogLevel = parseLevel(raw.LogLevel)

	applyMap(&cfg.Map, raw)

	if ua := strings.TrimSpace(raw.Route.UserAgent); ua != "" {
		cfg.Route.UserAgent = ua
	}
	if timeout := strings.TrimSpace(raw.Route.Timeout); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Route.Timeout = d
		}
	}

	return cfg, nil
}

func applyMap(m *MapConfig, raw rawConfig) {
	if v := strings.TrimSpace(raw.Map.TileURL); v != "" {
		m.TileURL = v
	}
	if v := strings.TrimSpace(raw.Map.Subdomains); v != "" {
		m.Subdomains = v
	}
	if v := strings.TrimSpace(raw.Map.Attribution); v != "" {
		m.Attribution = v
	}
	if raw.Map.CenterLat != nil && *raw.Map.CenterLat >= -90 && *raw.Map.CenterLat <= 90 {
		m.CenterLat = *raw.Map.CenterLat
	}
	if raw.Map.CenterLon != nil && *raw.Map.CenterLon >= -180 && *raw.Map.CenterLon <= 180 {
		m.CenterLon = *raw.Map.CenterLon
	}
	if raw.Map.MinZoom != nil && *raw.Map.MinZoom >= 0 {
		m.MinZoom = *raw.Map.MinZoom
	}
	if raw.Map.MaxZoom != nil && *raw.Map.MaxZoom >= m.MinZoom {
		m.MaxZoom = *raw.Map.MaxZoom
	}
	if m.MaxZoom < m.MinZoom {
		m.MaxZoom = m.MinZoom
	}
	if raw.Map.Zoom != nil {
		m.Zoom = *raw.Map.Zoom
	}
	m.Zoom = clampInt(m.Zoom, m.MinZoom, m.MaxZoom)
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

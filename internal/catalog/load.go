package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed data/trails.toml data/routes/*.gpx
var embedded embed.FS

const defaultDocument = "data/trails.toml"

// Format names a catalog file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Document is the on-disk shape of a catalog file.
type Document struct {
	Version   int        `toml:"version" yaml:"version"`
	Trails    []Trail    `toml:"trails" yaml:"trails"`
	Locations []Location `toml:"locations" yaml:"locations"`
}

// FormatFor picks a Format from a file extension. Unknown extensions are TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode reads a Document in the given format.
func Decode(r io.Reader, format Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read catalog: %w", err)
	}

	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("parse catalog yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parse catalog toml: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported catalog format %q", format)
	}
	return doc, nil
}

// Load reads the catalog file at path. An empty path returns the embedded
// default document.
func Load(path string) (Document, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Decode(file, FormatFor(path))
}

// Default returns the catalog shipped inside the binary.
func Default() (Document, error) {
	file, err := embedded.Open(defaultDocument)
	if err != nil {
		return Document{}, fmt.Errorf("open embedded catalog: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Decode(file, FormatTOML)
}

// Routes exposes the route files bundled with the default catalog. Trails
// reference them as "builtin:routes/<file>".
func Routes() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// Build validates a Document and returns its Catalog.
func (d Document) Build() (*Catalog, error) {
	return New(d.Trails)
}

// Unlocated returns the names of trails that have no matching location.
func (d Document) Unlocated() []string {
	located := make(map[string]struct{}, len(d.Locations))
	for _, loc := range d.Locations {
		located[strings.TrimSpace(loc.Name)] = struct{}{}
	}
	var missing []string
	for _, t := range d.Trails {
		if _, ok := located[strings.TrimSpace(t.Name)]; !ok {
			missing = append(missing, t.Name)
		}
	}
	return missing
}

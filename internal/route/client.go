package route

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Fetcher loads a route track by reference.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (Track, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// BuiltinScheme prefixes references to route files bundled with the binary.
const BuiltinScheme = "builtin:"

const (
	defaultUserAgent = "thru/0.1"
	defaultTimeout   = 10 * time.Second
	maxRouteBytes    = 32 << 20
)

// Client fetches route files over http(s), from file:// URLs, plain paths,
// or the bundled builtin: files.
type Client struct {
	http      *http.Client
	userAgent string
	builtin   fs.FS
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with HTTP requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithBuiltin sets the filesystem that serves builtin: references.
func WithBuiltin(fsys fs.FS) Option {
	return func(c *Client) {
		c.builtin = fsys
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch loads and parses the route at ref.
func (c *Client) Fetch(ctx context.Context, ref string) (Track, error) {
	if c == nil {
		return Track{}, fmt.Errorf("client is nil")
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Track{}, fmt.Errorf("route reference is empty")
	}

	switch {
	case strings.HasPrefix(ref, BuiltinScheme):
		return c.fetchBuiltin(strings.TrimPrefix(ref, BuiltinScheme))
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return c.fetchHTTP(ctx, ref)
	case strings.HasPrefix(ref, "file://"):
		u, err := url.Parse(ref)
		if err != nil {
			return Track{}, fmt.Errorf("parse route url %q: %w", ref, err)
		}
		return c.fetchFile(u.Path)
	default:
		return c.fetchFile(ref)
	}
}

func (c *Client) fetchHTTP(ctx context.Context, ref string) (Track, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return Track{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/gpx+xml, application/octet-stream;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Track{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Track{}, fmt.Errorf("route %s returned status %d", ref, resp.StatusCode)
	}

	track, err := Parse(ref, io.LimitReader(resp.Body, maxRouteBytes))
	if err != nil {
		return Track{}, fmt.Errorf("parse route %s: %w", ref, err)
	}
	return track, nil
}

func (c *Client) fetchFile(path string) (Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return Track{}, fmt.Errorf("open route: %w", err)
	}
	defer func() { _ = file.Close() }()

	track, err := Parse(path, file)
	if err != nil {
		return Track{}, fmt.Errorf("parse route %s: %w", path, err)
	}
	return track, nil
}

func (c *Client) fetchBuiltin(name string) (Track, error) {
	if c.builtin == nil {
		return Track{}, fmt.Errorf("no builtin routes available for %q", name)
	}
	file, err := c.builtin.Open(name)
	if err != nil {
		return Track{}, fmt.Errorf("open builtin route: %w", err)
	}
	defer func() { _ = file.Close() }()

	track, err := Parse(name, file)
	if err != nil {
		return Track{}, fmt.Errorf("parse route %s: %w", name, err)
	}
	return track, nil
}

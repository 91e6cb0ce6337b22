// Package config loads the thru configuration file.
//
// # Overview
//
// The file is optional TOML at ~/.config/thru/config.toml. It chooses the
// catalog source, the log destination, the tile provider and default map
// viewport, and the route overlay fetch settings.
//
// # Resolution
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/thru/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing, empty or out of range,
//     the default for that field is kept
//
// # Format
//
//	catalog = "~/trails.yaml"          # empty uses the embedded catalog
//	log_file = "~/.local/state/thru/thru.log"
//	log_level = "info"
//
//	[map]
//	tile_url = "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png"
//	subdomains = "abcd"
//	center_lat = 30.0
//	center_lon = 0.0
//	zoom = 2
//	min_zoom = 2
//	max_zoom = 10
//
//	[route]
//	timeout = "10s"
//	user_agent = "thru/0.1"
//
// The zoom is always clamped into [min_zoom, max_zoom]. Paths starting with
// ~ are expanded against the home directory and made absolute.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error. thru works out of the box.
package config

// Package app is the composition root for thru.
//
// Run loads the config file, opens the log file, loads the trail catalog
// (a file or the embedded default) and its geocoding table, then wires the
// selection store, the map surface and the route client into the Bubble Tea
// UI. It blocks until the user quits or the context is cancelled.
//
// The CLI subcommands reuse LoadTrails, NewRouteClient and TileTemplate so
// they see exactly the data and settings the TUI does.
//
// Logging failures never stop the application: when the log file cannot be
// opened, a note is printed to stderr and logging is discarded.
package app

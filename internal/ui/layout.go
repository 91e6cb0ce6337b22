package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutSideListWidth is the width of the trail list beside the map.
	LayoutSideListWidth = 32

	// LayoutMinMapWidth is the narrowest map pane drawn next to the list.
	LayoutMinMapWidth = 30
)

// Card grid sizing.
const (
	CardWidth  = 40
	CardHeight = 11
)

// Log pane limits.
const (
	// LogTailLines is how many lines the log pane reads from the log file.
	LogTailLines = 500

	// LogRefreshInterval is how often the open log pane re-reads the file.
	LogRefreshInterval = 2 * time.Second
)

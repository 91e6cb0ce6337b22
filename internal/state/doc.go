// Package state owns the trail Selection shared by every thru surface.
//
// # Overview
//
// The map pane, the card grid and the detail panel never talk to each other.
// Each one reads a Selection snapshot, renders from it, and reports what the
// user did as an Intent. The Store applies intents one at a time and hands
// back the new Selection.
//
//	Map pane / Grid / Detail:        Store:
//	┌──────────────────────┐        ┌──────────────────────┐
//	│ key press / click    │ Intent │ Apply()              │
//	│        ↓             │───────→│   SelectTrail()      │
//	│ render(Selection)    │←───────│   OpenDetail() ...   │
//	└──────────────────────┘        └──────────────────────┘
//
// # Core Types
//
// Selection:
//   - Selected trail name (empty for none)
//   - DetailOpen, meaningful only with a selection
//   - ViewMode (Map or Grid)
//   - Overlay, the route the map should show and its request token
//
// Intent:
//   - Select: a marker or card click, never opens the detail panel
//   - Open: the explicit "learn more" action
//   - Close: dismiss the detail panel, keep the selection
//   - Clear: drop everything, valid from any state
//   - SetMode: switch presentation, keep the selection
//
// # Overlay Tokens
//
// Route fetches run off the UI loop. Every time the overlay URL changes the
// Store issues a new token; the fetch is tagged with it and its result is
// applied only while IsCurrent(token) holds. Selecting trail A then trail B
// therefore always ends with B's route, whichever fetch finishes first.
// Re-selecting the trail that is already shown keeps the token, so the
// in-flight fetch still lands.
//
// # Invalid Input
//
// Names that are not in the catalog leave the Selection untouched and are
// logged at warn level. No intent can modify the catalog.
//
// # Concurrency Model
//
// Bubble Tea delivers messages on one goroutine, but fetch commands finish
// on others, so the Store keeps a sync.RWMutex. Selection is a plain value
// and Snapshot returns a copy.
package state

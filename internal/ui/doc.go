// Package ui provides the Bubble Tea terminal interface for thru.
//
// # Architecture Overview
//
// Model is the root tea.Model. It never decides what is selected: every key
// that changes the selection becomes a state.Intent, the state.Store applies
// it, and the returned Selection is what every pane renders from. After each
// intent the map surface is synced; when the selected trail's route differs
// from the one on screen, a fetch command runs off the update loop and
// reports back with an overlayLoadedMsg carrying its token.
//
// # Package Structure
//
//   - app.go: Model, Update, intent dispatch, commands and Run
//   - keys.go: key bindings (bubbles/key)
//   - header.go: header, command bar and status line
//   - mappane.go: map canvas and the trail list beside it
//   - grid.go: "Discover Epic Trails" card grid
//   - detail.go: detail modal (bubbles/viewport)
//   - logs.go: log pane fed by internal/logtail
//   - help.go: help overlay generated from the key map
//   - theme.go, style_helpers.go, box.go, strings.go: styling
//
// # Interaction Model
//
// Selecting and reading are separate actions everywhere:
//
//   - enter selects the trail under the cursor (highlight, popup, route)
//   - l or m opens the detail modal ("Learn more")
//   - esc closes the modal, and outside it clears the selection
//   - r sends the camera home and clears the selection
//   - v switches between map and grid without touching the selection
//
// # Stale Routes
//
// Selecting two trails quickly starts two fetches. Whichever finishes
// first, only the one whose token is still current is drawn; the other is
// dropped by mapview.Surface.Apply.
//
// # Preferences
//
// The theme (T) and map labels (t) are saved through internal/prefs as soon
// as they change. Save failures are logged and otherwise ignored.
package ui

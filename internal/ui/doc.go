// Package ui provides the terminal user interface for AidFinder.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. It holds the per-session filter state
// and recomputes the visible program list through search.Index whenever a
// filter, the language or the saved set changes. Favorites and preferences
// write through their stores on every change.
//
// # Package Structure
//
//   - app.go: Model, Update loop, filter cycling and Run
//   - actions.go: Favorite toggle and the open, share and copy commands
//   - view.go: Header, filter bar, card list and status line rendering
//   - help.go: Localized keyboard shortcut overlay
//   - keys.go: Key bindings
//   - theme.go: Light and dark palettes
//   - style_helpers.go: Background-preserving render helpers
//
// # Screen Layout
//
//	┌──────────────────────────────────────────────────────────┐
//	│ AidFinder              English · light · 21 of 21 programs│ header
//	│ Search /   Category: All   State: All States             │ filter bar
//	│ ▌ ★ SNAP [Food]  Nationwide                              │ card
//	│     Monthly benefits to buy groceries...                 │
//	│ ...                                                      │
//	│ ? help  q quit                                           │ status line
//	└──────────────────────────────────────────────────────────┘
//
// # Filtering
//
// The category selector cycles All, Saved and the six categories; the state
// selector cycles the all-regions entry and every state code. Both are kept
// as language-independent positions and relabeled when the language changes,
// so a selected category survives a language switch. Search filters live as
// the user types.
//
// # Side Effects
//
// Opening links, sharing and copying run as tea.Cmd functions against the
// injected share.Opener and share.Copier so the update loop never blocks on
// the desktop. Failures are logged and shown on the status line.
package ui

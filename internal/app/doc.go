// Package app provides the orchestration layer for the AidFinder application.
//
// # Overview
//
// This package wires together configuration, logging, storage, the program
// catalog and the UI. It is the composition root where all dependencies are
// initialized and connected. The CLI subcommands share the same setup
// through Open.
//
// # Startup
//
//  1. Load config from ~/.config/aidfinder/config.toml and AIDFINDER_* vars
//  2. Open the zap log file
//  3. Open the configured key-value backend (file, sqlite or memory)
//  4. Read favorites and preferences; unreadable values fall back silently
//  5. Index the embedded catalog for searching
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config file and env
//	       ├─────> logging.New()      File logger
//	       ├─────> kv.Open()          Persistent storage
//	       ├─────> favorites.Load()   Saved program links
//	       ├─────> prefs.Load()       Language and theme
//	       ├─────> search.NewIndex()  Precomputed search text
//	       └─────> ui.Run()           Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Open and Run):
//   - Configuration file invalid
//   - Log file or storage backend cannot be opened
//   - Unsupported --lang override
//
// Recoverable errors (logged, the session continues):
//   - Corrupt favorites or preference values
//   - Failed writes when toggling favorites or changing preferences
package app

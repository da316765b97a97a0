// Package app provides the orchestration layer for the minimarket application.
//
// # Overview
//
// This package wires together configuration, preferences, the session, the
// order source and the UI. It is the composition root where every
// dependency is initialized and connected.
//
// # Startup
//
//  1. Load config.toml and MINIMARKET_* environment overrides
//  2. Route the standard logger to the log file
//  3. Load display preferences (theme, page size)
//  4. Open the session file written by the storefront's login tooling
//  5. Build the order source named by the config: the storefront HTTP API,
//     a SQLite or PostgreSQL table, or a JSON export in S3
//  6. Start the session watcher
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read config and env
//	       ├─────> prefs.Load()      Theme and page size
//	       ├─────> session.Open()    Signed-in state
//	       ├─────> openFetcher()     storefront | orderdb | orderblob
//	       ├─────> WatchSession()    Background session reloads
//	       └─────> ui.Run()          Start TUI (blocks)
//
// # Session Watching
//
// The watcher re-reads the session file every two seconds by default. A
// change is signalled to the UI, which reclassifies the menu and leaves any
// screen the new role may not open. Read failures are logged and back off
// exponentially up to 30 seconds.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration or an unparseable session file
//   - An order source that cannot be constructed
//
// Recoverable errors (logged, shown in the UI):
//   - Order fetch failures, shown as an empty table with the error
//   - Session reload failures
//   - Preference writes
package app

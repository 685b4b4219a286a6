// Package tui provides the terminal user interface for hedgeview.
//
// The TUI is built on Bubble Tea and follows a Model-View-Controller split:
//
//   - model (internal/tui/model/): application state, key map, messages and
//     the commands that talk to the backend
//   - view (internal/tui/view/): pure rendering of the model
//   - controller (internal/tui/controller/): message dispatch, key handling
//     and the program lifecycle
//
// Supporting packages:
//
//   - design: colors, styles and width-safe icons
//   - components: badge, card, status indicator, error banner and status bar
//   - utils: string helpers
//
// # Screens
//
// The main screen shows two panes. The models pane lists the cloud language
// models of every provider, sorted by provider name, with an error banner
// above the list when the last fetch failed. The report pane shows the
// investment report node: its status (IN_PROGRESS or IDLE), a results hint
// and a "view output" action that opens the output dialog.
//
// # Key Bindings
//
//   - tab / shift+tab: switch pane
//   - ↑/↓ or j/k: move through the model list
//   - enter: open the output dialog (report pane)
//   - esc: close the dialog or overlay
//   - r: fetch the providers again
//   - y: copy the selected model name, the dialog output or the log
//   - L: activity log, h: help, D: toggle dark mode
//   - q / ctrl+c: quit
//
// The provider fetch runs once when the program starts and again only on r.
// Every fetch is bound to a context that is cancelled on quit; results that
// arrive afterwards, or belong to a superseded fetch, are dropped.
package tui

// Package tui is the interactive customer browser.
//
// The interface is a Bubble Tea program split the usual way:
//
//   - model: all view state, message types and the commands that talk to
//     the backend. Selection is tracked by customer ID so it survives list
//     rebuilds.
//   - controller: the update loop. Key handling is routed by input mode
//     (main, search, email modal, note), backend results are matched
//     against request generations so stale responses are dropped.
//   - view: pure rendering of the model into the list and detail panels,
//     status buttons, status bar and overlays (help, activity log, email).
//   - components and design: reusable panels, the status bar and the
//     lipgloss styles, including the row background colors.
//
// The entry point is controller.NewProgram.
package tui

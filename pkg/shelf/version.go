// Package shelf exposes build metadata shared by the CLI and TUI.
package shelf

// Version is the shelf release version.
const Version = "0.3.0"

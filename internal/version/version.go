// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.1.0"

// Milestones:
// 0.1.0 - Initial release: Horizons-backed positions, analytic nodes/Chiron,
//         eight house systems, sidereal zodiacs, TUI chart view, JSON export

package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - headers
	ColorSecondary Color = "86" // Cyan - current worktree marker
)

// Removal outcome colors
const (
	ColorBlocked Color = "3"   // Yellow - guard refused
	ColorFailed  Color = "1"   // Red - error or partial failure
	ColorKept    Color = "33"  // Blue - branch kept
	ColorRemoved Color = "2"   // Green - removed
	ColorPending Color = "141" // Purple - scheduled in background
)

// UI semantic colors
const (
	ColorError  Color = "196" // Bright red
	ColorMuted  Color = "241" // Gray - secondary text
	ColorNormal Color = "250" // Default text
	ColorSubtle Color = "245" // Light gray - labels
	ColorWarn   Color = "214" // Orange - warnings, operations in progress
)

// Git colors
const (
	ColorAdditions Color = "2" // Green
	ColorAhead     Color = "2"
	ColorBehind    Color = "1"
	ColorDeletions Color = "1" // Red
)

package theme

import "github.com/charmbracelet/lipgloss"

// Table styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	CurrentStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Git diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	AheadStyle = lipgloss.NewStyle().
			Foreground(ColorAhead)

	BehindStyle = lipgloss.NewStyle().
			Foreground(ColorBehind)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)

	StateStyle = lipgloss.NewStyle().
			Foreground(ColorWarn).
			Bold(true)
)

// Removal outcome styles
var (
	BlockedStyle = lipgloss.NewStyle().
			Foreground(ColorBlocked).
			Bold(true)

	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorFailed).
			Bold(true)

	KeptStyle = lipgloss.NewStyle().
			Foreground(ColorKept)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorPending)

	RemovedStyle = lipgloss.NewStyle().
			Foreground(ColorRemoved)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarn)
)

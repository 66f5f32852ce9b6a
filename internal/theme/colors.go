package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Task status colors
const (
	ColorActive    Color = "2"  // Green - being worked on
	ColorCancelled Color = "8"  // Gray - abandoned
	ColorCompleted Color = "33" // Blue - done
	ColorOverrun   Color = "1"  // Red - ran past the threshold
	ColorPaused    Color = "3"  // Yellow - stopped early
)

// Priority colors
const (
	ColorUrgent Color = "196" // Bright red
	ColorHigh   Color = "214" // Orange
	ColorMedium Color = "226" // Yellow
	ColorLow    Color = "245" // Light gray
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorHint      Color = "178" // Gold - error affordances
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorWarning   Color = "214" // Orange
)

// Chart colors
const (
	ColorChartEstimated Color = "141" // Purple
	ColorChartSpent     Color = "46"  // Green
)

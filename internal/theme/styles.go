package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/tempo/internal/domain"
)

// Main output styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Feedback styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorHint)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)
)

// Chart styles
var (
	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ChartEstimatedStyle = lipgloss.NewStyle().
				Foreground(ColorChartEstimated)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ChartSpentStyle = lipgloss.NewStyle().
			Foreground(ColorChartSpent)
)

var statusColors = map[domain.TaskStatus]Color{
	domain.StatusActive:    ColorActive,
	domain.StatusCancelled: ColorCancelled,
	domain.StatusCompleted: ColorCompleted,
	domain.StatusOverrun:   ColorOverrun,
	domain.StatusPaused:    ColorPaused,
}

var priorityColors = map[domain.Priority]Color{
	domain.PriorityHigh:   ColorHigh,
	domain.PriorityLow:    ColorLow,
	domain.PriorityMedium: ColorMedium,
	domain.PriorityUrgent: ColorUrgent,
}

// RenderStatus renders the colored symbol and name of a task status
func RenderStatus(status domain.TaskStatus) string {
	style := lipgloss.NewStyle().Foreground(statusColors[status])
	return style.Render(status.Symbol() + " " + string(status))
}

// RenderPriority renders a suggestion priority
func RenderPriority(priority domain.Priority) string {
	return lipgloss.NewStyle().Foreground(priorityColors[priority]).Bold(priority == domain.PriorityUrgent).Render(string(priority))
}

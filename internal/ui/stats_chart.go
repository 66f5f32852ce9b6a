package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/theme"
)

const (
	statsChartHeight   = 8 // Height of the chart area
	statsChartBarWidth = 2
	statsChartBarGap   = 0 // Spent and estimated bars touch, the day gap is an empty bar
	statsChartDayWidth = 3 * statsChartBarWidth
)

// RenderStatsChart renders the time spent and estimated per day as a grouped
// bar chart, in minutes
func RenderStatsChart(days []domain.DayStats) string {
	var sb strings.Builder

	// Totals for the legend and the scale of the bars
	var maxVal float64
	var spent, estimated time.Duration
	completed := 0
	for _, d := range days {
		spent += d.Stats.TotalTimeSpent
		estimated += d.Stats.EstimatedTime
		completed += d.Stats.TasksCompleted
		maxVal = max(maxVal, d.Stats.TotalTimeSpent.Minutes(), d.Stats.EstimatedTime.Minutes())
	}
	if maxVal == 0 {
		maxVal = 1 // Avoid division by zero
	}

	// Legend line: tasks, spent and estimated totals
	legend := theme.ChartLabelStyle.Render(fmt.Sprintf("%d tasks  ", completed)) +
		theme.ChartSpentStyle.Render("■") +
		theme.ChartLabelStyle.Render(" spent: "+formatMinutes(spent)+"  ") +
		theme.ChartEstimatedStyle.Render("■") +
		theme.ChartLabelStyle.Render(" estimated: "+formatMinutes(estimated)+
			fmt.Sprintf("  (max/day: %s)", formatMinutes(time.Duration(maxVal)*time.Minute)))
	sb.WriteString(legend)
	sb.WriteString("\n\n")

	chart := barchart.New(len(days)*statsChartDayWidth, statsChartHeight,
		barchart.WithStyles(theme.ChartAxisStyle, theme.ChartLabelStyle),
	)
	chart.SetBarWidth(statsChartBarWidth)
	chart.SetBarGap(statsChartBarGap)
	chart.SetMax(maxVal)

	// Each day is three bars: spent, estimated and an empty spacer
	for _, d := range days {
		label := d.Day
		if len(label) == len("2006-01-02") {
			label = label[8:] // day of month
		}
		chart.Push(barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: "spent", Value: d.Stats.TotalTimeSpent.Minutes(), Style: theme.ChartSpentStyle},
			},
		})
		chart.Push(barchart.BarData{
			Values: []barchart.BarValue{
				{Name: "estimated", Value: d.Stats.EstimatedTime.Minutes(), Style: theme.ChartEstimatedStyle},
			},
		})
		chart.Push(barchart.BarData{})
	}

	chart.Draw()
	sb.WriteString(chart.View())
	return sb.String()
}

func formatMinutes(d time.Duration) string {
	d = d.Round(time.Minute)
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}

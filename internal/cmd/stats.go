package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/ui"
)

// StatsCmd shows daily task statistics
type StatsCmd struct {
	Days   int    `help:"Number of days up to today" default:"7"`
	Format string `help:"Output format (table, chart or json)" default:"table" enum:"table,chart,json"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	if s.Days < 1 {
		return fmt.Errorf("%w: --days must be at least 1", domain.ErrValidation)
	}
	// Today counts as one of the days
	to := time.Now()
	from := to.AddDate(0, 0, -(s.Days - 1))

	days, err := cli.Container.TaskSessionService.GetDailyStats(context.Background(), cli.UserID(), from, to)
	if err != nil {
		return fmt.Errorf("failed to get daily stats: %w", err)
	}

	switch s.Format {
	case formatJSON:
		return printJSON(days)
	case "chart":
		fmt.Printf("Time Spent - last %d days\n\n", s.Days)
		fmt.Println(ui.RenderStatsChart(days))
		return nil
	default:
		return s.renderTable(days)
	}
}

// renderTable displays daily statistics in table format
func (s *StatsCmd) renderTable(days []domain.DayStats) error {
	// Accumulate totals for the summary row
	var total domain.DailyStats
	w := newTable()
	fmt.Fprintln(w, "DAY\tTASKS\tSPENT\tESTIMATED\tVARIANCE")
	for _, d := range days {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			d.Day, d.Stats.TasksCompleted,
			formatDuration(d.Stats.TotalTimeSpent),
			formatDuration(d.Stats.EstimatedTime),
			formatDuration(d.Stats.TimeVariance))
		total.TasksCompleted += d.Stats.TasksCompleted
		total.TotalTimeSpent += d.Stats.TotalTimeSpent
		total.EstimatedTime += d.Stats.EstimatedTime
		total.TimeVariance += d.Stats.TimeVariance
	}
	fmt.Fprintf(w, "Total\t%d\t%s\t%s\t%s\n",
		total.TasksCompleted,
		formatDuration(total.TotalTimeSpent),
		formatDuration(total.EstimatedTime),
		formatDuration(total.TimeVariance))
	return w.Flush()
}

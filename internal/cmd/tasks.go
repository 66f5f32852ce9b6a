package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/theme"
)

// TasksCmd tracks work sessions on cached events
type TasksCmd struct {
	Cancel   TasksCancelCmd   `cmd:"cancel" help:"Abandon an active or paused session"`
	Check    TasksCheckCmd    `cmd:"check" help:"Check the main task against its estimate"`
	Complete TasksCompleteCmd `cmd:"complete" aliases:"done" help:"Complete an active session"`
	List     TasksListCmd     `cmd:"list" help:"List the sessions of a day"`
	Next     TasksNextCmd     `cmd:"next" help:"Suggest what to work on next"`
	Pause    TasksPauseCmd    `cmd:"pause" help:"Pause an active session"`
	Start    TasksStartCmd    `cmd:"start" help:"Start a session on an event"`
	Status   TasksStatusCmd   `cmd:"status" help:"Show open sessions and today's statistics" default:"1"`
}

// TasksStartCmd opens a session
type TasksStartCmd struct {
	Estimate time.Duration `help:"Estimated duration, e.g. 45m"`
	EventID  string        `arg:"" help:"Cached event id"`
	Notes    string        `help:"Session notes"`
	Sub      bool          `help:"Start a sub-task instead of the main task"`
}

// Run executes the start command
func (t *TasksStartCmd) Run(cli *CLI) error {
	opts := domain.StartOptions{IsMainTask: !t.Sub, Notes: t.Notes}
	// Without --estimate the default estimate from the preferences applies
	if t.Estimate != 0 {
		opts.EstimatedDuration = &t.Estimate
	}
	logging.Logger.Debug("Executing tasks start command", "event", t.EventID, "main", opts.IsMainTask)

	session, err := cli.Container.TaskSessionService.StartTask(context.Background(), cli.UserID(), t.EventID, opts)
	if err != nil {
		return err
	}
	kind := "main task"
	if !session.IsMainTask {
		kind = "sub-task"
	}
	fmt.Printf("Started %s %s\n", kind, session.ID)
	return nil
}

// TasksPauseCmd pauses a session
type TasksPauseCmd struct {
	SessionID string `arg:"" help:"Session id"`
}

// Run executes the pause command
func (t *TasksPauseCmd) Run(cli *CLI) error {
	session, err := cli.Container.TaskSessionService.PauseTask(context.Background(), cli.UserID(), t.SessionID)
	if err != nil {
		return err
	}
	fmt.Printf("Paused %s after %s\n", session.ID, formatDuration(*session.ActualDuration))
	return nil
}

// TasksCompleteCmd completes a session
type TasksCompleteCmd struct {
	Notes     string `help:"Completion notes"`
	Rating    int    `help:"Focus rating from 1 to 5 (0 = none)"`
	SessionID string `arg:"" help:"Session id"`
}

// Run executes the complete command
func (t *TasksCompleteCmd) Run(cli *CLI) error {
	opts := domain.CompleteOptions{Notes: t.Notes}
	// Zero means no rating
	if t.Rating != 0 {
		opts.Rating = &t.Rating
	}
	session, err := cli.Container.TaskSessionService.CompleteTask(context.Background(), cli.UserID(), t.SessionID, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Completed %s in %s", session.ID, formatDuration(*session.ActualDuration))
	if session.EstimatedDuration != nil {
		fmt.Printf(" (estimate %s)", formatDuration(*session.EstimatedDuration))
	}
	fmt.Println()
	return nil
}

// TasksCancelCmd cancels a session
type TasksCancelCmd struct {
	SessionID string `arg:"" help:"Session id"`
}

// Run executes the cancel command
func (t *TasksCancelCmd) Run(cli *CLI) error {
	session, err := cli.Container.TaskSessionService.CancelTask(context.Background(), cli.UserID(), t.SessionID)
	if err != nil {
		return err
	}
	fmt.Printf("Cancelled %s\n", session.ID)
	return nil
}

// TasksCheckCmd runs the overrun check
type TasksCheckCmd struct{}

// Run executes the check command
func (t *TasksCheckCmd) Run(cli *CLI) error {
	check, err := cli.Container.TaskSessionService.CheckForOverruns(context.Background(), cli.UserID())
	if err != nil {
		return err
	}
	if check == nil {
		fmt.Println("On track.")
		return nil
	}

	switch check.Type {
	case domain.CheckWarning:
		fmt.Println(theme.WarningStyle.Render(fmt.Sprintf("Past the %s estimate, %s left before it counts as overrun",
			formatDuration(check.Estimated), formatDuration(check.TimeRemaining))))
	case domain.CheckOverrun:
		fmt.Println(theme.ErrorStyle.Render(fmt.Sprintf("Session %s overran by %s and was closed",
			check.SessionID, formatDuration(check.OverrunDuration))))
		for _, s := range check.Suggestions {
			fmt.Println("  " + theme.HintStyle.Render("• "+s))
		}
	}
	return nil
}

// TasksNextCmd lists suggestions
type TasksNextCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
}

// Run executes the next command
func (t *TasksNextCmd) Run(cli *CLI) error {
	suggestions, err := cli.Container.TaskSessionService.GetNextTaskSuggestions(context.Background(), cli.UserID())
	if err != nil {
		return err
	}
	if t.Format == formatJSON {
		return printJSON(suggestions)
	}
	if len(suggestions) == 0 {
		fmt.Println("Nothing left for today.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "EVENT\tSTART\tIN\tTITLE\tPRIORITY")
	for _, s := range suggestions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Event.ID,
			s.Event.StartTime.In(time.Local).Format("15:04"),
			formatDuration(s.TimeToStart),
			truncate(s.Event.Title, 50),
			theme.RenderPriority(s.Priority))
	}
	return w.Flush()
}

// TasksStatusCmd shows open sessions
type TasksStatusCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
}

// Run executes the status command
func (t *TasksStatusCmd) Run(cli *CLI) error {
	summary, err := cli.Container.TaskSessionService.GetStatus(context.Background(), cli.UserID())
	if err != nil {
		return err
	}
	if t.Format == formatJSON {
		return printJSON(summary)
	}

	// Main task first, then sub-tasks, then today's totals
	now := time.Now()
	fmt.Println(theme.TitleStyle.Render("Main task"))
	if summary.Main == nil {
		fmt.Println("  " + theme.MutedStyle.Render("none"))
	} else {
		printSession(*summary.Main, now)
	}
	if len(summary.SubTasks) > 0 {
		fmt.Println(theme.TitleStyle.Render("Sub-tasks"))
		for _, s := range summary.SubTasks {
			printSession(s, now)
		}
	}

	today := summary.Today
	fmt.Println(theme.TitleStyle.Render("Today"))
	fmt.Printf("  %s %d   %s %s   %s %s\n",
		theme.LabelStyle.Render("completed"), today.TasksCompleted,
		theme.LabelStyle.Render("spent"), formatDuration(today.TotalTimeSpent),
		theme.LabelStyle.Render("variance"), formatDuration(today.TimeVariance))
	return nil
}

func printSession(s domain.TaskSession, now time.Time) {
	line := fmt.Sprintf("  %s  %s  %s", s.ID, s.EventID, formatDuration(s.Elapsed(now)))
	if s.EstimatedDuration != nil {
		line += " / " + formatDuration(*s.EstimatedDuration)
	}
	fmt.Println(line + "  " + theme.RenderStatus(s.Status))
}

// TasksListCmd lists the sessions of a day
type TasksListCmd struct {
	Day    string `help:"Day (YYYY-MM-DD, default today)"`
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
}

// Run executes the list command
func (t *TasksListCmd) Run(cli *CLI) error {
	now := time.Now()
	day, err := parseDay(t.Day, now, time.Local)
	if err != nil {
		return err
	}
	sessions, err := cli.Container.TaskSessionService.ListSessions(context.Background(), cli.UserID(), day)
	if err != nil {
		return err
	}
	if t.Format == formatJSON {
		return printJSON(sessions)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tEVENT\tSTARTED\tSPENT\tMAIN\tSTATUS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.EventID,
			s.StartTime.In(time.Local).Format("15:04"),
			formatDuration(s.Elapsed(now)),
			yesNo(s.IsMainTask),
			theme.RenderStatus(s.Status))
	}
	return w.Flush()
}

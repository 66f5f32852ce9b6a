package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tempo/internal/logging"
)

// IssuesCmd inspects and moves tracker issues behind cached events
type IssuesCmd struct {
	Move        IssuesMoveCmd        `cmd:"move" aliases:"mv" help:"Apply a status transition to an issue"`
	Transitions IssuesTransitionsCmd `cmd:"transitions" help:"List the transitions available on an issue"`
}

// IssuesTransitionsCmd lists the transitions of an imported issue
type IssuesTransitionsCmd struct {
	EventID string `arg:"" help:"Cached event id of the issue"`
	Format  string `help:"Output format (table or json)" default:"table" enum:"table,json"`
}

// Run executes the transitions command
func (i *IssuesTransitionsCmd) Run(cli *CLI) error {
	transitions, err := cli.Container.IssueSyncService.ListTransitions(context.Background(), cli.UserID(), i.EventID)
	if err != nil {
		return err
	}
	if i.Format == formatJSON {
		return printJSON(transitions)
	}
	if len(transitions) == 0 {
		fmt.Println("No transitions available.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tTO STATUS\tCATEGORY")
	for _, t := range transitions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.ToStatus, t.ToCategory)
	}
	return w.Flush()
}

// IssuesMoveCmd transitions an imported issue
type IssuesMoveCmd struct {
	EventID      string `arg:"" help:"Cached event id of the issue"`
	TransitionID string `arg:"" help:"Transition id (see 'tempo issues transitions')"`
}

// Run executes the move command
func (i *IssuesMoveCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing issues move command", "event", i.EventID, "transition", i.TransitionID)

	issue, err := cli.Container.IssueSyncService.TransitionIssue(context.Background(), cli.UserID(), i.EventID, i.TransitionID)
	if err != nil {
		return err
	}
	if issue.IsDone() {
		fmt.Printf("%s is done and was removed from the schedule\n", issue.Key)
		return nil
	}
	fmt.Printf("%s moved to %s\n", issue.Key, issue.Status)
	return nil
}

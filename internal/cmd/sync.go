package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/services"
	"github.com/renato0307/tempo/internal/theme"
)

// SyncCmd reconciles the local cache with remote providers
type SyncCmd struct {
	Calendar SyncCalendarCmd `cmd:"calendar" help:"Reconcile calendar events in a window" default:"1"`
	Import   SyncImportCmd   `cmd:"import" help:"Import assigned issues with a due date as events"`
	Issues   SyncIssuesCmd   `cmd:"issues" help:"List open issues assigned across tracker accounts"`
	Statuses SyncStatusesCmd `cmd:"statuses" help:"Refresh the status of imported issues"`
}

// SyncCalendarCmd reconciles one or all calendars of the primary account
type SyncCalendarCmd struct {
	All      bool   `help:"Reconcile every calendar of the primary account (ignores --calendar)"`
	Calendar string `help:"Calendar to reconcile" default:"primary"`
	Days     int    `help:"Number of days from --from when --to is not set" default:"7"`
	From     string `help:"First day of the window (YYYY-MM-DD, default today)"`
	To       string `help:"Last day of the window, inclusive (YYYY-MM-DD)"`
}

// Run executes the calendar sync command
func (s *SyncCalendarCmd) Run(cli *CLI) error {
	window, err := parseWindow(s.From, s.To, s.Days, time.Now(), time.Local)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing sync calendar command", "calendar", s.Calendar, "all", s.All,
		"start", window.Start, "end", window.End)

	ctx := context.Background()
	// Single calendar
	if !s.All {
		result, err := cli.Container.CalendarSyncService.Reconcile(ctx, cli.UserID(), s.Calendar, window)
		if err != nil {
			return err
		}
		printReconcile(result)
		return nil
	}

	all, err := cli.Container.CalendarSyncService.ReconcileAll(ctx, cli.UserID(), window)
	if err != nil {
		return err
	}
	// Report every calendar, failed ones included
	for _, outcome := range all.Calendars {
		if outcome.Err != nil {
			fmt.Printf("%s: %s\n", outcome.CalendarID, theme.ErrorStyle.Render(outcome.Err.Error()))
			continue
		}
		printReconcile(outcome.Result)
	}
	// Non-zero exit so scripts notice
	if all.PartialFailure {
		return fmt.Errorf("some calendars failed to reconcile")
	}
	return nil
}

func printReconcile(result *services.ReconcileResult) {
	fmt.Printf("%s: %d applied, %d removed\n", result.CalendarID, result.Applied, result.Removed)
	printItemErrors("Failed events", result.ItemErrors)
}

// SyncIssuesCmd lists assigned issues without touching the cache
type SyncIssuesCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
}

// Run executes the issues command
func (s *SyncIssuesCmd) Run(cli *CLI) error {
	batch, err := cli.Container.IssueSyncService.FetchAssignedIssues(context.Background(), cli.UserID())
	if err != nil {
		return err
	}
	if s.Format == formatJSON {
		return printJSON(batch)
	}

	if len(batch.Issues) == 0 {
		fmt.Println("No open issues assigned.")
	} else {
		w := newTable()
		fmt.Fprintln(w, "KEY\tSTATUS\tDUE\tESTIMATE\tACCOUNT\tSUMMARY")
		for _, issue := range batch.Issues {
			// Missing values are shown as a dash
			due := "-"
			if issue.DueDate != nil {
				due = issue.DueDate.Format(dateLayout)
			}
			estimate := "-"
			if issue.OriginalEstimate > 0 {
				estimate = formatDuration(issue.OriginalEstimate)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				issue.Key, issue.Status, due, estimate, issue.AccountID, truncate(issue.Summary, 60))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	// Accounts that failed do not fail the command, they are listed instead
	printFailedAccounts(batch.FailedAccounts)
	return nil
}

func printFailedAccounts(failed []services.FailedAccount) {
	for _, f := range failed {
		fmt.Printf("%s %s: %s\n", theme.WarningStyle.Render("Skipped account"), f.AccountID, f.Err)
	}
}

// SyncImportCmd imports assigned issues into the event cache
type SyncImportCmd struct{}

// Run executes the import command
func (s *SyncImportCmd) Run(cli *CLI) error {
	result, err := cli.Container.IssueSyncService.ImportIssues(context.Background(), cli.UserID())
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d issues, skipped %d without a due date\n", result.Imported, result.Skipped)
	printFailedAccounts(result.Batch.FailedAccounts)
	printItemErrors("Failed issues", result.ItemErrors)
	return nil
}

// SyncStatusesCmd reconciles imported issues with the tracker
type SyncStatusesCmd struct{}

// Run executes the statuses command
func (s *SyncStatusesCmd) Run(cli *CLI) error {
	result, err := cli.Container.IssueSyncService.ReconcileIssueStatuses(context.Background(), cli.UserID())
	if err != nil {
		return err
	}
	fmt.Printf("%d updated, %d done and removed, %d missing and soft deleted\n",
		result.Updated, result.DeletedCount, result.SoftDeletedCount)
	printItemErrors("Failed issues", result.Errors)
	return nil
}

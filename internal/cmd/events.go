package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
)

// EventsCmd lists and edits cached events
type EventsCmd struct {
	Create EventsCreateCmd `cmd:"create" help:"Create a calendar event"`
	Delete EventsDeleteCmd `cmd:"delete" aliases:"del" help:"Delete a calendar event"`
	List   EventsListCmd   `cmd:"list" help:"List cached events" default:"1"`
	Update EventsUpdateCmd `cmd:"update" help:"Update a calendar event"`
}

// EventsListCmd lists the cached events of a window
type EventsListCmd struct {
	Days   int    `help:"Number of days from --from" default:"1"`
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	From   string `help:"First day (YYYY-MM-DD, default today)"`
}

// Run executes the list command
func (e *EventsListCmd) Run(cli *CLI) error {
	window, err := parseWindow(e.From, "", e.Days, time.Now(), time.Local)
	if err != nil {
		return err
	}
	events, err := cli.Container.CalendarSyncService.ListCachedEvents(context.Background(), cli.UserID(), window)
	if err != nil {
		return err
	}

	if e.Format == formatJSON {
		return printJSON(events)
	}
	if len(events) == 0 {
		fmt.Println("No events. Run 'tempo sync calendar' to refresh the cache.")
		return nil
	}

	// Display events in table format
	w := newTable()
	fmt.Fprintln(w, "ID\tSTART\tEND\tORIGIN\tTITLE")
	for _, ev := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			ev.ID,
			ev.StartTime.In(time.Local).Format(dateTimeLayout),
			ev.EndTime.In(time.Local).Format("15:04"),
			eventOrigin(ev),
			truncate(ev.Title, 60))
	}
	return w.Flush()
}

func eventOrigin(ev domain.ExternalEvent) string {
	if ev.Origin == domain.OriginIssue {
		return ev.IssueKey
	}
	return ev.CalendarID
}

// EventFields are the editable fields shared by create and update
type EventFields struct {
	Attendees   []string      `help:"Attendee e-mails" sep:","`
	Description string        `help:"Event description"`
	Duration    time.Duration `help:"Duration when --end is not set" default:"1h"`
	End         string        `help:"End time (YYYY-MM-DD HH:MM or RFC 3339)"`
	Location    string        `help:"Event location"`
	Start       string        `help:"Start time (YYYY-MM-DD HH:MM or RFC 3339)" required:""`
	Title       string        `help:"Event title" required:""`
}

func (f EventFields) input() (domain.EventInput, error) {
	start, err := parseDateTime(f.Start, time.Local)
	if err != nil {
		return domain.EventInput{}, err
	}
	// --end wins over --duration
	end := start.Add(f.Duration)
	if f.End != "" {
		if end, err = parseDateTime(f.End, time.Local); err != nil {
			return domain.EventInput{}, err
		}
	}
	in := domain.EventInput{
		Attendees:   f.Attendees,
		Description: f.Description,
		End:         end,
		Location:    f.Location,
		Start:       start,
		Title:       f.Title,
	}
	return in, in.Validate()
}

// EventsCreateCmd creates a remote calendar event
type EventsCreateCmd struct {
	EventFields `embed:""`

	Calendar string `help:"Calendar to create the event in" default:"primary"`
}

// Run executes the create command
func (e *EventsCreateCmd) Run(cli *CLI) error {
	in, err := e.input()
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing events create command", "calendar", e.Calendar, "title", in.Title)

	event, err := cli.Container.CalendarSyncService.CreateEvent(context.Background(), cli.UserID(), e.Calendar, in)
	if err != nil {
		return err
	}
	fmt.Printf("Created event %s (%s)\n", event.ID, event.ExternalID)
	if event.HTMLLink != "" {
		fmt.Println(event.HTMLLink)
	}
	return nil
}

// EventsUpdateCmd replaces the details of a calendar event
type EventsUpdateCmd struct {
	EventFields `embed:""`

	ID string `arg:"" help:"Cached event id"`
}

// Run executes the update command
func (e *EventsUpdateCmd) Run(cli *CLI) error {
	in, err := e.input()
	if err != nil {
		return err
	}
	event, err := cli.Container.CalendarSyncService.UpdateEvent(context.Background(), cli.UserID(), e.ID, in)
	if err != nil {
		return err
	}
	fmt.Printf("Updated event %s\n", event.ID)
	return nil
}

// EventsDeleteCmd deletes a calendar event
type EventsDeleteCmd struct {
	Force bool   `help:"Skip confirmation" short:"f"`
	ID    string `arg:"" help:"Cached event id"`
}

// Run executes the delete command
func (e *EventsDeleteCmd) Run(cli *CLI) error {
	if !e.Force {
		// Ask for confirmation unless --force is specified
		fmt.Printf("Delete event %s from the remote calendar? [y/N]: ", e.ID)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}
	if err := cli.Container.CalendarSyncService.DeleteEvent(context.Background(), cli.UserID(), e.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted event %s\n", e.ID)
	return nil
}

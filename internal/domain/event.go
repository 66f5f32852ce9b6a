package domain

import (
	"fmt"
	"slices"
	"time"
)

// DefaultCalendarID is the calendar used when none is given
const DefaultCalendarID = "primary"

// EventOrigin tells which kind of remote source owns a cached event
type EventOrigin string

const (
	OriginCalendar EventOrigin = "calendar"
	OriginIssue    EventOrigin = "issue"
)

// SyncState marks cached rows that were soft deleted
type SyncState string

const (
	SyncStateDeleted SyncState = "deleted"
	SyncStateSynced  SyncState = "synced"
)

// ExternalEvent is the local cache entry of a calendar event or issue
type ExternalEvent struct {
	AccountID           string
	AllDay              bool
	Attendees           []string
	CalendarID          string
	DeletedAt           *time.Time
	Description         string
	EndTime             time.Time
	ExternalID          string
	HTMLLink            string
	ID                  string
	IssueKey            string
	IssueStatusCategory string
	LastSyncAt          time.Time
	Location            string
	Origin              EventOrigin
	RecurrenceRule      string
	StartTime           time.Time
	Status              string
	SyncState           SyncState
	Title               string
	UserID              string
}

// IsDeleted reports whether the event was soft deleted
func (e *ExternalEvent) IsDeleted() bool {
	return e.SyncState == SyncStateDeleted
}

// SoftDelete marks the event as logically removed
func (e *ExternalEvent) SoftDelete(now time.Time) {
	e.SyncState = SyncStateDeleted
	e.DeletedAt = &now
}

// ApplyRemote overwrites the display fields with the remote copy and bumps LastSyncAt
func (e *ExternalEvent) ApplyRemote(r RemoteEvent, now time.Time) {
	e.AllDay = r.AllDay
	e.Attendees = slices.Clone(r.Attendees)
	e.Description = r.Description
	e.EndTime = r.End
	e.HTMLLink = r.HTMLLink
	e.Location = r.Location
	e.RecurrenceRule = r.RecurrenceRule
	e.StartTime = r.Start
	e.Status = r.Status
	e.Title = r.Title
	e.SyncState = SyncStateSynced
	e.DeletedAt = nil
	e.LastSyncAt = now
}

// NewCalendarEvent builds a cache entry for a remote calendar event
func NewCalendarEvent(userID, calendarID, accountID string, r RemoteEvent, now time.Time) ExternalEvent {
	e := ExternalEvent{
		AccountID:  accountID,
		CalendarID: calendarID,
		ExternalID: r.ExternalID,
		Origin:     OriginCalendar,
		UserID:     userID,
	}
	e.ApplyRemote(r, now)
	return e
}

// RemoteEvent is a calendar event as listed by the provider
type RemoteEvent struct {
	AllDay         bool
	Attendees      []string
	Description    string
	End            time.Time
	ExternalID     string
	HTMLLink       string
	Location       string
	RecurrenceRule string
	Start          time.Time
	Status         string
	Title          string

	// ReadErr is set when the provider returned the item but it could not
	// be decoded. Only ExternalID is meaningful then.
	ReadErr error
}

// EventInput is the payload to create or update a remote calendar event
type EventInput struct {
	AllDay      bool
	Attendees   []string
	Description string
	End         time.Time
	Location    string
	Start       time.Time
	Title       string
}

// Validate checks the input is structurally sound
func (in EventInput) Validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: event title is required", ErrValidation)
	}
	return Window{Start: in.Start, End: in.End}.Validate()
}

// Window is a half-open time range [Start, End)
type Window struct {
	End   time.Time
	Start time.Time
}

// Validate checks the window is not empty or inverted
func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("%w: window start and end are required", ErrValidation)
	}
	if !w.End.After(w.Start) {
		return fmt.Errorf("%w: window end %s is not after start %s", ErrValidation,
			w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339))
	}
	return nil
}

// DayWindow returns the window covering the calendar day of t in its location
func DayWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

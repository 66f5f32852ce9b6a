package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/renato0307/tempo/internal/adapters/remote"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/ports"
)

const dateLayout = "2006-01-02"

// CalendarClient implements ports.CalendarClient against the Google Calendar v3 REST API
type CalendarClient struct {
	api     *remote.Client
	baseURL string
}

// Verify interface compliance at compile time
var _ ports.CalendarClient = (*CalendarClient)(nil)

// NewCalendarClient creates a client for the API rooted at baseURL
// (https://www.googleapis.com/calendar/v3 in production)
func NewCalendarClient(baseURL string, timeout time.Duration) *CalendarClient {
	return &CalendarClient{
		api:     remote.NewClient(domain.ProviderGoogle, timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Wire types of the Calendar v3 API
type eventTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type attendee struct {
	Email string `json:"email"`
}

type event struct {
	Attendees   []attendee `json:"attendees,omitempty"`
	Description string     `json:"description,omitempty"`
	End         eventTime  `json:"end"`
	HTMLLink    string     `json:"htmlLink,omitempty"`
	ID          string     `json:"id,omitempty"`
	Location    string     `json:"location,omitempty"`
	Recurrence  []string   `json:"recurrence,omitempty"`
	Start       eventTime  `json:"start"`
	Status      string     `json:"status,omitempty"`
	Summary     string     `json:"summary,omitempty"`
}

type eventList struct {
	Items []event `json:"items"`
}

// ListEvents implements ports.CalendarClient.ListEvents
func (c *CalendarClient) ListEvents(ctx context.Context, token domain.BearerToken, calendarID string, window domain.Window, maxResults int) ([]domain.RemoteEvent, error) {
	params := url.Values{}
	params.Set("timeMin", window.Start.Format(time.RFC3339))
	params.Set("timeMax", window.End.Format(time.RFC3339))
	params.Set("maxResults", strconv.Itoa(maxResults))
	// Expand recurring events into their instances
	params.Set("singleEvents", "true")
	params.Set("orderBy", "startTime")

	var list eventList
	if err := c.api.Do(ctx, "list events", http.MethodGet, c.eventsURL(calendarID)+"?"+params.Encode(), token, nil, &list); err != nil {
		return nil, err
	}

	// All-day dates are placed in the zone of the window
	loc := window.Start.Location()
	result := make([]domain.RemoteEvent, 0, len(list.Items))
	for _, item := range list.Items {
		ev, err := toRemoteEvent(item, loc)
		if err != nil {
			// one unreadable item must not hide the rest of the listing
			ev = domain.RemoteEvent{ExternalID: item.ID, ReadErr: fmt.Errorf("google list events: %w", err)}
		}
		result = append(result, ev)
	}
	return result, nil
}

// CreateEvent implements ports.CalendarClient.CreateEvent
func (c *CalendarClient) CreateEvent(ctx context.Context, token domain.BearerToken, calendarID string, in domain.EventInput) (*domain.RemoteEvent, error) {
	var created event
	if err := c.api.Do(ctx, "create event", http.MethodPost, c.eventsURL(calendarID), token, fromInput(in), &created); err != nil {
		return nil, err
	}
	ev, err := toRemoteEvent(created, in.Start.Location())
	if err != nil {
		return nil, fmt.Errorf("google create event: %w", err)
	}
	return &ev, nil
}

// UpdateEvent implements ports.CalendarClient.UpdateEvent
func (c *CalendarClient) UpdateEvent(ctx context.Context, token domain.BearerToken, calendarID, externalID string, in domain.EventInput) (*domain.RemoteEvent, error) {
	var updated event
	// PATCH keeps the fields we do not manage, like reminders
	err := c.api.Do(ctx, "update event", http.MethodPatch, c.eventURL(calendarID, externalID), token, fromInput(in), &updated)
	if err != nil {
		return nil, goneAsNotFound(err)
	}
	ev, err := toRemoteEvent(updated, in.Start.Location())
	if err != nil {
		return nil, fmt.Errorf("google update event: %w", err)
	}
	return &ev, nil
}

// DeleteEvent implements ports.CalendarClient.DeleteEvent
func (c *CalendarClient) DeleteEvent(ctx context.Context, token domain.BearerToken, calendarID, externalID string) error {
	return goneAsNotFound(c.api.Do(ctx, "delete event", http.MethodDelete, c.eventURL(calendarID, externalID), token, nil, nil))
}

func (c *CalendarClient) eventsURL(calendarID string) string {
	return fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(calendarID))
}

func (c *CalendarClient) eventURL(calendarID, externalID string) string {
	return c.eventsURL(calendarID) + "/" + url.PathEscape(externalID)
}

// goneAsNotFound maps 410 Gone, returned for already deleted events, to not found
func goneAsNotFound(err error) error {
	var remoteErr *remote.Error
	if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusGone {
		remoteErr.Kind = domain.ErrNotFoundRemote
	}
	return err
}

func toRemoteEvent(e event, loc *time.Location) (domain.RemoteEvent, error) {
	start, allDay, err := parseEventTime(e.Start, loc)
	if err != nil {
		return domain.RemoteEvent{}, fmt.Errorf("event %s start: %w", e.ID, err)
	}
	end, _, err := parseEventTime(e.End, loc)
	if err != nil {
		return domain.RemoteEvent{}, fmt.Errorf("event %s end: %w", e.ID, err)
	}

	// Attendees without an email are resources or rooms
	var attendees []string
	for _, a := range e.Attendees {
		if a.Email != "" {
			attendees = append(attendees, a.Email)
		}
	}

	return domain.RemoteEvent{
		AllDay:         allDay,
		Attendees:      attendees,
		Description:    e.Description,
		End:            end,
		ExternalID:     e.ID,
		HTMLLink:       e.HTMLLink,
		Location:       e.Location,
		RecurrenceRule: strings.Join(e.Recurrence, "\n"),
		Start:          start,
		Status:         e.Status,
		Title:          e.Summary,
	}, nil
}

// parseEventTime reads a timed (dateTime) or all-day (date) value
func parseEventTime(t eventTime, loc *time.Location) (time.Time, bool, error) {
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		return parsed, false, err
	}
	if t.Date != "" {
		parsed, err := time.ParseInLocation(dateLayout, t.Date, loc)
		return parsed, true, err
	}
	return time.Time{}, false, errors.New("missing date")
}

func fromInput(in domain.EventInput) event {
	e := event{
		Description: in.Description,
		Location:    in.Location,
		Summary:     in.Title,
	}
	for _, email := range in.Attendees {
		e.Attendees = append(e.Attendees, attendee{Email: email})
	}
	if in.AllDay {
		// All-day end dates are exclusive
		end := in.End
		if end.Format(dateLayout) <= in.Start.Format(dateLayout) {
			end = in.Start.AddDate(0, 0, 1)
		}
		e.Start = eventTime{Date: in.Start.Format(dateLayout)}
		e.End = eventTime{Date: end.Format(dateLayout)}
		return e
	}
	e.Start = eventTime{DateTime: in.Start.Format(time.RFC3339), TimeZone: zoneName(in.Start)}
	e.End = eventTime{DateTime: in.End.Format(time.RFC3339), TimeZone: zoneName(in.End)}
	return e
}

// zoneName returns the IANA zone of t, or empty when only the offset is known
func zoneName(t time.Time) string {
	name := t.Location().String()
	if name == "Local" {
		return ""
	}
	return name
}

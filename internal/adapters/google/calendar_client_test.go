package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/domain"
)

var token = domain.BearerToken{AccessToken: "ya29", Provider: domain.ProviderGoogle, TokenType: "Bearer"}

func TestCalendarClient_ListEvents(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/team@example.com/events", r.URL.Path)
		assert.Equal(t, "Bearer ya29", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "2026-03-10T00:00:00Z", q.Get("timeMin"))
		assert.Equal(t, "2026-03-11T00:00:00Z", q.Get("timeMax"))
		assert.Equal(t, "250", q.Get("maxResults"))
		assert.Equal(t, "true", q.Get("singleEvents"))
		assert.Equal(t, "startTime", q.Get("orderBy"))

		_, _ = io.WriteString(w, `{"items":[
			{"id":"g1","summary":"Standup","status":"confirmed","htmlLink":"https://cal/g1",
			 "start":{"dateTime":"2026-03-10T09:00:00Z"},"end":{"dateTime":"2026-03-10T09:15:00Z"},
			 "attendees":[{"email":"a@example.com"},{"email":"b@example.com"}]},
			{"id":"g2","summary":"Offsite","start":{"date":"2026-03-10"},"end":{"date":"2026-03-11"}}
		]}`)
	}))
	defer server.Close()

	client := NewCalendarClient(server.URL, time.Second)
	events, err := client.ListEvents(context.Background(), token, "team@example.com", window, 250)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "g1", events[0].ExternalID)
	assert.Equal(t, "Standup", events[0].Title)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, events[0].Attendees)
	assert.True(t, time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC).Equal(events[0].End))
	assert.False(t, events[0].AllDay)
	assert.True(t, events[1].AllDay)
	assert.True(t, window.Start.Equal(events[1].Start))
	assert.True(t, window.End.Equal(events[1].End))
}

func TestCalendarClient_ListEventsKeepsUnreadableItems(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"items":[
			{"id":"g1","summary":"Standup","start":{"dateTime":"2026-03-10T09:00:00Z"},"end":{"dateTime":"2026-03-10T09:15:00Z"}},
			{"id":"g2","summary":"Broken","start":{"dateTime":"2026-03-10 10:00"},"end":{"dateTime":"2026-03-10T11:00:00Z"}}
		]}`)
	}))
	defer server.Close()

	client := NewCalendarClient(server.URL, time.Second)
	events, err := client.ListEvents(context.Background(), token, "primary", window, 250)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.NoError(t, events[0].ReadErr)
	assert.Equal(t, "Standup", events[0].Title)
	assert.Equal(t, "g2", events[1].ExternalID)
	assert.ErrorContains(t, events[1].ReadErr, "event g2 start")
}

func TestCalendarClient_ListEventsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewCalendarClient(server.URL, time.Second)
	_, err := client.ListEvents(context.Background(), token, "primary", domain.DayWindow(time.Now()), 10)

	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)
}

func TestCalendarClient_CreateEvent(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)

		var body event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Review", body.Summary)
		assert.Equal(t, "2026-03-10T14:00:00Z", body.Start.DateTime)
		assert.Equal(t, "UTC", body.Start.TimeZone)

		body.ID = "new-id"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	client := NewCalendarClient(server.URL, time.Second)
	created, err := client.CreateEvent(context.Background(), token, "primary", domain.EventInput{
		End:   start.Add(time.Hour),
		Start: start,
		Title: "Review",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ExternalID)
	assert.True(t, start.Equal(created.Start))
}

func TestCalendarClient_DeleteEvent(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{"deleted", http.StatusNoContent, nil},
		{"already gone", http.StatusGone, domain.ErrNotFoundRemote},
		{"missing", http.StatusNotFound, domain.ErrNotFoundRemote},
		{"forbidden", http.StatusForbidden, domain.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/calendars/primary/events/g1", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := NewCalendarClient(server.URL, time.Second).DeleteEvent(context.Background(), token, "primary", "g1")

			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestFromInput_AllDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	e := fromInput(domain.EventInput{AllDay: true, Start: day, End: day.Add(time.Hour), Title: "Holiday"})

	assert.Equal(t, "2026-03-10", e.Start.Date)
	assert.Equal(t, "2026-03-11", e.End.Date)
	assert.Empty(t, e.Start.DateTime)
}

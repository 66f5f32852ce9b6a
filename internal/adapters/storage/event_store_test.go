package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/domain"
)

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func calendarEvent(externalID string, startHour int) *domain.ExternalEvent {
	e := domain.NewCalendarEvent("u1", "primary", "me@example.com", domain.RemoteEvent{
		Attendees:  []string{"a@example.com"},
		End:        day.Add(time.Duration(startHour+1) * time.Hour),
		ExternalID: externalID,
		Start:      day.Add(time.Duration(startHour) * time.Hour),
		Status:     "confirmed",
		Title:      "Meeting " + externalID,
	}, day)
	return &e
}

func TestEventStore_UpsertInsertsThenUpdates(t *testing.T) {
	store := newTestRepository(t, nil).Events()
	ctx := context.Background()

	first := calendarEvent("g1", 9)
	require.NoError(t, store.Upsert(ctx, first))
	require.NotEmpty(t, first.ID)

	second := calendarEvent("g1", 9)
	second.Title = "Renamed"
	second.LastSyncAt = day.Add(time.Hour)
	require.NoError(t, store.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	got, err := store.Get(ctx, "u1", first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, []string{"a@example.com"}, got.Attendees)
	assert.True(t, day.Add(time.Hour).Equal(got.LastSyncAt))

	all, err := store.ListInWindow(ctx, "u1", "primary", domain.DayWindow(day))
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEventStore_GetByKey(t *testing.T) {
	store := newTestRepository(t, nil).Events()
	ctx := context.Background()
	require.NoError(t, store.Upsert(ctx, calendarEvent("g1", 9)))

	got, err := store.GetByKey(ctx, "u1", "primary", "g1")
	require.NoError(t, err)
	assert.Equal(t, "Meeting g1", got.Title)

	_, err = store.GetByKey(ctx, "u1", "other", "g1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventStore_ListInWindowUsesOverlap(t *testing.T) {
	store := newTestRepository(t, nil).Events()
	ctx := context.Background()
	for i, id := range []string{"early", "inside", "late"} {
		require.NoError(t, store.Upsert(ctx, calendarEvent(id, 8+i*4)))
	}

	got, err := store.ListInWindow(ctx, "u1", "primary", domain.Window{
		Start: day.Add(8*time.Hour + 30*time.Minute),
		End:   day.Add(13 * time.Hour),
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ExternalID)
	assert.Equal(t, "inside", got[1].ExternalID)
}

func TestEventStore_SoftDeleteHidesFromDayListing(t *testing.T) {
	store := newTestRepository(t, nil).Events()
	ctx := context.Background()
	keep := calendarEvent("keep", 9)
	gone := calendarEvent("gone", 11)
	require.NoError(t, store.Upsert(ctx, keep))
	require.NoError(t, store.Upsert(ctx, gone))

	require.NoError(t, store.SoftDelete(ctx, "u1", gone.ID, day))

	today, err := store.ListForDay(ctx, "u1", domain.DayWindow(day))
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "keep", today[0].ExternalID)

	got, err := store.Get(ctx, "u1", gone.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted())
	require.NotNil(t, got.DeletedAt)

	all, err := store.ListByOrigin(ctx, "u1", domain.OriginCalendar, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	live, err := store.ListByOrigin(ctx, "u1", domain.OriginCalendar, false)
	require.NoError(t, err)
	assert.Len(t, live, 1)
}

func TestEventStore_Delete(t *testing.T) {
	store := newTestRepository(t, nil).Events()
	ctx := context.Background()
	e := calendarEvent("g1", 9)
	require.NoError(t, store.Upsert(ctx, e))

	require.NoError(t, store.Delete(ctx, "u1", e.ID))

	_, err := store.Get(ctx, "u1", e.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "u1", e.ID), domain.ErrEventNotFound)
}

func TestEventStore_IsolatesUsers(t *testing.T) {
	store := newTestRepository(t, nil).Events()
	ctx := context.Background()
	e := calendarEvent("g1", 9)
	require.NoError(t, store.Upsert(ctx, e))

	_, err := store.Get(ctx, "someone-else", e.ID)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/domain"
)

func TestSessionStore_GetStateCreatesDefaults(t *testing.T) {
	store := newTestRepository(t, nil).Sessions()
	ctx := context.Background()

	state, err := store.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", state.UserID)
	assert.Equal(t, 1, state.Version)
	assert.Equal(t, domain.DefaultOverrunThreshold, state.Preferences.OverrunThreshold)
	assert.Nil(t, state.CurrentMainTaskID)

	again, err := store.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, state.Version, again.Version)
}

func TestSessionStore_ApplyTransitionPersistsSessionsAndState(t *testing.T) {
	store := newTestRepository(t, nil).Sessions()
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	state, err := store.GetState(ctx, "u1")
	require.NoError(t, err)
	estimate := 30 * time.Minute
	session := domain.NewTaskSession("s1", "u1", "e1", domain.StartOptions{EstimatedDuration: &estimate, IsMainTask: true}, start)
	state.Track(session)

	require.NoError(t, store.ApplyTransition(ctx, state, session))
	assert.Equal(t, 2, state.Version)

	require.NoError(t, session.Complete(domain.CompleteOptions{}, start.Add(40*time.Minute)))
	state.Release(session.ID)
	state.RecordCompletion(session)
	require.NoError(t, store.ApplyTransition(ctx, state, session))

	got, err := store.GetSession(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, 40*time.Minute, *got.ActualDuration)
	assert.Equal(t, estimate, *got.EstimatedDuration)

	reloaded, err := store.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Version)
	assert.Nil(t, reloaded.CurrentMainTaskID)
	stats := reloaded.DailyStats[reloaded.DayKey(*got.EndTime)]
	assert.Equal(t, 1, stats.TasksCompleted)
	assert.Equal(t, 10*time.Minute, stats.TimeVariance)
}

func TestSessionStore_ApplyTransitionRejectsStaleState(t *testing.T) {
	store := newTestRepository(t, nil).Sessions()
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	winner, err := store.GetState(ctx, "u1")
	require.NoError(t, err)
	loser, err := store.GetState(ctx, "u1")
	require.NoError(t, err)

	a := domain.NewTaskSession("a", "u1", "e1", domain.StartOptions{IsMainTask: true}, start)
	winner.Track(a)
	require.NoError(t, store.ApplyTransition(ctx, winner, a))

	b := domain.NewTaskSession("b", "u1", "e2", domain.StartOptions{IsMainTask: true}, start)
	loser.Track(b)
	err = store.ApplyTransition(ctx, loser, b)

	require.ErrorIs(t, err, domain.ErrConcurrentModification)
	_, err = store.GetSession(ctx, "u1", "b")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound, "sessions of a lost race are rolled back")

	active, err := store.ListSessionsByStatus(ctx, "u1", domain.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].ID)
}

func TestSessionStore_ListSessionsBetween(t *testing.T) {
	store := newTestRepository(t, nil).Sessions()
	ctx := context.Background()
	state, err := store.GetState(ctx, "u1")
	require.NoError(t, err)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	yesterday := domain.NewTaskSession("y", "u1", "e1", domain.StartOptions{}, day.Add(-time.Hour))
	today := domain.NewTaskSession("t", "u1", "e1", domain.StartOptions{}, day.Add(10*time.Hour))
	require.NoError(t, store.ApplyTransition(ctx, state, yesterday, today))

	got, err := store.ListSessionsBetween(ctx, "u1", day, day.AddDate(0, 0, 1))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t", got[0].ID)
}

func TestSessionStore_GetSessionMissing(t *testing.T) {
	store := newTestRepository(t, nil).Sessions()

	_, err := store.GetSession(context.Background(), "u1", "nope")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

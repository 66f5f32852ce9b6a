package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeManagerState_TrackAndRelease(t *testing.T) {
	state := NewTimeManagerState("u1")
	main := TaskSession{ID: "main", IsMainTask: true}
	sub := TaskSession{ID: "sub"}

	state.Track(main)
	state.Track(sub)
	state.Track(sub)

	require.NotNil(t, state.CurrentMainTaskID)
	assert.Equal(t, "main", *state.CurrentMainTaskID)
	assert.Equal(t, []string{"sub"}, state.SubTaskIDs)

	state.Release("main")
	state.Release("sub")

	assert.Nil(t, state.CurrentMainTaskID)
	assert.Empty(t, state.SubTaskIDs)
}

func TestTimeManagerState_RecordCompletion(t *testing.T) {
	state := NewTimeManagerState("u1")
	state.Preferences.Timezone = "UTC"

	withEstimate := activeSession()
	require.NoError(t, withEstimate.Complete(CompleteOptions{}, t0.Add(45*time.Minute)))
	withoutEstimate := NewTaskSession("s2", "u1", "e2", StartOptions{}, t0)
	require.NoError(t, withoutEstimate.Complete(CompleteOptions{}, t0.Add(20*time.Minute)))

	state.RecordCompletion(withEstimate)
	state.RecordCompletion(withoutEstimate)

	stats := state.StatsFor(t0)
	assert.Equal(t, 2, stats.TasksCompleted)
	assert.Equal(t, 65*time.Minute, stats.TotalTimeSpent)
	assert.Equal(t, 30*time.Minute, stats.EstimatedTime)
	assert.Equal(t, 15*time.Minute, stats.TimeVariance)
}

func TestTimeManagerState_RecordCompletionIgnoresOtherStatuses(t *testing.T) {
	state := NewTimeManagerState("u1")
	paused := activeSession()
	require.NoError(t, paused.Pause(t0.Add(time.Minute)))

	state.RecordCompletion(paused)

	assert.Empty(t, state.DailyStats)
}

func TestTimeManagerState_StatsBetweenIncludesEmptyDays(t *testing.T) {
	state := NewTimeManagerState("u1")
	state.Preferences.Timezone = "UTC"
	state.DailyStats["2026-03-11"] = DailyStats{TasksCompleted: 2}

	days := state.StatsBetween(t0, t0.AddDate(0, 0, 2))

	require.Len(t, days, 3)
	assert.Equal(t, "2026-03-10", days[0].Day)
	assert.Equal(t, 2, days[1].Stats.TasksCompleted)
	assert.Equal(t, "2026-03-12", days[2].Day)
}

func TestPreferences_Validate(t *testing.T) {
	assert.NoError(t, DefaultPreferences().Validate())

	p := DefaultPreferences()
	p.OverrunThreshold = 0
	assert.ErrorIs(t, p.Validate(), ErrValidation)

	p = DefaultPreferences()
	p.Timezone = "Mars/Olympus"
	assert.ErrorIs(t, p.Validate(), ErrValidation)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateOverrun(t *testing.T) {
	prefs := Preferences{DefaultEstimate: 60 * time.Minute, OverrunThreshold: 60 * time.Minute}

	tests := []struct {
		name          string
		elapsed       time.Duration
		expectedType  OverrunCheckType
		expectNil     bool
		overrun       time.Duration
		timeRemaining time.Duration
	}{
		{name: "within estimate", elapsed: 20 * time.Minute, expectNil: true},
		{name: "exactly at estimate", elapsed: 30 * time.Minute, expectNil: true},
		{name: "warning window", elapsed: 45 * time.Minute, expectedType: CheckWarning, timeRemaining: 45 * time.Minute},
		{name: "exactly at threshold", elapsed: 90 * time.Minute, expectedType: CheckWarning},
		{name: "overrun", elapsed: 95 * time.Minute, expectedType: CheckOverrun, overrun: 65 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := EvaluateOverrun(activeSession(), prefs, t0.Add(tt.elapsed))

			if tt.expectNil {
				assert.Nil(t, check)
				return
			}
			require.NotNil(t, check)
			assert.Equal(t, tt.expectedType, check.Type)
			assert.Equal(t, "s1", check.SessionID)
			assert.Equal(t, 30*time.Minute, check.Estimated)
			assert.Equal(t, tt.elapsed, check.Elapsed)
			assert.Equal(t, tt.overrun, check.OverrunDuration)
			assert.Equal(t, tt.timeRemaining, check.TimeRemaining)
			if tt.expectedType == CheckOverrun {
				assert.NotEmpty(t, check.Suggestions)
			}
		})
	}
}

func TestEvaluateOverrun_UsesDefaultEstimate(t *testing.T) {
	prefs := Preferences{DefaultEstimate: 10 * time.Minute, OverrunThreshold: 5 * time.Minute}
	s := NewTaskSession("s2", "u1", "e1", StartOptions{IsMainTask: true}, t0)

	check := EvaluateOverrun(s, prefs, t0.Add(16*time.Minute))

	require.NotNil(t, check)
	assert.Equal(t, CheckOverrun, check.Type)
	assert.Equal(t, 10*time.Minute, check.Estimated)
	assert.Equal(t, 6*time.Minute, check.OverrunDuration)
}

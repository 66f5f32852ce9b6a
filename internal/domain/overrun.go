package domain

import (
	"fmt"
	"time"
)

// OverrunCheckType is the outcome kind of an overrun check
type OverrunCheckType string

const (
	CheckOverrun OverrunCheckType = "overrun"
	CheckWarning OverrunCheckType = "warning"
)

// OverrunCheck is the result of checking the current main task against its estimate
type OverrunCheck struct {
	Elapsed         time.Duration
	Estimated       time.Duration
	OverrunDuration time.Duration // set for CheckOverrun
	SessionID       string
	Suggestions     []string      // set for CheckOverrun
	TimeRemaining   time.Duration // set for CheckWarning, time left before the overrun
	Type            OverrunCheckType
}

// EvaluateOverrun classifies an active session at now. The threshold is both
// the grace period after the estimate and the width of the warning window.
// It returns nil while the session is within its estimate.
func EvaluateOverrun(session TaskSession, prefs Preferences, now time.Time) *OverrunCheck {
	// Sessions started without an estimate use the default one
	estimated := prefs.DefaultEstimate
	if session.EstimatedDuration != nil {
		estimated = *session.EstimatedDuration
	}
	threshold := prefs.OverrunThreshold
	elapsed := now.Sub(session.StartTime)

	switch {
	// Past the grace period
	case elapsed > estimated+threshold:
		overrun := elapsed - estimated
		return &OverrunCheck{
			Elapsed:         elapsed,
			Estimated:       estimated,
			OverrunDuration: overrun,
			SessionID:       session.ID,
			Suggestions:     overrunSuggestions(estimated, overrun),
			Type:            CheckOverrun,
		}
	// Over the estimate but inside the grace period
	case elapsed > estimated:
		return &OverrunCheck{
			Elapsed:       elapsed,
			Estimated:     estimated,
			SessionID:     session.ID,
			TimeRemaining: estimated + threshold - elapsed,
			Type:          CheckWarning,
		}
	default:
		return nil
	}
}

func overrunSuggestions(estimated, overrun time.Duration) []string {
	suggestions := []string{
		"Take a short break before starting the next task",
		fmt.Sprintf("Review the estimate: the task ran %s over %s", overrun.Round(time.Minute), estimated.Round(time.Minute)),
	}
	// Took at least twice as long as planned
	if overrun >= estimated {
		suggestions = append(suggestions, "Split the remaining work into smaller tasks")
	}
	return append(suggestions, "Start a new session if the work continues")
}

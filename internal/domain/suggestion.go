package domain

import "time"

// Priority is the urgency bucket of a suggested task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityUrgent Priority = "urgent"
)

// PriorityFor derives the bucket from the time left until the event starts
func PriorityFor(timeToStart time.Duration) Priority {
	switch {
	case timeToStart < 30*time.Minute:
		return PriorityUrgent
	case timeToStart < 2*time.Hour:
		return PriorityHigh
	case timeToStart < 4*time.Hour:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// TaskSuggestion is an upcoming event the user could work on next
type TaskSuggestion struct {
	CanStartEarly bool
	Event         ExternalEvent
	Priority      Priority
	TimeToStart   time.Duration // negative when the event already started
}

// NewTaskSuggestion annotates an event relative to now
func NewTaskSuggestion(event ExternalEvent, now time.Time) TaskSuggestion {
	timeToStart := event.StartTime.Sub(now)
	return TaskSuggestion{
		CanStartEarly: event.StartTime.After(now),
		Event:         event,
		Priority:      PriorityFor(timeToStart),
		TimeToStart:   timeToStart,
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected Priority
	}{
		{-10 * time.Minute, PriorityUrgent},
		{29 * time.Minute, PriorityUrgent},
		{30 * time.Minute, PriorityHigh},
		{119 * time.Minute, PriorityHigh},
		{2 * time.Hour, PriorityMedium},
		{4 * time.Hour, PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, PriorityFor(tt.in))
		})
	}
}

func TestNewTaskSuggestion(t *testing.T) {
	upcoming := ExternalEvent{ID: "e1", StartTime: t0.Add(time.Hour), EndTime: t0.Add(2 * time.Hour)}
	started := ExternalEvent{ID: "e2", StartTime: t0.Add(-time.Hour), EndTime: t0.Add(time.Hour)}

	s := NewTaskSuggestion(upcoming, t0)
	assert.True(t, s.CanStartEarly)
	assert.Equal(t, PriorityHigh, s.Priority)
	assert.Equal(t, time.Hour, s.TimeToStart)

	s = NewTaskSuggestion(started, t0)
	assert.False(t, s.CanStartEarly)
	assert.Equal(t, PriorityUrgent, s.Priority)
}

func TestNewIssueEvent(t *testing.T) {
	issue := Issue{AccountID: "a1", Key: "PRJ-1", Summary: "Fix login", Status: "To Do", StatusCategory: "new"}

	e := NewIssueEvent("u1", issue, t0, t0)

	assert.Equal(t, OriginIssue, e.Origin)
	assert.Equal(t, "jira:a1", e.CalendarID)
	assert.Equal(t, "PRJ-1", e.ExternalID)
	assert.Equal(t, "PRJ-1 Fix login", e.Title)
	assert.Equal(t, t0.Add(time.Hour), e.EndTime)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeletionPolicyFor(t *testing.T) {
	tests := []struct {
		origin   EventOrigin
		trigger  DeletionTrigger
		expected DeletionPolicy
	}{
		{OriginCalendar, TriggerAbsentFromListing, DeletionHard},
		{OriginCalendar, TriggerRemoteNotFound, DeletionHard},
		{OriginCalendar, TriggerRemoteDone, DeletionNone},
		{OriginIssue, TriggerAbsentFromListing, DeletionNone},
		{OriginIssue, TriggerRemoteNotFound, DeletionSoft},
		{OriginIssue, TriggerRemoteDone, DeletionHard},
		{EventOrigin("other"), TriggerRemoteDone, DeletionNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.origin)+"/"+string(tt.trigger), func(t *testing.T) {
			assert.Equal(t, tt.expected, DeletionPolicyFor(tt.origin, tt.trigger))
		})
	}
}

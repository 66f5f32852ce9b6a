package services

import (
	"context"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// applyDeletion removes a cached event according to the deletion policy of its
// origin for trigger and returns the policy that was applied
func applyDeletion(
	ctx context.Context,
	events ports.EventWriter,
	event domain.ExternalEvent,
	trigger domain.DeletionTrigger,
	now time.Time,
) (domain.DeletionPolicy, error) {
	policy := domain.DeletionPolicyFor(event.Origin, trigger)
	logging.Logger.Debug("Applying deletion policy",
		"event", event.ID,
		"origin", event.Origin,
		"trigger", trigger,
		"policy", policy)

	// DeletionNone leaves the row untouched
	var err error
	switch policy {
	case domain.DeletionHard:
		err = events.Delete(ctx, event.UserID, event.ID)
	case domain.DeletionSoft:
		err = events.SoftDelete(ctx, event.UserID, event.ID, now)
	}
	return policy, err
}

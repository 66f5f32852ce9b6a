package ports

import (
	"context"
	"time"

	"github.com/renato0307/tempo/internal/domain"
)

// EventReader reads cached external events
type EventReader interface {
	Get(ctx context.Context, userID, eventID string) (*domain.ExternalEvent, error)
	GetByKey(ctx context.Context, userID, calendarID, externalID string) (*domain.ExternalEvent, error)
	ListByOrigin(ctx context.Context, userID string, origin domain.EventOrigin, includeDeleted bool) ([]domain.ExternalEvent, error)
	// ListForDay returns the events that are not soft deleted and overlap the window
	ListForDay(ctx context.Context, userID string, day domain.Window) ([]domain.ExternalEvent, error)
	// ListInWindow returns the events of one calendar overlapping the window, soft deleted included
	ListInWindow(ctx context.Context, userID, calendarID string, window domain.Window) ([]domain.ExternalEvent, error)
}

// EventWriter creates, updates, and removes cached events
type EventWriter interface {
	Delete(ctx context.Context, userID, eventID string) error
	SoftDelete(ctx context.Context, userID, eventID string, at time.Time) error
	// Upsert inserts or overwrites the row keyed by (user, calendar, external id).
	// event.ID is set to the stored row's ID.
	Upsert(ctx context.Context, event *domain.ExternalEvent) error
}

// EventRepository is the composite interface
type EventRepository interface {
	EventReader
	EventWriter
}

package ports

import (
	"context"
	"time"

	"github.com/renato0307/tempo/internal/domain"
)

// SessionReader reads task sessions and the time manager state
type SessionReader interface {
	// GetState returns the user's state, creating it with defaults on first use
	GetState(ctx context.Context, userID string) (*domain.TimeManagerState, error)
	GetSession(ctx context.Context, userID, sessionID string) (*domain.TaskSession, error)
	ListSessionsBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.TaskSession, error)
	ListSessionsByStatus(ctx context.Context, userID string, statuses ...domain.TaskStatus) ([]domain.TaskSession, error)
}

// SessionWriter persists session transitions
type SessionWriter interface {
	// ApplyTransition writes the given sessions and the state in one transaction.
	// The state write is conditional on its version; a lost race returns
	// domain.ErrConcurrentModification and nothing is written.
	ApplyTransition(ctx context.Context, state *domain.TimeManagerState, sessions ...domain.TaskSession) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
}

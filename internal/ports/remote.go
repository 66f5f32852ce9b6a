package ports

import (
	"context"

	"github.com/renato0307/tempo/internal/domain"
)

// CalendarClient talks to a remote calendar API
type CalendarClient interface {
	CreateEvent(ctx context.Context, token domain.BearerToken, calendarID string, in domain.EventInput) (*domain.RemoteEvent, error)
	DeleteEvent(ctx context.Context, token domain.BearerToken, calendarID, externalID string) error
	// ListEvents returns a single page of expanded events ordered by start time
	ListEvents(ctx context.Context, token domain.BearerToken, calendarID string, window domain.Window, maxResults int) ([]domain.RemoteEvent, error)
	UpdateEvent(ctx context.Context, token domain.BearerToken, calendarID, externalID string, in domain.EventInput) (*domain.RemoteEvent, error)
}

// IssueTracker talks to a remote issue tracker API
type IssueTracker interface {
	ApplyTransition(ctx context.Context, token domain.BearerToken, issueKey, transitionID string) error
	GetIssue(ctx context.Context, token domain.BearerToken, issueKey string) (*domain.Issue, error)
	ListTransitions(ctx context.Context, token domain.BearerToken, issueKey string) ([]domain.IssueTransition, error)
	// SearchAssigned returns the open issues assigned to the token's user
	SearchAssigned(ctx context.Context, token domain.BearerToken) ([]domain.Issue, error)
}

// TokenExchanger performs OAuth2 grants against a provider token endpoint.
// Rejected grants (HTTP 400/401) unwrap to domain.ErrAuthenticationRequired.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, provider domain.Provider, code, redirectURL string) (*domain.TokenGrant, error)
	Refresh(ctx context.Context, provider domain.Provider, refreshToken string) (*domain.TokenGrant, error)
}

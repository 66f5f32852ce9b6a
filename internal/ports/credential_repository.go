package ports

import (
	"context"
	"time"

	"github.com/renato0307/tempo/internal/domain"
)

// CredentialReader reads stored credentials
type CredentialReader interface {
	Get(ctx context.Context, userID string, provider domain.Provider, accountID string) (*domain.Credential, error)
	GetPrimary(ctx context.Context, userID string, provider domain.Provider) (*domain.Credential, error)
	List(ctx context.Context, userID string, provider domain.Provider) ([]domain.Credential, error)
	// ListActive returns the active credentials, primary first
	ListActive(ctx context.Context, userID string, provider domain.Provider) ([]domain.Credential, error)
}

// CredentialWriter creates and updates credentials
type CredentialWriter interface {
	Create(ctx context.Context, cred *domain.Credential) error
	Delete(ctx context.Context, userID string, provider domain.Provider, accountID string) error
	// MarkInvalid moves the credential to the invalid state regardless of its version
	MarkInvalid(ctx context.Context, credentialID, reason string, at time.Time) error
	SetPrimary(ctx context.Context, userID string, provider domain.Provider, accountID string) error
	// Update writes cred if its version is unchanged and bumps cred.Version
	Update(ctx context.Context, cred *domain.Credential) error
}

// CredentialRepository is the composite interface
type CredentialRepository interface {
	CredentialReader
	CredentialWriter
}

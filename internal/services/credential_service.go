package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// CredentialService keeps delegated provider credentials usable
type CredentialService struct {
	clock       ports.Clock
	credentials ports.CredentialRepository
	exchanger   ports.TokenExchanger
	leads       map[domain.Provider]time.Duration
	refreshes   singleflight.Group
}

// Verify interface compliance at compile time
var _ TokenProvider = (*CredentialService)(nil)

// NewCredentialService creates a new CredentialService. leads holds the
// near-expiry window per provider; missing entries use domain.DefaultRefreshLead.
func NewCredentialService(
	credentials ports.CredentialRepository,
	exchanger ports.TokenExchanger,
	clock ports.Clock,
	leads map[domain.Provider]time.Duration,
) *CredentialService {
	return &CredentialService{
		clock:       clock,
		credentials: credentials,
		exchanger:   exchanger,
		leads:       leads,
	}
}

func (s *CredentialService) lead(provider domain.Provider) time.Duration {
	if lead, ok := s.leads[provider]; ok {
		return lead
	}
	return domain.DefaultRefreshLead
}

// GetValidToken returns a usable access token, refreshing it when it is near expiry.
// Invalid or missing credentials yield domain.ErrAuthenticationRequired without network I/O.
func (s *CredentialService) GetValidToken(
	ctx context.Context,
	userID string,
	provider domain.Provider,
	sel domain.AccountSelector,
) (domain.BearerToken, error) {
	cred, err := s.resolve(ctx, userID, provider, sel)
	if err != nil {
		return domain.BearerToken{}, err
	}

	// Invalid is terminal, only a reconnect brings the account back
	switch cred.State(s.clock.Now(), s.lead(provider)) {
	case domain.CredentialInvalid:
		logging.Logger.Debug("Credential is invalid", "provider", provider, "account", cred.AccountID, "reason", cred.InvalidReason)
		return domain.BearerToken{}, fmt.Errorf("%w: %s account %s must be reconnected (%s)",
			domain.ErrAuthenticationRequired, provider, cred.AccountID, cred.InvalidReason)
	case domain.CredentialActive:
		return cred.BearerToken(), nil
	}

	// Concurrent callers for the same credential share one refresh
	v, err, shared := s.refreshes.Do(cred.ID, func() (any, error) {
		return s.refresh(ctx, cred)
	})
	if err != nil {
		return domain.BearerToken{}, err
	}
	if shared {
		logging.Logger.Debug("Joined in-flight refresh", "provider", provider, "account", cred.AccountID)
	}
	return v.(domain.BearerToken), nil
}

func (s *CredentialService) resolve(
	ctx context.Context,
	userID string,
	provider domain.Provider,
	sel domain.AccountSelector,
) (*domain.Credential, error) {
	var (
		cred *domain.Credential
		err  error
	)
	// No account named means the primary one
	if sel.AccountID == "" {
		cred, err = s.credentials.GetPrimary(ctx, userID, provider)
	} else {
		cred, err = s.credentials.Get(ctx, userID, provider, sel.AccountID)
	}
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthenticationRequired, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s credential: %w", provider, err)
	}
	return cred, nil
}

func (s *CredentialService) refresh(ctx context.Context, cred *domain.Credential) (domain.BearerToken, error) {
	if cred.RefreshToken == "" {
		return domain.BearerToken{}, s.invalidate(ctx, cred, domain.ReasonMissingRefreshToken)
	}

	logging.Logger.Info("Refreshing credential", "provider", cred.Provider, "account", cred.AccountID)
	grant, err := s.exchanger.Refresh(ctx, cred.Provider, cred.RefreshToken)
	if err != nil {
		// The provider refused the refresh token
		if errors.Is(err, domain.ErrAuthenticationRequired) {
			return domain.BearerToken{}, s.invalidate(ctx, cred, reasonCode(err))
		}
		logging.Logger.Warn("Refresh failed, credential left untouched",
			"provider", cred.Provider, "account", cred.AccountID, "error", err)
		if errors.Is(err, domain.ErrTransientFailure) {
			return domain.BearerToken{}, fmt.Errorf("failed to refresh %s account %s: %w", cred.Provider, cred.AccountID, err)
		}
		return domain.BearerToken{}, fmt.Errorf("%w: failed to refresh %s account %s: %w",
			domain.ErrTransientFailure, cred.Provider, cred.AccountID, err)
	}

	// Version check: another process may have refreshed first
	cred.ApplyGrant(*grant, s.clock.Now())
	err = s.credentials.Update(ctx, cred)
	if errors.Is(err, domain.ErrConcurrentModification) {
		return s.reread(ctx, cred)
	}
	if err != nil {
		return domain.BearerToken{}, fmt.Errorf("failed to store refreshed credential: %w", err)
	}
	return cred.BearerToken(), nil
}

// reread resolves a lost refresh race by taking the row the winner stored
func (s *CredentialService) reread(ctx context.Context, lost *domain.Credential) (domain.BearerToken, error) {
	logging.Logger.Info("Credential changed concurrently, re-reading", "provider", lost.Provider, "account", lost.AccountID)
	fresh, err := s.credentials.Get(ctx, lost.UserID, lost.Provider, lost.AccountID)
	if err != nil {
		return domain.BearerToken{}, fmt.Errorf("failed to re-read credential: %w", err)
	}
	if fresh.State(s.clock.Now(), 0) == domain.CredentialInvalid {
		return domain.BearerToken{}, fmt.Errorf("%w: %s account %s must be reconnected (%s)",
			domain.ErrAuthenticationRequired, fresh.Provider, fresh.AccountID, fresh.InvalidReason)
	}
	return fresh.BearerToken(), nil
}

func (s *CredentialService) invalidate(ctx context.Context, cred *domain.Credential, reason string) error {
	now := s.clock.Now()
	logging.Logger.Warn("Invalidating credential", "provider", cred.Provider, "account", cred.AccountID, "reason", reason)
	if err := s.credentials.MarkInvalid(ctx, cred.ID, reason, now); err != nil {
		logging.Logger.Error("Failed to persist invalid credential", "account", cred.AccountID, "error", err)
		return fmt.Errorf("%w: %s account %s (%s), not persisted: %v",
			domain.ErrAuthenticationRequired, cred.Provider, cred.AccountID, reason, err)
	}
	// Invalidate clears the primary flag, remember it for the promotion
	wasPrimary := cred.IsPrimary
	cred.Invalidate(reason, now)
	if wasPrimary {
		if err := s.promoteNext(ctx, cred.UserID, cred.Provider); err != nil {
			logging.Logger.Error("Failed to promote next account", "provider", cred.Provider, "error", err)
		}
	}
	return fmt.Errorf("%w: %s account %s must be reconnected (%s)",
		domain.ErrAuthenticationRequired, cred.Provider, cred.AccountID, reason)
}

// reasonCode extracts the provider reason carried by a remote error
func reasonCode(err error) string {
	var coded interface{ ReasonCode() string }
	if errors.As(err, &coded) {
		return coded.ReasonCode()
	}
	return domain.ReasonInvalidGrant
}

// Connect exchanges an authorization code and stores the resulting credential.
// Reconnecting an existing account re-activates it. The first active account of
// a provider becomes primary.
func (s *CredentialService) Connect(ctx context.Context, params ConnectParams) (*domain.CredentialStatus, error) {
	if params.AccountID == "" {
		return nil, fmt.Errorf("%w: account id is required", domain.ErrValidation)
	}
	if params.Code == "" {
		return nil, fmt.Errorf("%w: authorization code is required", domain.ErrValidation)
	}
	// Provider metadata defaults to the empty shape of the provider
	meta := params.Meta
	if meta == nil {
		var err error
		if meta, err = domain.EmptyMeta(params.Provider); err != nil {
			return nil, err
		}
	}
	if meta.Provider() != params.Provider {
		return nil, fmt.Errorf("%w: %s metadata given for %s", domain.ErrValidation, meta.Provider(), params.Provider)
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	logging.Logger.Info("Connecting account", "provider", params.Provider, "account", params.AccountID)
	// Exchange before touching storage so a bad code leaves no trace
	grant, err := s.exchanger.ExchangeCode(ctx, params.Provider, params.Code, params.RedirectURL)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	hasPrimary, err := s.hasPrimary(ctx, params.UserID, params.Provider)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	// Reconnecting an existing account updates it in place
	cred, err := s.credentials.Get(ctx, params.UserID, params.Provider, params.AccountID)
	switch {
	case errors.Is(err, domain.ErrCredentialNotFound):
		cred = &domain.Credential{
			AccountID: params.AccountID,
			CreatedAt: now,
			IsActive:  true,
			IsPrimary: !hasPrimary,
			Meta:      meta,
			Provider:  params.Provider,
			UserID:    params.UserID,
		}
		cred.ApplyGrant(*grant, now)
		if err := s.credentials.Create(ctx, cred); err != nil {
			return nil, fmt.Errorf("failed to store credential: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load credential: %w", err)
	default:
		cred.ApplyGrant(*grant, now)
		// Clear any previous invalidation
		cred.IsActive = true
		cred.InvalidReason = ""
		cred.InvalidatedAt = nil
		cred.Meta = meta
		if !hasPrimary {
			cred.IsPrimary = true
		}
		if err := s.credentials.Update(ctx, cred); err != nil {
			return nil, fmt.Errorf("failed to store credential: %w", err)
		}
	}

	status := cred.Status(now, s.lead(cred.Provider))
	logging.Logger.Info("Account connected", "provider", params.Provider, "account", params.AccountID, "primary", cred.IsPrimary)
	return &status, nil
}

func (s *CredentialService) hasPrimary(ctx context.Context, userID string, provider domain.Provider) (bool, error) {
	_, err := s.credentials.GetPrimary(ctx, userID, provider)
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load primary credential: %w", err)
	}
	return true, nil
}

// ListCredentials returns the secret-free status of every account of a provider
func (s *CredentialService) ListCredentials(ctx context.Context, userID string, provider domain.Provider) ([]domain.CredentialStatus, error) {
	creds, err := s.credentials.List(ctx, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	now := s.clock.Now()
	statuses := make([]domain.CredentialStatus, len(creds))
	for i := range creds {
		statuses[i] = creds[i].Status(now, s.lead(creds[i].Provider))
	}
	return statuses, nil
}

// SetPrimary makes accountID the primary account of the provider
func (s *CredentialService) SetPrimary(ctx context.Context, userID string, provider domain.Provider, accountID string) error {
	logging.Logger.Info("Setting primary account", "provider", provider, "account", accountID)
	if err := s.credentials.SetPrimary(ctx, userID, provider, accountID); err != nil {
		return fmt.Errorf("failed to set primary account: %w", err)
	}
	return nil
}

// Disconnect removes an account. When the primary account goes, the next
// active account is promoted.
func (s *CredentialService) Disconnect(ctx context.Context, userID string, provider domain.Provider, accountID string) error {
	logging.Logger.Info("Disconnecting account", "provider", provider, "account", accountID)
	if err := s.credentials.Delete(ctx, userID, provider, accountID); err != nil {
		return fmt.Errorf("failed to disconnect account: %w", err)
	}

	return s.promoteNext(ctx, userID, provider)
}

// promoteNext makes the oldest active account primary when the provider
// has none left
func (s *CredentialService) promoteNext(ctx context.Context, userID string, provider domain.Provider) error {
	hasPrimary, err := s.hasPrimary(ctx, userID, provider)
	if err != nil || hasPrimary {
		return err
	}
	remaining, err := s.credentials.ListActive(ctx, userID, provider)
	if err != nil {
		return fmt.Errorf("failed to list remaining accounts: %w", err)
	}
	// ListActive orders primary first then by age, so this is the oldest
	if len(remaining) == 0 {
		return nil
	}
	return s.SetPrimary(ctx, userID, provider, remaining[0].AccountID)
}

// Accounts returns every credential of a provider, invalidated ones
// included, primary first
func (s *CredentialService) Accounts(ctx context.Context, userID string, provider domain.Provider) ([]domain.Credential, error) {
	creds, err := s.credentials.List(ctx, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s accounts: %w", provider, err)
	}
	return creds, nil
}

// ActiveAccounts returns the active credentials of a provider, primary first
func (s *CredentialService) ActiveAccounts(ctx context.Context, userID string, provider domain.Provider) ([]domain.Credential, error) {
	creds, err := s.credentials.ListActive(ctx, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to list active %s accounts: %w", provider, err)
	}
	return creds, nil
}

package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/renato0307/tempo/internal/adapters/remote"
	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// Exchanger performs authorization_code and refresh_token grants with x/oauth2
type Exchanger struct {
	httpClient *http.Client
	providers  map[domain.Provider]config.ProviderSettings
}

// Verify interface compliance at compile time
var _ ports.TokenExchanger = (*Exchanger)(nil)

// NewExchanger creates an exchanger for the configured providers
func NewExchanger(providers map[domain.Provider]config.ProviderSettings, timeout time.Duration) *Exchanger {
	if timeout <= 0 {
		timeout = remote.DefaultTimeout
	}
	return &Exchanger{
		httpClient: &http.Client{Timeout: timeout},
		providers:  providers,
	}
}

// NewExchangerFromSettings builds the provider table from the settings file
func NewExchangerFromSettings(settings *config.Settings) *Exchanger {
	providers := make(map[domain.Provider]config.ProviderSettings, len(domain.Providers))
	for _, p := range domain.Providers {
		providers[p] = settings.Provider(p)
	}
	return NewExchanger(providers, settings.HTTPTimeout())
}

// ExchangeCode implements ports.TokenExchanger.ExchangeCode
func (e *Exchanger) ExchangeCode(ctx context.Context, provider domain.Provider, code, redirectURL string) (*domain.TokenGrant, error) {
	cfg, err := e.config(provider)
	if err != nil {
		return nil, err
	}
	if redirectURL != "" {
		cfg.RedirectURL = redirectURL
	}

	logging.Logger.Debug("Exchanging authorization code", "provider", provider)
	tok, err := cfg.Exchange(e.context(ctx), code)
	if err != nil {
		return nil, classify(provider, "exchange code", err)
	}
	return toGrant(tok), nil
}

// Refresh implements ports.TokenExchanger.Refresh. The returned grant carries
// a refresh token only when the provider rotated it.
func (e *Exchanger) Refresh(ctx context.Context, provider domain.Provider, refreshToken string) (*domain.TokenGrant, error) {
	cfg, err := e.config(provider)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Refreshing access token", "provider", provider)
	// An expired token with only the refresh token set forces a refresh
	tok, err := cfg.TokenSource(e.context(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, classify(provider, "refresh token", err)
	}

	grant := toGrant(tok)
	// x/oauth2 echoes the old refresh token when the provider did not rotate it
	if grant.RefreshToken == refreshToken {
		grant.RefreshToken = ""
	}
	return grant, nil
}

// AuthCodeURL returns the consent page the user opens to obtain an
// authorization code. Both providers only issue refresh tokens on offline consent.
func (e *Exchanger) AuthCodeURL(provider domain.Provider, state, redirectURL string) (string, error) {
	cfg, err := e.config(provider)
	if err != nil {
		return "", err
	}
	if redirectURL != "" {
		cfg.RedirectURL = redirectURL
	}
	opts := []oauth2.AuthCodeOption{oauth2.SetAuthURLParam("prompt", "consent")}
	switch provider {
	case domain.ProviderGoogle:
		opts = append(opts, oauth2.AccessTypeOffline)
	case domain.ProviderJira:
		opts = append(opts, oauth2.SetAuthURLParam("audience", "api.atlassian.com"))
	}
	return cfg.AuthCodeURL(state, opts...), nil
}

func (e *Exchanger) config(provider domain.Provider) (*oauth2.Config, error) {
	ps, ok := e.providers[provider]
	if !ok || ps.TokenURL == "" {
		return nil, fmt.Errorf("%w: provider %s is not configured", domain.ErrValidation, provider)
	}
	return &oauth2.Config{
		ClientID:     ps.ClientID,
		ClientSecret: ps.ClientSecret,
		Endpoint: oauth2.Endpoint{
			// Both providers take the client credentials in the form body
			AuthStyle: oauth2.AuthStyleInParams,
			AuthURL:   ps.AuthURL,
			TokenURL:  ps.TokenURL,
		},
		RedirectURL: ps.RedirectURL,
		Scopes:      ps.Scopes,
	}, nil
}

func (e *Exchanger) context(ctx context.Context) context.Context {
	// x/oauth2 picks the HTTP client up from the context
	return context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
}

// classify maps a token endpoint failure onto the remote error taxonomy.
// A rejected grant (400 or 401) means the credential cannot be used again.
func classify(provider domain.Provider, op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	// No response from the token endpoint at all
	if !errors.As(err, &retrieveErr) || retrieveErr.Response == nil {
		return remote.Transport(provider, op, err)
	}

	status := retrieveErr.Response.StatusCode
	kind := domain.ErrTransientFailure
	if status == http.StatusBadRequest || status == http.StatusUnauthorized {
		kind = domain.ErrAuthenticationRequired
	}
	return &remote.Error{
		Body:       strings.TrimSpace(retrieveErr.ErrorDescription),
		Code:       retrieveErr.ErrorCode,
		Kind:       kind,
		Op:         op,
		Provider:   provider,
		StatusCode: status,
	}
}

func toGrant(tok *oauth2.Token) *domain.TokenGrant {
	grant := &domain.TokenGrant{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.Type(),
	}
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry.UTC()
		grant.ExpiresAt = &expiry
	}
	// Granted scopes, when the provider reports them
	if scope, ok := tok.Extra("scope").(string); ok {
		grant.Scopes = scope
	}
	return grant
}

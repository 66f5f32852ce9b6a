package domain

import (
	"strings"
	"time"
)

// DefaultRefreshLead is how long before expiry a credential counts as near expiry
const DefaultRefreshLead = 5 * time.Minute

// Reason codes persisted when a credential becomes invalid
const (
	ReasonMissingRefreshToken = "missing_refresh_token"
	ReasonInvalidGrant        = "invalid_grant"
)

// CredentialState is the lifecycle state of a credential as seen at read time
type CredentialState string

const (
	CredentialActive     CredentialState = "active"
	CredentialNearExpiry CredentialState = "near_expiry"
	CredentialInvalid    CredentialState = "invalid"
)

// Credential is the delegated access of one (user, provider, account)
type Credential struct {
	AccessToken   string
	AccountID     string
	CreatedAt     time.Time
	ExpiresAt     *time.Time // nil never expires
	ID            string
	InvalidReason string
	InvalidatedAt *time.Time
	IsActive      bool
	IsPrimary     bool
	Meta          ProviderMeta
	Provider      Provider
	RefreshToken  string // empty when the provider issued none
	Scopes        string
	TokenType     string
	UpdatedAt     time.Time
	UserID        string
	Version       int
}

// State evaluates the credential at now, using lead as the near-expiry window
func (c *Credential) State(now time.Time, lead time.Duration) CredentialState {
	if !c.IsActive {
		return CredentialInvalid
	}
	if c.ExpiresAt == nil {
		return CredentialActive
	}
	if c.ExpiresAt.Sub(now) <= lead {
		return CredentialNearExpiry
	}
	return CredentialActive
}

// Invalidate moves the credential to the terminal invalid state
func (c *Credential) Invalidate(reason string, now time.Time) {
	c.IsActive = false
	c.IsPrimary = false
	c.InvalidReason = reason
	c.InvalidatedAt = &now
	c.UpdatedAt = now
}

// ApplyGrant stores a freshly issued token set. The refresh token is only
// replaced when the provider rotated it.
func (c *Credential) ApplyGrant(g TokenGrant, now time.Time) {
	c.AccessToken = g.AccessToken
	if g.RefreshToken != "" {
		c.RefreshToken = g.RefreshToken
	}
	if g.TokenType != "" {
		c.TokenType = g.TokenType
	}
	if g.Scopes != "" {
		c.Scopes = g.Scopes
	}
	c.ExpiresAt = g.ExpiresAt
	c.UpdatedAt = now
}

// BearerToken returns the token handed to remote clients
func (c *Credential) BearerToken() BearerToken {
	tokenType := c.TokenType
	if tokenType == "" || strings.EqualFold(tokenType, "bearer") {
		tokenType = "Bearer"
	}
	return BearerToken{
		AccessToken: c.AccessToken,
		AccountID:   c.AccountID,
		ExpiresAt:   c.ExpiresAt,
		Meta:        c.Meta,
		Provider:    c.Provider,
		TokenType:   tokenType,
	}
}

// TokenGrant is what a token endpoint returns for a code or refresh grant
type TokenGrant struct {
	AccessToken  string
	ExpiresAt    *time.Time
	RefreshToken string
	Scopes       string
	TokenType    string
}

// BearerToken is a currently valid access token plus the account context
// needed to address the provider API
type BearerToken struct {
	AccessToken string
	AccountID   string
	ExpiresAt   *time.Time
	Meta        ProviderMeta
	Provider    Provider
	TokenType   string
}

// AuthorizationHeader renders the HTTP Authorization header value
func (t BearerToken) AuthorizationHeader() string {
	return t.TokenType + " " + t.AccessToken
}

// JiraMeta returns the Jira metadata of the token, if any
func (t BearerToken) JiraMeta() (JiraMeta, bool) {
	m, ok := t.Meta.(JiraMeta)
	return m, ok
}

// AccountSelector picks a credential among the accounts of a provider.
// An empty AccountID selects the primary account.
type AccountSelector struct {
	AccountID string
}

// CredentialStatus is a public-safe view of a credential, without secrets
type CredentialStatus struct {
	AccountID     string
	ExpiresAt     *time.Time
	ExpiresSoon   bool
	InvalidReason string
	IsActive      bool
	IsPrimary     bool
	Provider      Provider
	Scopes        string
}

// Status builds the public view of the credential
func (c *Credential) Status(now time.Time, lead time.Duration) CredentialStatus {
	return CredentialStatus{
		AccountID:     c.AccountID,
		ExpiresAt:     c.ExpiresAt,
		ExpiresSoon:   c.State(now, lead) == CredentialNearExpiry,
		InvalidReason: c.InvalidReason,
		IsActive:      c.IsActive,
		IsPrimary:     c.IsPrimary,
		Provider:      c.Provider,
		Scopes:        c.Scopes,
	}
}

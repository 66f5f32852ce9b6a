package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expiringAt(t time.Time) *time.Time { return &t }

func TestCredential_State(t *testing.T) {
	tests := []struct {
		name     string
		cred     Credential
		expected CredentialState
	}{
		{"inactive", Credential{IsActive: false, ExpiresAt: expiringAt(t0.Add(time.Hour))}, CredentialInvalid},
		{"no expiry", Credential{IsActive: true}, CredentialActive},
		{"far from expiry", Credential{IsActive: true, ExpiresAt: expiringAt(t0.Add(time.Hour))}, CredentialActive},
		{"inside lead", Credential{IsActive: true, ExpiresAt: expiringAt(t0.Add(2 * time.Minute))}, CredentialNearExpiry},
		{"at lead boundary", Credential{IsActive: true, ExpiresAt: expiringAt(t0.Add(DefaultRefreshLead))}, CredentialNearExpiry},
		{"expired", Credential{IsActive: true, ExpiresAt: expiringAt(t0.Add(-time.Minute))}, CredentialNearExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cred.State(t0, DefaultRefreshLead))
		})
	}
}

func TestCredential_Invalidate(t *testing.T) {
	c := Credential{IsActive: true, IsPrimary: true}

	c.Invalidate(ReasonInvalidGrant, t0)

	assert.False(t, c.IsActive)
	assert.False(t, c.IsPrimary)
	assert.Equal(t, ReasonInvalidGrant, c.InvalidReason)
	require.NotNil(t, c.InvalidatedAt)
	assert.Equal(t, t0, *c.InvalidatedAt)
}

func TestCredential_ApplyGrant(t *testing.T) {
	t.Run("keeps refresh token when not rotated", func(t *testing.T) {
		c := Credential{AccessToken: "old", RefreshToken: "r1"}

		c.ApplyGrant(TokenGrant{AccessToken: "new", ExpiresAt: expiringAt(t0.Add(time.Hour))}, t0)

		assert.Equal(t, "new", c.AccessToken)
		assert.Equal(t, "r1", c.RefreshToken)
		assert.Equal(t, t0.Add(time.Hour), *c.ExpiresAt)
	})

	t.Run("replaces rotated refresh token", func(t *testing.T) {
		c := Credential{AccessToken: "old", RefreshToken: "r1"}

		c.ApplyGrant(TokenGrant{AccessToken: "new", RefreshToken: "r2"}, t0)

		assert.Equal(t, "r2", c.RefreshToken)
		assert.Nil(t, c.ExpiresAt)
	})
}

func TestCredential_BearerToken(t *testing.T) {
	c := Credential{AccessToken: "abc", AccountID: "acct", Provider: ProviderJira, TokenType: "bearer", Meta: JiraMeta{CloudID: "cloud"}}

	token := c.BearerToken()

	assert.Equal(t, "Bearer abc", token.AuthorizationHeader())
	meta, ok := token.JiraMeta()
	require.True(t, ok)
	assert.Equal(t, "cloud", meta.CloudID)
}

func TestJiraMeta_Validate(t *testing.T) {
	assert.ErrorIs(t, JiraMeta{SiteURL: "https://x.atlassian.net"}.Validate(), ErrValidation)
	assert.NoError(t, JiraMeta{CloudID: "c"}.Validate())
}

func TestGoogleMeta_Calendars(t *testing.T) {
	assert.Equal(t, []string{DefaultCalendarID}, GoogleMeta{}.Calendars())
	assert.Equal(t, []string{"work"}, GoogleMeta{CalendarIDs: []string{"work"}}.Calendars())
}

func TestErrConcurrentModification_IsStateConflict(t *testing.T) {
	err := fmt.Errorf("save state: %w", ErrConcurrentModification)

	assert.True(t, errors.Is(err, ErrStateConflict))
	assert.True(t, errors.Is(err, ErrConcurrentModification))
	assert.False(t, errors.Is(ErrStateConflict, ErrConcurrentModification))
}

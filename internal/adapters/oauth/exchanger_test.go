package oauth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/adapters/remote"
	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/domain"
)

func newTestExchanger(tokenURL string) *Exchanger {
	return NewExchanger(map[domain.Provider]config.ProviderSettings{
		domain.ProviderGoogle: {
			ClientID:     "client",
			ClientSecret: "secret",
			TokenURL:     tokenURL,
		},
	}, time.Second)
}

func tokenServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestExchanger_ExchangeCode(t *testing.T) {
	server := tokenServer(t, http.StatusOK,
		`{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":3600,"scope":"calendar"}`,
		func(r *http.Request) {
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "the-code", r.PostForm.Get("code"))
			assert.Equal(t, "http://localhost/cb", r.PostForm.Get("redirect_uri"))
			assert.Equal(t, "client", r.PostForm.Get("client_id"))
		})

	grant, err := newTestExchanger(server.URL).ExchangeCode(context.Background(), domain.ProviderGoogle, "the-code", "http://localhost/cb")

	require.NoError(t, err)
	assert.Equal(t, "at", grant.AccessToken)
	assert.Equal(t, "rt", grant.RefreshToken)
	assert.Equal(t, "Bearer", grant.TokenType)
	assert.Equal(t, "calendar", grant.Scopes)
	require.NotNil(t, grant.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *grant.ExpiresAt, time.Minute)
}

func TestExchanger_RefreshWithoutRotation(t *testing.T) {
	server := tokenServer(t, http.StatusOK, `{"access_token":"new","token_type":"Bearer","expires_in":3600}`,
		func(r *http.Request) {
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "old-rt", r.PostForm.Get("refresh_token"))
		})

	grant, err := newTestExchanger(server.URL).Refresh(context.Background(), domain.ProviderGoogle, "old-rt")

	require.NoError(t, err)
	assert.Equal(t, "new", grant.AccessToken)
	assert.Empty(t, grant.RefreshToken)
}

func TestExchanger_RefreshWithRotation(t *testing.T) {
	server := tokenServer(t, http.StatusOK, `{"access_token":"new","refresh_token":"new-rt","expires_in":60}`, nil)

	grant, err := newTestExchanger(server.URL).Refresh(context.Background(), domain.ProviderGoogle, "old-rt")

	require.NoError(t, err)
	assert.Equal(t, "new-rt", grant.RefreshToken)
}

func TestExchanger_RefreshFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
		code     string
	}{
		{"invalid grant", http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`, domain.ErrAuthenticationRequired, "invalid_grant"},
		{"unauthorized client", http.StatusUnauthorized, `{"error":"invalid_client"}`, domain.ErrAuthenticationRequired, "invalid_client"},
		{"server error", http.StatusInternalServerError, `{"error":"internal"}`, domain.ErrTransientFailure, "internal"},
		{"rate limited", http.StatusTooManyRequests, ``, domain.ErrTransientFailure, "http_429"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tokenServer(t, tt.status, tt.body, nil)

			_, err := newTestExchanger(server.URL).Refresh(context.Background(), domain.ProviderGoogle, "rt")

			require.ErrorIs(t, err, tt.expected)
			var remoteErr *remote.Error
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tt.code, remoteErr.ReasonCode())
			assert.Equal(t, tt.status, remoteErr.StatusCode)
		})
	}
}

func TestExchanger_UnreachableEndpointIsTransient(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestExchanger(url).Refresh(context.Background(), domain.ProviderGoogle, "rt")

	assert.ErrorIs(t, err, domain.ErrTransientFailure)
	assert.NotErrorIs(t, err, domain.ErrAuthenticationRequired)
}

func TestExchanger_UnknownProvider(t *testing.T) {
	_, err := newTestExchanger("http://unused").Refresh(context.Background(), domain.ProviderJira, "rt")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExchanger_AuthCodeURL(t *testing.T) {
	exchanger := NewExchanger(map[domain.Provider]config.ProviderSettings{
		domain.ProviderGoogle: {
			AuthURL:  "https://auth.example.com/authorize",
			ClientID: "client",
			Scopes:   []string{"calendar"},
			TokenURL: "https://auth.example.com/token",
		},
	}, time.Second)

	raw, err := exchanger.AuthCodeURL(domain.ProviderGoogle, "xyz", "http://localhost:8085/callback")

	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "auth.example.com", u.Host)
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "xyz", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "http://localhost:8085/callback", q.Get("redirect_uri"))
}

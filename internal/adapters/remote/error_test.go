package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/domain"
)

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected error
	}{
		{http.StatusUnauthorized, domain.ErrAuthenticationRequired},
		{http.StatusForbidden, domain.ErrPermissionDenied},
		{http.StatusNotFound, domain.ErrNotFoundRemote},
		{http.StatusBadRequest, domain.ErrTransientFailure},
		{http.StatusTooManyRequests, domain.ErrTransientFailure},
		{http.StatusInternalServerError, domain.ErrTransientFailure},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, KindForStatus(tt.status))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "invalid_grant", errorCode([]byte(`{"error":"invalid_grant","error_description":"expired"}`)))
	assert.Equal(t, "NOT_FOUND", errorCode([]byte(`{"error":{"code":404,"status":"NOT_FOUND"}}`)))
	assert.Empty(t, errorCode([]byte(`{"errorMessages":["Issue does not exist"]}`)))
	assert.Empty(t, errorCode([]byte(`not json`)))
}

func TestError_ReasonCode(t *testing.T) {
	assert.Equal(t, "invalid_grant", (&Error{Code: "invalid_grant", StatusCode: 400}).ReasonCode())
	assert.Equal(t, "http_401", (&Error{StatusCode: 401}).ReasonCode())
	assert.Equal(t, "transport", (&Error{}).ReasonCode())
}

func TestClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"value"}`))
		case "/forbidden":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"status":"PERMISSION_DENIED"}}`))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
		}
	}))
	defer server.Close()

	token := domain.BearerToken{AccessToken: "tok", TokenType: "Bearer"}
	client := NewClient(domain.ProviderGoogle, 50*time.Millisecond)
	ctx := context.Background()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.Do(ctx, "get", http.MethodGet, server.URL+"/ok", token, nil, &out))
	assert.Equal(t, "value", out.Name)

	err := client.Do(ctx, "get", http.MethodGet, server.URL+"/forbidden", token, nil, nil)
	require.ErrorIs(t, err, domain.ErrPermissionDenied)
	var remoteErr *Error
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusForbidden, remoteErr.StatusCode)
	assert.Equal(t, "PERMISSION_DENIED", remoteErr.Code)

	err = client.Do(ctx, "get", http.MethodGet, server.URL+"/slow", token, nil, nil)
	assert.ErrorIs(t, err, domain.ErrTransientFailure)
}

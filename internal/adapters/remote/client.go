package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
)

// DefaultTimeout applies when the caller does not configure one
const DefaultTimeout = 30 * time.Second

// Client performs authenticated JSON calls against one provider API.
// Calls are single attempt; retrying is left to the user.
type Client struct {
	httpClient *http.Client
	provider   domain.Provider
}

// NewClient creates a client with the given request timeout
func NewClient(provider domain.Provider, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		provider:   provider,
	}
}

// NewClientWithHTTP creates a client around an existing http.Client
func NewClientWithHTTP(provider domain.Provider, httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient, provider: provider}
}

// Do sends a request with the bearer token and decodes a JSON response into
// out when out is non-nil. Non-2xx responses become *Error.
func (c *Client) Do(ctx context.Context, op, method, url string, token domain.BearerToken, in, out any) error {
	var body io.Reader
	// Encode the request body, if any
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: failed to encode request: %w", c.provider, op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to build request: %w", c.provider, op, err)
	}
	req.Header.Set("Authorization", token.AuthorizationHeader())
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	// Network errors never reached the provider, treat them as transient
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("Remote call failed", "provider", c.provider, "op", op, "error", err)
		return Transport(c.provider, op, err)
	}
	defer resp.Body.Close()

	logging.Logger.Debug("Remote call",
		"provider", c.provider,
		"op", op,
		"method", method,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return FromResponse(c.provider, op, resp)
	}
	if out == nil {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	// A 2xx with an unreadable body is reported as transient
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Body:       err.Error(),
			Kind:       domain.ErrTransientFailure,
			Op:         op,
			Provider:   c.provider,
			StatusCode: resp.StatusCode,
		}
	}
	return nil
}

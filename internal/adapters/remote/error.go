package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/renato0307/tempo/internal/domain"
)

// maxErrorBody bounds how much of an error response is kept
const maxErrorBody = 4096

// Error is a failed remote call. It unwraps to the domain sentinel of its Kind
// so callers branch with errors.Is.
type Error struct {
	Body       string
	Code       string // provider error code, e.g. invalid_grant
	Kind       error
	Op         string
	Provider   domain.Provider
	StatusCode int // 0 for transport failures
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %v", e.Provider, e.Op, e.Kind)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d", e.StatusCode)
		if e.Code != "" {
			fmt.Fprintf(&b, ", %s", e.Code)
		}
		b.WriteString(")")
	}
	if e.Body != "" && e.StatusCode != 0 {
		fmt.Fprintf(&b, ": %s", truncate(e.Body, 200))
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Kind }

// ReasonCode is the code persisted when the error invalidates a credential
func (e *Error) ReasonCode() string {
	if e.Code != "" {
		return e.Code
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("http_%d", e.StatusCode)
	}
	return "transport"
}

// KindForStatus maps an HTTP status to the domain error taxonomy
func KindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrAuthenticationRequired
	case http.StatusForbidden:
		return domain.ErrPermissionDenied
	case http.StatusNotFound:
		return domain.ErrNotFoundRemote
	default:
		return domain.ErrTransientFailure
	}
}

// FromResponse builds the error of a non-success response, consuming its body
func FromResponse(provider domain.Provider, op string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &Error{
		Body:       string(body),
		Code:       errorCode(body),
		Kind:       KindForStatus(resp.StatusCode),
		Op:         op,
		Provider:   provider,
		StatusCode: resp.StatusCode,
	}
}

// Transport wraps a network level failure, which is always transient
func Transport(provider domain.Provider, op string, err error) *Error {
	return &Error{
		Body:     err.Error(),
		Kind:     domain.ErrTransientFailure,
		Op:       op,
		Provider: provider,
	}
}

// errorCode extracts the provider error code from the common JSON shapes:
// OAuth {"error":"invalid_grant"}, Google {"error":{"status":"NOT_FOUND"}},
// Jira {"errorMessages":[...]} has no code.
func errorCode(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return ""
	}
	var code string
	if err := json.Unmarshal(envelope.Error, &code); err == nil {
		return code
	}
	var nested struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(envelope.Error, &nested); err == nil {
		return nested.Status
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

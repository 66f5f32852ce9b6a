package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/tempo/internal/domain"
)

func TestExitCodeAndHint(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		hasHint bool
	}{
		{"nil", nil, 0, false},
		{"reconnect", fmt.Errorf("sync: %w", domain.ErrAuthenticationRequired), ExitReconnect, true},
		{"permission", fmt.Errorf("list: %w", domain.ErrPermissionDenied), ExitPermission, true},
		{"transient", fmt.Errorf("list: %w", domain.ErrTransientFailure), ExitTryAgain, true},
		{"conflict", domain.ErrConcurrentModification, ExitFailure, true},
		{"plain", errors.New("boom"), ExitFailure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCode(tt.err))
			if tt.err != nil {
				assert.Equal(t, tt.hasHint, Hint(tt.err) != "")
			}
		})
	}
}

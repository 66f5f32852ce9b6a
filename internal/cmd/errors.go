package cmd

import (
	"errors"

	"github.com/renato0307/tempo/internal/domain"
)

// Exit codes of failed commands
const (
	ExitFailure        = 1
	ExitReconnect      = 3
	ExitPermission     = 4
	ExitTryAgain       = 5
	exitValidationHint = "check the command arguments"
)

// ExitCode maps a command error onto the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return ExitReconnect
	case errors.Is(err, domain.ErrPermissionDenied):
		return ExitPermission
	case errors.Is(err, domain.ErrTransientFailure):
		return ExitTryAgain
	default:
		return ExitFailure
	}
}

// Hint returns the user-facing affordance for an error, empty when there is none
func Hint(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return "reconnect the account with 'tempo auth connect'"
	case errors.Is(err, domain.ErrPermissionDenied):
		return "fix the account permissions or the requested scopes, then retry"
	case errors.Is(err, domain.ErrTransientFailure):
		return "the provider could not be reached, try again later"
	case errors.Is(err, domain.ErrConcurrentModification):
		return "the state changed while the command ran, run it again"
	case errors.Is(err, domain.ErrValidation):
		return exitValidationHint
	default:
		return ""
	}
}

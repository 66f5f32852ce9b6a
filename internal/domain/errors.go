package domain

import "errors"

// Error taxonomy shared by services and adapters. Callers branch with errors.Is.
var (
	// ErrAuthenticationRequired means the credential is missing or can no longer be
	// refreshed; the user has to reconnect the account
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrPermissionDenied means the account is connected but lacks rights for the request
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFoundRemote means the remote entity is gone
	ErrNotFoundRemote = errors.New("remote entity not found")
	// ErrTransientFailure covers every other remote failure
	ErrTransientFailure = errors.New("transient remote failure")
	ErrValidation       = errors.New("validation failed")
	ErrStateConflict    = errors.New("state conflict")
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrSessionNotFound    = errors.New("task session not found")
)

// ErrConcurrentModification is returned when a versioned row changed between read and write
var ErrConcurrentModification = concurrentModificationError{}

type concurrentModificationError struct{}

func (concurrentModificationError) Error() string { return "concurrent modification" }

func (concurrentModificationError) Is(target error) bool { return target == ErrStateConflict }

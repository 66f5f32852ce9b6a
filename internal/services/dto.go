package services

import (
	"context"

	"github.com/renato0307/tempo/internal/domain"
)

// TokenProvider hands out valid access tokens for the accounts of a user
type TokenProvider interface {
	Accounts(ctx context.Context, userID string, provider domain.Provider) ([]domain.Credential, error)
	GetValidToken(ctx context.Context, userID string, provider domain.Provider, sel domain.AccountSelector) (domain.BearerToken, error)
}

// ConnectParams contains parameters for connecting an account
type ConnectParams struct {
	AccountID   string
	Code        string
	Meta        domain.ProviderMeta // nil uses the provider's empty metadata
	Provider    domain.Provider
	RedirectURL string
	UserID      string
}

// ItemError is the failure of one item inside a batch
type ItemError struct {
	Err error
	Key string
}

func (e ItemError) Error() string {
	return e.Key + ": " + e.Err.Error()
}

func (e ItemError) Unwrap() error { return e.Err }

// ReconcileResult is the outcome of reconciling one calendar window
type ReconcileResult struct {
	Applied        int
	CalendarID     string
	ItemErrors     []ItemError
	PartialFailure bool
	Removed        int
}

// CalendarOutcome is the result of one calendar inside ReconcileAll
type CalendarOutcome struct {
	CalendarID string
	Err        error
	Result     *ReconcileResult
}

// ReconcileAllResult aggregates the calendars of the primary account
type ReconcileAllResult struct {
	Calendars      []CalendarOutcome
	PartialFailure bool
}

// IssueStatusResult is the outcome of a status reconciliation pass
type IssueStatusResult struct {
	DeletedCount     int
	Errors           []ItemError
	PartialFailure   bool
	SoftDeletedCount int
	Updated          int
}

// FailedAccount is an account that could not be fetched in a batch
type FailedAccount struct {
	AccountID string
	Err       error
}

// IssueBatch is the merged result of fetching assigned issues across accounts
type IssueBatch struct {
	FailedAccounts []FailedAccount
	Issues         []domain.Issue
	PartialFailure bool
}

// ImportResult is the outcome of importing assigned issues into the event cache
type ImportResult struct {
	Batch          *IssueBatch
	Imported       int
	ItemErrors     []ItemError
	PartialFailure bool
	Skipped        int // issues without a due date
}

// TaskStatusSummary is the current state of the task session engine
type TaskStatusSummary struct {
	Main        *domain.TaskSession
	Preferences domain.Preferences
	SubTasks    []domain.TaskSession
	Today       domain.DailyStats
}

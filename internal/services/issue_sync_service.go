package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// IssueSyncService keeps issue-backed events in line with the issue tracker
type IssueSyncService struct {
	clock        ports.Clock
	events       ports.EventRepository
	issues       ports.IssueTracker
	tokens       TokenProvider
	workDayStart int
}

// NewIssueSyncService creates a new IssueSyncService. Imported issues are
// scheduled on their due date at workDayStart o'clock.
func NewIssueSyncService(
	issues ports.IssueTracker,
	events ports.EventRepository,
	tokens TokenProvider,
	clock ports.Clock,
	workDayStart int,
) *IssueSyncService {
	return &IssueSyncService{
		clock:        clock,
		events:       events,
		issues:       issues,
		tokens:       tokens,
		workDayStart: workDayStart,
	}
}

// tokenCache resolves each account once per pass
type tokenCache struct {
	entries map[string]tokenEntry
	service *IssueSyncService
	userID  string
}

type tokenEntry struct {
	err   error
	token domain.BearerToken
}

func (s *IssueSyncService) newTokenCache(userID string) *tokenCache {
	return &tokenCache{entries: make(map[string]tokenEntry), service: s, userID: userID}
}

func (c *tokenCache) get(ctx context.Context, accountID string) (domain.BearerToken, error) {
	if e, ok := c.entries[accountID]; ok {
		return e.token, e.err
	}
	token, err := c.service.tokens.GetValidToken(ctx, c.userID, domain.ProviderJira, domain.AccountSelector{AccountID: accountID})
	c.entries[accountID] = tokenEntry{err: err, token: token}
	return token, err
}

// ReconcileIssueStatuses refreshes every cached issue from the tracker.
// Missing issues are soft deleted, done issues are removed, the rest are
// updated in place. Per-issue failures are recorded and the pass completes.
func (s *IssueSyncService) ReconcileIssueStatuses(ctx context.Context, userID string) (*IssueStatusResult, error) {
	// Soft deleted issues are left alone
	cached, err := s.events.ListByOrigin(ctx, userID, domain.OriginIssue, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load cached issues: %w", err)
	}
	logging.Logger.Info("Reconciling issue statuses", "count", len(cached))

	result := &IssueStatusResult{}
	tokens := s.newTokenCache(userID)
	for _, event := range cached {
		if err := s.reconcileIssue(ctx, tokens, event, result); err != nil {
			logging.Logger.Warn("Issue status not reconciled", "issue", event.IssueKey, "error", err)
			result.Errors = append(result.Errors, ItemError{Err: err, Key: event.IssueKey})
		}
	}

	result.PartialFailure = len(result.Errors) > 0
	logging.Logger.Info("Issue statuses reconciled",
		"updated", result.Updated,
		"deleted", result.DeletedCount,
		"soft_deleted", result.SoftDeletedCount,
		"errors", len(result.Errors))
	return result, nil
}

func (s *IssueSyncService) reconcileIssue(
	ctx context.Context,
	tokens *tokenCache,
	event domain.ExternalEvent,
	result *IssueStatusResult,
) error {
	// The event keeps the site it was imported from
	token, err := tokens.get(ctx, event.AccountID)
	if err != nil {
		return err
	}

	issue, err := s.issues.GetIssue(ctx, token, event.IssueKey)
	// Gone from the tracker, or no longer visible to this account
	if errors.Is(err, domain.ErrNotFoundRemote) {
		policy, err := applyDeletion(ctx, s.events, event, domain.TriggerRemoteNotFound, s.clock.Now())
		if err == nil {
			countRemoval(result, policy)
		}
		return err
	}
	if err != nil {
		return err
	}

	// Done issues no longer need a slot in the day
	if issue.IsDone() {
		policy, err := applyDeletion(ctx, s.events, event, domain.TriggerRemoteDone, s.clock.Now())
		if err == nil {
			countRemoval(result, policy)
		}
		return err
	}

	event.ApplyIssue(*issue, s.clock.Now())
	if err := s.events.Upsert(ctx, &event); err != nil {
		return err
	}
	result.Updated++
	return nil
}

func countRemoval(result *IssueStatusResult, policy domain.DeletionPolicy) {
	switch policy {
	case domain.DeletionHard:
		result.DeletedCount++
	case domain.DeletionSoft:
		result.SoftDeletedCount++
	}
}

// FetchAssignedIssues collects the open assigned issues of every connected
// tracker account. Failing accounts are reported without stopping the others;
// when no account yields a token the call fails with domain.ErrAuthenticationRequired.
func (s *IssueSyncService) FetchAssignedIssues(ctx context.Context, userID string) (*IssueBatch, error) {
	// Invalidated accounts stay in the loop so they keep showing up as
	// failed until the user reconnects or disconnects them.
	accounts, err := s.tokens.Accounts(ctx, userID, domain.ProviderJira)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no %s account connected", domain.ErrAuthenticationRequired, domain.ProviderJira)
	}

	batch := &IssueBatch{}
	resolved := 0
	for _, account := range accounts {
		// Invalid accounts fail here without a network call
		token, err := s.tokens.GetValidToken(ctx, userID, domain.ProviderJira, domain.AccountSelector{AccountID: account.AccountID})
		if err != nil {
			batch.FailedAccounts = append(batch.FailedAccounts, FailedAccount{AccountID: account.AccountID, Err: err})
			continue
		}
		resolved++

		issues, err := s.issues.SearchAssigned(ctx, token)
		if err != nil {
			logging.Logger.Warn("Failed to fetch assigned issues", "account", account.AccountID, "error", err)
			batch.FailedAccounts = append(batch.FailedAccounts, FailedAccount{AccountID: account.AccountID, Err: err})
			continue
		}
		batch.Issues = append(batch.Issues, issues...)
	}

	// Not a single account produced a token, the whole batch fails
	if resolved == 0 {
		return nil, fmt.Errorf("%w: none of %d %s accounts could be used: %w",
			domain.ErrAuthenticationRequired, len(accounts), domain.ProviderJira, batch.FailedAccounts[0].Err)
	}
	batch.PartialFailure = len(batch.FailedAccounts) > 0
	logging.Logger.Info("Fetched assigned issues",
		"accounts", len(accounts),
		"failed", len(batch.FailedAccounts),
		"issues", len(batch.Issues))
	return batch, nil
}

// ImportIssues caches the assigned issues that have a due date as events
func (s *IssueSyncService) ImportIssues(ctx context.Context, userID string) (*ImportResult, error) {
	batch, err := s.FetchAssignedIssues(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Batch: batch}
	now := s.clock.Now()
	for _, issue := range batch.Issues {
		// Without a due date there is no day to put the issue on
		if issue.DueDate == nil {
			result.Skipped++
			continue
		}
		event := domain.NewIssueEvent(userID, issue, s.scheduledStart(*issue.DueDate, now.Location()), now)
		if err := s.events.Upsert(ctx, &event); err != nil {
			result.ItemErrors = append(result.ItemErrors, ItemError{Err: err, Key: issue.Key})
			continue
		}
		result.Imported++
	}

	result.PartialFailure = batch.PartialFailure || len(result.ItemErrors) > 0
	return result, nil
}

func (s *IssueSyncService) scheduledStart(due time.Time, loc *time.Location) time.Time {
	return time.Date(due.Year(), due.Month(), due.Day(), s.workDayStart, 0, 0, 0, loc)
}

// ListTransitions returns the transitions available on the issue behind a cached event
func (s *IssueSyncService) ListTransitions(ctx context.Context, userID, eventID string) ([]domain.IssueTransition, error) {
	event, token, err := s.issueEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	transitions, err := s.issues.ListTransitions(ctx, token, event.IssueKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list transitions of %s: %w", event.IssueKey, err)
	}
	return transitions, nil
}

// TransitionIssue moves the issue behind a cached event and refreshes the
// cache. An issue that reached done is removed from the cache.
func (s *IssueSyncService) TransitionIssue(ctx context.Context, userID, eventID, transitionID string) (*domain.Issue, error) {
	if transitionID == "" {
		return nil, fmt.Errorf("%w: transition id is required", domain.ErrValidation)
	}
	event, token, err := s.issueEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Transitioning issue", "issue", event.IssueKey, "transition", transitionID)
	if err := s.issues.ApplyTransition(ctx, token, event.IssueKey, transitionID); err != nil {
		return nil, fmt.Errorf("failed to transition %s: %w", event.IssueKey, err)
	}

	// Read back the issue to learn the status the transition landed on
	issue, err := s.issues.GetIssue(ctx, token, event.IssueKey)
	if err != nil {
		return nil, fmt.Errorf("%s transitioned but not refreshed: %w", event.IssueKey, err)
	}
	if issue.IsDone() {
		if _, err := applyDeletion(ctx, s.events, *event, domain.TriggerRemoteDone, s.clock.Now()); err != nil {
			return nil, fmt.Errorf("failed to remove done issue: %w", err)
		}
		return issue, nil
	}
	event.ApplyIssue(*issue, s.clock.Now())
	if err := s.events.Upsert(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to store issue status: %w", err)
	}
	return issue, nil
}

func (s *IssueSyncService) issueEvent(ctx context.Context, userID, eventID string) (*domain.ExternalEvent, domain.BearerToken, error) {
	event, err := s.events.Get(ctx, userID, eventID)
	if err != nil {
		return nil, domain.BearerToken{}, err
	}
	if event.Origin != domain.OriginIssue {
		return nil, domain.BearerToken{}, fmt.Errorf("%w: event %s is not an issue", domain.ErrValidation, eventID)
	}
	token, err := s.tokens.GetValidToken(ctx, userID, domain.ProviderJira, domain.AccountSelector{AccountID: event.AccountID})
	if err != nil {
		return nil, domain.BearerToken{}, err
	}
	return event, token, nil
}

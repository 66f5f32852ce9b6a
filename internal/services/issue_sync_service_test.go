package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/adapters/remote"
	"github.com/renato0307/tempo/internal/domain"
	portsmocks "github.com/renato0307/tempo/internal/ports/mocks"
)

func newIssueSync(t *testing.T, env *testEnv) (*IssueSyncService, *portsmocks.MockIssueTracker) {
	tracker := portsmocks.NewMockIssueTracker(t)
	credentials, _ := env.credentials(t)
	return NewIssueSyncService(tracker, env.repo.Events(), credentials, env.clock, 9), tracker
}

func forAccount(accountID string) any {
	return mock.MatchedBy(func(token domain.BearerToken) bool { return token.AccountID == accountID })
}

func TestReconcileIssueStatuses(t *testing.T) {
	env := newTestEnv(t)
	service, tracker := newIssueSync(t, env)
	ctx := context.Background()
	env.seedCredential(t, domain.ProviderJira, "site", time.Hour, domain.JiraMeta{CloudID: "c1"})
	open := env.seedEvent(t, issueEvent("site", "PRJ-1", testStart))
	done := env.seedEvent(t, issueEvent("site", "PRJ-2", testStart))
	missing := env.seedEvent(t, issueEvent("site", "PRJ-3", testStart))

	tracker.EXPECT().GetIssue(mock.Anything, forAccount("site"), "PRJ-1").
		Return(&domain.Issue{AccountID: "site", Key: "PRJ-1", Status: "In Review", StatusCategory: "indeterminate", Summary: "Renamed"}, nil)
	tracker.EXPECT().GetIssue(mock.Anything, forAccount("site"), "PRJ-2").
		Return(&domain.Issue{AccountID: "site", Key: "PRJ-2", Status: "Done", StatusCategory: "done"}, nil)
	tracker.EXPECT().GetIssue(mock.Anything, forAccount("site"), "PRJ-3").
		Return(nil, fmt.Errorf("get issue: %w", domain.ErrNotFoundRemote))

	result, err := service.ReconcileIssueStatuses(ctx, testUser)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.DeletedCount)
	assert.Equal(t, 1, result.SoftDeletedCount)
	assert.False(t, result.PartialFailure)

	updated, err := env.repo.Events().Get(ctx, testUser, open.ID)
	require.NoError(t, err)
	assert.Equal(t, "In Review", updated.Status)
	assert.Equal(t, "PRJ-1 Renamed", updated.Title)

	_, err = env.repo.Events().Get(ctx, testUser, done.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	soft, err := env.repo.Events().Get(ctx, testUser, missing.ID)
	require.NoError(t, err)
	assert.True(t, soft.IsDeleted())

	// soft deleted issues are skipped by the next pass
	result, err = service.ReconcileIssueStatuses(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
}

func TestReconcileIssueStatuses_RecordsItemFailures(t *testing.T) {
	env := newTestEnv(t)
	service, tracker := newIssueSync(t, env)
	env.seedCredential(t, domain.ProviderJira, "site", time.Hour, domain.JiraMeta{CloudID: "c1"})
	env.seedEvent(t, issueEvent("site", "PRJ-1", testStart))
	env.seedEvent(t, issueEvent("gone-site", "OPS-1", testStart))
	env.seedEvent(t, issueEvent("site", "PRJ-2", testStart))

	tracker.EXPECT().GetIssue(mock.Anything, forAccount("site"), "PRJ-1").Return(nil, domain.ErrTransientFailure)
	tracker.EXPECT().GetIssue(mock.Anything, forAccount("site"), "PRJ-2").
		Return(&domain.Issue{AccountID: "site", Key: "PRJ-2", Status: "To Do", StatusCategory: "new"}, nil)

	result, err := service.ReconcileIssueStatuses(context.Background(), testUser)

	require.NoError(t, err)
	assert.True(t, result.PartialFailure)
	assert.Equal(t, 1, result.Updated)
	require.Len(t, result.Errors, 2)
	keys := []string{result.Errors[0].Key, result.Errors[1].Key}
	assert.ElementsMatch(t, []string{"PRJ-1", "OPS-1"}, keys)
	for _, itemErr := range result.Errors {
		if itemErr.Key == "OPS-1" {
			assert.ErrorIs(t, itemErr, domain.ErrAuthenticationRequired)
		}
	}
}

func TestFetchAssignedIssues_PartialFailure(t *testing.T) {
	env := newTestEnv(t)
	service, tracker := newIssueSync(t, env)

	for i := 1; i <= 5; i++ {
		account := fmt.Sprintf("site-%d", i)
		env.seedCredential(t, domain.ProviderJira, account, time.Hour, domain.JiraMeta{CloudID: account})
		if i <= 2 {
			tracker.EXPECT().SearchAssigned(mock.Anything, forAccount(account)).Return(nil, domain.ErrPermissionDenied)
			continue
		}
		tracker.EXPECT().SearchAssigned(mock.Anything, forAccount(account)).
			Return([]domain.Issue{{AccountID: account, Key: fmt.Sprintf("P%d-1", i)}}, nil)
	}

	batch, err := service.FetchAssignedIssues(context.Background(), testUser)

	require.NoError(t, err)
	assert.True(t, batch.PartialFailure)
	assert.Len(t, batch.Issues, 3)
	require.Len(t, batch.FailedAccounts, 2)
	failed := []string{batch.FailedAccounts[0].AccountID, batch.FailedAccounts[1].AccountID}
	assert.ElementsMatch(t, []string{"site-1", "site-2"}, failed)
	assert.ErrorIs(t, batch.FailedAccounts[0].Err, domain.ErrPermissionDenied)
}

func TestFetchAssignedIssues_InvalidatedAccountsStayReported(t *testing.T) {
	env := newTestEnv(t)
	credentials, exchanger := env.credentials(t)
	tracker := portsmocks.NewMockIssueTracker(t)
	service := NewIssueSyncService(tracker, env.repo.Events(), credentials, env.clock, 9)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		account := fmt.Sprintf("site-%d", i)
		if i <= 2 {
			env.seedCredential(t, domain.ProviderJira, account, time.Minute, domain.JiraMeta{CloudID: account})
			// refused once, then the account is invalid and never refreshed again
			exchanger.EXPECT().Refresh(mock.Anything, domain.ProviderJira, "refresh-"+account).
				Return(nil, &remote.Error{Code: "invalid_grant", Kind: domain.ErrAuthenticationRequired, StatusCode: 400}).Once()
			continue
		}
		env.seedCredential(t, domain.ProviderJira, account, time.Hour, domain.JiraMeta{CloudID: account})
		tracker.EXPECT().SearchAssigned(mock.Anything, forAccount(account)).
			Return([]domain.Issue{{AccountID: account, Key: fmt.Sprintf("P%d-1", i)}}, nil).Twice()
	}

	for range 2 {
		batch, err := service.FetchAssignedIssues(ctx, testUser)

		require.NoError(t, err)
		assert.True(t, batch.PartialFailure)
		assert.Len(t, batch.Issues, 3)
		require.Len(t, batch.FailedAccounts, 2)
		failed := []string{batch.FailedAccounts[0].AccountID, batch.FailedAccounts[1].AccountID}
		assert.ElementsMatch(t, []string{"site-1", "site-2"}, failed)
		for _, f := range batch.FailedAccounts {
			assert.ErrorIs(t, f.Err, domain.ErrAuthenticationRequired)
		}
	}
}

func TestFetchAssignedIssues_NoUsableAccount(t *testing.T) {
	env := newTestEnv(t)
	service, _ := newIssueSync(t, env)

	_, err := service.FetchAssignedIssues(context.Background(), testUser)

	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)
}

func TestImportIssues_SchedulesOnDueDate(t *testing.T) {
	env := newTestEnv(t)
	service, tracker := newIssueSync(t, env)
	ctx := context.Background()
	env.seedCredential(t, domain.ProviderJira, "site", time.Hour, domain.JiraMeta{CloudID: "c1"})

	due := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	tracker.EXPECT().SearchAssigned(mock.Anything, forAccount("site")).Return([]domain.Issue{
		{AccountID: "site", DueDate: &due, Key: "PRJ-1", OriginalEstimate: 90 * time.Minute, Status: "To Do", StatusCategory: "new", Summary: "Plan"},
		{AccountID: "site", Key: "PRJ-2", Summary: "Someday"},
	}, nil)

	result, err := service.ImportIssues(ctx, testUser)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.False(t, result.PartialFailure)

	event, err := env.repo.Events().GetByKey(ctx, testUser, domain.IssueCalendarID("site"), "PRJ-1")
	require.NoError(t, err)
	start := event.StartTime.In(testStart.Location())
	assert.Equal(t, 12, start.Day())
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 90*time.Minute, event.EndTime.Sub(event.StartTime))
	assert.Equal(t, domain.OriginIssue, event.Origin)
}

func TestTransitionIssue(t *testing.T) {
	tests := []struct {
		name     string
		category string
		removed  bool
	}{
		{"moved to in progress", "indeterminate", false},
		{"moved to done", "done", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			service, tracker := newIssueSync(t, env)
			ctx := context.Background()
			env.seedCredential(t, domain.ProviderJira, "site", time.Hour, domain.JiraMeta{CloudID: "c1"})
			event := env.seedEvent(t, issueEvent("site", "PRJ-1", testStart))

			tracker.EXPECT().ApplyTransition(mock.Anything, forAccount("site"), "PRJ-1", "31").Return(nil)
			tracker.EXPECT().GetIssue(mock.Anything, forAccount("site"), "PRJ-1").
				Return(&domain.Issue{AccountID: "site", Key: "PRJ-1", Status: "Moved", StatusCategory: tt.category}, nil)

			issue, err := service.TransitionIssue(ctx, testUser, event.ID, "31")

			require.NoError(t, err)
			assert.Equal(t, "Moved", issue.Status)
			cached, err := env.repo.Events().Get(ctx, testUser, event.ID)
			if tt.removed {
				assert.ErrorIs(t, err, domain.ErrEventNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Moved", cached.Status)
		})
	}
}

func TestListTransitions(t *testing.T) {
	env := newTestEnv(t)
	service, tracker := newIssueSync(t, env)
	env.seedCredential(t, domain.ProviderJira, "site", time.Hour, domain.JiraMeta{CloudID: "c1"})
	event := env.seedEvent(t, issueEvent("site", "PRJ-1", testStart))
	expected := []domain.IssueTransition{{ID: "31", Name: "Finish", ToCategory: "done", ToStatus: "Done"}}

	tracker.EXPECT().ListTransitions(mock.Anything, forAccount("site"), "PRJ-1").Return(expected, nil)

	transitions, err := service.ListTransitions(context.Background(), testUser, event.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, transitions)
}

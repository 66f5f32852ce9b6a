package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/adapters/storage"
	"github.com/renato0307/tempo/internal/domain"
	portsmocks "github.com/renato0307/tempo/internal/ports/mocks"
)

const testUser = "u1"

var testStart = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// testEnv is a real SQLite store plus a controllable clock
type testEnv struct {
	clock *portsmocks.MockClock
	now   time.Time
	repo  *storage.SQLiteRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	env := &testEnv{now: testStart, repo: repo}
	env.clock = portsmocks.NewMockClock(t)
	env.clock.EXPECT().Now().RunAndReturn(func() time.Time { return env.now }).Maybe()
	return env
}

func (e *testEnv) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

// credentials builds a CredentialService whose exchanger must not be called
// unless the test sets expectations on it
func (e *testEnv) credentials(t *testing.T) (*CredentialService, *portsmocks.MockTokenExchanger) {
	exchanger := portsmocks.NewMockTokenExchanger(t)
	return NewCredentialService(e.repo.Credentials(), exchanger, e.clock, nil), exchanger
}

func (e *testEnv) seedCredential(t *testing.T, provider domain.Provider, accountID string, expiresIn time.Duration, meta domain.ProviderMeta) *domain.Credential {
	t.Helper()
	ctx := context.Background()
	_, err := e.repo.Credentials().GetPrimary(ctx, testUser, provider)

	expires := e.now.Add(expiresIn)
	cred := &domain.Credential{
		AccessToken:  "access-" + accountID,
		AccountID:    accountID,
		ExpiresAt:    &expires,
		IsActive:     true,
		IsPrimary:    err != nil,
		Meta:         meta,
		Provider:     provider,
		RefreshToken: "refresh-" + accountID,
		TokenType:    "Bearer",
		UserID:       testUser,
	}
	require.NoError(t, e.repo.Credentials().Create(ctx, cred))
	return cred
}

func (e *testEnv) seedEvent(t *testing.T, event domain.ExternalEvent) domain.ExternalEvent {
	t.Helper()
	if event.UserID == "" {
		event.UserID = testUser
	}
	if event.LastSyncAt.IsZero() {
		event.LastSyncAt = e.now
	}
	require.NoError(t, e.repo.Events().Upsert(context.Background(), &event))
	return event
}

func calendarEvent(externalID string, start time.Time, d time.Duration) domain.ExternalEvent {
	return domain.ExternalEvent{
		AccountID:  "me@example.com",
		CalendarID: domain.DefaultCalendarID,
		EndTime:    start.Add(d),
		ExternalID: externalID,
		Origin:     domain.OriginCalendar,
		StartTime:  start,
		SyncState:  domain.SyncStateSynced,
		Title:      "Event " + externalID,
	}
}

func issueEvent(accountID, key string, start time.Time) domain.ExternalEvent {
	return domain.NewIssueEvent(testUser, domain.Issue{
		AccountID:      accountID,
		Key:            key,
		Status:         "To Do",
		StatusCategory: "new",
		Summary:        "Work on " + key,
	}, start, start)
}

func minutes(n int) *time.Duration {
	d := time.Duration(n) * time.Minute
	return &d
}

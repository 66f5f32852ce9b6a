package cmd

import (
	"time"

	adapterclock "github.com/renato0307/tempo/internal/adapters/clock"
	adaptergoogle "github.com/renato0307/tempo/internal/adapters/google"
	adapterjira "github.com/renato0307/tempo/internal/adapters/jira"
	adapteroauth "github.com/renato0307/tempo/internal/adapters/oauth"
	adapterstorage "github.com/renato0307/tempo/internal/adapters/storage"
	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/paths"
	"github.com/renato0307/tempo/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	CalendarSyncService *services.CalendarSyncService
	CredentialService   *services.CredentialService
	IssueSyncService    *services.IssueSyncService
	TaskSessionService  *services.TaskSessionService

	// Adapters used directly by commands
	Exchanger *adapteroauth.Exchanger

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	// Token sealing is optional, a missing key stores tokens in plain text
	sealer, err := adapterstorage.NewTokenSealer(settings.ResolvedEncryptionKey())
	if err != nil {
		return nil, err
	}
	if sealer == nil {
		logging.Logger.Warn("No encryption_key configured, provider tokens are stored in plain text")
	}

	repo, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath(), sealer)
	if err != nil {
		return nil, err
	}

	// Shared by every service
	clock := adapterclock.SystemClock{}
	google := settings.Provider(domain.ProviderGoogle)
	jira := settings.Provider(domain.ProviderJira)

	// Create adapters
	calendarClient := adaptergoogle.NewCalendarClient(google.APIBaseURL, settings.HTTPTimeout())
	issueClient := adapterjira.NewClient(jira.APIBaseURL, settings.HTTPTimeout())
	exchanger := adapteroauth.NewExchangerFromSettings(settings)

	// Create services
	credentialService := services.NewCredentialService(repo.Credentials(), exchanger, clock, map[domain.Provider]time.Duration{
		domain.ProviderGoogle: google.RefreshLead(),
		domain.ProviderJira:   jira.RefreshLead(),
	})
	calendarSyncService := services.NewCalendarSyncService(
		calendarClient, repo.Events(), credentialService, clock, settings.CalendarPageSize())
	issueSyncService := services.NewIssueSyncService(
		issueClient, repo.Events(), credentialService, clock, settings.WorkDayStart())
	taskSessionService := services.NewTaskSessionService(repo.Sessions(), repo.Events(), clock)

	return &Container{
		CalendarSyncService: calendarSyncService,
		CredentialService:   credentialService,
		Exchanger:           exchanger,
		IssueSyncService:    issueSyncService,
		TaskSessionService:  taskSessionService,
		repo:                repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}

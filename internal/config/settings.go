package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/paths"
)

// Defaults applied when a setting is absent
const (
	DefaultCalendarMaxResults = 250
	DefaultHTTPTimeout        = 30 * time.Second
	DefaultUserID             = "local"
	DefaultWorkDayStartHour   = 9
)

// Well-known provider endpoints
const (
	GoogleAuthURL    = "https://accounts.google.com/o/oauth2/auth"
	GoogleTokenURL   = "https://oauth2.googleapis.com/token"
	GoogleAPIBaseURL = "https://www.googleapis.com/calendar/v3"
	JiraAuthURL      = "https://auth.atlassian.com/authorize"
	JiraTokenURL     = "https://auth.atlassian.com/oauth/token"
	JiraAPIBaseURL   = "https://api.atlassian.com"
)

// ProviderSettings configures the OAuth client and API endpoint of one provider
type ProviderSettings struct {
	APIBaseURL         string   `yaml:"api_base_url,omitempty"`
	AuthURL            string   `yaml:"auth_url,omitempty"`
	ClientID           string   `yaml:"client_id,omitempty"`
	ClientSecret       string   `yaml:"client_secret,omitempty"`
	RedirectURL        string   `yaml:"redirect_url,omitempty"`
	RefreshLeadSeconds *int     `yaml:"refresh_lead_seconds,omitempty"`
	Scopes             []string `yaml:"scopes,omitempty"`
	TokenURL           string   `yaml:"token_url,omitempty"`
}

// RefreshLead returns how long before expiry the provider's tokens are refreshed
func (p ProviderSettings) RefreshLead() time.Duration {
	if p.RefreshLeadSeconds == nil || *p.RefreshLeadSeconds < 0 {
		return domain.DefaultRefreshLead
	}
	return time.Duration(*p.RefreshLeadSeconds) * time.Second
}

// ProvidersSettings groups the per-provider settings
type ProvidersSettings struct {
	Google ProviderSettings `yaml:"google,omitempty"`
	Jira   ProviderSettings `yaml:"jira,omitempty"`
}

// Settings represents the structure of ~/.tempo/settings.yaml
type Settings struct {
	CalendarMaxResults *int              `yaml:"calendar_max_results,omitempty"`
	Debug              *bool             `yaml:"debug,omitempty"`
	EncryptionKey      string            `yaml:"encryption_key,omitempty"`
	HTTPTimeoutSeconds *int              `yaml:"http_timeout_seconds,omitempty"`
	MaxLogFiles        *int              `yaml:"max_log_files,omitempty"`
	Providers          ProvidersSettings `yaml:"providers,omitempty"`
	UserID             string            `yaml:"user_id,omitempty"`
	WorkDayStartHour   *int              `yaml:"work_day_start_hour,omitempty"`
}

// Provider returns the settings of p with endpoint defaults and $ENV secrets resolved
func (s *Settings) Provider(p domain.Provider) ProviderSettings {
	var ps ProviderSettings
	switch p {
	case domain.ProviderGoogle:
		ps = s.Providers.Google
		ps.AuthURL = withDefault(ps.AuthURL, GoogleAuthURL)
		ps.TokenURL = withDefault(ps.TokenURL, GoogleTokenURL)
		ps.APIBaseURL = withDefault(ps.APIBaseURL, GoogleAPIBaseURL)
	case domain.ProviderJira:
		ps = s.Providers.Jira
		ps.AuthURL = withDefault(ps.AuthURL, JiraAuthURL)
		ps.TokenURL = withDefault(ps.TokenURL, JiraTokenURL)
		ps.APIBaseURL = withDefault(ps.APIBaseURL, JiraAPIBaseURL)
	}
	ps.ClientID = expandEnv(ps.ClientID)
	ps.ClientSecret = expandEnv(ps.ClientSecret)
	return ps
}

// ResolvedUserID returns the local user the state belongs to
func (s *Settings) ResolvedUserID() string {
	return withDefault(s.UserID, DefaultUserID)
}

// ResolvedEncryptionKey returns the token sealing key, expanding $ENV references
func (s *Settings) ResolvedEncryptionKey() string {
	return expandEnv(s.EncryptionKey)
}

// HTTPTimeout returns the timeout of remote API calls
func (s *Settings) HTTPTimeout() time.Duration {
	if s.HTTPTimeoutSeconds == nil || *s.HTTPTimeoutSeconds <= 0 {
		return DefaultHTTPTimeout
	}
	return time.Duration(*s.HTTPTimeoutSeconds) * time.Second
}

// CalendarPageSize returns the maximum number of events fetched per listing
func (s *Settings) CalendarPageSize() int {
	if s.CalendarMaxResults == nil || *s.CalendarMaxResults <= 0 {
		return DefaultCalendarMaxResults
	}
	return *s.CalendarMaxResults
}

// WorkDayStart returns the hour imported issues are scheduled at
func (s *Settings) WorkDayStart() int {
	if s.WorkDayStartHour == nil || *s.WorkDayStartHour < 0 || *s.WorkDayStartHour > 23 {
		return DefaultWorkDayStartHour
	}
	return *s.WorkDayStartHour
}

// Validate checks for configuration errors
func (s *Settings) Validate() error {
	if s.WorkDayStartHour != nil && (*s.WorkDayStartHour < 0 || *s.WorkDayStartHour > 23) {
		return fmt.Errorf("work_day_start_hour must be between 0 and 23, got %d", *s.WorkDayStartHour)
	}
	if s.CalendarMaxResults != nil && (*s.CalendarMaxResults < 1 || *s.CalendarMaxResults > 2500) {
		return fmt.Errorf("calendar_max_results must be between 1 and 2500, got %d", *s.CalendarMaxResults)
	}
	return nil
}

// LoadSettings loads settings from $TEMPO_HOME/settings.yaml (or ~/.tempo/settings.yaml if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TEMPO_HOME/settings.yaml
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(paths.GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to an explicit path
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	// Secrets may live in this file
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// expandEnv resolves values of the form $NAME or ${NAME}
func expandEnv(value string) string {
	if strings.HasPrefix(value, "$") {
		return os.ExpandEnv(value)
	}
	return value
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/paths"
	"github.com/renato0307/tempo/internal/theme"
)

// SettingsCmd shows settings and updates preferences
type SettingsCmd struct {
	Prefs SettingsPrefsCmd `cmd:"prefs" help:"Show or update time manager preferences"`
	Show  SettingsShowCmd  `cmd:"show" help:"Show the effective settings" default:"1"`
}

// SettingsShowCmd prints the effective settings with secrets masked
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings := cli.Config()
	// Only a view is printed, secrets are masked
	view := struct {
		CalendarMaxResults int                     `yaml:"calendar_max_results"`
		DBPath             string                  `yaml:"db_path"`
		EncryptionKey      string                  `yaml:"encryption_key"`
		HTTPTimeout        string                  `yaml:"http_timeout"`
		Providers          map[string]providerView `yaml:"providers"`
		SettingsPath       string                  `yaml:"settings_path"`
		UserID             string                  `yaml:"user_id"`
		WorkDayStartHour   int                     `yaml:"work_day_start_hour"`
	}{
		CalendarMaxResults: settings.CalendarPageSize(),
		DBPath:             paths.GetDBPath(),
		EncryptionKey:      mask(settings.ResolvedEncryptionKey()),
		HTTPTimeout:        settings.HTTPTimeout().String(),
		Providers:          make(map[string]providerView),
		SettingsPath:       paths.GetSettingsPath(),
		UserID:             cli.UserID(),
		WorkDayStartHour:   settings.WorkDayStart(),
	}
	// Provider settings with defaults applied
	for _, p := range domain.Providers {
		ps := settings.Provider(p)
		view.Providers[string(p)] = providerView{
			APIBaseURL:   ps.APIBaseURL,
			ClientID:     ps.ClientID,
			ClientSecret: mask(ps.ClientSecret),
			RefreshLead:  ps.RefreshLead().String(),
			Scopes:       ps.Scopes,
			TokenURL:     ps.TokenURL,
		}
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(view)
}

type providerView struct {
	APIBaseURL   string   `yaml:"api_base_url"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	RefreshLead  string   `yaml:"refresh_lead"`
	Scopes       []string `yaml:"scopes,omitempty"`
	TokenURL     string   `yaml:"token_url"`
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

// SettingsPrefsCmd shows or updates the time manager preferences. Flags
// left unset keep their stored value.
type SettingsPrefsCmd struct {
	DefaultEstimate  *time.Duration `help:"Estimate used for sessions started without one"`
	OverrunThreshold *time.Duration `help:"Grace period past the estimate before a session counts as overrun"`
	Timezone         *string        `help:"IANA timezone used to bucket statistics (empty = local)"`
	UserID           *string        `help:"Persist the local user id to settings.yaml"`
}

// Run executes the prefs command
func (s *SettingsPrefsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	// The user id lives in settings.yaml, not in the database
	if s.UserID != nil {
		settings := cli.Config()
		settings.UserID = *s.UserID
		if err := config.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Printf("user_id set to %q in %s\n", *s.UserID, paths.GetSettingsPath())
	}

	summary, err := cli.Container.TaskSessionService.GetStatus(ctx, cli.UserID())
	if err != nil {
		return err
	}
	prefs := summary.Preferences

	// Only write when at least one preference flag is set
	if s.DefaultEstimate != nil || s.OverrunThreshold != nil || s.Timezone != nil {
		if s.DefaultEstimate != nil {
			prefs.DefaultEstimate = *s.DefaultEstimate
		}
		if s.OverrunThreshold != nil {
			prefs.OverrunThreshold = *s.OverrunThreshold
		}
		if s.Timezone != nil {
			prefs.Timezone = *s.Timezone
		}
		updated, err := cli.Container.TaskSessionService.UpdatePreferences(ctx, cli.UserID(), prefs)
		if err != nil {
			return err
		}
		prefs = *updated
	}

	timezone := prefs.Timezone
	if timezone == "" {
		timezone = "local"
	}
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("default estimate: "), formatDuration(prefs.DefaultEstimate))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("overrun threshold:"), formatDuration(prefs.OverrunThreshold))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("timezone:         "), timezone)
	return nil
}

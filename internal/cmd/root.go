package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	User        string           `help:"Local user the state belongs to (overrides user_id setting)" env:"TEMPO_USER"`

	Auth     AuthCmd     `cmd:"auth" help:"Manage connected provider accounts"`
	Events   EventsCmd   `cmd:"events" help:"List and edit calendar events"`
	Issues   IssuesCmd   `cmd:"issues" help:"Inspect and move tracker issues"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings and update preferences"`
	Stats    StatsCmd    `cmd:"stats" help:"Show daily task statistics"`
	Sync     SyncCmd     `cmd:"sync" help:"Reconcile the local cache with remote providers"`
	Tasks    TasksCmd    `cmd:"tasks" help:"Track work sessions"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Config returns the loaded settings
func (c *CLI) Config() *config.Settings {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}
	return c.settings
}

// UserID resolves the user the command acts for
func (c *CLI) UserID() string {
	if c.User != "" {
		return c.User
	}
	return c.Config().ResolvedUserID()
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.yaml > defaults
	settings := c.Config()
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv && settings.MaxLogFiles != nil {
			c.MaxLogFiles = *settings.MaxLogFiles
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv && settings.Debug != nil && *settings.Debug {
			c.Debug = true
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// Container is created after logging so the gorm logger has a target
	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

package paths

import (
	"os"
	"path/filepath"
)

// GetTempoHome returns TEMPO_HOME or ~/.tempo default
func GetTempoHome() string {
	tempoHome := os.Getenv("TEMPO_HOME")
	if tempoHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tempo"
		}
		return filepath.Join(homeDir, ".tempo")
	}
	return ExpandPath(tempoHome)
}

// GetDBPath returns $TEMPO_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetTempoHome(), "state.db")
}

// GetSettingsPath returns $TEMPO_HOME/settings.yaml
func GetSettingsPath() string {
	return filepath.Join(GetTempoHome(), "settings.yaml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

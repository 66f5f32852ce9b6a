package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit when none is configured
const DefaultMaxLogFiles = 1000

// Environment variables read by Initialize. The CLI exports them after
// parsing so child invocations inherit the same log target.
const (
	EnvDebug       = "TEMPO_DEBUG"
	EnvDebugFile   = "TEMPO_DEBUG_FILE"
	EnvMaxLogFiles = "TEMPO_MAX_LOG_FILES"
)

// redactedKeys are attribute keys whose values never reach the log file
var redactedKeys = []string{"access_token", "authorization", "client_secret", "code", "refresh_token"}

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = newDiscardLogger()

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Initialize sets up the logger based on the debug flag and configuration.
// It returns the path of the log file, empty when logging is disabled.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	debug, debugFile, maxLogFiles = applyEnv(debug, debugFile, maxLogFiles)

	if !debug && debugFile == "" {
		// Nothing asked for logs, keep them out of the terminal
		Logger = newDiscardLogger()
		return "", nil
	}

	logFilePath, err := resolveLogFile(debugFile, maxLogFiles)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: redact,
	}))

	Logger.Info("Debug logging initialized", "log_file", logFilePath, "pid", os.Getpid())
	fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)

	return logFilePath, nil
}

// applyEnv lets inherited environment settings fill in what the flags left
// at their defaults
func applyEnv(debug bool, debugFile string, maxLogFiles int) (bool, string, int) {
	if os.Getenv(EnvDebug) == "1" {
		debug = true
	}
	if env := os.Getenv(EnvDebugFile); env != "" && debugFile == "" {
		debugFile = env
	}
	// An explicit --max-log-files wins over the environment
	if env := os.Getenv(EnvMaxLogFiles); env != "" && maxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(env); err == nil {
			maxLogFiles = parsed
		}
	}
	return debug, debugFile, maxLogFiles
}

// resolveLogFile picks the file to log into. A custom file is used as is;
// otherwise a fresh UUID-named file is created in the rotated log directory.
func resolveLogFile(debugFile string, maxLogFiles int) (string, error) {
	if debugFile != "" {
		if err := os.MkdirAll(filepath.Dir(debugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return debugFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	logDir := logDirFor(runtime.GOOS, home, os.Getenv)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if maxLogFiles > 0 {
		if err := rotateLogs(logDir, maxLogFiles); err != nil {
			// Rotation failure does not stop logging
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}
	return filepath.Join(logDir, uuid.NewString()+".log"), nil
}

// redact masks secrets passed as log attributes
func redact(_ []string, a slog.Attr) slog.Attr {
	if slices.Contains(redactedKeys, strings.ToLower(a.Key)) && a.Value.String() != "" {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

// rotateLogs deletes the oldest .log files so that, once the next file is
// created, at most maxLogFiles remain
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		path    string
	}
	var logs []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed underneath us
			continue
		}
		logs = append(logs, logFile{modTime: info.ModTime(), path: filepath.Join(logDir, entry.Name())})
	}

	excess := len(logs) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b logFile) int { return a.modTime.Compare(b.modTime) })
	for _, old := range logs[:excess] {
		if err := os.Remove(old.path); err != nil {
			// Continue with the remaining files
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", old.path, err)
		}
	}
	return nil
}

// logDirFor returns the OS-specific log directory
func logDirFor(goos, home string, getenv func(string) string) string {
	switch goos {
	case "darwin":
		// ~/Library/Logs/tempo
		return filepath.Join(home, "Library", "Logs", "tempo")
	case "linux":
		// $XDG_STATE_HOME/tempo, defaulting to ~/.local/state/tempo
		stateHome := getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateHome, "tempo")
	case "windows":
		// %LOCALAPPDATA%\tempo\logs
		localAppData := getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(localAppData, "tempo", "logs")
	default:
		return filepath.Join(home, ".tempo", "logs")
	}
}

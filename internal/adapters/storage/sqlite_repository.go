package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/paths"
)

const (
	maxRetries         = 3
	slowQueryThreshold = 200 * time.Millisecond
)

// SQLiteRepository owns the database handle shared by the stores
type SQLiteRepository struct {
	credentials *CredentialStore
	db          *gorm.DB
	events      *EventStore
	sessions    *SessionStore
}

// gormLogger wraps the tempo logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	// Record-not-found is a normal outcome for lookups, not an error
	sql, rows := fc()
	attrs := []any{"duration", elapsed, "sql", redactTokens(sql), "rows", rows}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("Query failed", append(attrs, "error", err)...)
	case elapsed > slowQueryThreshold:
		logging.Logger.Warn("Slow query", attrs...)
	default:
		logging.Logger.Debug("Query", attrs...)
	}
}

// redactTokens hides token columns from logged statements. Only the
// credentials table carries secrets.
func redactTokens(sql string) string {
	if strings.Contains(sql, "credentials") {
		return "credentials statement (redacted)"
	}
	return sql
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath. Tokens are
// sealed with sealer; a nil sealer stores them in plain text.
func NewSQLiteRepository(dbPath string, sealer *TokenSealer) (*SQLiteRepository, error) {
	dbPath = paths.ExpandPath(dbPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI and a concurrent invocation share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	// Create or update tables from the models
	if err := db.AutoMigrate(
		&CredentialModel{},
		&ExternalEventModel{},
		&TaskSessionModel{},
		&TimeManagerStateModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Configure connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{
		credentials: &CredentialStore{db: db, sealer: sealer},
		db:          db,
		events:      &EventStore{db: db},
		sessions:    &SessionStore{db: db},
	}, nil
}

// Credentials returns the credential store
func (r *SQLiteRepository) Credentials() *CredentialStore { return r.credentials }

// Events returns the external event store
func (r *SQLiteRepository) Events() *EventStore { return r.events }

// Sessions returns the task session store
func (r *SQLiteRepository) Sessions() *SessionStore { return r.sessions }

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		// Retry only when another connection holds the lock
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			lastErr = err
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		// Anything else is not going to get better by waiting
		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, lastErr)
}

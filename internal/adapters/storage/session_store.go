package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/ports"
)

// sessionUpdateColumns are overwritten when a session row already exists
var sessionUpdateColumns = []string{
	"actual_duration", "end_time", "estimated_duration", "event_id", "is_main_task",
	"notes", "rating", "start_time", "status", "updated_at",
}

// SessionStore implements ports.SessionRepository using GORM
type SessionStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SessionStore)(nil)

// GetState implements SessionReader.GetState
func (s *SessionStore) GetState(ctx context.Context, userID string) (*domain.TimeManagerState, error) {
	var model TimeManagerStateModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Where("user_id = ?", userID).First(&model).Error
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			// First use: create the state with default preferences
			fresh := domain.NewTimeManagerState(userID)
			fresh.Version = 1
			model = domainToStateModel(fresh)
			// Another process may create the row first; keep theirs
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create time manager state: %w", err)
			}
			return tx.Where("user_id = ?", userID).First(&model).Error
		})
	}, maxRetries)
	if err != nil {
		return nil, err
	}
	return stateModelToDomain(model), nil
}

// GetSession implements SessionReader.GetSession
func (s *SessionStore) GetSession(ctx context.Context, userID, sessionID string) (*domain.TaskSession, error) {
	var model TaskSessionModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, sessionID).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		return nil, err
	}
	session := sessionModelToDomain(model)
	return &session, nil
}

// ListSessionsBetween implements SessionReader.ListSessionsBetween
func (s *SessionStore) ListSessionsBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.TaskSession, error) {
	return s.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, from.UTC(), to.UTC())
	})
}

// ListSessionsByStatus implements SessionReader.ListSessionsByStatus
func (s *SessionStore) ListSessionsByStatus(ctx context.Context, userID string, statuses ...domain.TaskStatus) ([]domain.TaskSession, error) {
	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = string(st)
	}
	return s.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ? AND status IN ?", userID, names)
	})
}

func (s *SessionStore) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]domain.TaskSession, error) {
	var models []TaskSessionModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Scopes(scope).Order("start_time ASC").Order("id ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TaskSession, len(models))
	for i, m := range models {
		result[i] = sessionModelToDomain(m)
	}
	return result, nil
}

// ApplyTransition implements SessionWriter.ApplyTransition
func (s *SessionStore) ApplyTransition(ctx context.Context, state *domain.TimeManagerState, sessions ...domain.TaskSession) error {
	model := domainToStateModel(state)
	model.Version = state.Version + 1

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// Insert new sessions, overwrite the ones that changed
			for _, session := range sessions {
				row := domainToSessionModel(session)
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					DoUpdates: clause.AssignmentColumns(sessionUpdateColumns),
				}).Create(&row).Error; err != nil {
					return fmt.Errorf("failed to save task session %s: %w", session.ID, err)
				}
			}

			// The state row is the lock: a stale version rolls the sessions back too
			result := tx.Model(&TimeManagerStateModel{}).
				Where("user_id = ? AND version = ?", state.UserID, state.Version).
				Select("*").Omit("user_id", "created_at").
				Updates(&model)
			if result.Error != nil {
				return fmt.Errorf("failed to save time manager state: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("time manager state of %s: %w", state.UserID, domain.ErrConcurrentModification)
			}
			return nil
		})
	}, maxRetries)
	if err != nil {
		return err
	}

	state.Version = model.Version
	return nil
}

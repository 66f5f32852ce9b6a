package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/ports"
)

// EventStore implements ports.EventRepository using GORM
type EventStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.EventRepository = (*EventStore)(nil)

// Get implements EventReader.Get
func (s *EventStore) Get(ctx context.Context, userID, eventID string) (*domain.ExternalEvent, error) {
	return s.first(ctx, "event "+eventID, "user_id = ? AND id = ?", userID, eventID)
}

// GetByKey implements EventReader.GetByKey
func (s *EventStore) GetByKey(ctx context.Context, userID, calendarID, externalID string) (*domain.ExternalEvent, error) {
	return s.first(ctx, "event "+calendarID+"/"+externalID,
		"user_id = ? AND calendar_id = ? AND external_id = ?", userID, calendarID, externalID)
}

func (s *EventStore) first(ctx context.Context, what string, query string, args ...any) (*domain.ExternalEvent, error) {
	var model ExternalEventModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where(query, args...).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, what)
		}
		return nil, err
	}
	event := eventModelToDomain(model)
	return &event, nil
}

// ListByOrigin implements EventReader.ListByOrigin
func (s *EventStore) ListByOrigin(ctx context.Context, userID string, origin domain.EventOrigin, includeDeleted bool) ([]domain.ExternalEvent, error) {
	return s.find(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("user_id = ? AND origin = ?", userID, string(origin))
		if !includeDeleted {
			q = q.Where("sync_state <> ?", string(domain.SyncStateDeleted))
		}
		return q
	})
}

// ListForDay implements EventReader.ListForDay
func (s *EventStore) ListForDay(ctx context.Context, userID string, day domain.Window) ([]domain.ExternalEvent, error) {
	return s.find(ctx, func(q *gorm.DB) *gorm.DB {
		// Overlap, not containment: events crossing midnight count for both days
		return q.Where("user_id = ? AND sync_state <> ?", userID, string(domain.SyncStateDeleted)).
			Where("start_time < ? AND end_time > ?", day.End.UTC(), day.Start.UTC())
	})
}

// ListInWindow implements EventReader.ListInWindow
func (s *EventStore) ListInWindow(ctx context.Context, userID, calendarID string, window domain.Window) ([]domain.ExternalEvent, error) {
	return s.find(ctx, func(q *gorm.DB) *gorm.DB {
		// Soft deleted rows are included so reconciliation can see them
		return q.Where("user_id = ? AND calendar_id = ?", userID, calendarID).
			Where("start_time < ? AND end_time > ?", window.End.UTC(), window.Start.UTC())
	})
}

func (s *EventStore) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]domain.ExternalEvent, error) {
	var models []ExternalEventModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Scopes(scope).Order("start_time ASC").Order("id ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ExternalEvent, len(models))
	for i, m := range models {
		result[i] = eventModelToDomain(m)
	}
	return result, nil
}

// Upsert implements EventWriter.Upsert
func (s *EventStore) Upsert(ctx context.Context, event *domain.ExternalEvent) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// The (user, calendar, external id) key identifies an event across syncs
			var existing ExternalEventModel
			err := tx.Where("user_id = ? AND calendar_id = ? AND external_id = ?", event.UserID, event.CalendarID, event.ExternalID).
				First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				model := domainToEventModel(event)
				if model.ID == "" {
					model.ID = uuid.New().String()
				}
				if err := tx.Create(&model).Error; err != nil {
					return fmt.Errorf("failed to create event: %w", err)
				}
				event.ID = model.ID
				return nil
			case err != nil:
				return err
			}

			// Keep the local id stable so sessions stay attached
			model := domainToEventModel(event)
			model.ID = existing.ID
			if err := tx.Model(&ExternalEventModel{}).
				Where("id = ?", existing.ID).
				Select("*").Omit("id", "created_at").
				Updates(&model).Error; err != nil {
				return fmt.Errorf("failed to update event: %w", err)
			}
			event.ID = existing.ID
			return nil
		})
	}, maxRetries)
}

// Delete implements EventWriter.Delete
func (s *EventStore) Delete(ctx context.Context, userID, eventID string) error {
	return withRetry(func() error {
		result := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, eventID).Delete(&ExternalEventModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: event %s", domain.ErrEventNotFound, eventID)
		}
		return nil
	}, maxRetries)
}

// SoftDelete implements EventWriter.SoftDelete
func (s *EventStore) SoftDelete(ctx context.Context, userID, eventID string, at time.Time) error {
	return withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&ExternalEventModel{}).
			Where("user_id = ? AND id = ?", userID, eventID).
			Updates(map[string]any{
				// The row stays so sessions keep pointing at it
				"deleted_at": at.UTC(),
				"sync_state": string(domain.SyncStateDeleted),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: event %s", domain.ErrEventNotFound, eventID)
		}
		return nil
	}, maxRetries)
}

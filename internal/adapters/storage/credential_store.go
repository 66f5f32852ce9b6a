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

// CredentialStore implements ports.CredentialRepository using GORM
type CredentialStore struct {
	db     *gorm.DB
	sealer *TokenSealer
}

// Verify interface compliance at compile time
var _ ports.CredentialRepository = (*CredentialStore)(nil)

// Get implements CredentialReader.Get
func (s *CredentialStore) Get(ctx context.Context, userID string, provider domain.Provider, accountID string) (*domain.Credential, error) {
	var model CredentialModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("user_id = ? AND provider = ? AND account_id = ?", userID, string(provider), accountID).
			First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s account %s", domain.ErrCredentialNotFound, provider, accountID)
		}
		return nil, err
	}
	return credentialModelToDomain(model, s.sealer)
}

// GetPrimary implements CredentialReader.GetPrimary
func (s *CredentialStore) GetPrimary(ctx context.Context, userID string, provider domain.Provider) (*domain.Credential, error) {
	var model CredentialModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("user_id = ? AND provider = ? AND is_primary = ?", userID, string(provider), true).
			First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no primary %s account", domain.ErrCredentialNotFound, provider)
		}
		return nil, err
	}
	return credentialModelToDomain(model, s.sealer)
}

// List implements CredentialReader.List
func (s *CredentialStore) List(ctx context.Context, userID string, provider domain.Provider) ([]domain.Credential, error) {
	return s.list(ctx, userID, provider, false)
}

// ListActive implements CredentialReader.ListActive
func (s *CredentialStore) ListActive(ctx context.Context, userID string, provider domain.Provider) ([]domain.Credential, error) {
	return s.list(ctx, userID, provider, true)
}

func (s *CredentialStore) list(ctx context.Context, userID string, provider domain.Provider, activeOnly bool) ([]domain.Credential, error) {
	var models []CredentialModel
	err := withRetry(func() error {
		query := s.db.WithContext(ctx).Where("user_id = ? AND provider = ?", userID, string(provider))
		if activeOnly {
			query = query.Where("is_active = ?", true)
		}
		// Primary first, then oldest first
		return query.Order("is_primary DESC").Order("created_at ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Credential, 0, len(models))
	for _, m := range models {
		cred, err := credentialModelToDomain(m, s.sealer)
		if err != nil {
			return nil, err
		}
		result = append(result, *cred)
	}
	return result, nil
}

// Create implements CredentialWriter.Create
func (s *CredentialStore) Create(ctx context.Context, cred *domain.Credential) error {
	if cred.ID == "" {
		cred.ID = uuid.New().String()
	}
	// Versions start at 1 so a zero value never matches a stored row
	cred.Version = 1

	model, err := domainToCredentialModel(cred, s.sealer)
	if err != nil {
		return err
	}

	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// At most one primary per user and provider
			if cred.IsPrimary {
				if err := clearPrimary(tx, cred.UserID, cred.Provider); err != nil {
					return err
				}
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create credential: %w", err)
			}
			cred.CreatedAt = model.CreatedAt
			cred.UpdatedAt = model.UpdatedAt
			return nil
		})
	}, maxRetries)
}

// Update implements CredentialWriter.Update
func (s *CredentialStore) Update(ctx context.Context, cred *domain.Credential) error {
	model, err := domainToCredentialModel(cred, s.sealer)
	if err != nil {
		return err
	}
	// Optimistic lock: the write only lands on the version we read
	model.Version = cred.Version + 1

	err = withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// Demote any other primary in the same transaction
			if cred.IsPrimary {
				if err := tx.Model(&CredentialModel{}).
					Where("user_id = ? AND provider = ? AND id <> ? AND is_primary = ?", cred.UserID, string(cred.Provider), cred.ID, true).
					Updates(map[string]any{"is_primary": false, "version": gorm.Expr("version + 1")}).Error; err != nil {
					return err
				}
			}

			result := tx.Model(&CredentialModel{}).
				Where("id = ? AND version = ?", cred.ID, cred.Version).
				Select("*").Omit("id", "created_at").
				Updates(&model)
			if result.Error != nil {
				return result.Error
			}
			// Nothing matched: either the row is gone or the version moved
			if result.RowsAffected == 0 {
				return s.missingOrStale(tx, cred.ID)
			}
			return nil
		})
	}, maxRetries)
	if err != nil {
		return err
	}

	cred.Version = model.Version
	return nil
}

// MarkInvalid implements CredentialWriter.MarkInvalid
func (s *CredentialStore) MarkInvalid(ctx context.Context, credentialID, reason string, at time.Time) error {
	return withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&CredentialModel{}).
			Where("id = ?", credentialID).
			Updates(map[string]any{
				"invalid_reason": reason,
				"invalidated_at": at.UTC(),
				"is_active":      false,
				// An invalid account can never stay primary
				"is_primary":     false,
				"version":        gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrCredentialNotFound, credentialID)
		}
		return nil
	}, maxRetries)
}

// SetPrimary implements CredentialWriter.SetPrimary
func (s *CredentialStore) SetPrimary(ctx context.Context, userID string, provider domain.Provider, accountID string) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var target CredentialModel
			if err := tx.Where("user_id = ? AND provider = ? AND account_id = ?", userID, string(provider), accountID).
				First(&target).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s account %s", domain.ErrCredentialNotFound, provider, accountID)
				}
				return err
			}
			// Invalid accounts must be reconnected before they can lead
			if !target.IsActive {
				return fmt.Errorf("%w: %s account %s is not active, reconnect it first", domain.ErrStateConflict, provider, accountID)
			}

			if err := clearPrimary(tx, userID, provider); err != nil {
				return err
			}
			return tx.Model(&CredentialModel{}).
				Where("id = ?", target.ID).
				Updates(map[string]any{"is_primary": true, "version": gorm.Expr("version + 1")}).Error
		})
	}, maxRetries)
}

// Delete implements CredentialWriter.Delete
func (s *CredentialStore) Delete(ctx context.Context, userID string, provider domain.Provider, accountID string) error {
	return withRetry(func() error {
		result := s.db.WithContext(ctx).
			Where("user_id = ? AND provider = ? AND account_id = ?", userID, string(provider), accountID).
			Delete(&CredentialModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s account %s", domain.ErrCredentialNotFound, provider, accountID)
		}
		return nil
	}, maxRetries)
}

func (s *CredentialStore) missingOrStale(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&CredentialModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCredentialNotFound, id)
	}
	return fmt.Errorf("credential %s: %w", id, domain.ErrConcurrentModification)
}

func clearPrimary(tx *gorm.DB, userID string, provider domain.Provider) error {
	return tx.Model(&CredentialModel{}).
		Where("user_id = ? AND provider = ? AND is_primary = ?", userID, string(provider), true).
		Updates(map[string]any{"is_primary": false, "version": gorm.Expr("version + 1")}).Error
}

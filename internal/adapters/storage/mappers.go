package storage

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/renato0307/tempo/internal/domain"
)

// credentialModelToDomain converts a CredentialModel (GORM) to domain.Credential, opening sealed tokens
func credentialModelToDomain(m CredentialModel, sealer *TokenSealer) (*domain.Credential, error) {
	accessToken, err := sealer.Open(m.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("credential %s access token: %w", m.ID, err)
	}
	refreshToken, err := sealer.Open(m.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("credential %s refresh token: %w", m.ID, err)
	}
	meta, err := decodeMeta(domain.Provider(m.Provider), m.Meta)
	if err != nil {
		return nil, fmt.Errorf("credential %s metadata: %w", m.ID, err)
	}

	return &domain.Credential{
		AccessToken:   accessToken,
		AccountID:     m.AccountID,
		CreatedAt:     m.CreatedAt,
		ExpiresAt:     m.ExpiresAt,
		ID:            m.ID,
		InvalidReason: m.InvalidReason,
		InvalidatedAt: m.InvalidatedAt,
		IsActive:      m.IsActive,
		IsPrimary:     m.IsPrimary,
		Meta:          meta,
		Provider:      domain.Provider(m.Provider),
		RefreshToken:  refreshToken,
		Scopes:        m.Scopes,
		TokenType:     m.TokenType,
		UpdatedAt:     m.UpdatedAt,
		UserID:        m.UserID,
		Version:       m.Version,
	}, nil
}

// domainToCredentialModel converts a domain.Credential to CredentialModel (GORM), sealing tokens
func domainToCredentialModel(c *domain.Credential, sealer *TokenSealer) (CredentialModel, error) {
	accessToken, err := sealer.Seal(c.AccessToken)
	if err != nil {
		return CredentialModel{}, err
	}
	refreshToken, err := sealer.Seal(c.RefreshToken)
	if err != nil {
		return CredentialModel{}, err
	}
	meta, err := encodeMeta(c.Provider, c.Meta)
	if err != nil {
		return CredentialModel{}, err
	}

	return CredentialModel{
		AccessToken:   accessToken,
		AccountID:     c.AccountID,
		CreatedAt:     c.CreatedAt,
		ExpiresAt:     c.ExpiresAt,
		ID:            c.ID,
		InvalidReason: c.InvalidReason,
		InvalidatedAt: c.InvalidatedAt,
		IsActive:      c.IsActive,
		IsPrimary:     c.IsPrimary,
		Meta:          meta,
		Provider:      string(c.Provider),
		RefreshToken:  refreshToken,
		Scopes:        c.Scopes,
		TokenType:     c.TokenType,
		UpdatedAt:     c.UpdatedAt,
		UserID:        c.UserID,
		Version:       c.Version,
	}, nil
}

// encodeMeta serializes provider metadata, rejecting metadata of another provider
func encodeMeta(provider domain.Provider, meta domain.ProviderMeta) (string, error) {
	// Store an empty object rather than NULL
	if meta == nil {
		return "{}", nil
	}
	if meta.Provider() != provider {
		return "", fmt.Errorf("%w: %s metadata stored on a %s credential", domain.ErrValidation, meta.Provider(), provider)
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	return string(data), nil
}

// decodeMeta restores the concrete metadata type of a provider
func decodeMeta(provider domain.Provider, raw string) (domain.ProviderMeta, error) {
	// Rows written before metadata existed
	if raw == "" {
		raw = "{}"
	}
	switch provider {
	case domain.ProviderGoogle:
		var m domain.GoogleMeta
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, err
		}
		return m, nil
	case domain.ProviderJira:
		var m domain.JiraMeta
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

// eventModelToDomain converts an ExternalEventModel (GORM) to domain.ExternalEvent
func eventModelToDomain(m ExternalEventModel) domain.ExternalEvent {
	return domain.ExternalEvent{
		AccountID:           m.AccountID,
		AllDay:              m.AllDay,
		Attendees:           slices.Clone(m.Attendees),
		CalendarID:          m.CalendarID,
		DeletedAt:           m.DeletedAt,
		Description:         m.Description,
		EndTime:             m.EndTime,
		ExternalID:          m.ExternalID,
		HTMLLink:            m.HTMLLink,
		ID:                  m.ID,
		IssueKey:            m.IssueKey,
		IssueStatusCategory: m.IssueStatusCategory,
		LastSyncAt:          m.LastSyncAt,
		Location:            m.Location,
		Origin:              domain.EventOrigin(m.Origin),
		RecurrenceRule:      m.RecurrenceRule,
		StartTime:           m.StartTime,
		Status:              m.Status,
		SyncState:           domain.SyncState(m.SyncState),
		Title:               m.Title,
		UserID:              m.UserID,
	}
}

// domainToEventModel converts a domain.ExternalEvent to ExternalEventModel (GORM)
func domainToEventModel(e *domain.ExternalEvent) ExternalEventModel {
	// New events default to synced
	syncState := e.SyncState
	if syncState == "" {
		syncState = domain.SyncStateSynced
	}
	return ExternalEventModel{
		AccountID:           e.AccountID,
		AllDay:              e.AllDay,
		Attendees:           slices.Clone(e.Attendees),
		CalendarID:          e.CalendarID,
		DeletedAt:           e.DeletedAt,
		Description:         e.Description,
		EndTime:             e.EndTime.UTC(),
		ExternalID:          e.ExternalID,
		HTMLLink:            e.HTMLLink,
		ID:                  e.ID,
		IssueKey:            e.IssueKey,
		IssueStatusCategory: e.IssueStatusCategory,
		LastSyncAt:          e.LastSyncAt.UTC(),
		Location:            e.Location,
		Origin:              string(e.Origin),
		RecurrenceRule:      e.RecurrenceRule,
		StartTime:           e.StartTime.UTC(),
		Status:              e.Status,
		SyncState:           string(syncState),
		Title:               e.Title,
		UserID:              e.UserID,
	}
}

// sessionModelToDomain converts a TaskSessionModel (GORM) to domain.TaskSession
func sessionModelToDomain(m TaskSessionModel) domain.TaskSession {
	return domain.TaskSession{
		ActualDuration:    m.ActualDuration,
		EndTime:           m.EndTime,
		EstimatedDuration: m.EstimatedDuration,
		EventID:           m.EventID,
		ID:                m.ID,
		IsMainTask:        m.IsMainTask,
		Notes:             m.Notes,
		Rating:            m.Rating,
		StartTime:         m.StartTime,
		Status:            domain.TaskStatus(m.Status),
		UserID:            m.UserID,
	}
}

// domainToSessionModel converts a domain.TaskSession to TaskSessionModel (GORM)
func domainToSessionModel(s domain.TaskSession) TaskSessionModel {
	var endTime *time.Time
	if s.EndTime != nil {
		utc := s.EndTime.UTC()
		endTime = &utc
	}
	return TaskSessionModel{
		ActualDuration:    s.ActualDuration,
		EndTime:           endTime,
		EstimatedDuration: s.EstimatedDuration,
		EventID:           s.EventID,
		ID:                s.ID,
		IsMainTask:        s.IsMainTask,
		Notes:             s.Notes,
		Rating:            s.Rating,
		StartTime:         s.StartTime.UTC(),
		Status:            string(s.Status),
		UserID:            s.UserID,
	}
}

// stateModelToDomain converts a TimeManagerStateModel (GORM) to domain.TimeManagerState
func stateModelToDomain(m TimeManagerStateModel) *domain.TimeManagerState {
	// Stats are keyed by YYYY-MM-DD in the preference timezone
	stats := make(map[string]domain.DailyStats, len(m.DailyStats))
	for day, r := range m.DailyStats {
		stats[day] = domain.DailyStats{
			EstimatedTime:  r.EstimatedTime,
			TasksCompleted: r.TasksCompleted,
			TimeVariance:   r.TimeVariance,
			TotalTimeSpent: r.TotalTimeSpent,
		}
	}
	return &domain.TimeManagerState{
		CurrentMainTaskID: m.CurrentMainTaskID,
		DailyStats:        stats,
		Preferences: domain.Preferences{
			DefaultEstimate:  m.DefaultEstimate,
			OverrunThreshold: m.OverrunThreshold,
			Timezone:         m.Timezone,
		},
		SubTaskIDs: slices.Clone(m.SubTaskIDs),
		UserID:     m.UserID,
		Version:    m.Version,
	}
}

// domainToStateModel converts a domain.TimeManagerState to TimeManagerStateModel (GORM)
func domainToStateModel(s *domain.TimeManagerState) TimeManagerStateModel {
	stats := make(map[string]dailyStatsRecord, len(s.DailyStats))
	for day, d := range s.DailyStats {
		stats[day] = dailyStatsRecord{
			EstimatedTime:  d.EstimatedTime,
			TasksCompleted: d.TasksCompleted,
			TimeVariance:   d.TimeVariance,
			TotalTimeSpent: d.TotalTimeSpent,
		}
	}
	// Serialize as [] instead of null
	subTasks := s.SubTaskIDs
	if subTasks == nil {
		subTasks = []string{}
	}
	return TimeManagerStateModel{
		CurrentMainTaskID: s.CurrentMainTaskID,
		DailyStats:        stats,
		DefaultEstimate:   s.Preferences.DefaultEstimate,
		OverrunThreshold:  s.Preferences.OverrunThreshold,
		SubTaskIDs:        subTasks,
		Timezone:          s.Preferences.Timezone,
		UserID:            s.UserID,
		Version:           s.Version,
	}
}

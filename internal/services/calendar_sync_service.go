package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// CalendarSyncService reconciles the local event cache with the remote calendar
type CalendarSyncService struct {
	calendar   ports.CalendarClient
	clock      ports.Clock
	events     ports.EventRepository
	maxResults int
	tokens     TokenProvider
}

// NewCalendarSyncService creates a new CalendarSyncService. maxResults bounds
// the single page fetched per reconcile.
func NewCalendarSyncService(
	calendar ports.CalendarClient,
	events ports.EventRepository,
	tokens TokenProvider,
	clock ports.Clock,
	maxResults int,
) *CalendarSyncService {
	return &CalendarSyncService{
		calendar:   calendar,
		clock:      clock,
		events:     events,
		maxResults: maxResults,
		tokens:     tokens,
	}
}

// Reconcile makes the cached events of calendarID inside window match the
// remote listing of the primary calendar account. A failed listing aborts the
// call; per-event failures are collected in the result.
func (s *CalendarSyncService) Reconcile(
	ctx context.Context,
	userID string,
	calendarID string,
	window domain.Window,
) (*ReconcileResult, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	token, err := s.tokens.GetValidToken(ctx, userID, domain.ProviderGoogle, domain.AccountSelector{})
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, userID, token, calendarID, window)
}

func (s *CalendarSyncService) reconcile(
	ctx context.Context,
	userID string,
	token domain.BearerToken,
	calendarID string,
	window domain.Window,
) (*ReconcileResult, error) {
	if calendarID == "" {
		calendarID = domain.DefaultCalendarID
	}
	logging.Logger.Info("Reconciling calendar",
		"calendar", calendarID,
		"account", token.AccountID,
		"from", window.Start,
		"to", window.End)

	// A failed listing tells nothing about what is gone, so nothing is removed
	remoteEvents, err := s.calendar.ListEvents(ctx, token, calendarID, window, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list events of calendar %s: %w", calendarID, err)
	}
	local, err := s.events.ListInWindow(ctx, userID, calendarID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load cached events: %w", err)
	}

	result := &ReconcileResult{CalendarID: calendarID}
	now := s.clock.Now()

	// unreadable items still count as present so their cached copy survives
	remoteIDs := make(map[string]struct{}, len(remoteEvents))
	for _, r := range remoteEvents {
		remoteIDs[r.ExternalID] = struct{}{}
	}
	// Remove cached events the listing no longer has
	for _, e := range local {
		if _, ok := remoteIDs[e.ExternalID]; ok {
			continue
		}
		policy, err := applyDeletion(ctx, s.events, e, domain.TriggerAbsentFromListing, now)
		if err != nil {
			result.ItemErrors = append(result.ItemErrors, ItemError{Err: err, Key: e.ExternalID})
			continue
		}
		if policy != domain.DeletionNone {
			result.Removed++
		}
	}

	// Insert new events and refresh the existing ones
	for _, r := range remoteEvents {
		if r.ReadErr != nil {
			logging.Logger.Warn("Skipping unreadable event", "external_id", r.ExternalID, "error", r.ReadErr)
			result.ItemErrors = append(result.ItemErrors, ItemError{Err: r.ReadErr, Key: r.ExternalID})
			continue
		}
		event := domain.NewCalendarEvent(userID, calendarID, token.AccountID, r, now)
		if err := s.events.Upsert(ctx, &event); err != nil {
			logging.Logger.Warn("Failed to store event", "external_id", r.ExternalID, "error", err)
			result.ItemErrors = append(result.ItemErrors, ItemError{Err: err, Key: r.ExternalID})
			continue
		}
		result.Applied++
	}

	result.PartialFailure = len(result.ItemErrors) > 0
	logging.Logger.Info("Calendar reconciled",
		"calendar", calendarID,
		"applied", result.Applied,
		"removed", result.Removed,
		"errors", len(result.ItemErrors))
	return result, nil
}

// ReconcileAll reconciles every calendar configured on the primary account,
// one after the other. A failing calendar does not stop the others.
func (s *CalendarSyncService) ReconcileAll(ctx context.Context, userID string, window domain.Window) (*ReconcileAllResult, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	token, err := s.tokens.GetValidToken(ctx, userID, domain.ProviderGoogle, domain.AccountSelector{})
	if err != nil {
		return nil, err
	}

	// Accounts without metadata only sync the primary calendar
	calendars := []string{domain.DefaultCalendarID}
	if meta, ok := token.Meta.(domain.GoogleMeta); ok {
		calendars = meta.Calendars()
	}

	all := &ReconcileAllResult{}
	for _, calendarID := range calendars {
		// One token serves every calendar of the account
		result, err := s.reconcile(ctx, userID, token, calendarID, window)
		all.Calendars = append(all.Calendars, CalendarOutcome{CalendarID: calendarID, Err: err, Result: result})
		if err != nil || result.PartialFailure {
			all.PartialFailure = true
		}
	}
	return all, nil
}

// CreateEvent creates a remote event and caches it
func (s *CalendarSyncService) CreateEvent(
	ctx context.Context,
	userID string,
	calendarID string,
	in domain.EventInput,
) (*domain.ExternalEvent, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if calendarID == "" {
		calendarID = domain.DefaultCalendarID
	}
	token, err := s.tokens.GetValidToken(ctx, userID, domain.ProviderGoogle, domain.AccountSelector{})
	if err != nil {
		return nil, err
	}

	created, err := s.calendar.CreateEvent(ctx, token, calendarID, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	event := domain.NewCalendarEvent(userID, calendarID, token.AccountID, *created, s.clock.Now())
	if err := s.events.Upsert(ctx, &event); err != nil {
		return nil, fmt.Errorf("event %s created remotely but not cached: %w", created.ExternalID, err)
	}
	logging.Logger.Info("Event created", "calendar", calendarID, "external_id", created.ExternalID)
	return &event, nil
}

// UpdateEvent pushes new details of a cached calendar event. When the remote
// event is gone the cached row is removed and domain.ErrNotFoundRemote is returned.
func (s *CalendarSyncService) UpdateEvent(
	ctx context.Context,
	userID string,
	eventID string,
	in domain.EventInput,
) (*domain.ExternalEvent, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	event, token, err := s.calendarEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	updated, err := s.calendar.UpdateEvent(ctx, token, event.CalendarID, event.ExternalID, in)
	// Deleted on the provider side: drop our copy too
	if errors.Is(err, domain.ErrNotFoundRemote) {
		if _, delErr := applyDeletion(ctx, s.events, *event, domain.TriggerRemoteNotFound, s.clock.Now()); delErr != nil {
			logging.Logger.Warn("Failed to remove vanished event", "event", event.ID, "error", delErr)
		}
		return nil, fmt.Errorf("event %s no longer exists: %w", event.ExternalID, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	event.ApplyRemote(*updated, s.clock.Now())
	if err := s.events.Upsert(ctx, event); err != nil {
		return nil, fmt.Errorf("event %s updated remotely but not cached: %w", event.ExternalID, err)
	}
	return event, nil
}

// DeleteEvent deletes a calendar event remotely and from the cache. A remote
// event that is already gone counts as deleted.
func (s *CalendarSyncService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	event, token, err := s.calendarEvent(ctx, userID, eventID)
	if err != nil {
		return err
	}

	// Already gone remotely is fine, the cache still has to be cleaned
	err = s.calendar.DeleteEvent(ctx, token, event.CalendarID, event.ExternalID)
	if err != nil && !errors.Is(err, domain.ErrNotFoundRemote) {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if err := s.events.Delete(ctx, userID, event.ID); err != nil {
		return fmt.Errorf("failed to remove cached event: %w", err)
	}
	logging.Logger.Info("Event deleted", "calendar", event.CalendarID, "external_id", event.ExternalID)
	return nil
}

// calendarEvent loads a cached calendar event and the token of the account that owns it
func (s *CalendarSyncService) calendarEvent(
	ctx context.Context,
	userID string,
	eventID string,
) (*domain.ExternalEvent, domain.BearerToken, error) {
	event, err := s.events.Get(ctx, userID, eventID)
	if err != nil {
		return nil, domain.BearerToken{}, err
	}
	if event.Origin != domain.OriginCalendar {
		return nil, domain.BearerToken{}, fmt.Errorf("%w: event %s is not a calendar event", domain.ErrValidation, eventID)
	}
	// Use the account that owns the event, not the primary
	token, err := s.tokens.GetValidToken(ctx, userID, domain.ProviderGoogle, domain.AccountSelector{AccountID: event.AccountID})
	if err != nil {
		return nil, domain.BearerToken{}, err
	}
	return event, token, nil
}

// ListCachedEvents returns the cached events overlapping window, soft deleted ones excluded
func (s *CalendarSyncService) ListCachedEvents(ctx context.Context, userID string, window domain.Window) ([]domain.ExternalEvent, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return s.events.ListForDay(ctx, userID, window)
}

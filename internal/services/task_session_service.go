package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// TaskSessionService tracks work sessions against cached events. It never
// calls remote APIs.
type TaskSessionService struct {
	clock    ports.Clock
	events   ports.EventReader
	sessions ports.SessionRepository
}

// NewTaskSessionService creates a new TaskSessionService
func NewTaskSessionService(
	sessions ports.SessionRepository,
	events ports.EventReader,
	clock ports.Clock,
) *TaskSessionService {
	return &TaskSessionService{
		clock:    clock,
		events:   events,
		sessions: sessions,
	}
}

// StartTask opens a session on eventID. Starting a main task pauses the
// main task that is currently active.
func (s *TaskSessionService) StartTask(
	ctx context.Context,
	userID string,
	eventID string,
	opts domain.StartOptions,
) (*domain.TaskSession, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	event, err := s.events.Get(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	// Soft deleted events stay visible for history but cannot be worked on
	if event.IsDeleted() {
		return nil, fmt.Errorf("%w: event %s was removed remotely", domain.ErrEventNotFound, eventID)
	}

	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	now := s.clock.Now()
	var changed []domain.TaskSession
	// Only one main task can run at a time
	if opts.IsMainTask && state.CurrentMainTaskID != nil {
		prior, err := s.sessions.GetSession(ctx, userID, *state.CurrentMainTaskID)
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			logging.Logger.Warn("Current main task is missing, clearing pointer", "session", *state.CurrentMainTaskID)
		case err != nil:
			return nil, fmt.Errorf("failed to load current main task: %w", err)
		case prior.Status == domain.StatusActive:
			if err := prior.Pause(now); err != nil {
				return nil, err
			}
			logging.Logger.Info("Pausing previous main task", "session", prior.ID)
			changed = append(changed, *prior)
		}
		state.CurrentMainTaskID = nil
	}

	session := domain.NewTaskSession(uuid.NewString(), userID, eventID, opts, now)
	state.Track(session)
	changed = append(changed, session)

	// Paused prior task, new session and state commit together
	if err := s.sessions.ApplyTransition(ctx, state, changed...); err != nil {
		return nil, fmt.Errorf("failed to start task: %w", err)
	}
	logging.Logger.Info("Task started", "session", session.ID, "event", eventID, "main", opts.IsMainTask)
	return &session, nil
}

// PauseTask stops an active session
func (s *TaskSessionService) PauseTask(ctx context.Context, userID, sessionID string) (*domain.TaskSession, error) {
	return s.close(ctx, userID, sessionID, "pause", func(session *domain.TaskSession, _ *domain.TimeManagerState, now time.Time) error {
		return session.Pause(now)
	})
}

// CompleteTask finishes an active session and adds it to today's statistics
func (s *TaskSessionService) CompleteTask(
	ctx context.Context,
	userID string,
	sessionID string,
	opts domain.CompleteOptions,
) (*domain.TaskSession, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return s.close(ctx, userID, sessionID, "complete", func(session *domain.TaskSession, state *domain.TimeManagerState, now time.Time) error {
		if err := session.Complete(opts, now); err != nil {
			return err
		}
		state.RecordCompletion(*session)
		return nil
	})
}

// CancelTask abandons an active or paused session without touching statistics
func (s *TaskSessionService) CancelTask(ctx context.Context, userID, sessionID string) (*domain.TaskSession, error) {
	return s.close(ctx, userID, sessionID, "cancel", func(session *domain.TaskSession, _ *domain.TimeManagerState, now time.Time) error {
		return session.Cancel(now)
	})
}

// close runs one session transition and commits it together with the state
func (s *TaskSessionService) close(
	ctx context.Context,
	userID string,
	sessionID string,
	action string,
	transition func(*domain.TaskSession, *domain.TimeManagerState, time.Time) error,
) (*domain.TaskSession, error) {
	session, err := s.sessions.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	if err := transition(session, state, s.clock.Now()); err != nil {
		logging.Logger.Debug("Transition rejected", "action", action, "session", sessionID, "error", err)
		return nil, err
	}
	// The session no longer counts as main or sub task
	state.Release(session.ID)

	if err := s.sessions.ApplyTransition(ctx, state, *session); err != nil {
		return nil, fmt.Errorf("failed to %s task: %w", action, err)
	}
	logging.Logger.Info("Task session closed", "action", action, "session", sessionID, "status", session.Status)
	return session, nil
}

// CheckForOverruns evaluates the current main task against its estimate.
// Past the estimate plus the threshold the session is closed as overrun; inside
// the threshold a warning is returned without changes; otherwise nil.
func (s *TaskSessionService) CheckForOverruns(ctx context.Context, userID string) (*domain.OverrunCheck, error) {
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if state.CurrentMainTaskID == nil {
		return nil, nil
	}

	// A dangling pointer means nothing to check
	session, err := s.sessions.GetSession(ctx, userID, *state.CurrentMainTaskID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if session.Status != domain.StatusActive {
		return nil, nil
	}

	now := s.clock.Now()
	check := domain.EvaluateOverrun(*session, state.Preferences, now)
	// Warnings are informational and change nothing
	if check == nil || check.Type != domain.CheckOverrun {
		return check, nil
	}

	if err := session.MarkOverrun(now); err != nil {
		return nil, err
	}
	state.Release(session.ID)
	if err := s.sessions.ApplyTransition(ctx, state, *session); err != nil {
		return nil, fmt.Errorf("failed to record overrun: %w", err)
	}
	logging.Logger.Info("Task overran", "session", session.ID, "overrun", check.OverrunDuration)
	return check, nil
}

// GetNextTaskSuggestions returns today's remaining events without an active
// session, ordered by start time
func (s *TaskSessionService) GetNextTaskSuggestions(ctx context.Context, userID string) ([]domain.TaskSuggestion, error) {
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	now := s.clock.Now()

	events, err := s.events.ListForDay(ctx, userID, domain.DayWindow(now.In(state.Preferences.Location())))
	if err != nil {
		return nil, fmt.Errorf("failed to load today's events: %w", err)
	}
	active, err := s.sessions.ListSessionsByStatus(ctx, userID, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to load active sessions: %w", err)
	}
	// Events someone is already working on are not suggested again
	busy := make(map[string]struct{}, len(active))
	for _, session := range active {
		busy[session.EventID] = struct{}{}
	}

	var suggestions []domain.TaskSuggestion
	for _, event := range events {
		// Skip removed and finished events
		if event.IsDeleted() || !event.EndTime.After(now) {
			continue
		}
		if _, ok := busy[event.ID]; ok {
			continue
		}
		suggestions = append(suggestions, domain.NewTaskSuggestion(event, now))
	}
	slices.SortStableFunc(suggestions, func(a, b domain.TaskSuggestion) int {
		return a.Event.StartTime.Compare(b.Event.StartTime)
	})
	return suggestions, nil
}

// GetStatus returns the open sessions and today's statistics
func (s *TaskSessionService) GetStatus(ctx context.Context, userID string) (*TaskStatusSummary, error) {
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	summary := &TaskStatusSummary{
		Preferences: state.Preferences,
		Today:       state.StatsFor(s.clock.Now()),
	}
	if state.CurrentMainTaskID != nil {
		main, err := s.sessions.GetSession(ctx, userID, *state.CurrentMainTaskID)
		if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			return nil, err
		}
		summary.Main = main
	}
	for _, id := range state.SubTaskIDs {
		sub, err := s.sessions.GetSession(ctx, userID, id)
		// Sub tasks closed concurrently are simply left out
		if errors.Is(err, domain.ErrSessionNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		summary.SubTasks = append(summary.SubTasks, *sub)
	}
	return summary, nil
}

// GetDailyStats returns the statistics of every day between from and to
func (s *TaskSessionService) GetDailyStats(ctx context.Context, userID string, from, to time.Time) ([]domain.DayStats, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end is before its start", domain.ErrValidation)
	}
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return state.StatsBetween(from, to), nil
}

// UpdatePreferences validates and stores the time manager preferences
func (s *TaskSessionService) UpdatePreferences(ctx context.Context, userID string, prefs domain.Preferences) (*domain.Preferences, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	// Statistics and open sessions are kept as they are
	state.Preferences = prefs
	if err := s.sessions.ApplyTransition(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to store preferences: %w", err)
	}
	logging.Logger.Info("Preferences updated",
		"overrun_threshold", prefs.OverrunThreshold,
		"default_estimate", prefs.DefaultEstimate,
		"timezone", prefs.Timezone)
	return &state.Preferences, nil
}

// ListSessions returns the sessions started on the day containing day
func (s *TaskSessionService) ListSessions(ctx context.Context, userID string, day time.Time) ([]domain.TaskSession, error) {
	state, err := s.sessions.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	window := domain.DayWindow(day.In(state.Preferences.Location()))
	return s.sessions.ListSessionsBetween(ctx, userID, window.Start, window.End)
}

package domain

import (
	"fmt"
	"time"
)

// TaskStatus represents the state of a task session
type TaskStatus string

const (
	StatusActive    TaskStatus = "active"
	StatusCancelled TaskStatus = "cancelled"
	StatusCompleted TaskStatus = "completed"
	StatusOverrun   TaskStatus = "overrun"
	StatusPaused    TaskStatus = "paused"
)

// Status symbols (Unicode)
const (
	SymbolActive    = "●" // Green - being worked on
	SymbolCancelled = "×" // Gray - abandoned
	SymbolCompleted = "✓" // Blue - done
	SymbolOverrun   = "▲" // Red - ran past estimate and threshold
	SymbolPaused    = "◐" // Yellow - stopped before completion
)

// Symbol returns the display symbol of the status
func (s TaskStatus) Symbol() string {
	switch s {
	case StatusActive:
		return SymbolActive
	case StatusCancelled:
		return SymbolCancelled
	case StatusCompleted:
		return SymbolCompleted
	case StatusOverrun:
		return SymbolOverrun
	case StatusPaused:
		return SymbolPaused
	default:
		return "?"
	}
}

// IsTerminal reports whether no further transition is allowed
func (s TaskStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusOverrun
}

// TaskSession is one continuous interval of work on a single event
type TaskSession struct {
	ActualDuration    *time.Duration // set once when the session closes
	EndTime           *time.Time
	EstimatedDuration *time.Duration
	EventID           string
	ID                string
	IsMainTask        bool
	Notes             string
	Rating            *int
	StartTime         time.Time
	Status            TaskStatus
	UserID            string
}

// NewTaskSession creates an active session starting at now
func NewTaskSession(id, userID, eventID string, opts StartOptions, now time.Time) TaskSession {
	return TaskSession{
		EstimatedDuration: opts.EstimatedDuration,
		EventID:           eventID,
		ID:                id,
		IsMainTask:        opts.IsMainTask,
		Notes:             opts.Notes,
		StartTime:         now,
		Status:            StatusActive,
		UserID:            userID,
	}
}

// StartOptions are the caller supplied parameters of a new session
type StartOptions struct {
	EstimatedDuration *time.Duration
	IsMainTask        bool
	Notes             string
}

// Validate checks the options
func (o StartOptions) Validate() error {
	if o.EstimatedDuration != nil && *o.EstimatedDuration <= 0 {
		return fmt.Errorf("%w: estimated duration must be positive", ErrValidation)
	}
	return nil
}

// CompleteOptions are the caller supplied parameters of a completion
type CompleteOptions struct {
	Notes  string
	Rating *int
}

// Validate checks the options
func (o CompleteOptions) Validate() error {
	if o.Rating != nil && (*o.Rating < 1 || *o.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

// Elapsed returns the time spent so far, or the actual duration once closed
func (s *TaskSession) Elapsed(now time.Time) time.Duration {
	if s.ActualDuration != nil {
		return *s.ActualDuration
	}
	return now.Sub(s.StartTime)
}

// Pause stops an active session
func (s *TaskSession) Pause(now time.Time) error {
	return s.close(StatusPaused, now)
}

// Complete finishes an active session
func (s *TaskSession) Complete(opts CompleteOptions, now time.Time) error {
	if err := s.close(StatusCompleted, now); err != nil {
		return err
	}
	if opts.Notes != "" {
		s.Notes = opts.Notes
	}
	s.Rating = opts.Rating
	return nil
}

// MarkOverrun closes an active session that ran past its estimate and threshold
func (s *TaskSession) MarkOverrun(now time.Time) error {
	return s.close(StatusOverrun, now)
}

// Cancel abandons an active or paused session. A paused session keeps the
// duration recorded when it was paused.
func (s *TaskSession) Cancel(now time.Time) error {
	if s.Status == StatusPaused {
		s.Status = StatusCancelled
		return nil
	}
	return s.close(StatusCancelled, now)
}

func (s *TaskSession) close(to TaskStatus, now time.Time) error {
	if s.Status != StatusActive {
		return fmt.Errorf("%w: task session %s is not active (status %s)", ErrStateConflict, s.ID, s.Status)
	}
	actual := now.Sub(s.StartTime)
	if actual < 0 {
		actual = 0
	}
	s.EndTime = &now
	s.ActualDuration = &actual
	s.Status = to
	return nil
}

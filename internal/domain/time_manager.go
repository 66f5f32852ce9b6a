package domain

import (
	"fmt"
	"slices"
	"time"
)

// Preference defaults
const (
	DefaultEstimate         = 60 * time.Minute
	DefaultOverrunThreshold = 60 * time.Minute
)

// dayKeyLayout is the key format of the daily statistics map
const dayKeyLayout = "2006-01-02"

// Preferences are the per-user knobs of the time manager
type Preferences struct {
	DefaultEstimate  time.Duration
	OverrunThreshold time.Duration
	Timezone         string // IANA name, empty means local
}

// DefaultPreferences returns the preferences of a new user
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultEstimate:  DefaultEstimate,
		OverrunThreshold: DefaultOverrunThreshold,
	}
}

// Validate checks the preferences
func (p Preferences) Validate() error {
	if p.OverrunThreshold <= 0 {
		return fmt.Errorf("%w: overrun threshold must be positive", ErrValidation)
	}
	if p.DefaultEstimate <= 0 {
		return fmt.Errorf("%w: default estimate must be positive", ErrValidation)
	}
	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrValidation, p.Timezone)
		}
	}
	return nil
}

// Location returns the timezone used to bucket daily statistics
func (p Preferences) Location() *time.Location {
	if p.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// DailyStats aggregates the completed sessions of one day
type DailyStats struct {
	EstimatedTime  time.Duration
	TasksCompleted int
	TimeVariance   time.Duration
	TotalTimeSpent time.Duration
}

// TimeManagerState is the per-user singleton of the task session engine
type TimeManagerState struct {
	CurrentMainTaskID *string
	DailyStats        map[string]DailyStats
	Preferences       Preferences
	SubTaskIDs        []string
	UserID            string
	Version           int
}

// NewTimeManagerState returns the empty state of a user
func NewTimeManagerState(userID string) *TimeManagerState {
	return &TimeManagerState{
		DailyStats:  make(map[string]DailyStats),
		Preferences: DefaultPreferences(),
		UserID:      userID,
	}
}

// DayKey returns the statistics key for t in the user's timezone
func (s *TimeManagerState) DayKey(t time.Time) string {
	return t.In(s.Preferences.Location()).Format(dayKeyLayout)
}

// IsMain reports whether sessionID is the current main task
func (s *TimeManagerState) IsMain(sessionID string) bool {
	return s.CurrentMainTaskID != nil && *s.CurrentMainTaskID == sessionID
}

// Track registers a freshly started session
func (s *TimeManagerState) Track(session TaskSession) {
	if session.IsMainTask {
		id := session.ID
		s.CurrentMainTaskID = &id
		return
	}
	if !slices.Contains(s.SubTaskIDs, session.ID) {
		s.SubTaskIDs = append(s.SubTaskIDs, session.ID)
	}
}

// Release removes a closed session from the main pointer or the sub-task set
func (s *TimeManagerState) Release(sessionID string) {
	if s.IsMain(sessionID) {
		s.CurrentMainTaskID = nil
	}
	s.SubTaskIDs = slices.DeleteFunc(s.SubTaskIDs, func(id string) bool { return id == sessionID })
}

// RecordCompletion adds a completed session to the statistics of the day it ended
func (s *TimeManagerState) RecordCompletion(session TaskSession) {
	if session.Status != StatusCompleted || session.EndTime == nil || session.ActualDuration == nil {
		return
	}
	if s.DailyStats == nil {
		s.DailyStats = make(map[string]DailyStats)
	}
	key := s.DayKey(*session.EndTime)
	stats := s.DailyStats[key]
	stats.TasksCompleted++
	stats.TotalTimeSpent += *session.ActualDuration
	if session.EstimatedDuration != nil {
		stats.EstimatedTime += *session.EstimatedDuration
		stats.TimeVariance += *session.ActualDuration - *session.EstimatedDuration
	}
	s.DailyStats[key] = stats
}

// StatsFor returns the statistics of the day containing t
func (s *TimeManagerState) StatsFor(t time.Time) DailyStats {
	return s.DailyStats[s.DayKey(t)]
}

// DayStats pairs a day with its statistics
type DayStats struct {
	Day   string
	Stats DailyStats
}

// StatsBetween returns the statistics of every day in [from, to], oldest first.
// Days without completions are included with zero values.
func (s *TimeManagerState) StatsBetween(from, to time.Time) []DayStats {
	loc := s.Preferences.Location()
	from, to = from.In(loc), to.In(loc)
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	var result []DayStats
	for !day.After(to) {
		key := day.Format(dayKeyLayout)
		result = append(result, DayStats{Day: key, Stats: s.DailyStats[key]})
		day = day.AddDate(0, 0, 1)
	}
	return result
}

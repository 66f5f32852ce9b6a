package domain

import (
	"strings"
	"time"
)

// StatusCategoryDone is the terminal status category of an issue
const StatusCategoryDone = "done"

// Issue is a work item fetched from the issue tracker
type Issue struct {
	AccountID        string
	DueDate          *time.Time
	Key              string
	OriginalEstimate time.Duration
	Status           string
	StatusCategory   string
	Summary          string
	URL              string
}

// IsDone reports whether the issue reached the terminal category
func (i Issue) IsDone() bool {
	return strings.EqualFold(i.StatusCategory, StatusCategoryDone)
}

// IssueTransition is a status transition available on an issue
type IssueTransition struct {
	ID         string
	Name       string
	ToCategory string
	ToStatus   string
}

// IssueCalendarID is the pseudo calendar holding the issues of one tracker account
func IssueCalendarID(accountID string) string {
	return "jira:" + accountID
}

// NewIssueEvent builds the cache entry of an issue scheduled at start
func NewIssueEvent(userID string, issue Issue, start time.Time, now time.Time) ExternalEvent {
	duration := issue.OriginalEstimate
	if duration <= 0 {
		duration = time.Hour
	}
	e := ExternalEvent{
		AccountID:  issue.AccountID,
		CalendarID: IssueCalendarID(issue.AccountID),
		ExternalID: issue.Key,
		IssueKey:   issue.Key,
		Origin:     OriginIssue,
		SyncState:  SyncStateSynced,
		UserID:     userID,
	}
	e.ApplyIssue(issue, now)
	e.StartTime = start
	e.EndTime = start.Add(duration)
	return e
}

// ApplyIssue refreshes the cached title and status of an issue event
func (e *ExternalEvent) ApplyIssue(issue Issue, now time.Time) {
	e.Title = issue.Key + " " + issue.Summary
	e.Status = issue.Status
	e.IssueStatusCategory = issue.StatusCategory
	e.HTMLLink = issue.URL
	e.LastSyncAt = now
}

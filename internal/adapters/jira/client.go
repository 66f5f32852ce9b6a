package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/renato0307/tempo/internal/adapters/remote"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/ports"
)

// AssignedOpenJQL selects the open issues assigned to the caller
const AssignedOpenJQL = "assignee = currentUser() AND statusCategory != Done ORDER BY duedate ASC"

const (
	issueFields    = "summary,status,duedate,timeoriginalestimate"
	searchPageSize = 100
)

// Client implements ports.IssueTracker against the Jira Cloud REST API v3,
// addressed through the Atlassian API gateway by cloud id
type Client struct {
	api     *remote.Client
	baseURL string
}

// Verify interface compliance at compile time
var _ ports.IssueTracker = (*Client)(nil)

// NewClient creates a client for the gateway at baseURL (https://api.atlassian.com in production)
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		api:     remote.NewClient(domain.ProviderJira, timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Wire types of the Jira REST API, only the fields we read
type statusCategory struct {
	Key string `json:"key"`
}

type status struct {
	Name           string         `json:"name"`
	StatusCategory statusCategory `json:"statusCategory"`
}

type issueFieldsJSON struct {
	DueDate              string `json:"duedate"`
	Status               status `json:"status"`
	Summary              string `json:"summary"`
	TimeOriginalEstimate int64  `json:"timeoriginalestimate"` // seconds
}

type issueJSON struct {
	Fields issueFieldsJSON `json:"fields"`
	Key    string          `json:"key"`
}

type searchResponse struct {
	Issues        []issueJSON `json:"issues"`
	NextPageToken string      `json:"nextPageToken"`
}

type transitionJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   status `json:"to"`
}

type transitionsResponse struct {
	Transitions []transitionJSON `json:"transitions"`
}

type transitionRequest struct {
	Transition struct {
		ID string `json:"id"`
	} `json:"transition"`
}

// SearchAssigned implements ports.IssueTracker.SearchAssigned
func (c *Client) SearchAssigned(ctx context.Context, token domain.BearerToken) ([]domain.Issue, error) {
	meta, base, err := c.siteAPI(token)
	if err != nil {
		return nil, err
	}

	var issues []domain.Issue
	// Follow nextPageToken until the last page
	pageToken := ""
	for {
		params := url.Values{}
		params.Set("jql", AssignedOpenJQL)
		params.Set("fields", issueFields)
		params.Set("maxResults", fmt.Sprint(searchPageSize))
		if pageToken != "" {
			params.Set("nextPageToken", pageToken)
		}

		var page searchResponse
		if err := c.api.Do(ctx, "search issues", http.MethodGet, base+"/search/jql?"+params.Encode(), token, nil, &page); err != nil {
			return nil, err
		}
		for _, raw := range page.Issues {
			issues = append(issues, toIssue(raw, token.AccountID, meta.SiteURL))
		}
		if page.NextPageToken == "" {
			return issues, nil
		}
		pageToken = page.NextPageToken
	}
}

// GetIssue implements ports.IssueTracker.GetIssue
func (c *Client) GetIssue(ctx context.Context, token domain.BearerToken, issueKey string) (*domain.Issue, error) {
	meta, base, err := c.siteAPI(token)
	if err != nil {
		return nil, err
	}

	var raw issueJSON
	u := fmt.Sprintf("%s/issue/%s?fields=%s", base, url.PathEscape(issueKey), url.QueryEscape(issueFields))
	if err := c.api.Do(ctx, "get issue", http.MethodGet, u, token, nil, &raw); err != nil {
		return nil, err
	}
	issue := toIssue(raw, token.AccountID, meta.SiteURL)
	return &issue, nil
}

// ListTransitions implements ports.IssueTracker.ListTransitions
func (c *Client) ListTransitions(ctx context.Context, token domain.BearerToken, issueKey string) ([]domain.IssueTransition, error) {
	_, base, err := c.siteAPI(token)
	if err != nil {
		return nil, err
	}

	var resp transitionsResponse
	if err := c.api.Do(ctx, "list transitions", http.MethodGet, c.transitionsURL(base, issueKey), token, nil, &resp); err != nil {
		return nil, err
	}

	result := make([]domain.IssueTransition, len(resp.Transitions))
	for i, tr := range resp.Transitions {
		result[i] = domain.IssueTransition{
			ID:         tr.ID,
			Name:       tr.Name,
			ToCategory: tr.To.StatusCategory.Key,
			ToStatus:   tr.To.Name,
		}
	}
	return result, nil
}

// ApplyTransition implements ports.IssueTracker.ApplyTransition
func (c *Client) ApplyTransition(ctx context.Context, token domain.BearerToken, issueKey, transitionID string) error {
	_, base, err := c.siteAPI(token)
	if err != nil {
		return err
	}

	// Jira answers 204 with no body
	var body transitionRequest
	body.Transition.ID = transitionID
	return c.api.Do(ctx, "transition issue", http.MethodPost, c.transitionsURL(base, issueKey), token, body, nil)
}

func (c *Client) transitionsURL(base, issueKey string) string {
	return fmt.Sprintf("%s/issue/%s/transitions", base, url.PathEscape(issueKey))
}

// siteAPI resolves the REST root of the site the token belongs to
func (c *Client) siteAPI(token domain.BearerToken) (domain.JiraMeta, string, error) {
	meta, ok := token.JiraMeta()
	if !ok {
		return domain.JiraMeta{}, "", fmt.Errorf("%w: token of account %s carries no jira site", domain.ErrValidation, token.AccountID)
	}
	if err := meta.Validate(); err != nil {
		return domain.JiraMeta{}, "", err
	}
	return meta, fmt.Sprintf("%s/ex/jira/%s/rest/api/3", c.baseURL, url.PathEscape(meta.CloudID)), nil
}

func toIssue(raw issueJSON, accountID, siteURL string) domain.Issue {
	issue := domain.Issue{
		AccountID:        accountID,
		Key:              raw.Key,
		OriginalEstimate: time.Duration(raw.Fields.TimeOriginalEstimate) * time.Second,
		Status:           raw.Fields.Status.Name,
		StatusCategory:   raw.Fields.Status.StatusCategory.Key,
		Summary:          raw.Fields.Summary,
	}
	// Browse link for humans, the API itself is addressed by cloud id
	if siteURL != "" {
		issue.URL = strings.TrimRight(siteURL, "/") + "/browse/" + raw.Key
	}
	// An unparseable due date is treated as no due date
	if raw.Fields.DueDate != "" {
		if due, err := time.Parse("2006-01-02", raw.Fields.DueDate); err == nil {
			issue.DueDate = &due
		}
	}
	return issue
}

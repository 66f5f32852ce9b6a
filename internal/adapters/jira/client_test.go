package jira

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/domain"
)

func jiraToken() domain.BearerToken {
	return domain.BearerToken{
		AccessToken: "jira-token",
		AccountID:   "acct-1",
		Meta:        domain.JiraMeta{CloudID: "cloud-1", SiteURL: "https://team.atlassian.net"},
		Provider:    domain.ProviderJira,
		TokenType:   "Bearer",
	}
}

func TestClient_SearchAssignedFollowsPages(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/ex/jira/cloud-1/rest/api/3/search/jql", r.URL.Path)
		assert.Equal(t, AssignedOpenJQL, r.URL.Query().Get("jql"))
		assert.Equal(t, "Bearer jira-token", r.Header.Get("Authorization"))

		if r.URL.Query().Get("nextPageToken") == "" {
			_, _ = io.WriteString(w, `{"issues":[{"key":"PRJ-1","fields":{"summary":"Login bug",
				"status":{"name":"In Progress","statusCategory":{"key":"indeterminate"}},
				"duedate":"2026-03-12","timeoriginalestimate":5400}}],"nextPageToken":"p2"}`)
			return
		}
		assert.Equal(t, "p2", r.URL.Query().Get("nextPageToken"))
		_, _ = io.WriteString(w, `{"issues":[{"key":"PRJ-2","fields":{"summary":"Docs",
			"status":{"name":"To Do","statusCategory":{"key":"new"}}}}]}`)
	}))
	defer server.Close()

	issues, err := NewClient(server.URL, time.Second).SearchAssigned(context.Background(), jiraToken())

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, issues, 2)
	assert.Equal(t, "PRJ-1", issues[0].Key)
	assert.Equal(t, "acct-1", issues[0].AccountID)
	assert.Equal(t, 90*time.Minute, issues[0].OriginalEstimate)
	assert.Equal(t, "https://team.atlassian.net/browse/PRJ-1", issues[0].URL)
	require.NotNil(t, issues[0].DueDate)
	assert.Equal(t, 12, issues[0].DueDate.Day())
	assert.Nil(t, issues[1].DueDate)
}

func TestClient_GetIssue(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
		category string
	}{
		{"open", http.StatusOK, `{"key":"PRJ-1","fields":{"summary":"S","status":{"name":"Done","statusCategory":{"key":"done"}}}}`, nil, "done"},
		{"missing", http.StatusNotFound, `{"errorMessages":["Issue does not exist or you do not have permission to see it."]}`, domain.ErrNotFoundRemote, ""},
		{"expired token", http.StatusUnauthorized, ``, domain.ErrAuthenticationRequired, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/ex/jira/cloud-1/rest/api/3/issue/PRJ-1", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			issue, err := NewClient(server.URL, time.Second).GetIssue(context.Background(), jiraToken(), "PRJ-1")

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.category, issue.StatusCategory)
			assert.True(t, issue.IsDone())
		})
	}
}

func TestClient_Transitions(t *testing.T) {
	var applied string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ex/jira/cloud-1/rest/api/3/issue/PRJ-1/transitions", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"transitions":[{"id":"31","name":"Finish","to":{"name":"Done","statusCategory":{"key":"done"}}}]}`)
		case http.MethodPost:
			var body transitionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			applied = body.Transition.ID
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	ctx := context.Background()

	transitions, err := client.ListTransitions(ctx, jiraToken(), "PRJ-1")
	require.NoError(t, err)
	require.Len(t, transitions, 1)
	assert.Equal(t, domain.IssueTransition{ID: "31", Name: "Finish", ToCategory: "done", ToStatus: "Done"}, transitions[0])

	require.NoError(t, client.ApplyTransition(ctx, jiraToken(), "PRJ-1", "31"))
	assert.Equal(t, "31", applied)
}

func TestClient_RequiresSiteMetadata(t *testing.T) {
	token := jiraToken()
	token.Meta = nil

	_, err := NewClient("http://unused", time.Second).SearchAssigned(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

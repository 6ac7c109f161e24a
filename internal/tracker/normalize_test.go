package tracker

import (
	"testing"
	"time"

	jira "github.com/andygrunwald/go-jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhbakhshipour/jira-bridge/pkg/models"
)

func TestNormalizeUser(t *testing.T) {
	user := &jira.User{
		Name:         "jdoe",
		EmailAddress: "jdoe@example.com",
		DisplayName:  "Jane Doe",
		AvatarUrls: jira.AvatarUrls{
			Four8X48:  "https://jira.example.com/avatar/jdoe?size=48",
			One6X16:   "https://jira.example.com/avatar/jdoe?size=16",
			Two4X24:   "https://jira.example.com/avatar/jdoe?size=24",
			Three2X32: "https://jira.example.com/avatar/jdoe?size=32",
		},
	}

	normalized := normalizeUser(user)
	require.NotNil(t, normalized)

	assert.Equal(t, &models.NormalizedUser{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Avatar:   "https://jira.example.com/avatar/jdoe?size=48",
		FullName: "Jane Doe",
	}, normalized, "the 48x48 avatar variant is the one callers get")
}

func TestNormalizeUserNil(t *testing.T) {
	assert.Nil(t, normalizeUser(nil))
}

func TestNormalizeIssue(t *testing.T) {
	created := time.Date(2023, 4, 10, 12, 30, 0, 0, time.UTC)

	issue := jira.Issue{
		Key: "PROJ-42",
		Fields: &jira.IssueFields{
			Summary:  "Fix login flow",
			Reporter: &jira.User{Name: "jdoe", DisplayName: "Jane Doe"},
			Status:   &jira.Status{Name: "In Progress"},
			Priority: &jira.Priority{Name: "High"},
			Created:  jira.Time(created),
		},
	}

	normalized := normalizeIssue(issue)

	assert.Equal(t, "PROJ-42", normalized.Key)
	assert.Equal(t, "Fix login flow", normalized.Summary)
	require.NotNil(t, normalized.Reporter)
	assert.Equal(t, "jdoe", normalized.Reporter.Username)
	assert.Equal(t, "In Progress", normalized.Status)
	assert.Equal(t, "High", normalized.Priority)
	require.NotNil(t, normalized.Created)
	assert.True(t, normalized.Created.Equal(created))
}

func TestNormalizeIssueMissingOptionalFields(t *testing.T) {
	// A hit with no reporter, status, priority, or created timestamp must
	// normalize cleanly rather than fail the batch.
	issue := jira.Issue{
		Key: "PROJ-43",
		Fields: &jira.IssueFields{
			Summary: "Orphaned ticket",
		},
	}

	normalized := normalizeIssue(issue)

	assert.Equal(t, "PROJ-43", normalized.Key)
	assert.Equal(t, "Orphaned ticket", normalized.Summary)
	assert.Nil(t, normalized.Reporter)
	assert.Empty(t, normalized.Status)
	assert.Empty(t, normalized.Priority)
	assert.Nil(t, normalized.Created)
}

func TestNormalizeIssueNilFields(t *testing.T) {
	normalized := normalizeIssue(jira.Issue{Key: "PROJ-44"})

	assert.Equal(t, "PROJ-44", normalized.Key)
	assert.Empty(t, normalized.Summary)
	assert.Nil(t, normalized.Reporter)
}

func TestNormalizeSprints(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	raw := []jira.Sprint{
		{ID: 9, Name: "Sprint 9", State: "closed", StartDate: &start, EndDate: &end},
		{ID: 3, Name: "Sprint 3", State: "active"},
	}

	normalized := normalizeSprints(raw)
	require.Len(t, normalized, 2)

	// Backend order is preserved, never re-sorted
	assert.Equal(t, models.NormalizedSprint{
		ID:        9,
		Name:      "Sprint 9",
		State:     "closed",
		StartDate: &start,
		EndDate:   &end,
	}, normalized[0])
	assert.Equal(t, models.NormalizedSprint{
		ID:    3,
		Name:  "Sprint 3",
		State: "active",
	}, normalized[1])
}

func TestNormalizeIssuesPreservesOrder(t *testing.T) {
	raw := []jira.Issue{
		{Key: "PROJ-3", Fields: &jira.IssueFields{Summary: "third"}},
		{Key: "PROJ-1", Fields: &jira.IssueFields{Summary: "first"}},
		{Key: "PROJ-2", Fields: &jira.IssueFields{Summary: "second"}},
	}

	normalized := normalizeIssues(raw)
	require.Len(t, normalized, 3)
	assert.Equal(t, "PROJ-3", normalized[0].Key)
	assert.Equal(t, "PROJ-1", normalized[1].Key)
	assert.Equal(t, "PROJ-2", normalized[2].Key)
}

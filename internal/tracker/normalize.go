package tracker

import (
	"time"

	jira "github.com/andygrunwald/go-jira"

	"github.com/mhbakhshipour/jira-bridge/pkg/models"
)

// normalizeUser maps a backend user onto the caller-facing shape.
func normalizeUser(user *jira.User) *models.NormalizedUser {
	if user == nil {
		return nil
	}
	return &models.NormalizedUser{
		Username: user.Name,
		Email:    user.EmailAddress,
		Avatar:   user.AvatarUrls.Four8X48,
		FullName: user.DisplayName,
	}
}

// normalizeIssue maps one raw search hit onto the caller-facing shape.
// Optional nested fields the backend omitted must not fail the batch; they
// normalize to nil or empty instead.
func normalizeIssue(issue jira.Issue) models.NormalizedIssue {
	normalized := models.NormalizedIssue{
		Key: issue.Key,
	}

	fields := issue.Fields
	if fields == nil {
		return normalized
	}

	normalized.Summary = fields.Summary
	normalized.Reporter = normalizeUser(fields.Reporter)

	if fields.Status != nil {
		normalized.Status = fields.Status.Name
	}
	if fields.Priority != nil {
		normalized.Priority = fields.Priority.Name
	}
	if created := time.Time(fields.Created); !created.IsZero() {
		normalized.Created = &created
	}

	return normalized
}

// normalizeIssues maps a page of raw search hits, preserving backend order.
func normalizeIssues(issues []jira.Issue) []models.NormalizedIssue {
	normalized := make([]models.NormalizedIssue, 0, len(issues))
	for _, issue := range issues {
		normalized = append(normalized, normalizeIssue(issue))
	}
	return normalized
}

// normalizeSprint maps a backend sprint onto the caller-facing shape.
func normalizeSprint(sprint jira.Sprint) models.NormalizedSprint {
	return models.NormalizedSprint{
		ID:        sprint.ID,
		Name:      sprint.Name,
		State:     sprint.State,
		StartDate: sprint.StartDate,
		EndDate:   sprint.EndDate,
	}
}

// normalizeSprints maps a sprint list, preserving backend order.
func normalizeSprints(sprints []jira.Sprint) []models.NormalizedSprint {
	normalized := make([]models.NormalizedSprint, 0, len(sprints))
	for _, sprint := range sprints {
		normalized = append(normalized, normalizeSprint(sprint))
	}
	return normalized
}

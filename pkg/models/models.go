// Package models defines data structures shared across the application.
package models

import (
	"time"
)

// ProductRef carries the product metadata attached to a ticket draft.
type ProductRef struct {
	// Name is the product's display name, mapped to a custom field on
	// backends that track it. May be empty.
	Name string `json:"name"`
}

// TicketDraft is the caller-supplied shape for a new ticket. Which fields are
// required depends on the backend the facade was constructed for: backend A
// needs Name and ProductID, backend B needs Name and the user-story triplet.
type TicketDraft struct {
	// Name is the ticket's summary line
	Name string

	// ProductID is the backend project identifier the ticket belongs to
	// (backend A only; backend B uses a fixed project)
	ProductID string

	// AsA, IWant, SoThat are the user-story clauses joined into a single
	// free-text custom field on backend B
	AsA    string
	IWant  string
	SoThat string

	// IsHighPriority selects the high-priority level on backend B
	IsHighPriority bool

	// Product carries product metadata for backend B's custom fields
	Product ProductRef
}

// NormalizedUser is the backend-independent shape of a Jira user.
type NormalizedUser struct {
	// Username is the backend account name
	Username string `json:"username"`

	// Email is the user's email address
	Email string `json:"email"`

	// Avatar is the 48x48 avatar variant URL
	Avatar string `json:"avatar"`

	// FullName is the user's display name
	FullName string `json:"full_name"`
}

// NormalizedIssue is the backend-independent shape of a search result entry.
// Optional fields the backend omitted stay at their zero value rather than
// failing the batch: Reporter and Created are nil, Status and Priority empty.
type NormalizedIssue struct {
	// Key is the backend-issued ticket identifier (e.g., "ABC-123")
	Key string `json:"key"`

	// Summary is the ticket's summary field
	Summary string `json:"summary"`

	// Reporter is the normalized reporter, or nil if the backend returned none
	Reporter *NormalizedUser `json:"reporter"`

	// Status is the status name, or empty if absent
	Status string `json:"status,omitempty"`

	// Priority is the priority name, or empty if absent
	Priority string `json:"priority,omitempty"`

	// Created is the creation timestamp, or nil if absent
	Created *time.Time `json:"created,omitempty"`
}

// NormalizedSprint is the backend-independent shape of a sprint.
type NormalizedSprint struct {
	// ID is the backend sprint identifier
	ID int `json:"id"`

	// Name is the sprint's display name
	Name string `json:"name"`

	// State is the backend's sprint state vocabulary ("active", "future", ...)
	State string `json:"state"`

	// StartDate is the sprint start, or nil if the backend omitted it
	StartDate *time.Time `json:"startDate"`

	// EndDate is the sprint end, or nil if the backend omitted it
	EndDate *time.Time `json:"endDate"`
}

// SearchResult is one page of normalized search hits plus the pagination
// metadata exactly as the backend reported it.
type SearchResult struct {
	// Issues holds the page's hits in backend response order
	Issues []NormalizedIssue `json:"issues"`

	// StartAt is the page offset the backend applied
	StartAt int `json:"startAt"`

	// MaxResults is the page size the backend applied
	MaxResults int `json:"maxResults"`

	// Total is the backend's total hit count for the query
	Total int `json:"total"`
}

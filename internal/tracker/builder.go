package tracker

import (
	"fmt"

	jira "github.com/andygrunwald/go-jira"
	"github.com/trivago/tgo/tcontainer"

	"github.com/mhbakhshipour/jira-bridge/pkg/models"
)

// Backend field constants. The IDs are backend-defined and fixed per
// deployment, not configurable.
const (
	// issueTypeA is the ticket issue type on backend A.
	issueTypeA = "10001"

	// projectB and issueTypeB pin every backend-B ticket to one project.
	projectB   = "10407"
	issueTypeB = "16704"

	// storyFieldB holds the joined user-story clauses on backend B.
	storyFieldB = "customfield_23249"

	// productFieldB holds the product name on backend B.
	productFieldB = "customfield_23250"

	// priorityHighB and priorityDefaultB are backend B's priority level IDs.
	priorityHighB    = "2"
	priorityDefaultB = "4"
)

// payloadBuilder turns a caller draft into the issue payload one backend
// expects. Each Source has exactly one builder, chosen at construction.
type payloadBuilder interface {
	// Build validates the draft against the backend's required fields and
	// returns the issue to create. The identity is the acting user's
	// username, used only by backends that set a custom reporter.
	Build(draft models.TicketDraft, identity string) (*jira.Issue, error)
}

// builderFor returns the payload builder for a recognized source.
func builderFor(source Source) (payloadBuilder, error) {
	switch source {
	case SourceA:
		return backendABuilder{}, nil
	case SourceB:
		return backendBBuilder{}, nil
	}
	return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid source: %q", source)}
}

// backendABuilder maps drafts for backend A: the draft's product ID selects
// the project, the issue type is fixed, and the reporter is left to the
// backend's default (the authenticating service account).
type backendABuilder struct{}

func (backendABuilder) Build(draft models.TicketDraft, _ string) (*jira.Issue, error) {
	if draft.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if draft.ProductID == "" {
		return nil, &ValidationError{Field: "product_id"}
	}

	return &jira.Issue{
		Fields: &jira.IssueFields{
			Project: jira.Project{ID: draft.ProductID},
			Type:    jira.IssueType{ID: issueTypeA},
			Summary: draft.Name,
		},
	}, nil
}

// backendBBuilder maps drafts for backend B: a fixed project and issue type,
// the acting user as reporter, the user-story clauses joined into one custom
// field, the product name into another, and a two-level priority.
type backendBBuilder struct{}

func (backendBBuilder) Build(draft models.TicketDraft, identity string) (*jira.Issue, error) {
	if draft.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if draft.AsA == "" {
		return nil, &ValidationError{Field: "as_a"}
	}
	if draft.IWant == "" {
		return nil, &ValidationError{Field: "i_want"}
	}
	if draft.SoThat == "" {
		return nil, &ValidationError{Field: "so_that"}
	}

	priority := priorityDefaultB
	if draft.IsHighPriority {
		priority = priorityHighB
	}

	unknowns := tcontainer.NewMarshalMap()
	unknowns[storyFieldB] = fmt.Sprintf("%s , %s, %s", draft.AsA, draft.IWant, draft.SoThat)
	unknowns[productFieldB] = draft.Product.Name

	return &jira.Issue{
		Fields: &jira.IssueFields{
			Project:  jira.Project{ID: projectB},
			Type:     jira.IssueType{ID: issueTypeB},
			Summary:  draft.Name,
			Reporter: &jira.User{Name: identity},
			Priority: &jira.Priority{ID: priority},
			Unknowns: unknowns,
		},
	}, nil
}

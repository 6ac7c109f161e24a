// Package tracker provides a facade over two differently configured Jira
// deployments. A facade is bound at construction to one backend and one
// acting user, and exposes uniform ticket, sprint, board, and search
// operations on top of that single session.
package tracker

import (
	"crypto/tls"
	"net/http"
	"strconv"

	jira "github.com/andygrunwald/go-jira"

	"github.com/mhbakhshipour/jira-bridge/internal/config"
	"github.com/mhbakhshipour/jira-bridge/internal/logging"
	"github.com/mhbakhshipour/jira-bridge/pkg/models"
)

// contextUserHeader carries the acting human user on every request, for
// audit and attribution on the backend side. Authentication itself uses the
// configured service account, not the acting user's credentials.
const contextUserHeader = "contextUser"

// searchPageSize is the fixed page size for issue searches.
const searchPageSize = 10

// Client is an authenticated facade over one Jira deployment. Construct one
// per logical call context; instances are not safe for concurrent use and
// must not be shared across users.
type Client struct {
	source   Source
	identity string
	client   *jira.Client
	builder  payloadBuilder
}

// New constructs a facade bound to the given source and acting user. It
// resolves the source's backend configuration, opens one basic-auth session
// carrying the acting user as a context header, and verifies the session
// with a single self lookup. The returned facade never switches backends.
func New(cfg *config.Config, identity string, source Source) (*Client, error) {
	if identity == "" {
		return nil, &ConfigurationError{Reason: "acting user identity is not set"}
	}

	builder, err := builderFor(source)
	if err != nil {
		return nil, err
	}

	backend, prefix := backendFor(cfg, source)
	if err := config.ValidateBackendConfig(backend, prefix); err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}

	var base http.RoundTripper = http.DefaultTransport
	if backend.InsecureSkipVerify {
		// Explicit operator override only; never the default. Clone keeps
		// the default proxy and dial settings.
		logging.Warn("tls certificate verification disabled for backend",
			"source", string(source),
			"url", backend.URL)
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		base = transport
	}

	tp := jira.BasicAuthTransport{
		Username: backend.Username,
		Password: backend.Password,
		Transport: &contextUserTransport{
			user: identity,
			base: base,
		},
	}

	jiraClient, err := jira.NewClient(tp.Client(), backend.URL)
	if err != nil {
		return nil, &ConfigurationError{Reason: "invalid backend url: " + err.Error()}
	}

	client := &Client{
		source:   source,
		identity: identity,
		client:   jiraClient,
		builder:  builder,
	}

	// One authentication handshake against the selected backend
	if _, resp, err := jiraClient.User.GetSelf(); err != nil {
		return nil, remoteErr("authenticate", resp, err)
	}

	logging.Debug("jira session established",
		"source", string(source),
		"context_user", identity,
		"username", logging.MaskSensitive(backend.Username))

	return client, nil
}

// Source reports which backend this facade was constructed for.
func (c *Client) Source() Source {
	return c.source
}

// Identity reports the acting user this facade attributes requests to.
func (c *Client) Identity() string {
	return c.identity
}

// CreateTicket creates a ticket from the draft using the backend mapping
// fixed at construction and returns the backend-issued ticket key.
func (c *Client) CreateTicket(draft models.TicketDraft) (string, error) {
	issue, err := c.builder.Build(draft, c.identity)
	if err != nil {
		return "", err
	}

	created, resp, err := c.client.Issue.Create(issue)
	if err != nil {
		return "", remoteErr("create issue", resp, err)
	}

	logging.Info("created jira ticket",
		"source", string(c.source),
		"key", created.Key)

	return created.Key, nil
}

// AddComment adds a comment to the given issue. The body is forwarded as-is;
// content rules belong to the backend.
func (c *Client) AddComment(issueKey, body string) error {
	_, resp, err := c.client.Issue.AddComment(issueKey, &jira.Comment{Body: body})
	if err != nil {
		return remoteErr("add comment", resp, err)
	}
	return nil
}

// ChangeTransition applies the given transition to the issue. The transition
// ID is forwarded verbatim; whether it is legal for the issue's current
// status is the backend's call.
func (c *Client) ChangeTransition(issueKey string, transitionID int) error {
	resp, err := c.client.Issue.DoTransition(issueKey, strconv.Itoa(transitionID))
	if err != nil {
		return remoteErr("transition issue", resp, err)
	}
	return nil
}

// AddIssuesToSprint moves the given issues into a sprint as one bulk request.
// Partial-failure semantics are whatever the backend's bulk endpoint
// provides; the whole batch fails or succeeds as one outcome here.
func (c *Client) AddIssuesToSprint(sprintID int, issueKeys []string) error {
	resp, err := c.client.Sprint.MoveIssuesToSprint(sprintID, issueKeys)
	if err != nil {
		return remoteErr("add issues to sprint", resp, err)
	}
	return nil
}

// GetFirstBoard returns the ID of the first board associated with the given
// project, in backend order. A project with no boards is an EmptyResultError.
func (c *Client) GetFirstBoard(productID string) (int, error) {
	boards, resp, err := c.client.Board.GetAllBoards(&jira.BoardListOptions{
		ProjectKeyOrID: productID,
	})
	if err != nil {
		return 0, remoteErr("list boards", resp, err)
	}

	if len(boards.Values) == 0 {
		return 0, &EmptyResultError{Resource: "boards", Key: productID}
	}

	return boards.Values[0].ID, nil
}

// GetSprints returns the board's sprints filtered by the backend's state
// vocabulary ("active", "future", "closed"), in backend response order. The
// state string is not validated locally.
func (c *Client) GetSprints(boardID int, state string) ([]models.NormalizedSprint, error) {
	sprints, resp, err := c.client.Board.GetAllSprintsWithOptions(boardID, &jira.GetAllSprintsOptions{
		State: state,
	})
	if err != nil {
		return nil, remoteErr("list sprints", resp, err)
	}

	return normalizeSprints(sprints.Values), nil
}

// SearchIssues runs a JQL query with a fixed page size of 10 starting at the
// given offset, restricted to the requested fields, and returns normalized
// hits plus the backend's pagination metadata.
func (c *Client) SearchIssues(jql string, fields []string, startAt int) (*models.SearchResult, error) {
	issues, resp, err := c.client.Issue.Search(jql, &jira.SearchOptions{
		StartAt:    startAt,
		MaxResults: searchPageSize,
		Fields:     fields,
	})
	if err != nil {
		return nil, remoteErr("search issues", resp, err)
	}

	return &models.SearchResult{
		Issues:     normalizeIssues(issues),
		StartAt:    resp.StartAt,
		MaxResults: resp.MaxResults,
		Total:      resp.Total,
	}, nil
}

// backendFor resolves a source to its backend settings and env-var prefix.
func backendFor(cfg *config.Config, source Source) (config.BackendConfig, string) {
	if source == SourceB {
		return cfg.B, "JIRA_B"
	}
	return cfg.A, "JIRA_A"
}

// remoteErr wraps a failed backend call, keeping the HTTP status when the
// request got far enough to have one.
func remoteErr(op string, resp *jira.Response, err error) error {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	return &RemoteError{Op: op, StatusCode: status, Err: err}
}

// contextUserTransport stamps the acting user header onto every outbound
// request before the basic-auth layer sees it.
type contextUserTransport struct {
	user string
	base http.RoundTripper
}

func (t *contextUserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set(contextUserHeader, t.user)
	return t.base.RoundTrip(clone)
}

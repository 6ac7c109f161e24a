package tracker

import (
	"fmt"
)

// ConfigurationError reports a construction-time problem: an unrecognized
// backend selector, a missing acting user, or incomplete backend settings.
// No facade is returned alongside it.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// ValidationError reports a draft field required by the selected backend's
// mapping that the caller left empty. Raised before any network call.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: missing required draft field %q", e.Field)
}

// RemoteError reports a request the backend rejected: permission, not-found,
// malformed payload, illegal transition, or a bad search query. StatusCode is
// zero when the failure happened below HTTP (transport fault).
type RemoteError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("jira %s failed (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("jira %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// EmptyResultError reports a backend collection that was expected to be
// non-empty, such as the board list behind a first-board lookup.
type EmptyResultError struct {
	Resource string
	Key      string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no %s found for %q", e.Resource, e.Key)
}

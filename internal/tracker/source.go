package tracker

import (
	"fmt"
)

// Source selects which of the two configured Jira deployments a facade talks
// to. It is fixed at construction; a facade never switches backends later.
type Source string

const (
	// SourceA is the deployment where projects map one-to-one onto products.
	SourceA Source = "a"
	// SourceB is the deployment where all tickets land in one fixed project
	// and carry user-story custom fields.
	SourceB Source = "b"
)

// ParseSource maps a raw selector string onto a recognized Source.
func ParseSource(raw string) (Source, error) {
	switch Source(raw) {
	case SourceA:
		return SourceA, nil
	case SourceB:
		return SourceB, nil
	}
	return "", &ConfigurationError{Reason: fmt.Sprintf("invalid source: %q", raw)}
}

// internal/errors/errors.go
package errors

import "fmt"

// ErrUserNotFound is returned when the GitHub API reports that the
// requested username does not exist.
type ErrUserNotFound struct {
	Username string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("github user %q not found", e.Username)
}

// ErrRateLimited is returned when the GitHub API or the AI gateway rejects
// a request because a rate limit was exceeded.
type ErrRateLimited struct {
	Source string
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("%s rate limit exceeded, try again later", e.Source)
}

// ErrGateway is returned when the AI gateway responds with an unexpected
// status or an unparseable body.
type ErrGateway struct {
	StatusCode int
	Detail     string
}

func (e *ErrGateway) Error() string {
	return fmt.Sprintf("ai gateway error (status %d): %s", e.StatusCode, e.Detail)
}

// ErrInvalidInput is returned by the analysis input-validation boundary when
// upstream data is malformed in a way the aggregation guards cannot absorb.
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

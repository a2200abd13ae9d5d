package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources: unknown
	// ticker, no qualifying filing, absent summary row.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks a third-party call that failed or returned a
	// non-success status.
	ErrUpstream = errors.New("upstream failure")
	// ErrConflict marks a duplicate-key insert. Losing a placeholder race
	// means someone else is already generating, not an application error.
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)

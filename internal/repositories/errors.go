package repositories

import "errors"

var (
	// ErrNotFound is returned when the requested user or message does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique constraint (username, email) is violated.
	ErrConflict = errors.New("record already exists")

	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
)

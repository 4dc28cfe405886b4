package services

import (
	"errors"
)

var (
	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrForeignKeyViolation is returned when the referenced client does not exist.
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrInvalidArgument is returned for malformed input, such as a
	// non-positive file size or an unknown message type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTransition is returned for an illegal message status change,
	// including no-op self-transitions.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrLinkExpired is returned when a document is accessed after its
	// share link lapsed.
	ErrLinkExpired = errors.New("share link expired")

	// ErrRateLimited is returned when a client exceeds the daily message limit.
	ErrRateLimited = errors.New("daily message limit reached")

	// ErrTimeout is returned when a contended write could not be applied
	// within the configured lock-wait bound.
	ErrTimeout = errors.New("lock wait timeout")
)

// errWriteConflict signals a lost optimistic-concurrency race inside a
// transaction. It never escapes the retry loop.
var errWriteConflict = errors.New("write conflict")

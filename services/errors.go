// Package services holds the business logic: validation, calorie derivation,
// persistence orchestration and progress aggregation. Controllers translate
// the error taxonomy below into HTTP statuses.
package services

import "errors"

var (
	// ErrNotFound covers both truly absent records and records owned by a
	// different user, so cross-user probes cannot distinguish the two.
	ErrNotFound = errors.New("record not found")

	// ErrBadCredentials is returned for unknown emails and wrong passwords
	// alike; the message must not reveal which one failed.
	ErrBadCredentials = errors.New("Invalid email or password")

	// ErrEmailTaken is the generic duplicate-registration error, regardless
	// of whether the pre-check or the unique index caught it.
	ErrEmailTaken = errors.New("A user with this email already exists")

	// ErrGoalsNotSet signals a user who has never saved goals (the client
	// treats this as "new user, show setup").
	ErrGoalsNotSet = errors.New("Goals not found")
)

// ValidationError is a malformed or out-of-range input. The message is safe
// to show to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(message string) error {
	return &ValidationError{Message: message}
}

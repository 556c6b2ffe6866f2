package models

import "errors"

// Domain-level sentinel errors for business logic
// These errors should not contain HTTP-specific information

var (
	// ErrSessionNotFound indicates that a session with the given ID does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrUserNotFound indicates that a user with the given ID does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrQuestionNotFound indicates that a question with the given ID does not exist
	ErrQuestionNotFound = errors.New("question not found")

	// ErrForbidden indicates that the caller is not the authorized party for
	// the attempted transition or mutation
	ErrForbidden = errors.New("caller is not authorized for this operation")

	// ErrInvalidState indicates a transition attempted from a session status
	// that does not permit it
	ErrInvalidState = errors.New("session status does not permit this transition")

	// ErrInvalidMentor indicates the referenced mentor does not exist, is not
	// role mentor, or is not approved
	ErrInvalidMentor = errors.New("invalid or unapproved mentor")

	// ErrMissingField indicates a required input is absent
	ErrMissingField = errors.New("required field is missing")

	// ErrActiveSessionExists indicates the single-active-session invariant
	// would be violated for the mentee or the mentor
	ErrActiveSessionExists = errors.New("active session already exists")

	// ErrEmailTaken indicates a registration attempt with an email that is
	// already in use
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid email or password")
)

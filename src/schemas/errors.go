package schemas

import (
	"errors"
	"fmt"
	"net/http"

	"mentorship-service/src/models"
)

// ErrorResponse represents a standard API error (RFC 7807).
// It implements the standard Go error interface.
type ErrorResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"` // HTTP Status Code
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

// Error implements the error interface.
// This allows ErrorResponse to be returned as a standard Go error.
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// NewErrorResponse creates a general ErrorResponse.
func NewErrorResponse(status int, title, detail, instance string) *ErrorResponse {
	return &ErrorResponse{
		Type:     fmt.Sprintf("https://mentorship-service.com/errors/%d", status),
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: instance,
	}
}

// --- Helper Constructors for Common HTTP Errors ---

// NewBadRequestError creates a 400 Bad Request error.
func NewBadRequestError(detail, instance string) *ErrorResponse {
	return NewErrorResponse(http.StatusBadRequest, "Bad Request", detail, instance)
}

// NewUnauthorizedError creates a 401 Unauthorized error.
func NewUnauthorizedError(detail, instance string) *ErrorResponse {
	return NewErrorResponse(http.StatusUnauthorized, "Unauthorized", detail, instance)
}

// NewForbiddenError creates a 403 Forbidden error.
func NewForbiddenError(detail, instance string) *ErrorResponse {
	return NewErrorResponse(http.StatusForbidden, "Forbidden", detail, instance)
}

// NewNotFoundError creates a 404 Not Found error.
func NewNotFoundError(detail, instance string) *ErrorResponse {
	return NewErrorResponse(http.StatusNotFound, "Not Found", detail, instance)
}

// NewConflictError creates a 409 Conflict error.
func NewConflictError(detail, instance string) *ErrorResponse {
	return NewErrorResponse(http.StatusConflict, "Conflict", detail, instance)
}

// NewInternalError creates a 500 Internal Server Error.
// Note: Be careful not to expose sensitive technical details in production.
func NewInternalError(detail, instance string) *ErrorResponse {
	return NewErrorResponse(http.StatusInternalServerError, "Internal Server Error", detail, instance)
}

// --- Domain-Specific Error Constructors ---

// InvalidStateError creates a 409 Conflict error for a transition attempted
// from a session status that does not permit it. The distinct type URL lets
// the client tell "wrong state" from "conflicting active session".
func InvalidStateError(detail, instance string) *ErrorResponse {
	return &ErrorResponse{
		Type:     "https://mentorship-service.com/errors/invalid-session-state",
		Title:    "Invalid Session State",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: instance,
	}
}

// ActiveSessionConflictError creates a 409 Conflict error for a violation of
// the single-active-session invariant.
func ActiveSessionConflictError(detail, instance string) *ErrorResponse {
	return &ErrorResponse{
		Type:     "https://mentorship-service.com/errors/active-session-conflict",
		Title:    "Active Session Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: instance,
	}
}

// InvalidMentorError creates a 400 Bad Request error for a session request
// that targets a missing, non-mentor, or unapproved user.
func InvalidMentorError(detail, instance string) *ErrorResponse {
	return &ErrorResponse{
		Type:     "https://mentorship-service.com/errors/invalid-mentor",
		Title:    "Invalid Mentor",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: instance,
	}
}

// FromDomainError maps a domain sentinel error to its client-facing
// ErrorResponse. Every error kind keeps a distinct shape so the UI can
// disambiguate without parsing detail text.
func FromDomainError(err error, instance string) *ErrorResponse {
	switch {
	case errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrQuestionNotFound):
		return NewNotFoundError(err.Error(), instance)
	case errors.Is(err, models.ErrForbidden):
		return NewForbiddenError(err.Error(), instance)
	case errors.Is(err, models.ErrInvalidState):
		return InvalidStateError(err.Error(), instance)
	case errors.Is(err, models.ErrInvalidMentor):
		return InvalidMentorError(err.Error(), instance)
	case errors.Is(err, models.ErrMissingField):
		return NewBadRequestError(err.Error(), instance)
	case errors.Is(err, models.ErrActiveSessionExists):
		return ActiveSessionConflictError(err.Error(), instance)
	case errors.Is(err, models.ErrEmailTaken):
		return NewConflictError(err.Error(), instance)
	case errors.Is(err, models.ErrInvalidCredentials):
		return NewUnauthorizedError(err.Error(), instance)
	default:
		return NewInternalError(err.Error(), instance)
	}
}

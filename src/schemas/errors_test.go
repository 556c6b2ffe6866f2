package schemas

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"mentorship-service/src/models"
)

func TestFromDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"session not found", models.ErrSessionNotFound, http.StatusNotFound, "https://mentorship-service.com/errors/404"},
		{"user not found", models.ErrUserNotFound, http.StatusNotFound, "https://mentorship-service.com/errors/404"},
		{"forbidden", models.ErrForbidden, http.StatusForbidden, "https://mentorship-service.com/errors/403"},
		{"invalid state", models.ErrInvalidState, http.StatusConflict, "https://mentorship-service.com/errors/invalid-session-state"},
		{"active session conflict", models.ErrActiveSessionExists, http.StatusConflict, "https://mentorship-service.com/errors/active-session-conflict"},
		{"invalid mentor", models.ErrInvalidMentor, http.StatusBadRequest, "https://mentorship-service.com/errors/invalid-mentor"},
		{"missing field", models.ErrMissingField, http.StatusBadRequest, "https://mentorship-service.com/errors/400"},
		{"email taken", models.ErrEmailTaken, http.StatusConflict, "https://mentorship-service.com/errors/409"},
		{"invalid credentials", models.ErrInvalidCredentials, http.StatusUnauthorized, "https://mentorship-service.com/errors/401"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "https://mentorship-service.com/errors/500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := FromDomainError(tc.err, "/api/sessions/123/accept")
			assert.Equal(t, tc.wantStatus, resp.Status)
			assert.Equal(t, tc.wantType, resp.Type)
			assert.Equal(t, "/api/sessions/123/accept", resp.Instance)
		})
	}
}

func TestConflictKindsAreDistinguishable(t *testing.T) {
	wrongState := FromDomainError(models.ErrInvalidState, "/x")
	activeConflict := FromDomainError(models.ErrActiveSessionExists, "/x")

	assert.Equal(t, wrongState.Status, activeConflict.Status)
	assert.NotEqual(t, wrongState.Type, activeConflict.Type)
}

func TestErrorResponseImplementsError(t *testing.T) {
	var err error = NewNotFoundError("session not found", "/api/sessions/123")
	assert.Contains(t, err.Error(), "Not Found")
	assert.Contains(t, err.Error(), "session not found")
}

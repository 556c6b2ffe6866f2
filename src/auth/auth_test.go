package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorship-service/src/models"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	user := &models.User{ID: "user-1", Role: models.RoleMentor}

	token, err := GenerateJWT("secret", user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "mentor", claims.Role)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret", &models.User{ID: "user-1", Role: models.RoleMentee})
	require.NoError(t, err)

	_, err = ValidateJWT("other-secret", token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("secret", "not.a.token")
	assert.Error(t, err)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mentorship-service/src/auth"
	"mentorship-service/src/models"
	"mentorship-service/src/schemas"
)

// Context keys populated by AuthRequired.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthRequired validates the Bearer token and injects the caller's identity
// into the request context.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header missing")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortUnauthorized(c, "Authorization header must be a Bearer token")
			return
		}

		claims, err := auth.ValidateJWT(jwtSecret, tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set. Must
// run after AuthRequired.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(ContextRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			schemas.NewForbiddenError("insufficient role for this operation", c.FullPath()))
	}
}

// CallerID returns the authenticated user's ID from the request context.
func CallerID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// CallerRole returns the authenticated user's role from the request context.
func CallerRole(c *gin.Context) models.UserRole {
	return models.UserRole(c.GetString(ContextRole))
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		schemas.NewUnauthorizedError(detail, c.FullPath()))
}

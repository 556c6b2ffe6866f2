package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/models"
	"mentorship-service/src/schemas"
	"mentorship-service/src/service"
)

type AuthController struct {
	Service *service.AuthService
	Logger  *logrus.Logger
}

func NewAuthController(svc *service.AuthService, logger *logrus.Logger) *AuthController {
	return &AuthController{
		Service: svc,
		Logger:  logger,
	}
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var req schemas.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ac.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), c.FullPath()))
		return
	}

	user, token, err := ac.Service.Register(c.Request.Context(),
		req.Email, req.Password, req.FirstName, req.LastName, models.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			respondError(c, ac.Logger, schemas.NewConflictError("Email is already registered", c.FullPath()))
			return
		}
		respondDomainError(c, ac.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, schemas.AuthResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req schemas.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ac.Logger, schemas.NewBadRequestError("Email and password are required", c.FullPath()))
		return
	}

	user, token, err := ac.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			respondError(c, ac.Logger, schemas.NewUnauthorizedError("Invalid email or password", c.FullPath()))
			return
		}
		respondDomainError(c, ac.Logger, err)
		return
	}

	c.JSON(http.StatusOK, schemas.AuthResponse{Token: token, User: user})
}

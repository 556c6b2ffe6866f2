package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"mentorship-service/src/auth"
	"mentorship-service/src/models"
)

// AccountStore is the persistence surface for account management.
type AccountStore interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, profile models.Profile) error
}

// AuthService handles registration and login. Mentors register unapproved
// and stay invisible to mentees until an admin approves them.
type AuthService struct {
	users     AccountStore
	jwtSecret string
}

func NewAuthService(users AccountStore, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// Register creates an account and returns it with a signed token. Only
// mentee and mentor roles may self-register; admins are seeded out of band.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string, role models.UserRole) (*models.User, string, error) {
	if role != models.RoleMentee && role != models.RoleMentor {
		return nil, "", models.ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		Approved:  role == models.RoleMentee,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateJWT(s.jwtSecret, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(s.jwtSecret, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

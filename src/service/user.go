package service

import (
	"context"

	"mentorship-service/src/models"
)

// DirectoryStore is the listing surface for the user directory.
type DirectoryStore interface {
	AccountStore
	ListStudents(ctx context.Context, search string, limit, offset int) ([]models.StudentSummary, int, error)
	ListMentors(ctx context.Context, courseID string, limit, offset int) ([]models.MentorSummary, error)
}

// UserService handles profile reads and updates and the directory listings.
type UserService struct {
	users DirectoryStore
}

func NewUserService(users DirectoryStore) *UserService {
	return &UserService{
		users: users,
	}
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile merges the supplied fields into the user's profile. Only
// the profile owner or an admin may update it.
func (s *UserService) UpdateProfile(ctx context.Context, id, callerID string, callerRole models.UserRole, bio *string, courses []string) (*models.User, error) {
	if callerID != id && callerRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	if bio != nil {
		profile.Bio = *bio
	}
	if courses != nil {
		profile.Courses = courses
	}

	if err := s.users.UpdateProfile(ctx, id, profile); err != nil {
		return nil, err
	}
	user.Profile = profile
	return user, nil
}

// SetPhotoURL records the user's profile photo URL; an empty URL clears it.
// Only the profile owner or an admin may change it.
func (s *UserService) SetPhotoURL(ctx context.Context, id, callerID string, callerRole models.UserRole, photoURL string) (*models.User, error) {
	if callerID != id && callerRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	profile.PhotoURL = photoURL

	if err := s.users.UpdateProfile(ctx, id, profile); err != nil {
		return nil, err
	}
	user.Profile = profile
	return user, nil
}

// Students returns the student directory with pagination.
func (s *UserService) Students(ctx context.Context, search string, limit, offset int) ([]models.StudentSummary, int, error) {
	return s.users.ListStudents(ctx, search, limit, offset)
}

// Mentors returns approved mentors ordered by completed sessions,
// optionally restricted to a course.
func (s *UserService) Mentors(ctx context.Context, courseID string, limit, offset int) ([]models.MentorSummary, error) {
	return s.users.ListMentors(ctx, courseID, limit, offset)
}

package service

import (
	"context"
	"fmt"

	"mentorship-service/src/models"
)

// AdminStore is the persistence surface for moderation and dashboard stats.
type AdminStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role models.UserRole, approved *bool) (int, error)
	ListPendingMentors(ctx context.Context) ([]models.User, error)
}

// SessionCounter exposes the session total for dashboard stats.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	Mentors        int `json:"mentors"`
	Mentees        int `json:"mentees"`
	PendingMentors int `json:"pendingMentors"`
	Sessions       int `json:"sessions"`
}

// AdminService handles mentor moderation and dashboard stats.
type AdminService struct {
	users    AdminStore
	sessions SessionCounter
}

func NewAdminService(users AdminStore, sessions SessionCounter) *AdminService {
	return &AdminService{
		users:    users,
		sessions: sessions,
	}
}

// Stats returns the dashboard counters.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	mentors, err := s.users.CountByRole(ctx, models.RoleMentor, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count mentors: %w", err)
	}
	mentees, err := s.users.CountByRole(ctx, models.RoleMentee, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count mentees: %w", err)
	}
	notApproved := false
	pending, err := s.users.CountByRole(ctx, models.RoleMentor, &notApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending mentors: %w", err)
	}
	sessions, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	return &DashboardStats{
		Mentors:        mentors,
		Mentees:        mentees,
		PendingMentors: pending,
		Sessions:       sessions,
	}, nil
}

// PendingMentors returns unapproved mentor applications.
func (s *AdminService) PendingMentors(ctx context.Context) ([]models.User, error) {
	return s.users.ListPendingMentors(ctx)
}

// ReviewMentor approves or rejects a mentor application. Rejection deletes
// the user account so it leaves the pending list; it never touches
// sessions.
func (s *AdminService) ReviewMentor(ctx context.Context, id string, approved bool) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role != models.RoleMentor {
		return models.ErrInvalidMentor
	}

	if approved {
		return s.users.Approve(ctx, id)
	}
	return s.users.Delete(ctx, id)
}

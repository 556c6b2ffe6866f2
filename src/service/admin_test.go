package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorship-service/src/models"
)

type fakeAdminStore struct {
	users    map[string]*models.User
	approved []string
	deleted  []string
	counts   map[string]int
}

func (f *fakeAdminStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeAdminStore) Approve(ctx context.Context, id string) error {
	f.approved = append(f.approved, id)
	return nil
}

func (f *fakeAdminStore) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAdminStore) CountByRole(ctx context.Context, role models.UserRole, approved *bool) (int, error) {
	key := string(role)
	if approved != nil && !*approved {
		key += ":pending"
	}
	return f.counts[key], nil
}

func (f *fakeAdminStore) ListPendingMentors(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.RoleMentor && !u.Approved {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeSessionCounter struct {
	total int
}

func (f *fakeSessionCounter) Count(ctx context.Context) (int, error) {
	return f.total, nil
}

func TestDashboardStats(t *testing.T) {
	store := &fakeAdminStore{counts: map[string]int{
		"mentor":         12,
		"mentee":         80,
		"mentor:pending": 3,
	}}
	svc := NewAdminService(store, &fakeSessionCounter{total: 241})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Mentors)
	assert.Equal(t, 80, stats.Mentees)
	assert.Equal(t, 3, stats.PendingMentors)
	assert.Equal(t, 241, stats.Sessions)
}

func TestReviewMentorApprove(t *testing.T) {
	store := &fakeAdminStore{users: map[string]*models.User{
		"mentor-1": {ID: "mentor-1", Role: models.RoleMentor, Approved: false},
	}}
	svc := NewAdminService(store, &fakeSessionCounter{})

	require.NoError(t, svc.ReviewMentor(context.Background(), "mentor-1", true))
	assert.Equal(t, []string{"mentor-1"}, store.approved)
	assert.Empty(t, store.deleted)
}

func TestReviewMentorReject(t *testing.T) {
	store := &fakeAdminStore{users: map[string]*models.User{
		"mentor-1": {ID: "mentor-1", Role: models.RoleMentor, Approved: false},
	}}
	svc := NewAdminService(store, &fakeSessionCounter{})

	require.NoError(t, svc.ReviewMentor(context.Background(), "mentor-1", false))
	assert.Equal(t, []string{"mentor-1"}, store.deleted)
	assert.Empty(t, store.approved)
}

func TestReviewMentorRejectsNonMentor(t *testing.T) {
	store := &fakeAdminStore{users: map[string]*models.User{
		"mentee-1": {ID: "mentee-1", Role: models.RoleMentee, Approved: true},
	}}
	svc := NewAdminService(store, &fakeSessionCounter{})

	assert.ErrorIs(t, svc.ReviewMentor(context.Background(), "mentee-1", true), models.ErrInvalidMentor)
	assert.ErrorIs(t, svc.ReviewMentor(context.Background(), "ghost", true), models.ErrUserNotFound)
}

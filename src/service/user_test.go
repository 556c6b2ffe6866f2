package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorship-service/src/models"
)

type fakeDirectoryStore struct {
	fakeAccountStore
	profiles map[string]models.Profile
}

func newFakeDirectoryStore() *fakeDirectoryStore {
	return &fakeDirectoryStore{
		fakeAccountStore: fakeAccountStore{byEmail: make(map[string]*models.User)},
		profiles:         make(map[string]models.Profile),
	}
}

func (f *fakeDirectoryStore) UpdateProfile(ctx context.Context, id string, profile models.Profile) error {
	f.profiles[id] = profile
	return nil
}

func (f *fakeDirectoryStore) ListStudents(ctx context.Context, search string, limit, offset int) ([]models.StudentSummary, int, error) {
	return nil, 0, nil
}

func (f *fakeDirectoryStore) ListMentors(ctx context.Context, courseID string, limit, offset int) ([]models.MentorSummary, error) {
	return nil, nil
}

func (f *fakeDirectoryStore) seed(u *models.User) *models.User {
	created, _ := f.Create(context.Background(), u)
	return created
}

func TestUpdateProfileOwner(t *testing.T) {
	store := newFakeDirectoryStore()
	user := store.seed(&models.User{Email: "alice@example.com", Role: models.RoleMentee})
	svc := NewUserService(store)

	bio := "Learning Angular"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, user.ID, models.RoleMentee, &bio, []string{"course-1"})
	require.NoError(t, err)
	assert.Equal(t, "Learning Angular", updated.Profile.Bio)
	assert.Equal(t, []string{"course-1"}, updated.Profile.Courses)
	assert.Equal(t, "Learning Angular", store.profiles[user.ID].Bio)
}

func TestUpdateProfileRejectsOtherUser(t *testing.T) {
	store := newFakeDirectoryStore()
	user := store.seed(&models.User{Email: "alice@example.com", Role: models.RoleMentee})
	svc := NewUserService(store)

	bio := "hijacked"
	_, err := svc.UpdateProfile(context.Background(), user.ID, "someone-else", models.RoleMentee, &bio, nil)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateProfileAllowsAdmin(t *testing.T) {
	store := newFakeDirectoryStore()
	user := store.seed(&models.User{Email: "alice@example.com", Role: models.RoleMentee})
	svc := NewUserService(store)

	bio := "moderated"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, "admin-1", models.RoleAdmin, &bio, nil)
	require.NoError(t, err)
	assert.Equal(t, "moderated", updated.Profile.Bio)
}

func TestUpdateProfilePreservesUnsetFields(t *testing.T) {
	store := newFakeDirectoryStore()
	user := store.seed(&models.User{
		Email:   "alice@example.com",
		Role:    models.RoleMentee,
		Profile: models.Profile{Bio: "original", Courses: []string{"course-1"}},
	})
	svc := NewUserService(store)

	updated, err := svc.UpdateProfile(context.Background(), user.ID, user.ID, models.RoleMentee, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Profile.Bio)
	assert.Equal(t, []string{"course-1"}, updated.Profile.Courses)
}

func TestSetPhotoURL(t *testing.T) {
	store := newFakeDirectoryStore()
	user := store.seed(&models.User{Email: "alice@example.com", Role: models.RoleMentee})
	svc := NewUserService(store)

	updated, err := svc.SetPhotoURL(context.Background(), user.ID, user.ID, models.RoleMentee, "/uploads/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", updated.Profile.PhotoURL)

	cleared, err := svc.SetPhotoURL(context.Background(), user.ID, user.ID, models.RoleMentee, "")
	require.NoError(t, err)
	assert.Empty(t, cleared.Profile.PhotoURL)
}

func TestSetPhotoURLRejectsOtherUser(t *testing.T) {
	store := newFakeDirectoryStore()
	user := store.seed(&models.User{Email: "alice@example.com", Role: models.RoleMentee})
	svc := NewUserService(store)

	_, err := svc.SetPhotoURL(context.Background(), user.ID, "someone-else", models.RoleMentor, "/uploads/x.png")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

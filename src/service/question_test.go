package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorship-service/src/models"
	"mentorship-service/src/repository"
)

type fakeQuestionStore struct {
	questions map[string]*models.Question
	nextID    int
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{questions: make(map[string]*models.Question)}
}

func (f *fakeQuestionStore) add(q *models.Question) *models.Question {
	if q.ID == "" {
		f.nextID++
		q.ID = fmt.Sprintf("q-%d", f.nextID)
	}
	if q.Status == "" {
		q.Status = models.QuestionOpen
	}
	f.questions[q.ID] = q
	return q
}

func (f *fakeQuestionStore) Create(ctx context.Context, menteeID, title, description string, courseID *string, tags []string, priority models.QuestionPriority) (*models.Question, error) {
	return f.add(&models.Question{
		MenteeID:    menteeID,
		Title:       title,
		Description: description,
		CourseID:    courseID,
		Tags:        tags,
		Priority:    priority,
		Status:      models.QuestionOpen,
	}), nil
}

func (f *fakeQuestionStore) GetByID(ctx context.Context, id string) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, models.ErrQuestionNotFound
	}
	copied := *q
	return &copied, nil
}

func (f *fakeQuestionStore) List(ctx context.Context, filter repository.QuestionFilter) ([]models.QuestionDetail, error) {
	var out []models.QuestionDetail
	for _, q := range f.questions {
		out = append(out, models.QuestionDetail{Question: *q})
	}
	return out, nil
}

func (f *fakeQuestionStore) Update(ctx context.Context, id string, u repository.QuestionUpdate) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, models.ErrQuestionNotFound
	}
	if u.Title != nil {
		q.Title = *u.Title
	}
	if u.Description != nil {
		q.Description = *u.Description
	}
	copied := *q
	return &copied, nil
}

func (f *fakeQuestionStore) MarkAnswered(ctx context.Context, id string) error {
	q, ok := f.questions[id]
	if !ok {
		return models.ErrQuestionNotFound
	}
	q.Status = models.QuestionAnswered
	return nil
}

func (f *fakeQuestionStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.questions[id]; !ok {
		return models.ErrQuestionNotFound
	}
	delete(f.questions, id)
	return nil
}

type fakeMentorDirectory struct {
	users   map[string]*models.User
	mentors []models.User
}

func (f *fakeMentorDirectory) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeMentorDirectory) ListMentorsForCourse(ctx context.Context, courseID string) ([]models.User, error) {
	return f.mentors, nil
}

type fakeCourseCatalog struct {
	names map[string]string
}

func (f *fakeCourseCatalog) GetName(ctx context.Context, id string) (string, error) {
	return f.names[id], nil
}

func newQuestionTestService(questions *fakeQuestionStore, users *fakeMentorDirectory, sessions *fakeSessionStore, notifier *recordingNotifier) *QuestionService {
	return NewQuestionService(questions, users, &fakeCourseCatalog{names: map[string]string{"course-1": "Angular Basics"}}, sessions, notifier)
}

func TestCreateQuestionFansOutToMentors(t *testing.T) {
	users := &fakeMentorDirectory{mentors: []models.User{
		{ID: "mentor-1", Role: models.RoleMentor, Approved: true},
		{ID: "mentor-2", Role: models.RoleMentor, Approved: true},
	}}
	notifier := &recordingNotifier{}
	svc := newQuestionTestService(newFakeQuestionStore(), users, newFakeSessionStore(), notifier)

	courseID := "course-1"
	question, err := svc.Create(context.Background(), "mentee-1", "How do observables work?", "", &courseID, []string{"rxjs"}, "")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, question.Priority)
	assert.Equal(t, models.QuestionOpen, question.Status)

	require.Len(t, notifier.delivered, 2)
	assert.Equal(t, models.NotifyNewQuestion, notifier.delivered[0].Type)
	assert.Contains(t, notifier.delivered[0].Title, "Angular Basics")
}

func TestCreateQuestionWithoutCourseSkipsFanOut(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newQuestionTestService(newFakeQuestionStore(), &fakeMentorDirectory{}, newFakeSessionStore(), notifier)

	_, err := svc.Create(context.Background(), "mentee-1", "General question", "", nil, nil, models.PriorityHigh)
	require.NoError(t, err)
	assert.Empty(t, notifier.delivered)
}

func TestAnswerQuestion(t *testing.T) {
	questions := newFakeQuestionStore()
	question := questions.add(&models.Question{MenteeID: "mentee-1", Title: "How do observables work?"})
	users := &fakeMentorDirectory{users: map[string]*models.User{
		"mentor-1": {ID: "mentor-1", Role: models.RoleMentor, Approved: true},
	}}
	notifier := &recordingNotifier{}
	svc := newQuestionTestService(questions, users, newFakeSessionStore(), notifier)

	sessionID, err := svc.Answer(context.Background(), question.ID, "mentor-1", "Subscribe to them.", false)
	require.NoError(t, err)
	assert.Nil(t, sessionID)
	assert.Equal(t, models.QuestionAnswered, questions.questions[question.ID].Status)

	require.Len(t, notifier.delivered, 1)
	assert.Equal(t, "mentee-1", notifier.delivered[0].UserID)
	assert.Equal(t, models.NotifyQuestionAnswered, notifier.delivered[0].Type)
	assert.Equal(t, "Subscribe to them.", notifier.delivered[0].Message)
}

func TestAnswerQuestionWithSessionOffer(t *testing.T) {
	questions := newFakeQuestionStore()
	courseID := "course-1"
	question := questions.add(&models.Question{MenteeID: "mentee-1", Title: "How do observables work?", CourseID: &courseID})
	users := &fakeMentorDirectory{users: map[string]*models.User{
		"mentor-1": {ID: "mentor-1", Role: models.RoleMentor, Approved: true},
	}}
	sessions := newFakeSessionStore()
	notifier := &recordingNotifier{}
	svc := newQuestionTestService(questions, users, sessions, notifier)

	sessionID, err := svc.Answer(context.Background(), question.ID, "mentor-1", "Let's walk through it.", true)
	require.NoError(t, err)
	require.NotNil(t, sessionID)

	session := sessions.sessions[*sessionID]
	require.NotNil(t, session)
	assert.Equal(t, models.StatusRequested, session.Status)
	assert.Equal(t, "mentee-1", session.MenteeID)
	assert.Equal(t, "mentor-1", session.MentorID)
	assert.Contains(t, session.Description, question.Title)

	require.Len(t, notifier.delivered, 1)
	assert.Equal(t, *sessionID, notifier.delivered[0].Data["sessionId"])
	assert.Equal(t, true, notifier.delivered[0].Data["offerSession"])
}

func TestAnswerQuestionRequiresMentor(t *testing.T) {
	questions := newFakeQuestionStore()
	question := questions.add(&models.Question{MenteeID: "mentee-1", Title: "Help"})
	users := &fakeMentorDirectory{users: map[string]*models.User{
		"mentee-2": {ID: "mentee-2", Role: models.RoleMentee, Approved: true},
	}}
	svc := newQuestionTestService(questions, users, newFakeSessionStore(), &recordingNotifier{})

	_, err := svc.Answer(context.Background(), question.ID, "mentee-2", "answer", false)
	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Equal(t, models.QuestionOpen, questions.questions[question.ID].Status)
}

func TestAnswerQuestionSwallowsNotifierFailure(t *testing.T) {
	questions := newFakeQuestionStore()
	question := questions.add(&models.Question{MenteeID: "mentee-1", Title: "Help"})
	users := &fakeMentorDirectory{users: map[string]*models.User{
		"mentor-1": {ID: "mentor-1", Role: models.RoleMentor, Approved: true},
	}}
	svc := newQuestionTestService(questions, users, newFakeSessionStore(), &recordingNotifier{err: errors.New("broker down")})

	_, err := svc.Answer(context.Background(), question.ID, "mentor-1", "answer", false)
	require.NoError(t, err)
	assert.Equal(t, models.QuestionAnswered, questions.questions[question.ID].Status)
}

func TestUpdateQuestionOwnerOnly(t *testing.T) {
	questions := newFakeQuestionStore()
	question := questions.add(&models.Question{MenteeID: "mentee-1", Title: "Old title"})
	svc := newQuestionTestService(questions, &fakeMentorDirectory{}, newFakeSessionStore(), &recordingNotifier{})

	newTitle := "New title"
	_, err := svc.Update(context.Background(), question.ID, "mentee-2", repository.QuestionUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, models.ErrForbidden)

	updated, err := svc.Update(context.Background(), question.ID, "mentee-1", repository.QuestionUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
}

func TestDeleteQuestionOwnerOnly(t *testing.T) {
	questions := newFakeQuestionStore()
	question := questions.add(&models.Question{MenteeID: "mentee-1", Title: "Help"})
	svc := newQuestionTestService(questions, &fakeMentorDirectory{}, newFakeSessionStore(), &recordingNotifier{})

	assert.ErrorIs(t, svc.Delete(context.Background(), question.ID, "mentee-2"), models.ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), question.ID, "mentee-1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), question.ID, "mentee-1"), models.ErrQuestionNotFound)
}

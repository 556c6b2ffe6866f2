package service

import (
	"context"
	"fmt"
	"log/slog"

	"mentorship-service/src/models"
	"mentorship-service/src/repository"
)

// QuestionStore is the persistence surface for questions.
type QuestionStore interface {
	Create(ctx context.Context, menteeID, title, description string, courseID *string, tags []string, priority models.QuestionPriority) (*models.Question, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	List(ctx context.Context, f repository.QuestionFilter) ([]models.QuestionDetail, error)
	Update(ctx context.Context, id string, u repository.QuestionUpdate) (*models.Question, error)
	MarkAnswered(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// MentorDirectory resolves the mentor fan-out set for question
// notifications.
type MentorDirectory interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListMentorsForCourse(ctx context.Context, courseID string) ([]models.User, error)
}

// CourseCatalog resolves course display names.
type CourseCatalog interface {
	GetName(ctx context.Context, id string) (string, error)
}

// QuestionService handles the question flow: mentees ask, mentors answer,
// and an answer may spawn a session offer in requested status.
type QuestionService struct {
	questions QuestionStore
	users     MentorDirectory
	courses   CourseCatalog
	sessions  SessionStore
	notifier  Notifier
}

func NewQuestionService(questions QuestionStore, users MentorDirectory, courses CourseCatalog, sessions SessionStore, notifier Notifier) *QuestionService {
	return &QuestionService{
		questions: questions,
		users:     users,
		courses:   courses,
		sessions:  sessions,
		notifier:  notifier,
	}
}

// Create posts a new open question and fans a notification out to the
// approved mentors who teach the course. Fan-out failures never fail the
// question itself.
func (s *QuestionService) Create(ctx context.Context, menteeID, title, description string, courseID *string, tags []string, priority models.QuestionPriority) (*models.Question, error) {
	if priority == "" {
		priority = models.PriorityMedium
	}

	question, err := s.questions.Create(ctx, menteeID, title, description, courseID, tags, priority)
	if err != nil {
		return nil, err
	}

	if courseID != nil {
		s.notifyMentors(ctx, question, *courseID)
	}
	return question, nil
}

func (s *QuestionService) notifyMentors(ctx context.Context, question *models.Question, courseID string) {
	mentors, err := s.users.ListMentorsForCourse(ctx, courseID)
	if err != nil {
		slog.Error("Failed to resolve mentors for question fan-out",
			"question_id", question.ID, "course_id", courseID, "error", err)
		return
	}

	courseName, err := s.courses.GetName(ctx, courseID)
	if err != nil || courseName == "" {
		courseName = "a course"
	}

	for _, mentor := range mentors {
		if mentor.ID == question.MenteeID {
			continue
		}
		s.dispatch(ctx, &models.Notification{
			UserID:  mentor.ID,
			Type:    models.NotifyNewQuestion,
			Title:   fmt.Sprintf("New Question in %s", courseName),
			Message: fmt.Sprintf("A new question %q has been posted in %s.", question.Title, courseName),
			Data:    map[string]any{"questionId": question.ID, "courseId": courseID},
		})
	}
}

// Get returns a question by ID.
func (s *QuestionService) Get(ctx context.Context, id string) (*models.Question, error) {
	return s.questions.GetByID(ctx, id)
}

// List returns questions matching the filter.
func (s *QuestionService) List(ctx context.Context, f repository.QuestionFilter) ([]models.QuestionDetail, error) {
	return s.questions.List(ctx, f)
}

// Update applies a partial update. Only the mentee who created the
// question may update it.
func (s *QuestionService) Update(ctx context.Context, id, callerID string, u repository.QuestionUpdate) (*models.Question, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question.MenteeID != callerID {
		return nil, models.ErrForbidden
	}
	return s.questions.Update(ctx, id, u)
}

// Delete removes a question. Only the mentee who created it may delete it.
func (s *QuestionService) Delete(ctx context.Context, id, callerID string) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question.MenteeID != callerID {
		return models.ErrForbidden
	}
	return s.questions.Delete(ctx, id)
}

// Answer records a mentor's answer: the question flips to answered, the
// mentee is notified with the answer text, and when the mentor offers a
// session a new engagement is created in requested status.
func (s *QuestionService) Answer(ctx context.Context, questionID, mentorID, answer string, offerSession bool) (*string, error) {
	mentor, err := s.users.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor.Role != models.RoleMentor {
		return nil, models.ErrForbidden
	}

	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if err := s.questions.MarkAnswered(ctx, questionID); err != nil {
		return nil, err
	}

	var sessionID *string
	if offerSession {
		session, err := s.sessions.Create(ctx, question.MenteeID, mentorID, question.CourseID,
			fmt.Sprintf("Session offered for question: %s", question.Title), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create session offer: %w", err)
		}
		sessionID = &session.ID
	}

	notificationData := map[string]any{
		"questionId":   questionID,
		"mentorId":     mentorID,
		"offerSession": offerSession,
	}
	if sessionID != nil {
		notificationData["sessionId"] = *sessionID
	}
	s.dispatch(ctx, &models.Notification{
		UserID:  question.MenteeID,
		Type:    models.NotifyQuestionAnswered,
		Title:   "Your question was answered!",
		Message: answer,
		Data:    notificationData,
	})

	return sessionID, nil
}

func (s *QuestionService) dispatch(ctx context.Context, n *models.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		slog.Error("Failed to deliver notification",
			"user_id", n.UserID,
			"type", n.Type,
			"error", err)
	}
}

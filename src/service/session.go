package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mentorship-service/src/models"
)

// SessionStore is the persistence surface the lifecycle logic needs. The
// Accept and Complete transitions are atomic in the store: the status check
// and the single-active-session invariant are evaluated inside one
// conditional write, never as a separate read followed by a write.
type SessionStore interface {
	Create(ctx context.Context, menteeID, mentorID string, courseID *string, description string, preferredTime *time.Time) (*models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	HasActiveSession(ctx context.Context, userID string) (bool, error)
	Accept(ctx context.Context, id, mentorID string, scheduledTime time.Time) error
	Complete(ctx context.Context, id, summary string, duration int, endedAt time.Time) error
	ListActive(ctx context.Context, userID string) ([]models.SessionDetail, error)
	ListCompleted(ctx context.Context, userID string, limit, offset int) ([]models.SessionDetail, error)
	ListPending(ctx context.Context, mentorID string) ([]models.SessionDetail, error)
}

// UserDirectory is the user lookup the lifecycle logic needs to validate
// mentors and enforce ownership.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Notifier delivers a notification to a user. Delivery is fire-and-forget
// from the lifecycle's point of view: a Notifier error is logged and
// swallowed, never failing the transition that produced it.
type Notifier interface {
	Notify(ctx context.Context, n *models.Notification) error
}

// SessionService owns the session lifecycle: the
// requested -> active -> completed state machine and the invariant that a
// user holds at most one active session at a time.
type SessionService struct {
	sessions SessionStore
	users    UserDirectory
	notifier Notifier
	now      func() time.Time
}

func NewSessionService(sessions SessionStore, users UserDirectory, notifier Notifier) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

// Request creates a session in requested status. The target must be an
// approved mentor and the mentee must not hold an active session. A mentee
// may hold any number of requested sessions; only the transition into
// active is exclusive.
func (s *SessionService) Request(ctx context.Context, menteeID, mentorID string, courseID *string, description string, preferredTime *time.Time) (*models.Session, error) {
	mentor, err := s.users.GetByID(ctx, mentorID)
	if err != nil {
		if err == models.ErrUserNotFound {
			return nil, models.ErrInvalidMentor
		}
		return nil, fmt.Errorf("failed to look up mentor: %w", err)
	}
	if mentor.Role != models.RoleMentor || !mentor.Approved {
		return nil, models.ErrInvalidMentor
	}

	active, err := s.sessions.HasActiveSession(ctx, menteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active session: %w", err)
	}
	if active {
		return nil, models.ErrActiveSessionExists
	}

	// No notification on a raw request; mentors discover requests through
	// their pending listing.
	return s.sessions.Create(ctx, menteeID, mentorID, courseID, description, preferredTime)
}

// Accept transitions a requested session to active at the supplied time.
// Only the assigned mentor may accept, and neither party may already hold
// an active session. The clock starts at the scheduled time, not at the
// moment of acceptance.
func (s *SessionService) Accept(ctx context.Context, sessionID, mentorID string, scheduledTime time.Time) error {
	if scheduledTime.IsZero() {
		return models.ErrMissingField
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !CanAccept(mentorID, session) {
		return models.ErrForbidden
	}
	if session.Status != models.StatusRequested {
		return models.ErrInvalidState
	}

	// The store re-validates status and the active-session invariant inside
	// a single conditional write; of two racing accepts exactly one wins.
	if err := s.sessions.Accept(ctx, sessionID, mentorID, scheduledTime); err != nil {
		return err
	}

	s.dispatch(ctx, &models.Notification{
		UserID:  session.MenteeID,
		Type:    models.NotifySessionScheduled,
		Title:   "Session Scheduled",
		Message: fmt.Sprintf("Your mentor has scheduled the session for %s. Please be active at that time.", scheduledTime.Format(time.RFC1123)),
		Data:    map[string]any{"sessionId": sessionID},
	})

	return nil
}

// End transitions an active session to completed. Only the mentee may end a
// session. The recorded duration is wall-clock minutes elapsed since
// startedAt, floored and never negative; the requested duration field is
// not consulted.
func (s *SessionService) End(ctx context.Context, sessionID, menteeID, summary string) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !CanEnd(menteeID, session) {
		return models.ErrForbidden
	}
	if session.Status != models.StatusActive {
		return models.ErrInvalidState
	}

	now := s.now()
	duration := elapsedMinutes(session.StartedAt, now)

	return s.sessions.Complete(ctx, sessionID, summary, duration, now)
}

// elapsedMinutes computes floor((now - startedAt) / 60s), clamped to >= 0.
// A nil startedAt counts as zero elapsed time.
func elapsedMinutes(startedAt *time.Time, now time.Time) int {
	if startedAt == nil {
		return 0
	}
	minutes := int(now.Sub(*startedAt).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

// CanAccept reports whether the caller is the authorized party for the
// accept transition.
func CanAccept(callerID string, session *models.Session) bool {
	return session != nil && session.MentorID == callerID
}

// CanEnd reports whether the caller is the authorized party for the end
// transition. Only the mentee may end a session, not the mentor, not an
// admin.
func CanEnd(callerID string, session *models.Session) bool {
	return session != nil && session.MenteeID == callerID
}

// ActiveSessions returns the caller's active sessions.
func (s *SessionService) ActiveSessions(ctx context.Context, userID string) ([]models.SessionDetail, error) {
	return s.sessions.ListActive(ctx, userID)
}

// History returns the caller's completed sessions with logged durations.
func (s *SessionService) History(ctx context.Context, userID string, limit, offset int) ([]models.SessionDetail, error) {
	return s.sessions.ListCompleted(ctx, userID, limit, offset)
}

// PendingRequests returns the requested sessions awaiting the mentor.
func (s *SessionService) PendingRequests(ctx context.Context, mentorID string) ([]models.SessionDetail, error) {
	return s.sessions.ListPending(ctx, mentorID)
}

// dispatch delivers a notification after the state change has committed.
// Failures are logged and swallowed.
func (s *SessionService) dispatch(ctx context.Context, n *models.Notification) {
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

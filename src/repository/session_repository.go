package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"mentorship-service/src/db"
	"mentorship-service/src/models"
)

// SessionRepository handles all database operations for sessions and their
// completion logs.
type SessionRepository struct {
	db *db.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(database *db.DB) *SessionRepository {
	return &SessionRepository{
		db: database,
	}
}

const sessionColumns = `id, mentee_id, mentor_id, course_id, description,
	preferred_time, scheduled_time, started_at, ended_at, status, duration,
	summary, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (*models.Session, error) {
	var s models.Session
	var courseID sql.NullString
	var preferred, scheduled, started, ended sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.MenteeID,
		&s.MentorID,
		&courseID,
		&s.Description,
		&preferred,
		&scheduled,
		&started,
		&ended,
		&s.Status,
		&s.Duration,
		&s.Summary,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if courseID.Valid {
		s.CourseID = &courseID.String
	}
	if preferred.Valid {
		s.PreferredTime = &preferred.Time
	}
	if scheduled.Valid {
		s.ScheduledTime = &scheduled.Time
	}
	if started.Valid {
		s.StartedAt = &started.Time
	}
	if ended.Valid {
		s.EndedAt = &ended.Time
	}
	return &s, nil
}

// Create inserts a new session in requested status and returns the stored row.
func (r *SessionRepository) Create(ctx context.Context, menteeID, mentorID string, courseID *string, description string, preferredTime *time.Time) (*models.Session, error) {
	query := `
		INSERT INTO sessions (mentee_id, mentor_id, course_id, description, preferred_time, status, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + sessionColumns

	row := r.db.GetConnection().QueryRowContext(ctx, query,
		menteeID, mentorID, courseID, description, preferredTime, models.StatusRequested, models.DefaultDuration)

	session, err := scanSession(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	slog.Info("Created session request",
		"session_id", session.ID,
		"mentee_id", menteeID,
		"mentor_id", mentorID)

	return session, nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	session, err := scanSession(r.db.GetConnection().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// HasActiveSession reports whether the user appears on any active session,
// as mentee or as mentor.
func (r *SessionRepository) HasActiveSession(ctx context.Context, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sessions
			WHERE (mentee_id = $1 OR mentor_id = $1) AND status = $2
		)
	`

	var exists bool
	err := r.db.GetConnection().QueryRowContext(ctx, query, userID, models.StatusActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active session: %w", err)
	}
	return exists, nil
}

// Accept transitions a requested session to active with a single conditional
// update. Two racing accepts of the same row serialize on the row lock and
// the loser fails the status check; racing accepts of different rows for the
// same party slip past the NOT EXISTS under READ COMMITTED and are rejected
// by the unique partial indexes on active sessions instead.
func (r *SessionRepository) Accept(ctx context.Context, id, mentorID string, scheduledTime time.Time) error {
	query := `
		UPDATE sessions s
		SET status = $1, scheduled_time = $2, started_at = $2, updated_at = now()
		WHERE s.id = $3
		  AND s.mentor_id = $4
		  AND s.status = $5
		  AND NOT EXISTS (
			SELECT 1 FROM sessions a
			WHERE a.status = $1
			  AND a.id <> s.id
			  AND (a.mentee_id IN (s.mentee_id, s.mentor_id)
			    OR a.mentor_id IN (s.mentee_id, s.mentor_id))
		  )
	`

	result, err := r.db.GetConnection().ExecContext(ctx, query,
		models.StatusActive, scheduledTime, id, mentorID, models.StatusRequested)
	if err != nil {
		return classifyAcceptError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return r.classifyAcceptFailure(ctx, id, mentorID)
	}

	slog.Info("Accepted session",
		"session_id", id,
		"mentor_id", mentorID,
		"scheduled_time", scheduledTime)

	return nil
}

// classifyAcceptError maps a write error from the accept statement. Under
// READ COMMITTED two accepts of different requested rows for the same party
// can both pass the NOT EXISTS check; the unique partial indexes on active
// sessions reject the loser with a unique violation, which is the same
// invariant breach as a lost conditional update.
func classifyAcceptError(err error) error {
	if isUniqueViolation(err) {
		return models.ErrActiveSessionExists
	}
	return fmt.Errorf("failed to accept session: %w", err)
}

// classifyAcceptFailure re-reads the row to report which precondition the
// conditional update lost to.
func (r *SessionRepository) classifyAcceptFailure(ctx context.Context, id, mentorID string) error {
	session, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if session.MentorID != mentorID {
		return models.ErrForbidden
	}
	if session.Status != models.StatusRequested {
		return models.ErrInvalidState
	}
	return models.ErrActiveSessionExists
}

// Complete transitions an active session to completed and appends its
// completion log in the same transaction. The duration has already been
// computed by the caller from the session's started_at.
func (r *SessionRepository) Complete(ctx context.Context, id, summary string, duration int, endedAt time.Time) error {
	tx, err := r.db.GetConnection().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE sessions
		SET status = $1, ended_at = $2, summary = $3, updated_at = $2
		WHERE id = $4 AND status = $5
		RETURNING mentee_id, mentor_id, course_id
	`

	var menteeID, mentorID string
	var courseID sql.NullString
	err = tx.QueryRowContext(ctx, query,
		models.StatusCompleted, endedAt, summary, id, models.StatusActive).
		Scan(&menteeID, &mentorID, &courseID)
	if err == sql.ErrNoRows {
		// Lost a race with another end call, or the session was never active.
		return models.ErrInvalidState
	}
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO logs (session_id, mentee_id, mentor_id, course_id, duration, date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, menteeID, mentorID, courseID, duration, endedAt)
	if err != nil {
		return fmt.Errorf("failed to append session log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session completion: %w", err)
	}

	slog.Info("Completed session",
		"session_id", id,
		"duration_minutes", duration)

	return nil
}

const sessionDetailJoin = `
	LEFT JOIN courses c ON s.course_id = c.id
	LEFT JOIN users mentee ON s.mentee_id = mentee.id
	LEFT JOIN users mentor ON s.mentor_id = mentor.id
`

const sessionDetailColumns = `
	s.id, s.mentee_id, s.mentor_id, s.course_id, s.description,
	s.preferred_time, s.scheduled_time, s.started_at, s.ended_at, s.status,
	s.duration, s.summary, s.created_at, s.updated_at,
	COALESCE(c.name, ''),
	COALESCE(mentee.first_name || ' ' || mentee.last_name, ''),
	COALESCE(mentor.first_name || ' ' || mentor.last_name, '')
`

func scanSessionDetail(rows *sql.Rows) (*models.SessionDetail, error) {
	var d models.SessionDetail
	var courseID sql.NullString
	var preferred, scheduled, started, ended sql.NullTime

	err := rows.Scan(
		&d.ID,
		&d.MenteeID,
		&d.MentorID,
		&courseID,
		&d.Description,
		&preferred,
		&scheduled,
		&started,
		&ended,
		&d.Status,
		&d.Duration,
		&d.Summary,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.CourseName,
		&d.MenteeName,
		&d.MentorName,
	)
	if err != nil {
		return nil, err
	}

	if courseID.Valid {
		d.CourseID = &courseID.String
	}
	if preferred.Valid {
		d.PreferredTime = &preferred.Time
	}
	if scheduled.Valid {
		d.ScheduledTime = &scheduled.Time
	}
	if started.Valid {
		d.StartedAt = &started.Time
	}
	if ended.Valid {
		d.EndedAt = &ended.Time
	}
	return &d, nil
}

func collectSessionDetails(rows *sql.Rows) ([]models.SessionDetail, error) {
	defer rows.Close()

	sessions := []models.SessionDetail{}
	for rows.Next() {
		detail, err := scanSessionDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, *detail)
	}
	return sessions, rows.Err()
}

// ListActive returns the active sessions the user participates in, newest
// first.
func (r *SessionRepository) ListActive(ctx context.Context, userID string) ([]models.SessionDetail, error) {
	query := `
		SELECT ` + sessionDetailColumns + `
		FROM sessions s` + sessionDetailJoin + `
		WHERE (s.mentee_id = $1 OR s.mentor_id = $1) AND s.status = $2
		ORDER BY s.started_at DESC
	`

	rows, err := r.db.GetConnection().QueryContext(ctx, query, userID, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	return collectSessionDetails(rows)
}

// ListCompleted returns the user's completed session history. Duration is
// taken from the completion log, not from the requested duration field.
func (r *SessionRepository) ListCompleted(ctx context.Context, userID string, limit, offset int) ([]models.SessionDetail, error) {
	query := `
		SELECT
			s.id, s.mentee_id, s.mentor_id, s.course_id, s.description,
			s.preferred_time, s.scheduled_time, s.started_at, s.ended_at, s.status,
			COALESCE(l.duration, s.duration), s.summary, s.created_at, s.updated_at,
			COALESCE(c.name, ''),
			COALESCE(mentee.first_name || ' ' || mentee.last_name, ''),
			COALESCE(mentor.first_name || ' ' || mentor.last_name, '')
		FROM sessions s` + sessionDetailJoin + `
		LEFT JOIN logs l ON s.id = l.session_id
		WHERE (s.mentee_id = $1 OR s.mentor_id = $1) AND s.status = $2
		ORDER BY s.ended_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.GetConnection().QueryContext(ctx, query,
		userID, models.StatusCompleted, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed sessions: %w", err)
	}
	return collectSessionDetails(rows)
}

// ListPending returns the requested sessions waiting on a mentor, newest
// first.
func (r *SessionRepository) ListPending(ctx context.Context, mentorID string) ([]models.SessionDetail, error) {
	query := `
		SELECT ` + sessionDetailColumns + `
		FROM sessions s` + sessionDetailJoin + `
		WHERE s.mentor_id = $1 AND s.status = $2
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.GetConnection().QueryContext(ctx, query, mentorID, models.StatusRequested)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending sessions: %w", err)
	}
	return collectSessionDetails(rows)
}

// Count returns the total number of sessions regardless of status.
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetConnection().QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

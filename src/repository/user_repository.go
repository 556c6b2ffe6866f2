package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"mentorship-service/src/db"
	"mentorship-service/src/models"

	"github.com/lib/pq"
)

// UserRepository handles all database operations for user accounts.
type UserRepository struct {
	db *db.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.DB) *UserRepository {
	return &UserRepository{
		db: database,
	}
}

const userColumns = `id, email, password, first_name, last_name, role, approved, profile, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	var profileRaw []byte

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.Approved,
		&profileRaw,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(profileRaw) > 0 {
		if err := json.Unmarshal(profileRaw, &u.Profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
	}
	return &u, nil
}

// Create inserts a new account and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	profileRaw, err := json.Marshal(u.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	query := `
		INSERT INTO users (email, password, first_name, last_name, role, approved, profile)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.GetConnection().QueryRowContext(ctx, query,
		u.Email, u.Password, u.FirstName, u.LastName, u.Role, u.Approved, profileRaw))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("Created user", "user_id", created.ID, "role", created.Role)
	return created, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.GetConnection().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email for login.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.GetConnection().QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateProfile replaces the user's profile document.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, profile models.Profile) error {
	profileRaw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	result, err := r.db.GetConnection().ExecContext(ctx,
		`UPDATE users SET profile = $1, updated_at = now() WHERE id = $2`,
		profileRaw, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// Approve marks a mentor application as approved.
func (r *UserRepository) Approve(ctx context.Context, id string) error {
	result, err := r.db.GetConnection().ExecContext(ctx,
		`UPDATE users SET approved = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to approve user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	slog.Info("Approved mentor", "user_id", id)
	return nil
}

// Delete removes a user. Used only for rejected mentor applications.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetConnection().ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	slog.Info("Deleted user", "user_id", id)
	return nil
}

// CountByRole returns the number of users with the given role, optionally
// restricted by approval state.
func (r *UserRepository) CountByRole(ctx context.Context, role models.UserRole, approved *bool) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = $1`
	args := []any{role}
	if approved != nil {
		query += ` AND approved = $2`
		args = append(args, *approved)
	}

	var count int
	if err := r.db.GetConnection().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// ListPendingMentors returns unapproved mentor applications, newest first.
func (r *UserRepository) ListPendingMentors(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE role = $1 AND approved = false
		ORDER BY created_at DESC`

	rows, err := r.db.GetConnection().QueryContext(ctx, query, models.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mentors: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// ListMentorsForCourse returns approved mentors whose profile lists the
// course. Used for question fan-out notifications.
func (r *UserRepository) ListMentorsForCourse(ctx context.Context, courseID string) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE role = $1 AND approved = true
		  AND (profile->'courses')::jsonb ? $2`

	rows, err := r.db.GetConnection().QueryContext(ctx, query, models.RoleMentor, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors for course: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// ListStudents returns the student directory with per-student session counts.
func (r *UserRepository) ListStudents(ctx context.Context, search string, limit, offset int) ([]models.StudentSummary, int, error) {
	where := `WHERE u.role = 'mentee'`
	args := []any{}
	if search != "" {
		where += ` AND (u.first_name ILIKE $1 OR u.last_name ILIKE $1 OR u.email ILIKE $1)`
		args = append(args, "%"+search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM users u ` + where
	var total int
	if err := r.db.GetConnection().QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.first_name, u.last_name, u.email, u.profile, u.created_at,
		       COUNT(DISTINCT s.id) AS total_sessions
		FROM users u
		LEFT JOIN sessions s ON u.id = s.mentee_id
		%s
		GROUP BY u.id, u.first_name, u.last_name, u.email, u.profile, u.created_at
		ORDER BY u.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.GetConnection().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := []models.StudentSummary{}
	for rows.Next() {
		var s models.StudentSummary
		var profileRaw []byte
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &profileRaw, &s.CreatedAt, &s.TotalSessions); err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		if len(profileRaw) > 0 {
			if err := json.Unmarshal(profileRaw, &s.Profile); err != nil {
				return nil, 0, fmt.Errorf("failed to decode profile: %w", err)
			}
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// ListMentors returns approved mentors ordered by completed-session count,
// optionally restricted to a course.
func (r *UserRepository) ListMentors(ctx context.Context, courseID string, limit, offset int) ([]models.MentorSummary, error) {
	where := `WHERE u.role = 'mentor' AND u.approved = true`
	args := []any{}
	if courseID != "" {
		where += ` AND (u.profile->'courses')::jsonb ? $1`
		args = append(args, courseID)
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.first_name, u.last_name, u.email, u.profile, u.created_at,
		       COUNT(DISTINCT s.id) AS completed_sessions
		FROM users u
		LEFT JOIN sessions s ON u.id = s.mentor_id AND s.status = 'completed'
		%s
		GROUP BY u.id, u.first_name, u.last_name, u.email, u.profile, u.created_at
		ORDER BY completed_sessions DESC, u.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.GetConnection().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	defer rows.Close()

	mentors := []models.MentorSummary{}
	for rows.Next() {
		var m models.MentorSummary
		var profileRaw []byte
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &profileRaw, &m.CreatedAt, &m.CompletedSessions); err != nil {
			return nil, fmt.Errorf("failed to scan mentor row: %w", err)
		}
		if len(profileRaw) > 0 {
			if err := json.Unmarshal(profileRaw, &m.Profile); err != nil {
				return nil, fmt.Errorf("failed to decode profile: %w", err)
			}
		}
		mentors = append(mentors, m)
	}
	return mentors, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"mentorship-service/src/db"
	"mentorship-service/src/models"

	"github.com/lib/pq"
)

// QuestionRepository handles all database operations for questions.
type QuestionRepository struct {
	db *db.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(database *db.DB) *QuestionRepository {
	return &QuestionRepository{
		db: database,
	}
}

const questionColumns = `id, mentee_id, title, description, course_id, tags, priority, status, created_at, updated_at`

func scanQuestion(row interface{ Scan(...any) error }) (*models.Question, error) {
	var q models.Question
	var courseID sql.NullString

	err := row.Scan(
		&q.ID,
		&q.MenteeID,
		&q.Title,
		&q.Description,
		&courseID,
		pq.Array(&q.Tags),
		&q.Priority,
		&q.Status,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if courseID.Valid {
		q.CourseID = &courseID.String
	}
	if q.Tags == nil {
		q.Tags = []string{}
	}
	return &q, nil
}

// Create inserts a new open question and returns the stored row.
func (r *QuestionRepository) Create(ctx context.Context, menteeID, title, description string, courseID *string, tags []string, priority models.QuestionPriority) (*models.Question, error) {
	if tags == nil {
		tags = []string{}
	}
	query := `
		INSERT INTO questions (mentee_id, title, description, course_id, tags, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + questionColumns

	question, err := scanQuestion(r.db.GetConnection().QueryRowContext(ctx, query,
		menteeID, title, description, courseID, pq.Array(tags), priority, models.QuestionOpen))
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	slog.Info("Created question", "question_id", question.ID, "mentee_id", menteeID)
	return question, nil
}

// GetByID retrieves a question by ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	question, err := scanQuestion(r.db.GetConnection().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

// QuestionFilter narrows List results. Zero values mean "no filter".
type QuestionFilter struct {
	CourseID string
	Status   string
	MenteeID string
	Tag      string
	Limit    int
	Offset   int
}

// List returns questions matching the filter, newest first, joined with the
// display fields the client renders.
func (r *QuestionRepository) List(ctx context.Context, f QuestionFilter) ([]models.QuestionDetail, error) {
	where := ``
	conditions := []string{}
	args := []any{}

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if f.CourseID != "" {
		addCondition("q.course_id = $%d", f.CourseID)
	}
	if f.Status != "" {
		addCondition("q.status = $%d", f.Status)
	}
	if f.MenteeID != "" {
		addCondition("q.mentee_id = $%d", f.MenteeID)
	}
	if f.Tag != "" {
		addCondition("$%d = ANY(q.tags)", f.Tag)
	}
	for i, c := range conditions {
		if i == 0 {
			where = "WHERE " + c
		} else {
			where += " AND " + c
		}
	}

	query := fmt.Sprintf(`
		SELECT q.id, q.mentee_id, q.title, q.description, q.course_id, q.tags,
		       q.priority, q.status, q.created_at, q.updated_at,
		       COALESCE(c.name, ''), COALESCE(u.first_name, ''), COALESCE(u.last_name, '')
		FROM questions q
		LEFT JOIN users u ON q.mentee_id = u.id
		LEFT JOIN courses c ON q.course_id = c.id
		%s
		ORDER BY q.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.GetConnection().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := []models.QuestionDetail{}
	for rows.Next() {
		var d models.QuestionDetail
		var courseID sql.NullString
		err := rows.Scan(
			&d.ID, &d.MenteeID, &d.Title, &d.Description, &courseID,
			pq.Array(&d.Tags), &d.Priority, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.CourseName, &d.MenteeFirstName, &d.MenteeLastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		if courseID.Valid {
			d.CourseID = &courseID.String
		}
		if d.Tags == nil {
			d.Tags = []string{}
		}
		questions = append(questions, d)
	}
	return questions, rows.Err()
}

// QuestionUpdate carries partial column updates; nil fields are left
// unchanged.
type QuestionUpdate struct {
	Title       *string
	Description *string
	CourseID    *string
	Tags        []string
	Priority    *string
	Status      *string
}

// Update applies a partial update and returns the stored row.
func (r *QuestionRepository) Update(ctx context.Context, id string, u QuestionUpdate) (*models.Question, error) {
	var tags any
	if u.Tags != nil {
		tags = pq.Array(u.Tags)
	}

	query := `
		UPDATE questions
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    course_id = COALESCE($3, course_id),
		    tags = COALESCE($4, tags),
		    priority = COALESCE($5, priority),
		    status = COALESCE($6, status),
		    updated_at = now()
		WHERE id = $7
		RETURNING ` + questionColumns

	question, err := scanQuestion(r.db.GetConnection().QueryRowContext(ctx, query,
		u.Title, u.Description, u.CourseID, tags, u.Priority, u.Status, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return question, nil
}

// MarkAnswered flips the question to answered.
func (r *QuestionRepository) MarkAnswered(ctx context.Context, id string) error {
	result, err := r.db.GetConnection().ExecContext(ctx,
		`UPDATE questions SET status = $1, updated_at = now() WHERE id = $2`,
		models.QuestionAnswered, id)
	if err != nil {
		return fmt.Errorf("failed to mark question answered: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrQuestionNotFound
	}
	return nil
}

// Delete removes a question.
func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetConnection().ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrQuestionNotFound
	}
	return nil
}

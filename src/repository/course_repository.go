package repository

import (
	"context"
	"database/sql"
	"fmt"

	"mentorship-service/src/db"
	"mentorship-service/src/models"
)

// CourseRepository handles read access to the course catalog.
type CourseRepository struct {
	db *db.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database *db.DB) *CourseRepository {
	return &CourseRepository{
		db: database,
	}
}

// List returns the full course catalog ordered by code.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	rows, err := r.db.GetConnection().QueryContext(ctx,
		`SELECT id, name, code, description, created_at FROM courses ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetName returns a course's display name, or "" when the course is absent.
func (r *CourseRepository) GetName(ctx context.Context, id string) (string, error) {
	var name string
	err := r.db.GetConnection().QueryRowContext(ctx,
		`SELECT name FROM courses WHERE id = $1`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get course name: %w", err)
	}
	return name, nil
}

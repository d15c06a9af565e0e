package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"courses-api/internal/entities"
)

// ErrCourseNotFound is returned when no course row matches the lookup
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository defines the interface for course database operations
type CourseRepository interface {
	// FindAll returns courses with their owner joined in. A nil id matches
	// all rows; an unmatched id yields an empty slice, not an error.
	FindAll(id *int64) ([]*entities.Course, error)
	FindByID(id int64) (*entities.Course, error)
	Create(course *entities.Course) (*entities.Course, error)
	Update(course *entities.Course) error
	Delete(id int64) error
}

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) CourseRepository {
	return &courseRepository{db: db}
}

// FindAll returns all courses, or the single matching course when id is set,
// each with the owning user's public columns joined in
func (r *courseRepository) FindAll(id *int64) ([]*entities.Course, error) {
	query := `
		SELECT c.id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
		       u.id, u.first_name, u.last_name, u.email_address
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE $1::bigint IS NULL OR c.id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := []*entities.Course{}
	for rows.Next() {
		var course entities.Course
		var owner entities.User
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.EstimatedTime,
			&course.MaterialsNeeded,
			&course.UserID,
			&owner.ID,
			&owner.FirstName,
			&owner.LastName,
			&owner.EmailAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		course.Owner = &owner
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return courses, nil
}

// FindByID finds a course by ID (without the owner join)
func (r *courseRepository) FindByID(id int64) (*entities.Course, error) {
	query := `
		SELECT id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course entities.Course
	err := r.db.QueryRow(query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}

	return &course, nil
}

// Create inserts a new course into the database
func (r *courseRepository) Create(course *entities.Course) (*entities.Course, error) {
	query := `
		INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
		course.UserID,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// Update persists the course's mutable fields. The owner column is never
// touched: ownership is immutable after creation.
func (r *courseRepository) Update(course *entities.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, estimated_time = $3, materials_needed = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := r.db.Exec(
		query,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by ID
func (r *courseRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"courses-api/internal/entities"
)

var (
	// ErrUserNotFound is returned when no user row matches the lookup
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert hits the unique index on
	// email_address. Callers translate it into a validation violation so that
	// storage-detected and locally-detected violations look the same.
	ErrDuplicateEmail = errors.New("email address already exists")
)

// uniqueViolation is the PostgreSQL error code for unique_violation
const uniqueViolation = "23505"

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(firstName, lastName, emailAddress, passwordHash string) (*entities.User, error)
	FindByEmail(emailAddress string) (*entities.User, error)
	FindByID(id int64) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(firstName, lastName, emailAddress, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, email_address, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, first_name, last_name, email_address, password_hash, created_at, updated_at
	`

	var user entities.User
	err := r.db.QueryRow(query, firstName, lastName, emailAddress, passwordHash).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.EmailAddress,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByEmail finds a user by email address (case-exact match, as stored)
func (r *userRepository) FindByEmail(emailAddress string) (*entities.User, error) {
	query := `
		SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
		FROM users
		WHERE email_address = $1
	`
	return r.scanUser(r.db.QueryRow(query, emailAddress))
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(id int64) (*entities.User, error) {
	query := `
		SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(query, id))
}

func (r *userRepository) scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.EmailAddress,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

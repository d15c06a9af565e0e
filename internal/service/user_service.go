package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"courses-api/internal/entities"
	"courses-api/internal/models"
	"courses-api/internal/repository"
)

// ErrInvalidCredentials is returned for every authentication failure: missing
// credentials, unknown email address, or wrong password. Callers must not be
// able to tell the cases apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService defines the interface for user business logic
type UserService interface {
	// Register validates the request, hashes the password, and creates the
	// user. Validation failures (including a duplicate email address) come
	// back as *validation.Violations.
	Register(req *models.CreateUserRequest) (*entities.User, error)
	// Authenticate looks up a user by email address and verifies the
	// password against the stored hash.
	Authenticate(emailAddress, password string) (*entities.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new user account
func (s *userService) Register(req *models.CreateUserRequest) (*entities.User, error) {
	if violations := validateUser(req); violations != nil {
		return nil, violations
	}

	// Hashing is an explicit step before persistence; the plaintext is never
	// stored or echoed back
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(*req.FirstName, *req.LastName, *req.EmailAddress, string(hashedPassword))
	if err != nil {
		// The unique index is the authority on duplicates; its rejection is
		// reported in the same shape as locally-detected violations
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, duplicateEmailViolation()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies credentials and returns the matched user
func (s *userService) Authenticate(emailAddress, password string) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(emailAddress)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

package models

import "courses-api/internal/entities"

// UserResponse is the public projection of a user: never includes the
// password hash or storage timestamps.
type UserResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// NewUserResponse converts a user entity to its public projection
func NewUserResponse(user *entities.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
}

package entities

import "time"

// Course represents a course row in the database
type Course struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   *string   `json:"estimatedTime,omitempty"`   // Pointer allows nil (optional)
	MaterialsNeeded *string   `json:"materialsNeeded,omitempty"` // Pointer allows nil (optional)
	UserID          int64     `json:"userId"`                    // Owning user, set at creation and never changed
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Owner is populated by list queries that join the users table.
	Owner *User `json:"-"`
}

package models

import "courses-api/internal/entities"

// CourseResponse is the public projection of a course: no storage timestamps,
// owner embedded as its public projection.
type CourseResponse struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   *string       `json:"estimatedTime"`
	MaterialsNeeded *string       `json:"materialsNeeded"`
	UserID          int64         `json:"userId"`
	User            *UserResponse `json:"user,omitempty"`
}

// CourseListResponse wraps course results for list endpoints
type CourseListResponse struct {
	Courses []*CourseResponse `json:"courses"`
}

// NewCourseResponse converts a course entity to its public projection
func NewCourseResponse(course *entities.Course) *CourseResponse {
	resp := &CourseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          course.UserID,
	}
	if course.Owner != nil {
		resp.User = NewUserResponse(course.Owner)
	}
	return resp
}

package models

// SaveCourseRequest represents the request body for creating or updating a
// course. Title and Description are pointers to distinguish missing keys from
// empty strings; on update, missing keys keep their stored values. Any owner
// field in the body is ignored: the owner is always the authenticated user.
type SaveCourseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

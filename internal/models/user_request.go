package models

// CreateUserRequest represents the request body for creating a user account.
// Fields are pointers so that missing keys can be told apart from empty strings
// and reported with the right validation message.
type CreateUserRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	EmailAddress *string `json:"emailAddress"`
	Password     *string `json:"password"`
}

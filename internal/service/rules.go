package service

import (
	"courses-api/internal/models"
	"courses-api/internal/validation"
)

// Field rules for users and courses. Fields are declared in the order their
// messages should appear; every failing rule is reported.

func validateUser(req *models.CreateUserRequest) *validation.Violations {
	return validation.Check([]validation.StringField{
		{
			Value:       req.FirstName,
			RequiredMsg: "A first name is required",
			EmptyMsg:    "Please provide your first name",
		},
		{
			Value:       req.LastName,
			RequiredMsg: "A last name is required",
			EmptyMsg:    "Please provide your last name",
		},
		{
			Value:       req.EmailAddress,
			RequiredMsg: "An email address is required",
			EmptyMsg:    "Please provide an email address",
			EmailMsg:    "Please provide a valid email address",
		},
		{
			Value:       req.Password,
			RequiredMsg: "A password is required",
			EmptyMsg:    "Please provide a password",
		},
	})
}

func duplicateEmailViolation() *validation.Violations {
	v := &validation.Violations{}
	v.Add("The email address entered already exists")
	return v
}

func validateCourse(title, description *string) *validation.Violations {
	return validation.Check([]validation.StringField{
		{
			Value:       title,
			RequiredMsg: "A course title is required",
			EmptyMsg:    "Please provide a course title",
		},
		{
			Value:       description,
			RequiredMsg: "A course description is required",
			EmptyMsg:    "Please provide a course description",
		},
	})
}

package validation

import (
	"regexp"
	"strings"

	"github.com/blog-cms-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Error represents a single validation error
type Error struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Message folds a list of errors into one client-facing string that names
// every offending field.
func Message(errs []Error) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// ValidatePostCreate validates the body of POST /posts
func ValidatePostCreate(in *models.CreatePostInput) []Error {
	var errors []Error

	if in.Title == nil {
		errors = append(errors, Error{Field: "title", Message: "title is required"})
	}
	if in.Content == nil {
		errors = append(errors, Error{Field: "content", Message: "content is required"})
	}
	if in.MainImage == nil {
		errors = append(errors, Error{Field: "mainImage", Message: "mainImage is required"})
	}

	return errors
}

// ValidateCommentCreate validates the body of POST /comments
func ValidateCommentCreate(in *models.CreateCommentInput) []Error {
	var errors []Error

	if in.Text == nil {
		errors = append(errors, Error{Field: "text", Message: "text is required"})
	}
	if in.PostID == nil {
		errors = append(errors, Error{Field: "postId", Message: "postId is required"})
	}
	if in.AuthorID == nil {
		errors = append(errors, Error{Field: "authorId", Message: "authorId is required"})
	}

	return errors
}

// ValidateAuthorCreate validates the body of POST /authors
func ValidateAuthorCreate(in *models.CreateAuthorInput) []Error {
	var errors []Error

	if in.FirstName == nil {
		errors = append(errors, Error{Field: "firstName", Message: "firstName is required"})
	}
	if in.LastName == nil {
		errors = append(errors, Error{Field: "lastName", Message: "lastName is required"})
	}
	if in.Email == nil {
		errors = append(errors, Error{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(*in.Email) {
		errors = append(errors, Error{Field: "email", Message: "invalid email format", Value: *in.Email})
	}

	return errors
}

// ValidateAuthorUpdate validates the body of PUT /authors/:id. Every field
// is optional, but a supplied email must still be well formed.
func ValidateAuthorUpdate(in *models.UpdateAuthorInput) []Error {
	var errors []Error

	if in.Email != nil && !emailRegex.MatchString(*in.Email) {
		errors = append(errors, Error{Field: "email", Message: "invalid email format", Value: *in.Email})
	}

	return errors
}

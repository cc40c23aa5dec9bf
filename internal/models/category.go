package models

import (
	"time"
)

// Category represents a post category
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateCategoryInput carries the client-supplied fields for a new category.
type CreateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateCategoryInput is the partial field set for a category update.
type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

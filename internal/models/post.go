package models

import (
	"time"
)

// Post represents a blog post
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	MainImage  string    `json:"mainImage"`
	CategoryID string    `json:"categoryId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreatePostInput carries the client-supplied fields for a new post.
// Fields are pointers so validation can tell a missing field from an
// empty one.
type CreatePostInput struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	MainImage  *string `json:"mainImage"`
	CategoryID *string `json:"categoryId"`
}

// UpdatePostInput is the partial field set for a post update. Nil
// means "leave unchanged".
type UpdatePostInput struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	MainImage  *string `json:"mainImage"`
	CategoryID *string `json:"categoryId"`
}

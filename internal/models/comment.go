package models

import (
	"time"
)

// Comment represents a threaded comment on a post. PostID, AuthorID and
// ParentCommentID are soft references: nothing checks the target exists.
type Comment struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	PostID          string    `json:"postId"`
	AuthorID        string    `json:"authorId"`
	ParentCommentID string    `json:"parentCommentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreateCommentInput carries the client-supplied fields for a new comment.
type CreateCommentInput struct {
	Text            *string `json:"text"`
	PostID          *string `json:"postId"`
	AuthorID        *string `json:"authorId"`
	ParentCommentID *string `json:"parentCommentId"`
}

// UpdateCommentInput is the partial field set for a comment update.
type UpdateCommentInput struct {
	Text            *string `json:"text"`
	PostID          *string `json:"postId"`
	AuthorID        *string `json:"authorId"`
	ParentCommentID *string `json:"parentCommentId"`
}

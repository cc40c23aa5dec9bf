package store

import (
	"github.com/blog-cms-api/internal/models"
)

// commentStore is the in-memory implementation of CommentStore
type commentStore struct {
	c *collection[models.Comment]
}

// NewCommentStore creates an empty comment store
func NewCommentStore() CommentStore {
	return &commentStore{c: newCollection[models.Comment]()}
}

// Create assigns the next id to comment and stores it
func (s *commentStore) Create(comment models.Comment) models.Comment {
	return s.c.insert(func(id string) models.Comment {
		comment.ID = id
		return comment
	})
}

func (s *commentStore) GetByID(id string) (models.Comment, error) {
	return s.c.get(id)
}

func (s *commentStore) GetAll() []models.Comment {
	return s.c.all()
}

// GetByPostID returns the comments left on the given post
func (s *commentStore) GetByPostID(postID string) []models.Comment {
	return s.c.filter(func(c models.Comment) bool {
		return c.PostID == postID
	})
}

// GetByAuthorID returns the comments written by the given author
func (s *commentStore) GetByAuthorID(authorID string) []models.Comment {
	return s.c.filter(func(c models.Comment) bool {
		return c.AuthorID == authorID
	})
}

func (s *commentStore) Replace(id string, comment models.Comment) bool {
	return s.c.replace(id, comment)
}

func (s *commentStore) Delete(id string) bool {
	return s.c.delete(id)
}

func (s *commentStore) Count() int {
	return s.c.count()
}

package store

import (
	"github.com/blog-cms-api/internal/models"
)

// postStore is the in-memory implementation of PostStore
type postStore struct {
	c *collection[models.Post]
}

// NewPostStore creates an empty post store
func NewPostStore() PostStore {
	return &postStore{c: newCollection[models.Post]()}
}

// Create assigns the next id to post and stores it
func (s *postStore) Create(post models.Post) models.Post {
	return s.c.insert(func(id string) models.Post {
		post.ID = id
		return post
	})
}

func (s *postStore) GetByID(id string) (models.Post, error) {
	return s.c.get(id)
}

func (s *postStore) GetAll() []models.Post {
	return s.c.all()
}

// GetByCategory returns the posts whose categoryId equals categoryID.
// The reference is soft: an id no category carries simply matches nothing.
func (s *postStore) GetByCategory(categoryID string) []models.Post {
	return s.c.filter(func(p models.Post) bool {
		return p.CategoryID == categoryID
	})
}

func (s *postStore) Replace(id string, post models.Post) bool {
	return s.c.replace(id, post)
}

func (s *postStore) Delete(id string) bool {
	return s.c.delete(id)
}

func (s *postStore) Count() int {
	return s.c.count()
}

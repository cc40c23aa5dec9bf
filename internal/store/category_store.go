package store

import (
	"github.com/blog-cms-api/internal/models"
)

// categoryStore is the in-memory implementation of CategoryStore
type categoryStore struct {
	c *collection[models.Category]
}

// NewCategoryStore creates an empty category store
func NewCategoryStore() CategoryStore {
	return &categoryStore{c: newCollection[models.Category]()}
}

// Create assigns the next id to category and stores it
func (s *categoryStore) Create(category models.Category) models.Category {
	return s.c.insert(func(id string) models.Category {
		category.ID = id
		return category
	})
}

func (s *categoryStore) GetByID(id string) (models.Category, error) {
	return s.c.get(id)
}

func (s *categoryStore) GetAll() []models.Category {
	return s.c.all()
}

func (s *categoryStore) Replace(id string, category models.Category) bool {
	return s.c.replace(id, category)
}

func (s *categoryStore) Delete(id string) bool {
	return s.c.delete(id)
}

func (s *categoryStore) Count() int {
	return s.c.count()
}

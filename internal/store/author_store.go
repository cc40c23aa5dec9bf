package store

import (
	"github.com/blog-cms-api/internal/models"
)

// authorStore is the in-memory implementation of AuthorStore
type authorStore struct {
	c *collection[models.Author]
}

// NewAuthorStore creates an empty author store
func NewAuthorStore() AuthorStore {
	return &authorStore{c: newCollection[models.Author]()}
}

// Create assigns the next id to author and stores it
func (s *authorStore) Create(author models.Author) models.Author {
	return s.c.insert(func(id string) models.Author {
		author.ID = id
		return author
	})
}

func (s *authorStore) GetByID(id string) (models.Author, error) {
	return s.c.get(id)
}

func (s *authorStore) GetAll() []models.Author {
	return s.c.all()
}

// GetByEmail returns the first author stored with the given email, in
// insertion order. Emails are not unique, so later duplicates are shadowed.
func (s *authorStore) GetByEmail(email string) (models.Author, error) {
	matches := s.c.filter(func(a models.Author) bool {
		return a.Email == email
	})
	if len(matches) == 0 {
		return models.Author{}, ErrNotFound
	}
	return matches[0], nil
}

func (s *authorStore) Replace(id string, author models.Author) bool {
	return s.c.replace(id, author)
}

func (s *authorStore) Delete(id string) bool {
	return s.c.delete(id)
}

func (s *authorStore) Count() int {
	return s.c.count()
}

package service

import (
	"time"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/store"
	"github.com/rs/zerolog"
)

// categoryService is the concrete implementation of CategoryService
type categoryService struct {
	store store.CategoryStore
	log   zerolog.Logger
	now   func() time.Time
}

// newCategoryService creates a new CategoryService
func newCategoryService(s store.CategoryStore, log zerolog.Logger) *categoryService {
	return &categoryService{
		store: s,
		log:   log.With().Str("service", "category").Logger(),
		now:   time.Now,
	}
}

func (s *categoryService) Create(input models.CreateCategoryInput) models.Category {
	now := s.now()
	category := s.store.Create(models.Category{
		Name:        deref(input.Name),
		Description: deref(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	s.log.Debug().Str("id", category.ID).Msg("category created")
	return category
}

func (s *categoryService) FindAll() []models.Category {
	return s.store.GetAll()
}

func (s *categoryService) FindOne(id string) (models.Category, error) {
	return s.store.GetByID(id)
}

func (s *categoryService) Update(id string, input models.UpdateCategoryInput) (models.Category, error) {
	category, err := s.store.GetByID(id)
	if err != nil {
		return models.Category{}, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	category.UpdatedAt = s.now()

	if !s.store.Replace(id, category) {
		return models.Category{}, store.ErrNotFound
	}

	s.log.Debug().Str("id", id).Msg("category updated")
	return category, nil
}

func (s *categoryService) Remove(id string) bool {
	removed := s.store.Delete(id)
	if removed {
		s.log.Debug().Str("id", id).Msg("category removed")
	}
	return removed
}

package service

import (
	"time"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/store"
	"github.com/rs/zerolog"
)

// authorService is the concrete implementation of AuthorService
type authorService struct {
	store store.AuthorStore
	log   zerolog.Logger
	now   func() time.Time
}

// newAuthorService creates a new AuthorService
func newAuthorService(s store.AuthorStore, log zerolog.Logger) *authorService {
	return &authorService{
		store: s,
		log:   log.With().Str("service", "author").Logger(),
		now:   time.Now,
	}
}

func (s *authorService) Create(input models.CreateAuthorInput) models.Author {
	now := s.now()
	author := s.store.Create(models.Author{
		FirstName:    deref(input.FirstName),
		LastName:     deref(input.LastName),
		Email:        deref(input.Email),
		Bio:          deref(input.Bio),
		ProfileImage: deref(input.ProfileImage),
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	s.log.Debug().Str("id", author.ID).Msg("author created")
	return author
}

func (s *authorService) FindAll() []models.Author {
	return s.store.GetAll()
}

func (s *authorService) FindOne(id string) (models.Author, error) {
	return s.store.GetByID(id)
}

func (s *authorService) FindByEmail(email string) (models.Author, error) {
	return s.store.GetByEmail(email)
}

func (s *authorService) Update(id string, input models.UpdateAuthorInput) (models.Author, error) {
	author, err := s.store.GetByID(id)
	if err != nil {
		return models.Author{}, err
	}

	if input.FirstName != nil {
		author.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		author.LastName = *input.LastName
	}
	if input.Email != nil {
		author.Email = *input.Email
	}
	if input.Bio != nil {
		author.Bio = *input.Bio
	}
	if input.ProfileImage != nil {
		author.ProfileImage = *input.ProfileImage
	}
	author.UpdatedAt = s.now()

	if !s.store.Replace(id, author) {
		return models.Author{}, store.ErrNotFound
	}

	s.log.Debug().Str("id", id).Msg("author updated")
	return author, nil
}

func (s *authorService) Remove(id string) bool {
	removed := s.store.Delete(id)
	if removed {
		s.log.Debug().Str("id", id).Msg("author removed")
	}
	return removed
}

package service

import (
	"time"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/store"
	"github.com/rs/zerolog"
)

// postService is the concrete implementation of PostService
type postService struct {
	store store.PostStore
	log   zerolog.Logger
	now   func() time.Time
}

// newPostService creates a new PostService
func newPostService(s store.PostStore, log zerolog.Logger) *postService {
	return &postService{
		store: s,
		log:   log.With().Str("service", "post").Logger(),
		now:   time.Now,
	}
}

// Create builds a post from input, stamps both timestamps with the same
// instant, and stores it. Creation never fails.
func (s *postService) Create(input models.CreatePostInput) models.Post {
	now := s.now()
	post := s.store.Create(models.Post{
		Title:      deref(input.Title),
		Content:    deref(input.Content),
		MainImage:  deref(input.MainImage),
		CategoryID: deref(input.CategoryID),
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	s.log.Debug().Str("id", post.ID).Msg("post created")
	return post
}

func (s *postService) FindAll() []models.Post {
	return s.store.GetAll()
}

func (s *postService) FindOne(id string) (models.Post, error) {
	return s.store.GetByID(id)
}

func (s *postService) FindByCategory(categoryID string) []models.Post {
	return s.store.GetByCategory(categoryID)
}

// Update shallow-merges the supplied fields over the stored record. Id and
// createdAt are not part of the input and can never change; updatedAt is
// refreshed. Returns store.ErrNotFound without mutating anything when the
// id is absent.
func (s *postService) Update(id string, input models.UpdatePostInput) (models.Post, error) {
	post, err := s.store.GetByID(id)
	if err != nil {
		return models.Post{}, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.MainImage != nil {
		post.MainImage = *input.MainImage
	}
	if input.CategoryID != nil {
		post.CategoryID = *input.CategoryID
	}
	post.UpdatedAt = s.now()

	if !s.store.Replace(id, post) {
		return models.Post{}, store.ErrNotFound
	}

	s.log.Debug().Str("id", id).Msg("post updated")
	return post, nil
}

func (s *postService) Remove(id string) bool {
	removed := s.store.Delete(id)
	if removed {
		s.log.Debug().Str("id", id).Msg("post removed")
	}
	return removed
}

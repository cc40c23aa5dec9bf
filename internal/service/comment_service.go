package service

import (
	"time"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/store"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	store store.CommentStore
	log   zerolog.Logger
	now   func() time.Time
}

// newCommentService creates a new CommentService
func newCommentService(s store.CommentStore, log zerolog.Logger) *commentService {
	return &commentService{
		store: s,
		log:   log.With().Str("service", "comment").Logger(),
		now:   time.Now,
	}
}

// Create stores a new comment. postId, authorId and parentCommentId are
// taken as given; dangling references are tolerated and reply chains are
// not checked for cycles.
func (s *commentService) Create(input models.CreateCommentInput) models.Comment {
	now := s.now()
	comment := s.store.Create(models.Comment{
		Text:            deref(input.Text),
		PostID:          deref(input.PostID),
		AuthorID:        deref(input.AuthorID),
		ParentCommentID: deref(input.ParentCommentID),
		CreatedAt:       now,
		UpdatedAt:       now,
	})

	s.log.Debug().Str("id", comment.ID).Str("post_id", comment.PostID).Msg("comment created")
	return comment
}

func (s *commentService) FindAll() []models.Comment {
	return s.store.GetAll()
}

func (s *commentService) FindOne(id string) (models.Comment, error) {
	return s.store.GetByID(id)
}

func (s *commentService) FindByPostID(postID string) []models.Comment {
	return s.store.GetByPostID(postID)
}

func (s *commentService) FindByAuthorID(authorID string) []models.Comment {
	return s.store.GetByAuthorID(authorID)
}

func (s *commentService) Update(id string, input models.UpdateCommentInput) (models.Comment, error) {
	comment, err := s.store.GetByID(id)
	if err != nil {
		return models.Comment{}, err
	}

	if input.Text != nil {
		comment.Text = *input.Text
	}
	if input.PostID != nil {
		comment.PostID = *input.PostID
	}
	if input.AuthorID != nil {
		comment.AuthorID = *input.AuthorID
	}
	if input.ParentCommentID != nil {
		comment.ParentCommentID = *input.ParentCommentID
	}
	comment.UpdatedAt = s.now()

	if !s.store.Replace(id, comment) {
		return models.Comment{}, store.ErrNotFound
	}

	s.log.Debug().Str("id", id).Msg("comment updated")
	return comment, nil
}

func (s *commentService) Remove(id string) bool {
	removed := s.store.Delete(id)
	if removed {
		s.log.Debug().Str("id", id).Msg("comment removed")
	}
	return removed
}

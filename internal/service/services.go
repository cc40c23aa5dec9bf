package service

import (
	"github.com/blog-cms-api/internal/config"
	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/store"
	"github.com/rs/zerolog"
)

// PostService defines the interface for post operations
type PostService interface {
	Create(input models.CreatePostInput) models.Post
	FindAll() []models.Post
	FindOne(id string) (models.Post, error)
	FindByCategory(categoryID string) []models.Post
	Update(id string, input models.UpdatePostInput) (models.Post, error)
	Remove(id string) bool
}

// CategoryService defines the interface for category operations
type CategoryService interface {
	Create(input models.CreateCategoryInput) models.Category
	FindAll() []models.Category
	FindOne(id string) (models.Category, error)
	Update(id string, input models.UpdateCategoryInput) (models.Category, error)
	Remove(id string) bool
}

// CommentService defines the interface for comment operations
type CommentService interface {
	Create(input models.CreateCommentInput) models.Comment
	FindAll() []models.Comment
	FindOne(id string) (models.Comment, error)
	FindByPostID(postID string) []models.Comment
	FindByAuthorID(authorID string) []models.Comment
	Update(id string, input models.UpdateCommentInput) (models.Comment, error)
	Remove(id string) bool
}

// AuthorService defines the interface for author operations
type AuthorService interface {
	Create(input models.CreateAuthorInput) models.Author
	FindAll() []models.Author
	FindOne(id string) (models.Author, error)
	FindByEmail(email string) (models.Author, error)
	Update(id string, input models.UpdateAuthorInput) (models.Author, error)
	Remove(id string) bool
}

// AuthService defines the interface for credential checks and tokens
type AuthService interface {
	ValidateUser(username, password string) (models.AuthUser, bool)
	Login(user models.AuthUser) (models.LoginResult, error)
	ValidateToken(token string) (map[string]interface{}, bool)
}

// Services holds all service interfaces
type Services struct {
	Post     PostService
	Category CategoryService
	Comment  CommentService
	Author   AuthorService
	Auth     AuthService
}

// NewServices creates all services over the given stores
func NewServices(stores *store.Stores, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Post:     newPostService(stores.Post, log),
		Category: newCategoryService(stores.Category, log),
		Comment:  newCommentService(stores.Comment, log),
		Author:   newAuthorService(stores.Author, log),
		Auth:     newAuthService(&cfg.Auth, log),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package store

import (
	"errors"

	"github.com/blog-cms-api/internal/models"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("record not found")

// PostStore defines the interface for post data operations
type PostStore interface {
	Create(post models.Post) models.Post
	GetByID(id string) (models.Post, error)
	GetAll() []models.Post
	GetByCategory(categoryID string) []models.Post
	Replace(id string, post models.Post) bool
	Delete(id string) bool
	Count() int
}

// CategoryStore defines the interface for category data operations
type CategoryStore interface {
	Create(category models.Category) models.Category
	GetByID(id string) (models.Category, error)
	GetAll() []models.Category
	Replace(id string, category models.Category) bool
	Delete(id string) bool
	Count() int
}

// CommentStore defines the interface for comment data operations
type CommentStore interface {
	Create(comment models.Comment) models.Comment
	GetByID(id string) (models.Comment, error)
	GetAll() []models.Comment
	GetByPostID(postID string) []models.Comment
	GetByAuthorID(authorID string) []models.Comment
	Replace(id string, comment models.Comment) bool
	Delete(id string) bool
	Count() int
}

// AuthorStore defines the interface for author data operations
type AuthorStore interface {
	Create(author models.Author) models.Author
	GetByID(id string) (models.Author, error)
	GetAll() []models.Author
	GetByEmail(email string) (models.Author, error)
	Replace(id string, author models.Author) bool
	Delete(id string) bool
	Count() int
}

// Stores holds one store per entity type. Each store exclusively owns its
// mapping and id counter; nothing else mutates them.
type Stores struct {
	Post     PostStore
	Category CategoryStore
	Comment  CommentStore
	Author   AuthorStore
}

// New creates the full set of empty in-memory stores
func New() *Stores {
	return &Stores{
		Post:     NewPostStore(),
		Category: NewCategoryStore(),
		Comment:  NewCommentStore(),
		Author:   NewAuthorStore(),
	}
}

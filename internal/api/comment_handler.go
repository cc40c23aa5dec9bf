package api

import (
	"net/http"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/service"
	"github.com/blog-cms-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Create handles POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var in models.CreateCommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := validation.ValidateCommentCreate(&in); len(errs) > 0 {
		respondError(c, http.StatusBadRequest, validation.Message(errs))
		return
	}

	respondCreated(c, h.services.Comment.Create(in))
}

// FindAll handles GET /comments with optional postId and authorId filters.
// postId wins when both are supplied.
func (h *CommentHandler) FindAll(c *gin.Context) {
	var comments []models.Comment
	if postID := c.Query("postId"); postID != "" {
		comments = h.services.Comment.FindByPostID(postID)
	} else if authorID := c.Query("authorId"); authorID != "" {
		comments = h.services.Comment.FindByAuthorID(authorID)
	} else {
		comments = h.services.Comment.FindAll()
	}
	respondOK(c, comments)
}

// FindOne handles GET /comments/:id
func (h *CommentHandler) FindOne(c *gin.Context) {
	comment, err := h.services.Comment.FindOne(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Comment")
		return
	}
	respondOK(c, comment)
}

// Update handles PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var in models.UpdateCommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.services.Comment.Update(c.Param("id"), in)
	if err != nil {
		respondNotFound(c, "Comment")
		return
	}
	respondOK(c, comment)
}

// Remove handles DELETE /comments/:id
func (h *CommentHandler) Remove(c *gin.Context) {
	if !h.services.Comment.Remove(c.Param("id")) {
		respondNotFound(c, "Comment")
		return
	}
	respondMessage(c, "Comment deleted")
}

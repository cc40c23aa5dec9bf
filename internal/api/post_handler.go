package api

import (
	"net/http"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/service"
	"github.com/blog-cms-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PostHandler handles post endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	var in models.CreatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := validation.ValidatePostCreate(&in); len(errs) > 0 {
		respondError(c, http.StatusBadRequest, validation.Message(errs))
		return
	}

	respondCreated(c, h.services.Post.Create(in))
}

// FindAll handles GET /posts
func (h *PostHandler) FindAll(c *gin.Context) {
	respondOK(c, h.services.Post.FindAll())
}

// FindOne handles GET /posts/:id
func (h *PostHandler) FindOne(c *gin.Context) {
	post, err := h.services.Post.FindOne(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Post")
		return
	}
	respondOK(c, post)
}

// Update handles PUT /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var in models.UpdatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.services.Post.Update(c.Param("id"), in)
	if err != nil {
		respondNotFound(c, "Post")
		return
	}
	respondOK(c, post)
}

// Remove handles DELETE /posts/:id
func (h *PostHandler) Remove(c *gin.Context) {
	if !h.services.Post.Remove(c.Param("id")) {
		respondNotFound(c, "Post")
		return
	}
	respondMessage(c, "Post deleted")
}

// FindByCategory handles GET /posts/category/:categoryId
func (h *PostHandler) FindByCategory(c *gin.Context) {
	respondOK(c, h.services.Post.FindByCategory(c.Param("categoryId")))
}

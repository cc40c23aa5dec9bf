package api

import (
	"net/http"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/service"
	"github.com/blog-cms-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthorHandler handles author endpoints
type AuthorHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(services *service.Services, log zerolog.Logger) *AuthorHandler {
	return &AuthorHandler{
		services: services,
		log:      log.With().Str("handler", "author").Logger(),
	}
}

// Create handles POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var in models.CreateAuthorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := validation.ValidateAuthorCreate(&in); len(errs) > 0 {
		respondError(c, http.StatusBadRequest, validation.Message(errs))
		return
	}

	respondCreated(c, h.services.Author.Create(in))
}

// FindAll handles GET /authors with an optional email filter. The filter
// yields a list of zero or one authors.
func (h *AuthorHandler) FindAll(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		authors := []models.Author{}
		if author, err := h.services.Author.FindByEmail(email); err == nil {
			authors = append(authors, author)
		}
		respondOK(c, authors)
		return
	}
	respondOK(c, h.services.Author.FindAll())
}

// FindOne handles GET /authors/:id
func (h *AuthorHandler) FindOne(c *gin.Context) {
	author, err := h.services.Author.FindOne(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Author")
		return
	}
	respondOK(c, author)
}

// Update handles PUT /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	var in models.UpdateAuthorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if errs := validation.ValidateAuthorUpdate(&in); len(errs) > 0 {
		respondError(c, http.StatusBadRequest, validation.Message(errs))
		return
	}

	author, err := h.services.Author.Update(c.Param("id"), in)
	if err != nil {
		respondNotFound(c, "Author")
		return
	}
	respondOK(c, author)
}

// Remove handles DELETE /authors/:id
func (h *AuthorHandler) Remove(c *gin.Context) {
	if !h.services.Author.Remove(c.Param("id")) {
		respondNotFound(c, "Author")
		return
	}
	respondMessage(c, "Author deleted")
}

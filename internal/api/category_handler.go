package api

import (
	"net/http"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CategoryHandler handles category endpoints. Categories carry no field
// validation beyond the global unknown-field rejection: a create with no
// name stores an empty one.
type CategoryHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(services *service.Services, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		services: services,
		log:      log.With().Str("handler", "category").Logger(),
	}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var in models.CreateCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondCreated(c, h.services.Category.Create(in))
}

// FindAll handles GET /categories
func (h *CategoryHandler) FindAll(c *gin.Context) {
	respondOK(c, h.services.Category.FindAll())
}

// FindOne handles GET /categories/:id
func (h *CategoryHandler) FindOne(c *gin.Context) {
	category, err := h.services.Category.FindOne(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Category")
		return
	}
	respondOK(c, category)
}

// Update handles PUT /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var in models.UpdateCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.services.Category.Update(c.Param("id"), in)
	if err != nil {
		respondNotFound(c, "Category")
		return
	}
	respondOK(c, category)
}

// Remove handles DELETE /categories/:id
func (h *CategoryHandler) Remove(c *gin.Context) {
	if !h.services.Category.Remove(c.Param("id")) {
		respondNotFound(c, "Category")
		return
	}
	respondMessage(c, "Category deleted")
}

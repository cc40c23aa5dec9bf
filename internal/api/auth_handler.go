package api

import (
	"net/http"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles auth endpoints
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in models.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := h.services.Auth.ValidateUser(in.Username, in.Password)
	if !ok {
		// One generic message for wrong username and wrong password alike
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	result, err := h.services.Auth.Login(user)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to issue token")
		respondError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	respondOK(c, result)
}

// Verify handles POST /auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var in models.VerifyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	payload, ok := h.services.Auth.ValidateToken(in.Token)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	respondOK(c, payload)
}

package api

import (
	"errors"
	"net/http"

	"github.com/blog-backend-api/internal/service"
	"github.com/blog-backend-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SessionHandler handles login requests
type SessionHandler struct {
	services *service.Services
	logger   zerolog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(services *service.Services, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{services: services, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a session token
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "dataMiddleware-1001", validation.BindingDetail(err))
		return
	}

	token, err := h.services.Auth.Login(c.Request.Context(), req.Username, req.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "indexApi-1000", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to create session")
		respondError(c, http.StatusInternalServerError, "indexApi-1001", err)
		return
	}

	respondSuccess(c, http.StatusAccepted, "indexApi-1000", gin.H{"token": token})
}

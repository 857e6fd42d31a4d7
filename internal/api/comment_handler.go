package api

import (
	"errors"
	"net/http"

	"github.com/blog-backend-api/internal/service"
	"github.com/blog-backend-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment requests
type CommentHandler struct {
	services *service.Services
	logger   zerolog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(services *service.Services, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{services: services, logger: logger}
}

type createCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Context  string `json:"context" binding:"required"`
}

type updateCommentRequest struct {
	Context string `json:"context" binding:"required"`
}

// Create adds a comment to a live article
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "dataMiddleware-1001", validation.BindingDetail(err))
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), c.Param("articleId"), service.CreateCommentInput{
		Username: req.Username,
		Email:    req.Email,
		Context:  req.Context,
	})
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusBadRequest, "articleApi-1003", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to create comment")
		respondError(c, http.StatusInternalServerError, "commentApi-1000", err)
		return
	}

	respondSuccess(c, http.StatusCreated, "commentApi-1000", comment)
}

// List returns the live comments of an article
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.services.Comment.ListByArticle(c.Request.Context(), c.Param("articleId"), validation.ParseListQuery(c))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusBadRequest, "articleApi-1003", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to list comments")
		respondError(c, http.StatusInternalServerError, "commentApi-1001", err)
		return
	}

	respondSuccess(c, http.StatusOK, "commentApi-1001", comments)
}

// Update modifies a comment's context
func (h *CommentHandler) Update(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "dataMiddleware-1001", validation.BindingDetail(err))
		return
	}

	err := h.services.Comment.Update(c.Request.Context(), c.Param("commentId"), req.Context)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			respondError(c, http.StatusBadRequest, "commentApi-1002", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to update comment")
		respondError(c, http.StatusInternalServerError, "commentApi-1003", err)
		return
	}

	respondSuccess(c, http.StatusOK, "commentApi-1002", nil)
}

// Delete soft deletes a comment
func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.services.Comment.Delete(c.Request.Context(), c.Param("commentId"))
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			respondError(c, http.StatusBadRequest, "commentApi-1002", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to delete comment")
		respondError(c, http.StatusInternalServerError, "commentApi-1004", err)
		return
	}

	respondSuccess(c, http.StatusOK, "commentApi-1003", nil)
}

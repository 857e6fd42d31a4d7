package api

import (
	"errors"
	"net/http"

	"github.com/blog-backend-api/internal/service"
	"github.com/blog-backend-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TagHandler handles tag requests
type TagHandler struct {
	services *service.Services
	logger   zerolog.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(services *service.Services, logger zerolog.Logger) *TagHandler {
	return &TagHandler{services: services, logger: logger}
}

type createTagsRequest struct {
	Names []string `json:"names" binding:"required"`
}

type renameTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create upserts the given tag names. Names that already exist are
// returned as-is rather than duplicated.
func (h *TagHandler) Create(c *gin.Context) {
	var req createTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "dataMiddleware-1001", validation.BindingDetail(err))
		return
	}

	tags, err := h.services.Tag.CreateAll(c.Request.Context(), req.Names)
	if err != nil {
		if errors.Is(err, service.ErrEmptyNames) {
			respondError(c, http.StatusBadRequest, "tagApi-1000", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to create tags")
		respondError(c, http.StatusInternalServerError, "tagApi-1001", err)
		return
	}

	respondSuccess(c, http.StatusCreated, "tagApi-1000", tags)
}

// List returns the live tags with their article amounts, embedding the
// requested article fields when the articleFields query is set.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.services.Tag.List(c.Request.Context(), validation.ParseListQuery(c), validation.ParseArticleFields(c))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list tags")
		respondError(c, http.StatusInternalServerError, "tagApi-1002", err)
		return
	}

	respondSuccess(c, http.StatusOK, "tagApi-1001", tags)
}

// Get returns a single tag with its articles
func (h *TagHandler) Get(c *gin.Context) {
	tag, err := h.services.Tag.Get(c.Request.Context(), c.Param("tagId"), validation.ParseListQuery(c), validation.ParseArticleFields(c))
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			respondError(c, http.StatusBadRequest, "tagApi-1003", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to get tag")
		respondError(c, http.StatusInternalServerError, "tagApi-1004", err)
		return
	}

	respondSuccess(c, http.StatusOK, "tagApi-1002", tag)
}

// Rename changes a tag's name
func (h *TagHandler) Rename(c *gin.Context) {
	var req renameTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "tagApi-1005", validation.BindingDetail(err))
		return
	}

	err := h.services.Tag.Rename(c.Request.Context(), c.Param("tagId"), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			respondError(c, http.StatusBadRequest, "tagApi-1003", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to rename tag")
		respondError(c, http.StatusInternalServerError, "tagApi-1006", err)
		return
	}

	respondSuccess(c, http.StatusOK, "tagApi-1003", nil)
}

// Delete soft deletes a tag
func (h *TagHandler) Delete(c *gin.Context) {
	err := h.services.Tag.Delete(c.Request.Context(), c.Param("tagId"))
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			respondError(c, http.StatusBadRequest, "tagApi-1003", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to delete tag")
		respondError(c, http.StatusInternalServerError, "tagApi-1007", err)
		return
	}

	respondSuccess(c, http.StatusOK, "tagApi-1004", nil)
}

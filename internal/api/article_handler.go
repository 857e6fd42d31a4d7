package api

import (
	"errors"
	"net/http"

	"github.com/blog-backend-api/internal/service"
	"github.com/blog-backend-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article requests
type ArticleHandler struct {
	services *service.Services
	logger   zerolog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(services *service.Services, logger zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{services: services, logger: logger}
}

type createArticleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Begins      string   `json:"begins" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	CoverImages []string `json:"coverImages"`
}

type updateArticleRequest struct {
	Title       *string  `json:"title"`
	Begins      *string  `json:"begins"`
	Content     *string  `json:"content"`
	URL         *string  `json:"url"`
	CoverImages []string `json:"coverImages"`
}

type syncTagsRequest struct {
	Push []string `json:"push"`
	Pull []string `json:"pull"`
}

// Create creates a new article and links it to the named tags
func (h *ArticleHandler) Create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "dataMiddleware-1001", validation.BindingDetail(err))
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), service.CreateArticleInput{
		Title:       req.Title,
		Begins:      req.Begins,
		Content:     req.Content,
		URL:         req.URL,
		Tags:        req.Tags,
		CoverImages: req.CoverImages,
	})
	if err != nil {
		if errors.Is(err, service.ErrURLConflict) {
			respondError(c, http.StatusBadRequest, "articleApi-1000", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to create article")
		respondError(c, http.StatusInternalServerError, "articleApi-1001", err)
		return
	}

	respondSuccess(c, http.StatusCreated, "articleApi-1000", article)
}

// List returns the live articles in summary form
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.services.Article.List(c.Request.Context(), validation.ParseListQuery(c))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list articles")
		respondError(c, http.StatusInternalServerError, "articleApi-1002", err)
		return
	}

	respondSuccess(c, http.StatusOK, "articleApi-1001", articles)
}

// Get returns a single article by id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("articleId"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusBadRequest, "articleApi-1003", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to get article")
		respondError(c, http.StatusInternalServerError, "articleApi-1004", err)
		return
	}

	respondSuccess(c, http.StatusOK, "articleApi-1002", article)
}

// Update modifies the provided article fields
func (h *ArticleHandler) Update(c *gin.Context) {
	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "dataMiddleware-1001", validation.BindingDetail(err))
		return
	}

	err := h.services.Article.Update(c.Request.Context(), c.Param("articleId"), service.UpdateArticleInput{
		Title:       req.Title,
		Begins:      req.Begins,
		Content:     req.Content,
		URL:         req.URL,
		CoverImages: req.CoverImages,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			respondError(c, http.StatusBadRequest, "articleApi-1005", nil)
		case errors.Is(err, service.ErrURLConflict):
			respondError(c, http.StatusBadRequest, "articleApi-1000", nil)
		case errors.Is(err, service.ErrArticleNotFound):
			respondError(c, http.StatusBadRequest, "articleApi-1003", nil)
		default:
			h.logger.Error().Err(err).Msg("Failed to update article")
			respondError(c, http.StatusInternalServerError, "articleApi-1006", err)
		}
		return
	}

	respondSuccess(c, http.StatusOK, "articleApi-1003", nil)
}

// SyncTags adds and removes the article from the given tags. Tags that
// could not be updated are reported in the response data without failing
// the batch.
func (h *ArticleHandler) SyncTags(c *gin.Context) {
	var req syncTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "dataMiddleware-1001", validation.BindingDetail(err))
		return
	}

	failures, err := h.services.Article.SyncTags(c.Request.Context(), c.Param("articleId"), req.Push, req.Pull)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusBadRequest, "articleApi-1003", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to sync article tags")
		respondError(c, http.StatusInternalServerError, "articleApi-1007", err)
		return
	}

	var data interface{}
	if len(failures) > 0 {
		data = failures
	}
	respondSuccess(c, http.StatusOK, "articleApi-1004", data)
}

// Publish sets or clears the publish state for a batch of articles.
// Articles that could not be updated are reported in the response data.
func (h *ArticleHandler) Publish(c *gin.Context) {
	var states map[string]bool
	if err := c.ShouldBindJSON(&states); err != nil {
		respondError(c, http.StatusBadRequest, "dataMiddleware-1001", validation.BindingDetail(err))
		return
	}

	failures, err := h.services.Article.Publish(c.Request.Context(), states)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to publish articles")
		respondError(c, http.StatusInternalServerError, "articleApi-1008", err)
		return
	}

	var data interface{}
	if len(failures) > 0 {
		data = failures
	}
	respondSuccess(c, http.StatusOK, "articleApi-1005", data)
}

// Delete soft deletes an article
func (h *ArticleHandler) Delete(c *gin.Context) {
	err := h.services.Article.Delete(c.Request.Context(), c.Param("articleId"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusBadRequest, "articleApi-1003", nil)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to delete article")
		respondError(c, http.StatusInternalServerError, "articleApi-1009", err)
		return
	}

	respondSuccess(c, http.StatusOK, "articleApi-1006", nil)
}

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/blog-backend-api/internal/config"
	"github.com/blog-backend-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenHeader is the custom header carrying the session bearer token
const TokenHeader = "Rukeith-Token"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	sessionHandler := NewSessionHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	tagHandler := NewTagHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	auth := authMiddleware(services.Auth)

	// Health check
	router.GET("/health", healthCheck)

	router.POST("/login", sessionHandler.Login)

	articles := router.Group("/articles")
	{
		articles.POST("", auth, articleHandler.Create)
		articles.GET("", articleHandler.List)
		articles.GET("/:articleId", articleHandler.Get)
		articles.PUT("/:articleId", auth, articleHandler.Update)
		articles.PUT("/:articleId/tags", auth, articleHandler.SyncTags)
		articles.PUT("/publish/blog", auth, articleHandler.Publish)
		articles.DELETE("/:articleId", auth, articleHandler.Delete)
		articles.POST("/:articleId/comments", commentHandler.Create)
		articles.GET("/:articleId/comments", commentHandler.List)
	}

	comments := router.Group("/comments")
	{
		comments.PUT("/:commentId", auth, commentHandler.Update)
		comments.DELETE("/:commentId", auth, commentHandler.Delete)
	}

	tags := router.Group("/tags")
	{
		tags.POST("", auth, tagHandler.Create)
		tags.GET("", tagHandler.List)
		tags.GET("/:tagId", tagHandler.Get)
		tags.PATCH("/:tagId", auth, tagHandler.Rename)
		tags.DELETE("/:tagId", auth, tagHandler.Delete)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blog-backend-api",
	})
}

// authMiddleware requires a live session whose token passes signature
// and expiry verification. A session holding an unverifiable token is
// invalidated by the service, forcing a fresh login.
func authMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		err := auth.Authenticate(c.Request.Context(), token)
		if err == nil {
			c.Next()
			return
		}

		var tokenErr *service.TokenInvalidError
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			respondError(c, http.StatusUnauthorized, "authMiddleware-1000", nil)
		case errors.As(err, &tokenErr):
			respondError(c, http.StatusUnauthorized, "authMiddleware-1001", tokenErr.Cause)
		default:
			respondError(c, http.StatusInternalServerError, "authMiddleware-1002", err)
		}
	}
}

// requestIDMiddleware attaches a request id to the context and response
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, ErrorEnvelope{
					Status:  http.StatusInternalServerError,
					Level:   "fatal",
					Message: "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		if len(c.Errors) > 0 {
			event = event.Str("error", c.Errors.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, DELETE, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+TokenHeader)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

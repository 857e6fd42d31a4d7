package service

import (
	"context"
	"errors"

	"github.com/blog-backend-api/internal/config"
	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/rs/zerolog"
)

// Sentinel errors the handlers map to client-facing error codes. Anything
// else coming out of a service is a store-level failure and surfaces as a
// 500 with the raw error in the envelope's extra field.
var (
	ErrInvalidCredentials = errors.New("username or password mismatch")
	ErrSessionNotFound    = errors.New("session not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrURLConflict        = errors.New("article url already used")
	ErrEmptyUpdate        = errors.New("update without any parameters")
	ErrEmptyNames         = errors.New("create tags with empty names")
)

// TokenInvalidError carries the verification failure for an invalid token
type TokenInvalidError struct {
	Cause error
}

func (e *TokenInvalidError) Error() string { return e.Cause.Error() }
func (e *TokenInvalidError) Unwrap() error { return e.Cause }

// ListQuery carries the sort/paging query parameters shared by the
// listing endpoints.
type ListQuery struct {
	SortBy string
	Direct string // "asc" or "desc"
	Limit  int64
	Offset int64
}

// AuthService defines login and token authentication
type AuthService interface {
	Login(ctx context.Context, username, password, ip string) (string, error)
	Authenticate(ctx context.Context, token string) error
}

// ArticleService defines the article operations
type ArticleService interface {
	Create(ctx context.Context, input CreateArticleInput) (*models.Article, error)
	List(ctx context.Context, q ListQuery) ([]*models.ArticleSummary, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Update(ctx context.Context, id string, input UpdateArticleInput) error
	SyncTags(ctx context.Context, id string, push, pull []string) ([]string, error)
	Publish(ctx context.Context, states map[string]bool) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// TagService defines the tag operations
type TagService interface {
	CreateAll(ctx context.Context, names []string) ([]*models.Tag, error)
	List(ctx context.Context, q ListQuery, articleFields []string) ([]*TagView, error)
	Get(ctx context.Context, id string, q ListQuery, articleFields []string) (*TagDetail, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// CommentService defines the comment operations
type CommentService interface {
	Create(ctx context.Context, articleID string, input CreateCommentInput) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID string, q ListQuery) ([]*models.Comment, error)
	Update(ctx context.Context, id, context string) error
	Delete(ctx context.Context, id string) error
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Article ArticleService
	Tag     TagService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:    newAuthService(repos.Session, &cfg.Auth, log),
		Article: newArticleService(repos.Article, repos.Tag, log),
		Tag:     newTagService(repos.Tag, repos.Article, log),
		Comment: newCommentService(repos.Comment, repos.Article, log),
	}
}

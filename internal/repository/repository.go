package repository

import (
	"context"

	"github.com/blog-backend-api/internal/database"
	"github.com/blog-backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListOptions carries the sort/paging/projection options accepted by the
// FindAll operations.
type ListOptions struct {
	SortBy    string
	Direction int // 1 ascending, -1 descending
	Limit     int64
	Skip      int64
	Fields    []string
}

// ArticleRepository defines the closed set of article data operations.
// FindOne, FindByID and FindAll exclude soft-deleted documents;
// FindByIDAndUpdate operates on any document so it can soft-delete or
// revive.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Article, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error)
	FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Article, error)
	FindAll(ctx context.Context, filter bson.M, opts ListOptions) ([]*models.Article, error)
	FindAllProjected(ctx context.Context, filter bson.M, opts ListOptions) ([]bson.M, error)
}

// TagRepository defines the tag data operations. Upsert implements the
// idempotent create-by-name; AddArticle/RemoveArticle are the atomic
// set-add/set-remove of an article reference.
type TagRepository interface {
	Upsert(ctx context.Context, name string) (*models.Tag, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Tag, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tag, error)
	FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Tag, error)
	FindAll(ctx context.Context, filter bson.M, opts ListOptions) ([]*models.Tag, error)
	AddArticle(ctx context.Context, tagID, articleID primitive.ObjectID) (*models.Tag, error)
	RemoveArticle(ctx context.Context, tagID, articleID primitive.ObjectID) (*models.Tag, error)
}

// CommentRepository defines the comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Comment, error)
	FindAll(ctx context.Context, filter bson.M, opts ListOptions) ([]*models.Comment, error)
}

// SessionRepository defines the session data operations
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	SoftDeleteByToken(ctx context.Context, token string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Tag     TagRepository
	Comment CommentRepository
	Session SessionRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		Tag:     NewTagRepo(db),
		Comment: NewCommentRepo(db),
		Session: NewSessionRepo(db),
	}
}

// notDeleted returns the filter fragment that excludes soft-deleted
// documents from default reads.
func notDeleted() bson.M {
	return bson.M{"$exists": false}
}

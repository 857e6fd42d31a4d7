package service

import (
	"context"
	"time"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCommentInput carries the comment creation parameters
type CreateCommentInput struct {
	Username string
	Email    string
	Context  string
}

// commentService implements CommentService
type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		articles: articles,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Create attaches a new comment to a live article
func (s *commentService) Create(ctx context.Context, articleID string, input CreateCommentInput) (*models.Comment, error) {
	id, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return nil, castError("Article", articleID, err)
	}
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	return s.comments.Create(ctx, &models.Comment{
		ArticleID: id,
		Username:  input.Username,
		Email:     input.Email,
		Context:   input.Context,
	})
}

// ListByArticle returns a live article's comments with sort and paging
func (s *commentService) ListByArticle(ctx context.Context, articleID string, q ListQuery) ([]*models.Comment, error) {
	id, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return nil, castError("Article", articleID, err)
	}
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	return s.comments.FindAll(ctx, bson.M{"article_id": id}, listOptions(q, nil))
}

// Update replaces a live comment's body text
func (s *commentService) Update(ctx context.Context, id, context string) error {
	commentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return castError("Comment", id, err)
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	_, err = s.comments.FindByIDAndUpdate(ctx, commentID, bson.M{"$set": bson.M{"context": context}})
	return err
}

// Delete soft-deletes a live comment
func (s *commentService) Delete(ctx context.Context, id string) error {
	commentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return castError("Comment", id, err)
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	_, err = s.comments.FindByIDAndUpdate(ctx, commentID, bson.M{"$set": bson.M{"deletedAt": time.Now()}})
	if err != nil {
		return err
	}
	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return nil
}

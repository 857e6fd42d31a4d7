package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blog-backend-api/internal/database"
	"github.com/blog-backend-api/internal/locale"
	"github.com/blog-backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	coll *mongo.Collection
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{coll: db.Collection(database.CollectionComments)}
}

// Create inserts a new comment document
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment == nil || comment.ArticleID.IsZero() {
		return nil, locale.Coded("comment", "model", "1000")
	}

	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = result.InsertedID.(primitive.ObjectID)
	return comment, nil
}

// FindByID looks up a comment by primary key among non-deleted documents
func (r *commentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "deletedAt": notDeleted()}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByIDAndUpdate atomically updates a comment and returns the
// post-update document. It does not filter on deletedAt.
func (r *commentRepo) FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Comment, error) {
	if update == nil {
		return nil, locale.Coded("comment", "model", "1001")
	}
	touchUpdatedAt(update)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var comment models.Comment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindAll lists matching non-deleted comments with sort/paging/projection
func (r *commentRepo) FindAll(ctx context.Context, filter bson.M, listOpts ListOptions) ([]*models.Comment, error) {
	if filter == nil {
		return nil, locale.Coded("comment", "model", "1001")
	}
	filter["deletedAt"] = notDeleted()

	cursor, err := r.coll.Find(ctx, filter, findOptions(listOpts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []*models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

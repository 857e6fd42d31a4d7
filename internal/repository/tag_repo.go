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

// tagRepo is the concrete implementation of TagRepository
type tagRepo struct {
	coll *mongo.Collection
}

// NewTagRepo creates a new tag repository
func NewTagRepo(db *database.DB) TagRepository {
	return &tagRepo{coll: db.Collection(database.CollectionTags)}
}

// Upsert creates a tag by name or refreshes an existing one. Creation is
// idempotent per name within a call; concurrent duplicate-name calls are
// only as safe as the store's upsert primitive.
func (r *tagRepo) Upsert(ctx context.Context, name string) (*models.Tag, error) {
	if name == "" {
		return nil, locale.Coded("tag", "model", "1000")
	}

	now := time.Now()
	filter := bson.M{"name": name, "deletedAt": notDeleted()}
	update := bson.M{
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"articles": []primitive.ObjectID{}, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var tag models.Tag
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindOne returns the first matching non-deleted tag or nil
func (r *tagRepo) FindOne(ctx context.Context, filter bson.M) (*models.Tag, error) {
	if filter == nil {
		return nil, locale.Coded("tag", "model", "1001")
	}
	filter["deletedAt"] = notDeleted()

	var tag models.Tag
	err := r.coll.FindOne(ctx, filter).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByID looks up a tag by primary key among non-deleted documents
func (r *tagRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tag, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

// FindByIDAndUpdate atomically updates a tag and returns the post-update
// document. It does not filter on deletedAt.
func (r *tagRepo) FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Tag, error) {
	if update == nil {
		return nil, locale.Coded("tag", "model", "1001")
	}
	touchUpdatedAt(update)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var tag models.Tag
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindAll lists matching non-deleted tags with sort/paging/projection
func (r *tagRepo) FindAll(ctx context.Context, filter bson.M, listOpts ListOptions) ([]*models.Tag, error) {
	if filter == nil {
		return nil, locale.Coded("tag", "model", "1001")
	}
	filter["deletedAt"] = notDeleted()

	cursor, err := r.coll.Find(ctx, filter, findOptions(listOpts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []*models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// AddArticle set-adds an article reference into the tag's articles array.
// Returns nil when the tag does not exist.
func (r *tagRepo) AddArticle(ctx context.Context, tagID, articleID primitive.ObjectID) (*models.Tag, error) {
	return r.FindByIDAndUpdate(ctx, tagID, bson.M{"$addToSet": bson.M{"articles": articleID}})
}

// RemoveArticle set-removes an article reference from the tag's articles
// array. Returns nil when the tag does not exist.
func (r *tagRepo) RemoveArticle(ctx context.Context, tagID, articleID primitive.ObjectID) (*models.Tag, error) {
	return r.FindByIDAndUpdate(ctx, tagID, bson.M{"$pull": bson.M{"articles": articleID}})
}

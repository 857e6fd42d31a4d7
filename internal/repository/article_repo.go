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

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	coll *mongo.Collection
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{coll: db.Collection(database.CollectionArticles)}
}

// Create inserts a new article document
func (r *articleRepo) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	if article == nil || article.Title == "" {
		return nil, locale.Coded("article", "model", "1000")
	}

	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.CoverImages == nil {
		article.CoverImages = []string{}
	}

	result, err := r.coll.InsertOne(ctx, article)
	if err != nil {
		return nil, err
	}
	article.ID = result.InsertedID.(primitive.ObjectID)
	return article, nil
}

// FindOne returns the first matching non-deleted article or nil
func (r *articleRepo) FindOne(ctx context.Context, filter bson.M) (*models.Article, error) {
	if filter == nil {
		return nil, locale.Coded("article", "model", "1001")
	}
	filter["deletedAt"] = notDeleted()

	var article models.Article
	err := r.coll.FindOne(ctx, filter).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindByID looks up an article by primary key among non-deleted documents
func (r *articleRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

// FindByIDAndUpdate atomically updates an article and returns the
// post-update document. It does not filter on deletedAt.
func (r *articleRepo) FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Article, error) {
	if update == nil {
		return nil, locale.Coded("article", "model", "1001")
	}
	touchUpdatedAt(update)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var article models.Article
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindAll lists matching non-deleted articles with sort/paging/projection
func (r *articleRepo) FindAll(ctx context.Context, filter bson.M, listOpts ListOptions) ([]*models.Article, error) {
	if filter == nil {
		return nil, locale.Coded("article", "model", "1001")
	}
	filter["deletedAt"] = notDeleted()

	cursor, err := r.coll.Find(ctx, filter, findOptions(listOpts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	articles := []*models.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// FindAllProjected lists matching non-deleted articles as raw documents
// restricted to the projected fields. Used for the article embedding on
// tag views, where the caller controls the field selection.
func (r *articleRepo) FindAllProjected(ctx context.Context, filter bson.M, listOpts ListOptions) ([]bson.M, error) {
	if filter == nil {
		return nil, locale.Coded("article", "model", "1001")
	}
	filter["deletedAt"] = notDeleted()

	cursor, err := r.coll.Find(ctx, filter, findOptions(listOpts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// touchUpdatedAt folds an updatedAt refresh into an update document
// unless the caller already sets one.
func touchUpdatedAt(update bson.M) {
	set, ok := update["$set"].(bson.M)
	if !ok {
		set = bson.M{}
		update["$set"] = set
	}
	if _, ok := set["updatedAt"]; !ok {
		set["updatedAt"] = time.Now()
	}
}

// findOptions translates ListOptions to driver options
func findOptions(listOpts ListOptions) *options.FindOptions {
	opts := options.Find()
	if listOpts.SortBy != "" {
		direction := listOpts.Direction
		if direction == 0 {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: listOpts.SortBy, Value: direction}})
	}
	if listOpts.Limit > 0 {
		opts.SetLimit(listOpts.Limit)
	}
	if listOpts.Skip > 0 {
		opts.SetSkip(listOpts.Skip)
	}
	if len(listOpts.Fields) > 0 {
		projection := bson.M{}
		for _, field := range listOpts.Fields {
			projection[field] = 1
		}
		opts.SetProjection(projection)
	}
	return opts
}

package service

import (
	"context"
	"time"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// TagArticles is the embedded article listing attached to a tag view
type TagArticles struct {
	Amount  int      `json:"amount"`
	Content []bson.M `json:"content,omitempty"`
}

// TagView is a tag list item, optionally carrying projected articles
type TagView struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Articles  TagArticles        `json:"articles"`
}

// TagDetail is the single-tag view with its projected article documents
type TagDetail struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Articles  []bson.M           `json:"articles"`
}

// tagService implements TagService
type tagService struct {
	tags     repository.TagRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newTagService(tags repository.TagRepository, articles repository.ArticleRepository, log zerolog.Logger) *tagService {
	return &tagService{
		tags:     tags,
		articles: articles,
		log:      log.With().Str("service", "tag").Logger(),
	}
}

// CreateAll upserts one tag per unique name. Creation is idempotent per
// name; an existing tag is returned with its updatedAt refreshed.
func (s *tagService) CreateAll(ctx context.Context, names []string) ([]*models.Tag, error) {
	unique := dedupe(names)
	if len(unique) == 0 {
		return nil, ErrEmptyNames
	}
	for _, name := range unique {
		if name == "" {
			return nil, ErrEmptyNames
		}
	}

	tags := make([]*models.Tag, len(unique))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, name := range unique {
		i, name := i, name
		group.Go(func() error {
			tag, err := s.tags.Upsert(groupCtx, name)
			if err != nil {
				return err
			}
			tags[i] = tag
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return tags, nil
}

// List returns tags with sort and paging applied. When articleFields is
// given, each tag view embeds its referenced articles projected to those
// fields.
func (s *tagService) List(ctx context.Context, q ListQuery, articleFields []string) ([]*TagView, error) {
	tags, err := s.tags.FindAll(ctx, bson.M{}, listOptions(q, nil))
	if err != nil {
		return nil, err
	}

	views := make([]*TagView, len(tags))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, tag := range tags {
		i, tag := i, tag
		group.Go(func() error {
			view := &TagView{
				ID:        tag.ID,
				Name:      tag.Name,
				CreatedAt: tag.CreatedAt,
				UpdatedAt: tag.UpdatedAt,
				Articles:  TagArticles{Amount: len(tag.Articles)},
			}
			if len(articleFields) > 0 && len(tag.Articles) > 0 {
				content, err := s.projectArticles(groupCtx, tag.Articles, ListQuery{}, articleFields)
				if err != nil {
					return err
				}
				view.Articles.Content = content
			}
			views[i] = view
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// Get returns a single live tag with its referenced articles, applying
// paging/sort and the field projection to the embedded articles.
func (s *tagService) Get(ctx context.Context, id string, q ListQuery, articleFields []string) (*TagDetail, error) {
	tagID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, castError("Tag", id, err)
	}
	tag, err := s.tags.FindByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrTagNotFound
	}

	articles := []bson.M{}
	if len(tag.Articles) > 0 {
		articles, err = s.projectArticles(ctx, tag.Articles, q, articleFields)
		if err != nil {
			return nil, err
		}
	}

	return &TagDetail{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
		Articles:  articles,
	}, nil
}

// Rename updates a live tag's name
func (s *tagService) Rename(ctx context.Context, id, name string) error {
	tagID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return castError("Tag", id, err)
	}
	tag, err := s.tags.FindByID(ctx, tagID)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrTagNotFound
	}

	_, err = s.tags.FindByIDAndUpdate(ctx, tagID, bson.M{"$set": bson.M{"name": name}})
	return err
}

// Delete soft-deletes a live tag. The tag keeps its article references;
// default reads no longer see it.
func (s *tagService) Delete(ctx context.Context, id string) error {
	tagID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return castError("Tag", id, err)
	}
	tag, err := s.tags.FindByID(ctx, tagID)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrTagNotFound
	}

	_, err = s.tags.FindByIDAndUpdate(ctx, tagID, bson.M{"$set": bson.M{"deletedAt": time.Now()}})
	if err != nil {
		return err
	}
	s.log.Info().Str("tag_id", id).Msg("Tag deleted")
	return nil
}

// articleProjection whitelists the fields accepted in articleFields
var articleProjection = map[string]struct{}{
	"_id":         {},
	"url":         {},
	"title":       {},
	"begins":      {},
	"content":     {},
	"coverImages": {},
	"publishedAt": {},
	"createdAt":   {},
	"updatedAt":   {},
}

// projectArticles fetches the referenced live articles as raw documents
// restricted to the requested fields.
func (s *tagService) projectArticles(ctx context.Context, ids []primitive.ObjectID, q ListQuery, fields []string) ([]bson.M, error) {
	projected := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := articleProjection[field]; ok {
			projected = append(projected, field)
		}
	}
	if len(projected) == 0 {
		projected = []string{"_id", "url", "title"}
	}

	return s.articles.FindAllProjected(ctx, bson.M{"_id": bson.M{"$in": ids}}, listOptions(q, projected))
}

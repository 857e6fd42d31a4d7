package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// CreateArticleInput carries the article creation parameters. Tags and
// CoverImages may contain duplicates; they are deduplicated before use.
type CreateArticleInput struct {
	Title       string
	Begins      string
	Content     string
	URL         string
	Tags        []string
	CoverImages []string
}

// UpdateArticleInput carries the optional article update fields
type UpdateArticleInput struct {
	Title       *string
	Begins      *string
	Content     *string
	URL         *string
	CoverImages []string
}

// articleService implements ArticleService
type articleService struct {
	articles repository.ArticleRepository
	tags     repository.TagRepository
	log      zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, tags repository.TagRepository, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		tags:     tags,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// Create persists a new article after checking the url is not used by a
// live article, then attaches the requested tags. The existence check and
// the insert are separate store operations; the unique partial index on
// url is the backstop for concurrent creates racing past the check.
func (s *articleService) Create(ctx context.Context, input CreateArticleInput) (*models.Article, error) {
	url := input.URL
	if url == "" {
		url = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	existing, err := s.articles.FindOne(ctx, bson.M{"url": url})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrURLConflict
	}

	article, err := s.articles.Create(ctx, &models.Article{
		Title:       input.Title,
		Begins:      input.Begins,
		Content:     input.Content,
		URL:         url,
		CoverImages: dedupe(input.CoverImages),
	})
	if err != nil {
		return nil, err
	}

	tagIDs, err := parseObjectIDs(dedupe(input.Tags))
	if err != nil {
		return nil, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, tagID := range tagIDs {
		tagID := tagID
		group.Go(func() error {
			// A missing tag is skipped; AddArticle returns nil for it.
			_, err := s.tags.AddArticle(groupCtx, tagID, article.ID)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID.Hex()).Str("url", url).Msg("Article created")
	return article, nil
}

// List returns article summaries with sort and paging applied
func (s *articleService) List(ctx context.Context, q ListQuery) ([]*models.ArticleSummary, error) {
	articles, err := s.articles.FindAll(ctx, bson.M{}, listOptions(q, []string{
		"_id", "url", "title", "begins", "coverImages", "createdAt", "updatedAt",
	}))
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.ArticleSummary, 0, len(articles))
	for _, article := range articles {
		coverImages := article.CoverImages
		if coverImages == nil {
			coverImages = []string{}
		}
		summaries = append(summaries, &models.ArticleSummary{
			ID:          article.ID,
			URL:         article.URL,
			Title:       article.Title,
			Begins:      article.Begins,
			CoverImages: coverImages,
			CreatedAt:   article.CreatedAt,
			UpdatedAt:   article.UpdatedAt,
		})
	}
	return summaries, nil
}

// Get returns a single live article
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	articleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, castError("Article", id, err)
	}
	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Update applies the provided fields to a live article. A url change is
// rejected when another live article already uses it.
func (s *articleService) Update(ctx context.Context, id string, input UpdateArticleInput) error {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Begins != nil {
		set["begins"] = *input.Begins
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.URL != nil {
		set["url"] = *input.URL
	}
	if input.CoverImages != nil {
		set["coverImages"] = dedupe(input.CoverImages)
	}
	if len(set) == 0 {
		return ErrEmptyUpdate
	}

	articleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return castError("Article", id, err)
	}

	if input.URL != nil {
		existing, err := s.articles.FindOne(ctx, bson.M{"url": *input.URL})
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != articleID {
			return ErrURLConflict
		}
	}

	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}

	_, err = s.articles.FindByIDAndUpdate(ctx, articleID, bson.M{"$set": set})
	return err
}

// SyncTags reconciles an article's tag membership against the push and
// pull lists. Each tag is handled independently: a failure yields a
// collected error string instead of aborting the batch, and the batch is
// joined unconditionally. The result order follows the enqueue order,
// push before pull.
func (s *articleService) SyncTags(ctx context.Context, id string, push, pull []string) ([]string, error) {
	// A tag present in both lists is a no-op for that tag.
	push, pull = cancelIntersection(dedupe(push), dedupe(pull))

	articleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, castError("Article", id, err)
	}
	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	type tagOp struct {
		id   string
		push bool
	}
	ops := make([]tagOp, 0, len(push)+len(pull))
	for _, tagID := range push {
		ops = append(ops, tagOp{id: tagID, push: true})
	}
	for _, tagID := range pull {
		ops = append(ops, tagOp{id: tagID, push: false})
	}

	results := make([]string, len(ops))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, op := range ops {
		i, op := i, op
		group.Go(func() error {
			// Failures land in the result slot; the group never
			// short-circuits.
			tagID, err := primitive.ObjectIDFromHex(op.id)
			if err != nil {
				results[i] = tagFailure(op.id)
				return nil
			}

			var tag *models.Tag
			if op.push {
				tag, err = s.tags.AddArticle(groupCtx, tagID, articleID)
			} else {
				tag, err = s.tags.RemoveArticle(groupCtx, tagID, articleID)
			}
			if err != nil || tag == nil {
				results[i] = tagFailure(op.id)
			}
			return nil
		})
	}
	_ = group.Wait()

	return collectFailures(results), nil
}

// Publish sets or clears publishedAt for each article in states. Items
// are processed independently; a missing article yields a collected
// error string.
func (s *articleService) Publish(ctx context.Context, states map[string]bool) ([]string, error) {
	ids := make([]string, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make([]string, len(ids))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		publish := states[id]
		group.Go(func() error {
			articleID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				results[i] = articleFailure(id)
				return nil
			}

			var update bson.M
			if publish {
				update = bson.M{"$set": bson.M{"publishedAt": time.Now()}}
			} else {
				update = bson.M{"$unset": bson.M{"publishedAt": ""}}
			}
			article, err := s.articles.FindByIDAndUpdate(groupCtx, articleID, update)
			if err != nil || article == nil {
				results[i] = articleFailure(id)
			}
			return nil
		})
	}
	_ = group.Wait()

	return collectFailures(results), nil
}

// Delete soft-deletes a live article
func (s *articleService) Delete(ctx context.Context, id string) error {
	articleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return castError("Article", id, err)
	}
	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}

	_, err = s.articles.FindByIDAndUpdate(ctx, articleID, bson.M{"$set": bson.M{"deletedAt": time.Now()}})
	if err != nil {
		return err
	}
	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

func tagFailure(id string) string {
	return fmt.Sprintf("Server Error: tag %s is not existed", id)
}

func articleFailure(id string) string {
	return fmt.Sprintf("Server Error: article %s is not existed", id)
}

// castError mirrors the store's id cast failure for an invalid hex id
func castError(model, value string, err error) error {
	return fmt.Errorf("cast to ObjectId failed for value %q for model %q: %w", value, model, err)
}

// dedupe removes duplicate entries preserving first-seen order
func dedupe(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}

// cancelIntersection drops ids present in both lists from both lists
func cancelIntersection(push, pull []string) ([]string, []string) {
	inPush := make(map[string]struct{}, len(push))
	for _, id := range push {
		inPush[id] = struct{}{}
	}
	both := make(map[string]struct{})
	for _, id := range pull {
		if _, ok := inPush[id]; ok {
			both[id] = struct{}{}
		}
	}
	if len(both) == 0 {
		return push, pull
	}

	keep := func(ids []string) []string {
		result := ids[:0]
		for _, id := range ids {
			if _, ok := both[id]; !ok {
				result = append(result, id)
			}
		}
		return result
	}
	return keep(push), keep(pull)
}

// collectFailures drops the empty slots, keeping enqueue order
func collectFailures(results []string) []string {
	failures := []string{}
	for _, result := range results {
		if result != "" {
			failures = append(failures, result)
		}
	}
	return failures
}

func parseObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	parsed := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, castError("Tag", id, err)
		}
		parsed = append(parsed, objectID)
	}
	return parsed, nil
}

// listOptions maps a ListQuery onto repository options. Invalid paging
// values fall back to defaults rather than failing the request.
func listOptions(q ListQuery, fields []string) repository.ListOptions {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	direction := -1
	if q.Direct == "asc" {
		direction = 1
	}
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	return repository.ListOptions{
		SortBy:    sortBy,
		Direction: direction,
		Limit:     limit,
		Skip:      offset,
		Fields:    fields,
	}
}

package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockArticleRepository is an in-memory mock of ArticleRepository. The
// mutex matters: the services fan article and tag updates out across
// goroutines.
type MockArticleRepository struct {
	mu       sync.Mutex
	Articles map[primitive.ObjectID]*models.Article

	CreateErr  error
	FindErr    error
	UpdateErr  error
	FindAllErr error
}

var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make(map[primitive.ObjectID]*models.Article)}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if article.ID.IsZero() {
		article.ID = primitive.NewObjectID()
	}
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	m.Articles[article.ID] = article
	return article, nil
}

func (m *MockArticleRepository) FindOne(ctx context.Context, filter bson.M) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	url, _ := filter["url"].(string)
	for _, article := range m.Articles {
		if article.DeletedAt != nil {
			continue
		}
		if url != "" && article.URL == url {
			return article, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	article, ok := m.Articles[id]
	if !ok || article.DeletedAt != nil {
		return nil, nil
	}
	return article, nil
}

func (m *MockArticleRepository) FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	if set, ok := update["$set"].(bson.M); ok {
		for key, value := range set {
			switch key {
			case "title":
				article.Title = value.(string)
			case "begins":
				article.Begins = value.(string)
			case "content":
				article.Content = value.(string)
			case "url":
				article.URL = value.(string)
			case "coverImages":
				article.CoverImages = value.([]string)
			case "publishedAt":
				at := value.(time.Time)
				article.PublishedAt = &at
			case "deletedAt":
				at := value.(time.Time)
				article.DeletedAt = &at
			}
		}
	}
	if unset, ok := update["$unset"].(bson.M); ok {
		if _, ok := unset["publishedAt"]; ok {
			article.PublishedAt = nil
		}
	}
	article.UpdatedAt = time.Now()
	return article, nil
}

func (m *MockArticleRepository) FindAll(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindAllErr != nil {
		return nil, m.FindAllErr
	}
	articles := make([]*models.Article, 0, len(m.Articles))
	for _, article := range m.Articles {
		if article.DeletedAt != nil {
			continue
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (m *MockArticleRepository) FindAllProjected(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindAllErr != nil {
		return nil, m.FindAllErr
	}

	wanted := map[primitive.ObjectID]struct{}{}
	if idFilter, ok := filter["_id"].(bson.M); ok {
		if in, ok := idFilter["$in"].([]primitive.ObjectID); ok {
			for _, id := range in {
				wanted[id] = struct{}{}
			}
		}
	}

	docs := []bson.M{}
	for id, article := range m.Articles {
		if article.DeletedAt != nil {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[id]; !ok {
				continue
			}
		}
		full := bson.M{
			"_id":         article.ID,
			"url":         article.URL,
			"title":       article.Title,
			"begins":      article.Begins,
			"content":     article.Content,
			"coverImages": article.CoverImages,
			"createdAt":   article.CreatedAt,
			"updatedAt":   article.UpdatedAt,
		}
		doc := bson.M{}
		for _, field := range opts.Fields {
			if value, ok := full[field]; ok {
				doc[field] = value
			}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// MockTagRepository is an in-memory mock of TagRepository
type MockTagRepository struct {
	mu   sync.Mutex
	Tags map[primitive.ObjectID]*models.Tag

	UpsertErr error
	FindErr   error
	UpdateErr error
}

var _ repository.TagRepository = (*MockTagRepository)(nil)

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{Tags: make(map[primitive.ObjectID]*models.Tag)}
}

func (m *MockTagRepository) Upsert(ctx context.Context, name string) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertErr != nil {
		return nil, m.UpsertErr
	}
	for _, tag := range m.Tags {
		if tag.DeletedAt == nil && tag.Name == name {
			tag.UpdatedAt = time.Now()
			return tag, nil
		}
	}
	now := time.Now()
	tag := &models.Tag{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Articles:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.Tags[tag.ID] = tag
	return tag, nil
}

func (m *MockTagRepository) FindOne(ctx context.Context, filter bson.M) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	name, _ := filter["name"].(string)
	for _, tag := range m.Tags {
		if tag.DeletedAt == nil && tag.Name == name {
			return tag, nil
		}
	}
	return nil, nil
}

func (m *MockTagRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	tag, ok := m.Tags[id]
	if !ok || tag.DeletedAt != nil {
		return nil, nil
	}
	return tag, nil
}

func (m *MockTagRepository) FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	tag, ok := m.Tags[id]
	if !ok {
		return nil, nil
	}
	if set, ok := update["$set"].(bson.M); ok {
		if name, ok := set["name"].(string); ok {
			tag.Name = name
		}
		if at, ok := set["deletedAt"].(time.Time); ok {
			tag.DeletedAt = &at
		}
	}
	tag.UpdatedAt = time.Now()
	return tag, nil
}

func (m *MockTagRepository) FindAll(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	tags := make([]*models.Tag, 0, len(m.Tags))
	for _, tag := range m.Tags {
		if tag.DeletedAt != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (m *MockTagRepository) AddArticle(ctx context.Context, tagID, articleID primitive.ObjectID) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	tag, ok := m.Tags[tagID]
	if !ok {
		return nil, nil
	}
	for _, id := range tag.Articles {
		if id == articleID {
			return tag, nil
		}
	}
	tag.Articles = append(tag.Articles, articleID)
	tag.UpdatedAt = time.Now()
	return tag, nil
}

func (m *MockTagRepository) RemoveArticle(ctx context.Context, tagID, articleID primitive.ObjectID) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	tag, ok := m.Tags[tagID]
	if !ok {
		return nil, nil
	}
	kept := tag.Articles[:0]
	for _, id := range tag.Articles {
		if id != articleID {
			kept = append(kept, id)
		}
	}
	tag.Articles = kept
	tag.UpdatedAt = time.Now()
	return tag, nil
}

// MockCommentRepository is an in-memory mock of CommentRepository
type MockCommentRepository struct {
	mu       sync.Mutex
	Comments map[primitive.ObjectID]*models.Comment

	CreateErr error
	FindErr   error
	UpdateErr error
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[primitive.ObjectID]*models.Comment)}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	m.Comments[comment.ID] = comment
	return comment, nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	comment, ok := m.Comments[id]
	if !ok || comment.DeletedAt != nil {
		return nil, nil
	}
	return comment, nil
}

func (m *MockCommentRepository) FindByIDAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	comment, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	if set, ok := update["$set"].(bson.M); ok {
		if context, ok := set["context"].(string); ok {
			comment.Context = context
		}
		if at, ok := set["deletedAt"].(time.Time); ok {
			comment.DeletedAt = &at
		}
	}
	comment.UpdatedAt = time.Now()
	return comment, nil
}

func (m *MockCommentRepository) FindAll(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	articleID, _ := filter["article_id"].(primitive.ObjectID)
	comments := make([]*models.Comment, 0, len(m.Comments))
	for _, comment := range m.Comments {
		if comment.DeletedAt != nil {
			continue
		}
		if !articleID.IsZero() && comment.ArticleID != articleID {
			continue
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// MockSessionRepository is an in-memory mock of SessionRepository keyed
// by token
type MockSessionRepository struct {
	mu       sync.Mutex
	Sessions map[string]*models.Session

	CreateErr error
	FindErr   error
	DeleteErr error
}

var _ repository.SessionRepository = (*MockSessionRepository)(nil)

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{Sessions: make(map[string]*models.Session)}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if session.ID.IsZero() {
		session.ID = primitive.NewObjectID()
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	m.Sessions[session.Token] = session
	return session, nil
}

func (m *MockSessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	session, ok := m.Sessions[token]
	if !ok || session.DeletedAt != nil {
		return nil, nil
	}
	return session, nil
}

func (m *MockSessionRepository) SoftDeleteByToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	session, ok := m.Sessions[token]
	if !ok {
		return nil
	}
	now := time.Now()
	session.DeletedAt = &now
	session.UpdatedAt = now
	return nil
}

package mocks

import (
	"context"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/service"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, username, password, ip string) (string, error)
	AuthenticateFunc func(ctx context.Context, token string) error
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, username, password, ip string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password, ip)
	}
	return "test-token", nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) error {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return nil
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	CreateFunc   func(ctx context.Context, input service.CreateArticleInput) (*models.Article, error)
	ListFunc     func(ctx context.Context, q service.ListQuery) ([]*models.ArticleSummary, error)
	GetFunc      func(ctx context.Context, id string) (*models.Article, error)
	UpdateFunc   func(ctx context.Context, id string, input service.UpdateArticleInput) error
	SyncTagsFunc func(ctx context.Context, id string, push, pull []string) ([]string, error)
	PublishFunc  func(ctx context.Context, states map[string]bool) ([]string, error)
	DeleteFunc   func(ctx context.Context, id string) error
}

var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) Create(ctx context.Context, input service.CreateArticleInput) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) List(ctx context.Context, q service.ListQuery) ([]*models.ArticleSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return []*models.ArticleSummary{}, nil
}

func (m *MockArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) Update(ctx context.Context, id string, input service.UpdateArticleInput) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	return nil
}

func (m *MockArticleService) SyncTags(ctx context.Context, id string, push, pull []string) ([]string, error) {
	if m.SyncTagsFunc != nil {
		return m.SyncTagsFunc(ctx, id, push, pull)
	}
	return []string{}, nil
}

func (m *MockArticleService) Publish(ctx context.Context, states map[string]bool) ([]string, error) {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, states)
	}
	return []string{}, nil
}

func (m *MockArticleService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTagService is a mock implementation of TagService
type MockTagService struct {
	CreateAllFunc func(ctx context.Context, names []string) ([]*models.Tag, error)
	ListFunc      func(ctx context.Context, q service.ListQuery, articleFields []string) ([]*service.TagView, error)
	GetFunc       func(ctx context.Context, id string, q service.ListQuery, articleFields []string) (*service.TagDetail, error)
	RenameFunc    func(ctx context.Context, id, name string) error
	DeleteFunc    func(ctx context.Context, id string) error
}

var _ service.TagService = (*MockTagService)(nil)

func (m *MockTagService) CreateAll(ctx context.Context, names []string) ([]*models.Tag, error) {
	if m.CreateAllFunc != nil {
		return m.CreateAllFunc(ctx, names)
	}
	return []*models.Tag{}, nil
}

func (m *MockTagService) List(ctx context.Context, q service.ListQuery, articleFields []string) ([]*service.TagView, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q, articleFields)
	}
	return []*service.TagView{}, nil
}

func (m *MockTagService) Get(ctx context.Context, id string, q service.ListQuery, articleFields []string) (*service.TagDetail, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id, q, articleFields)
	}
	return &service.TagDetail{}, nil
}

func (m *MockTagService) Rename(ctx context.Context, id, name string) error {
	if m.RenameFunc != nil {
		return m.RenameFunc(ctx, id, name)
	}
	return nil
}

func (m *MockTagService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	CreateFunc func(ctx context.Context, articleID string, input service.CreateCommentInput) (*models.Comment, error)
	ListFunc   func(ctx context.Context, articleID string, q service.ListQuery) ([]*models.Comment, error)
	UpdateFunc func(ctx context.Context, id, context string) error
	DeleteFunc func(ctx context.Context, id string) error
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) Create(ctx context.Context, articleID string, input service.CreateCommentInput) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, articleID, input)
	}
	return &models.Comment{}, nil
}

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID string, q service.ListQuery) ([]*models.Comment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, articleID, q)
	}
	return []*models.Comment{}, nil
}

func (m *MockCommentService) Update(ctx context.Context, id, context string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, context)
	}
	return nil
}

func (m *MockCommentService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blog-backend-api/internal/api"
	"github.com/blog-backend-api/internal/config"
	"github.com/blog-backend-api/internal/mocks"
	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupTestRouter() (*gin.Engine, *mocks.MockAuthService, *mocks.MockArticleService, *mocks.MockTagService, *mocks.MockCommentService) {
	gin.SetMode(gin.TestMode)

	mockAuth := &mocks.MockAuthService{}
	mockArticle := &mocks.MockArticleService{}
	mockTag := &mocks.MockTagService{}
	mockComment := &mocks.MockCommentService{}

	services := &service.Services{
		Auth:    mockAuth,
		Article: mockArticle,
		Tag:     mockTag,
		Comment: mockComment,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, cfg, log)

	return router, mockAuth, mockArticle, mockTag, mockComment
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(api.TokenHeader, "test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return response
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decodeBody(t, w)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "blog-backend-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestLoginSuccess(t *testing.T) {
	router, mockAuth, _, _, _ := setupTestRouter()
	mockAuth.LoginFunc = func(ctx context.Context, username, password, ip string) (string, error) {
		if username != "rukeith" || password != "secret" {
			t.Errorf("Unexpected credentials %s/%s", username, password)
		}
		return "signed-token", nil
	}

	w := doJSON(router, "POST", "/login", map[string]string{
		"username": "rukeith",
		"password": "secret",
	})

	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected status 202, got %d: %s", w.Code, w.Body.String())
	}

	response := decodeBody(t, w)
	if response["message"] != "Login success" {
		t.Errorf("Expected login success message, got %v", response["message"])
	}
	data := response["data"].(map[string]interface{})
	if data["token"] != "signed-token" {
		t.Errorf("Expected token in data, got %v", data["token"])
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, mockAuth, _, _, _ := setupTestRouter()
	mockAuth.LoginFunc = func(ctx context.Context, username, password, ip string) (string, error) {
		return "", service.ErrInvalidCredentials
	}

	w := doJSON(router, "POST", "/login", map[string]string{
		"username": "rukeith",
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", w.Code)
	}

	response := decodeBody(t, w)
	if response["message"] != "Username or password is invalid" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	if response["level"] != "warning" {
		t.Errorf("Expected warning level, got %v", response["level"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/login", map[string]string{"username": "rukeith"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	response := decodeBody(t, w)
	if response["message"] != "Request parameters are invalid" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestLoginTranslatesToChinese(t *testing.T) {
	router, mockAuth, _, _, _ := setupTestRouter()
	mockAuth.LoginFunc = func(ctx context.Context, username, password, ip string) (string, error) {
		return "", service.ErrInvalidCredentials
	}

	data, _ := json.Marshal(map[string]string{"username": "a", "password": "b"})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "zh-TW")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] == "Username or password is invalid" {
		t.Errorf("Expected translated message, got the default one")
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router, mockAuth, _, _, _ := setupTestRouter()
	mockAuth.AuthenticateFunc = func(ctx context.Context, token string) error {
		if token != "" {
			t.Errorf("Expected empty token, got %q", token)
		}
		return service.ErrSessionNotFound
	}

	req := httptest.NewRequest("POST", "/articles", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Access token is invalid" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router, mockAuth, _, _, _ := setupTestRouter()
	mockAuth.AuthenticateFunc = func(ctx context.Context, token string) error {
		return &service.TokenInvalidError{Cause: errors.New("token is expired")}
	}

	w := doJSON(router, "POST", "/articles", map[string]string{})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Access token verify failed" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	if response["extra"] != "token is expired" {
		t.Errorf("Expected verification failure in extra, got %v", response["extra"])
	}
}

func TestAuthMiddlewareStoreError(t *testing.T) {
	router, mockAuth, _, _, _ := setupTestRouter()
	mockAuth.AuthenticateFunc = func(ctx context.Context, token string) error {
		return errors.New("connection reset")
	}

	w := doJSON(router, "POST", "/articles", map[string]string{})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Authentication processing failed" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestCreateArticle(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	articleID := primitive.NewObjectID()
	mockArticle.CreateFunc = func(ctx context.Context, input service.CreateArticleInput) (*models.Article, error) {
		if input.Title != "First post" {
			t.Errorf("Unexpected title %q", input.Title)
		}
		if len(input.Tags) != 1 {
			t.Errorf("Expected 1 tag, got %d", len(input.Tags))
		}
		return &models.Article{
			ID:      articleID,
			Title:   input.Title,
			Begins:  input.Begins,
			Content: input.Content,
			URL:     "first-post",
		}, nil
	}

	w := doJSON(router, "POST", "/articles", map[string]interface{}{
		"title":   "First post",
		"begins":  "It begins",
		"content": "Hello world",
		"url":     "first-post",
		"tags":    []string{primitive.NewObjectID().Hex()},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	response := decodeBody(t, w)
	if response["message"] != "Create article success" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	data := response["data"].(map[string]interface{})
	if data["url"] != "first-post" {
		t.Errorf("Expected article url in data, got %v", data["url"])
	}
}

func TestCreateArticleURLConflict(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	mockArticle.CreateFunc = func(ctx context.Context, input service.CreateArticleInput) (*models.Article, error) {
		return nil, service.ErrURLConflict
	}

	w := doJSON(router, "POST", "/articles", map[string]interface{}{
		"title":   "Duplicate",
		"begins":  "b",
		"content": "c",
		"url":     "taken",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Article url already been used" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	if response["level"] != "warning" {
		t.Errorf("Expected warning level, got %v", response["level"])
	}
}

func TestCreateArticleMissingContent(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	called := false
	mockArticle.CreateFunc = func(ctx context.Context, input service.CreateArticleInput) (*models.Article, error) {
		called = true
		return nil, nil
	}

	w := doJSON(router, "POST", "/articles", map[string]interface{}{"title": "No body"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Errorf("Service should not be called on binding failure")
	}
}

func TestGetArticleNotFound(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	mockArticle.GetFunc = func(ctx context.Context, id string) (*models.Article, error) {
		return nil, service.ErrArticleNotFound
	}

	w := doJSON(router, "GET", "/articles/"+primitive.NewObjectID().Hex(), nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Article is not existed" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestGetArticleStoreError(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	mockArticle.GetFunc = func(ctx context.Context, id string) (*models.Article, error) {
		return nil, errors.New("cursor timeout")
	}

	w := doJSON(router, "GET", "/articles/"+primitive.NewObjectID().Hex(), nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Get single article processing failed" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	if response["extra"] != "cursor timeout" {
		t.Errorf("Expected raw cause in extra outside release mode, got %v", response["extra"])
	}
}

func TestUpdateArticleEmptyBody(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	mockArticle.UpdateFunc = func(ctx context.Context, id string, input service.UpdateArticleInput) error {
		return service.ErrEmptyUpdate
	}

	w := doJSON(router, "PUT", "/articles/"+primitive.NewObjectID().Hex(), map[string]interface{}{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Update article without any parameters" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestSyncTagsPartialFailure(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	missing := primitive.NewObjectID().Hex()
	mockArticle.SyncTagsFunc = func(ctx context.Context, id string, push, pull []string) ([]string, error) {
		return []string{"Server Error: tag " + missing + " is not existed"}, nil
	}

	w := doJSON(router, "PUT", "/articles/"+primitive.NewObjectID().Hex()+"/tags", map[string]interface{}{
		"push": []string{missing},
		"pull": []string{},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Update article tags success" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	data := response["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("Expected 1 collected failure, got %d", len(data))
	}
	if data[0] != "Server Error: tag "+missing+" is not existed" {
		t.Errorf("Unexpected failure string %v", data[0])
	}
}

func TestSyncTagsAllApplied(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	mockArticle.SyncTagsFunc = func(ctx context.Context, id string, push, pull []string) ([]string, error) {
		return []string{}, nil
	}

	w := doJSON(router, "PUT", "/articles/"+primitive.NewObjectID().Hex()+"/tags", map[string]interface{}{
		"push": []string{primitive.NewObjectID().Hex()},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if _, ok := response["data"]; ok {
		t.Errorf("Expected data omitted when every tag applied, got %v", response["data"])
	}
}

func TestPublishArticles(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	var captured map[string]bool
	mockArticle.PublishFunc = func(ctx context.Context, states map[string]bool) ([]string, error) {
		captured = states
		return []string{}, nil
	}

	id1 := primitive.NewObjectID().Hex()
	id2 := primitive.NewObjectID().Hex()
	w := doJSON(router, "PUT", "/articles/publish/blog", map[string]bool{
		id1: true,
		id2: false,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(captured) != 2 || captured[id1] != true || captured[id2] != false {
		t.Errorf("Publish states not forwarded: %v", captured)
	}
	response := decodeBody(t, w)
	if response["message"] != "Publish articles success" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestDeleteArticle(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	deleted := ""
	mockArticle.DeleteFunc = func(ctx context.Context, id string) error {
		deleted = id
		return nil
	}

	id := primitive.NewObjectID().Hex()
	w := doJSON(router, "DELETE", "/articles/"+id, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if deleted != id {
		t.Errorf("Expected delete of %s, got %s", id, deleted)
	}
}

func TestCreateTags(t *testing.T) {
	router, _, _, mockTag, _ := setupTestRouter()
	mockTag.CreateAllFunc = func(ctx context.Context, names []string) ([]*models.Tag, error) {
		tags := make([]*models.Tag, len(names))
		for i, name := range names {
			tags[i] = &models.Tag{ID: primitive.NewObjectID(), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
		}
		return tags, nil
	}

	w := doJSON(router, "POST", "/tags", map[string]interface{}{
		"names": []string{"go", "mongodb"},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	response := decodeBody(t, w)
	if response["message"] != "Create tags success" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	data := response["data"].([]interface{})
	if len(data) != 2 {
		t.Errorf("Expected 2 tags, got %d", len(data))
	}
}

func TestCreateTagsEmptyNames(t *testing.T) {
	router, _, _, mockTag, _ := setupTestRouter()
	mockTag.CreateAllFunc = func(ctx context.Context, names []string) ([]*models.Tag, error) {
		return nil, service.ErrEmptyNames
	}

	w := doJSON(router, "POST", "/tags", map[string]interface{}{"names": []string{""}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Create tags with empty names" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestGetTagWithArticleFields(t *testing.T) {
	router, _, _, mockTag, _ := setupTestRouter()
	var capturedFields []string
	mockTag.GetFunc = func(ctx context.Context, id string, q service.ListQuery, articleFields []string) (*service.TagDetail, error) {
		capturedFields = articleFields
		return &service.TagDetail{ID: primitive.NewObjectID(), Name: "go"}, nil
	}

	w := doJSON(router, "GET", "/tags/"+primitive.NewObjectID().Hex()+"?articleFields=title,url", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if len(capturedFields) != 2 || capturedFields[0] != "title" || capturedFields[1] != "url" {
		t.Errorf("articleFields not parsed: %v", capturedFields)
	}
}

func TestRenameTagNotFound(t *testing.T) {
	router, _, _, mockTag, _ := setupTestRouter()
	mockTag.RenameFunc = func(ctx context.Context, id, name string) error {
		return service.ErrTagNotFound
	}

	w := doJSON(router, "PATCH", "/tags/"+primitive.NewObjectID().Hex(), map[string]string{"name": "new"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Tag is not existed" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestCreateCommentWithoutToken(t *testing.T) {
	// Comment creation is a public endpoint; no token required.
	router, mockAuth, _, _, mockComment := setupTestRouter()
	mockAuth.AuthenticateFunc = func(ctx context.Context, token string) error {
		t.Errorf("Authenticate should not be called for public endpoints")
		return nil
	}
	mockComment.CreateFunc = func(ctx context.Context, articleID string, input service.CreateCommentInput) (*models.Comment, error) {
		return &models.Comment{ID: primitive.NewObjectID(), Username: input.Username, Context: input.Context}, nil
	}

	data, _ := json.Marshal(map[string]string{"username": "guest", "context": "nice post"})
	req := httptest.NewRequest("POST", "/articles/"+primitive.NewObjectID().Hex()+"/comments", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	response := decodeBody(t, w)
	if response["message"] != "Create comment success" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestCreateCommentArticleMissing(t *testing.T) {
	router, _, _, _, mockComment := setupTestRouter()
	mockComment.CreateFunc = func(ctx context.Context, articleID string, input service.CreateCommentInput) (*models.Comment, error) {
		return nil, service.ErrArticleNotFound
	}

	w := doJSON(router, "POST", "/articles/"+primitive.NewObjectID().Hex()+"/comments", map[string]string{
		"username": "guest",
		"context":  "hello",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Article is not existed" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestUpdateCommentNotFound(t *testing.T) {
	router, _, _, _, mockComment := setupTestRouter()
	mockComment.UpdateFunc = func(ctx context.Context, id, context string) error {
		return service.ErrCommentNotFound
	}

	w := doJSON(router, "PUT", "/comments/"+primitive.NewObjectID().Hex(), map[string]string{"context": "edited"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	response := decodeBody(t, w)
	if response["message"] != "Comment is not existed" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestListArticlesForwardsQuery(t *testing.T) {
	router, _, mockArticle, _, _ := setupTestRouter()
	var captured service.ListQuery
	mockArticle.ListFunc = func(ctx context.Context, q service.ListQuery) ([]*models.ArticleSummary, error) {
		captured = q
		return []*models.ArticleSummary{}, nil
	}

	w := doJSON(router, "GET", "/articles?limit=10&offset=5&sortby=updatedAt&direct=asc", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if captured.Limit != 10 || captured.Offset != 5 || captured.SortBy != "updatedAt" || captured.Direct != "asc" {
		t.Errorf("Query not forwarded: %+v", captured)
	}
}

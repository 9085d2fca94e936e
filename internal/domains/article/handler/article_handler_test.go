package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/internal/domains/article"
	"animalovers-backend/internal/domains/article/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRepo struct {
	created []*article.Article
	listed  []*article.Filter
}

func (f *fakeRepo) Create(ctx context.Context, entity *article.Article) (*article.Article, error) {
	f.created = append(f.created, entity)
	return entity, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	return nil, article.ErrNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	return nil, article.ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter *article.Filter) ([]article.Article, error) {
	f.listed = append(f.listed, filter)
	return []article.Article{}, nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, req *article.UpdateArticleReq) (*article.Article, error) {
	return nil, article.ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return article.ErrNotFound
}

func setup() (*fakeRepo, *gin.Engine) {
	repo := &fakeRepo{}
	h := NewArticleHandler(service.NewArticleService(repo))

	router := gin.New()
	router.GET("/articles", h.PublicList)
	router.POST("/admin/articles", h.Create)
	return repo, router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateArticleMissingTitle(t *testing.T) {
	repo, router := setup()

	w := postJSON(router, "/admin/articles", gin.H{"content": "body text"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created, "invalid payload must not create a record")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestCreateArticleMissingContent(t *testing.T) {
	repo, router := setup()

	w := postJSON(router, "/admin/articles", gin.H{"title": "Adoption day"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}

func TestCreateArticleValid(t *testing.T) {
	repo, router := setup()

	w := postJSON(router, "/admin/articles", gin.H{
		"title":   "Adoption day",
		"content": "Come meet the dogs.",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "adoption-day", repo.created[0].Slug)
	assert.Equal(t, article.StatusDraft, repo.created[0].Status)
}

func TestPublicListForcesPublished(t *testing.T) {
	repo, router := setup()

	req := httptest.NewRequest(http.MethodGet, "/articles?status=draft", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.listed, 1)
	require.NotNil(t, repo.listed[0].Status)
	assert.Equal(t, article.StatusPublished, *repo.listed[0].Status)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
}

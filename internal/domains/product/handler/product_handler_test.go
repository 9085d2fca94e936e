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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/internal/domains/product"
	"animalovers-backend/internal/domains/product/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRepo struct {
	created []*product.Product
	listed  []*product.Filter
}

func (f *fakeRepo) Create(ctx context.Context, entity *product.Product) (*product.Product, error) {
	f.created = append(f.created, entity)
	return entity, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return nil, product.ErrNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	return nil, product.ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter *product.Filter) ([]product.Product, error) {
	f.listed = append(f.listed, filter)
	return []product.Product{}, nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, req *product.UpdateProductReq) (*product.Product, error) {
	return nil, product.ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return product.ErrNotFound
}

func setup() (*fakeRepo, *gin.Engine) {
	repo := &fakeRepo{}
	h := NewProductHandler(service.NewProductService(repo))

	router := gin.New()
	router.GET("/products", h.PublicList)
	router.POST("/admin/products", h.Create)
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

func TestCreateProductValid(t *testing.T) {
	repo, router := setup()

	w := postJSON(router, "/admin/products", gin.H{
		"name":  "Croquettes premium",
		"price": "24.99",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].Price.Equal(decimal.RequireFromString("24.99")))
	assert.Equal(t, "croquettes-premium", repo.created[0].Slug)
	assert.True(t, repo.created[0].IsActive)
}

func TestCreateProductNonPositivePrice(t *testing.T) {
	repo, router := setup()

	for _, price := range []string{"0", "-5"} {
		w := postJSON(router, "/admin/products", gin.H{
			"name":  "Croquettes",
			"price": price,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "price %s must be rejected", price)
	}
	assert.Empty(t, repo.created)
}

func TestCreateProductMissingName(t *testing.T) {
	repo, router := setup()

	w := postJSON(router, "/admin/products", gin.H{"price": "9.99"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}

func TestPublicListForcesActive(t *testing.T) {
	repo, router := setup()

	req := httptest.NewRequest(http.MethodGet, "/products?active=false", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.listed, 1)
	require.NotNil(t, repo.listed[0].IsActive)
	assert.True(t, *repo.listed[0].IsActive)
}

func TestListPaginationBoundaries(t *testing.T) {
	_, router := setup()

	for query, wantCode := range map[string]int{
		"limit=1":    http.StatusOK,
		"limit=100":  http.StatusOK,
		"limit=0":    http.StatusBadRequest,
		"limit=101":  http.StatusBadRequest,
		"offset=-1":  http.StatusBadRequest,
		"offset=200": http.StatusOK,
	} {
		req := httptest.NewRequest(http.MethodGet, "/products?"+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, wantCode, w.Code, "query %q", query)
	}
}

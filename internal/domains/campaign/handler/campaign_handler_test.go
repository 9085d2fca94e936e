package handler

import (
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

	"animalovers-backend/internal/domains/campaign"
	"animalovers-backend/internal/domains/campaign/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRepo struct {
	items  []campaign.Campaign
	listed []*campaign.Filter
}

func (f *fakeRepo) Create(ctx context.Context, entity *campaign.Campaign) (*campaign.Campaign, error) {
	return entity, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	return nil, campaign.ErrNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*campaign.Campaign, error) {
	return nil, campaign.ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter *campaign.Filter) ([]campaign.Campaign, error) {
	f.listed = append(f.listed, filter)
	out := []campaign.Campaign{}
	for _, item := range f.items {
		if filter.ActiveOnly && !item.IsActive {
			continue
		}
		if filter.Featured != nil && item.IsFeatured != *filter.Featured {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, req *campaign.UpdateCampaignReq) (*campaign.Campaign, error) {
	return nil, campaign.ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return campaign.ErrNotFound
}

func (f *fakeRepo) IncrementAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return nil
}

func setup(items ...campaign.Campaign) (*fakeRepo, *gin.Engine) {
	repo := &fakeRepo{items: items}
	h := NewCampaignHandler(service.NewCampaignService(repo))

	router := gin.New()
	router.GET("/campaigns", h.PublicList)
	return repo, router
}

func TestPublicListFeaturedEmptyEnvelope(t *testing.T) {
	_, router := setup(campaign.Campaign{IsActive: true, IsFeatured: false})

	req := httptest.NewRequest(http.MethodGet, "/campaigns?featured=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
		Count   int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data, "empty list must serialize as [], not null")
	assert.Empty(t, body.Data)
	assert.Equal(t, 0, body.Count)
}

func TestPublicListFiltersInactive(t *testing.T) {
	repo, router := setup(
		campaign.Campaign{ID: uuid.New(), IsActive: true},
		campaign.Campaign{ID: uuid.New(), IsActive: false},
	)

	req := httptest.NewRequest(http.MethodGet, "/campaigns", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.listed, 1)
	assert.True(t, repo.listed[0].ActiveOnly)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}

func TestPublicListBadFeaturedParam(t *testing.T) {
	_, router := setup()

	req := httptest.NewRequest(http.MethodGet, "/campaigns?featured=banana", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

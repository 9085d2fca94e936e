package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/internal/domains/stats"
)

type fakeRepo struct {
	articles  int64
	products  int64
	campaigns int64
	donations decimal.Decimal

	articleErr error
}

func (f *fakeRepo) CountArticles(ctx context.Context) (int64, error) {
	return f.articles, f.articleErr
}

func (f *fakeRepo) CountProducts(ctx context.Context) (int64, error) {
	return f.products, nil
}

func (f *fakeRepo) CountActiveCampaigns(ctx context.Context) (int64, error) {
	return f.campaigns, nil
}

func (f *fakeRepo) SumCompletedDonations(ctx context.Context) (decimal.Decimal, error) {
	return f.donations, nil
}

var _ stats.Repository = (*fakeRepo)(nil)

func TestOverviewAggregates(t *testing.T) {
	repo := &fakeRepo{
		articles:  12,
		products:  34,
		campaigns: 2,
		donations: decimal.NewFromInt(150000),
	}
	svc := NewStatsService(repo)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), overview.ArticleCount)
	assert.Equal(t, int64(34), overview.ProductCount)
	assert.Equal(t, int64(2), overview.ActiveCampaigns)
	assert.True(t, overview.TotalDonations.Equal(decimal.NewFromInt(150000)))
}

func TestOverviewAnyFailureFailsAll(t *testing.T) {
	repo := &fakeRepo{articleErr: errors.New("timeout")}
	svc := NewStatsService(repo)

	_, err := svc.Overview(context.Background())
	assert.Error(t, err)
}

package stats

import (
	"context"

	"github.com/shopspring/decimal"
)

// Overview is the back-office dashboard snapshot.
type Overview struct {
	ArticleCount    int64           `json:"article_count"`
	ProductCount    int64           `json:"product_count"`
	ActiveCampaigns int64           `json:"active_campaigns"`
	TotalDonations  decimal.Decimal `json:"total_donations"`
}

// Repository exposes the four independent aggregates the dashboard
// shows.
type Repository interface {
	CountArticles(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountActiveCampaigns(ctx context.Context) (int64, error)
	SumCompletedDonations(ctx context.Context) (decimal.Decimal, error)
}

type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

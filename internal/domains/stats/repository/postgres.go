package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"animalovers-backend/internal/domains/stats"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) stats.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CountArticles(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM articles`)
}

func (r *postgresRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *postgresRepository) CountActiveCampaigns(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM donation_campaigns WHERE is_active = true`)
}

func (r *postgresRepository) SumCompletedDonations(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM donations WHERE payment_status = 'completed'`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum donations: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"animalovers-backend/internal/domains/campaign"
	"animalovers-backend/pkg/cache"
	"animalovers-backend/pkg/logger"
)

const (
	campaignColumns = `id, title, slug, description, target_amount, current_amount, currency,
	is_active, is_featured, is_completed, start_date, end_date, created_at, updated_at`

	listCachePrefix = "campaigns:list:"
	cacheTTL        = time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) campaign.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func (r *postgresRepository) Create(ctx context.Context, entity *campaign.Campaign) (*campaign.Campaign, error) {
	const query = `
		INSERT INTO donation_campaigns (id, title, slug, description, target_amount, current_amount,
			currency, is_active, is_featured, is_completed, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + campaignColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Title, entity.Slug, entity.Description,
		entity.TargetAmount, entity.CurrentAmount, entity.Currency,
		entity.IsActive, entity.IsFeatured, entity.IsCompleted,
		entity.StartDate, entity.EndDate, entity.CreatedAt, entity.UpdatedAt,
	)

	created, err := scanCampaign(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "donation_campaigns_slug_key" {
			return nil, campaign.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	const query = `SELECT ` + campaignColumns + ` FROM donation_campaigns WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*campaign.Campaign, error) {
	const query = `SELECT ` + campaignColumns + ` FROM donation_campaigns WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg interface{}) (*campaign.Campaign, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	entity, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, campaign.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *campaign.Filter) ([]campaign.Campaign, error) {
	cacheKey := r.listCacheKey(filter)
	if cacheKey != "" && r.cache != nil {
		var cached []campaign.Campaign
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	where := []string{}
	args := []interface{}{}
	idx := 1

	if filter.ActiveOnly {
		where = append(where, "is_active = true")
	}
	if filter.Featured != nil {
		where = append(where, fmt.Sprintf("is_featured = $%d", idx))
		args = append(args, *filter.Featured)
		idx++
	}

	query := `SELECT ` + campaignColumns + ` FROM donation_campaigns`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, filter.EffectiveLimit(), filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	items := []campaign.Campaign{}
	for rows.Next() {
		entity, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		items = append(items, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if cacheKey != "" && r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, items, cacheTTL); err != nil {
			logger.Error("failed to cache campaign list", err)
		}
	}
	return items, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *campaign.UpdateCampaignReq) (*campaign.Campaign, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Slug != nil {
		addSet("slug", *req.Slug)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.TargetAmount != nil {
		addSet("target_amount", *req.TargetAmount)
	}
	if req.Currency != nil {
		addSet("currency", *req.Currency)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}
	if req.IsFeatured != nil {
		addSet("is_featured", *req.IsFeatured)
	}
	if req.IsCompleted != nil {
		addSet("is_completed", *req.IsCompleted)
	}
	if req.StartDate != nil {
		addSet("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		addSet("end_date", *req.EndDate)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	addSet("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE donation_campaigns SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, campaignColumns,
	)

	row := r.pool.QueryRow(ctx, query, args...)
	updated, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, campaign.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "donation_campaigns_slug_key" {
			return nil, campaign.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM donation_campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return campaign.ErrNotFound
	}

	r.invalidate(ctx)
	return nil
}

// IncrementAmount performs the addition inside the UPDATE itself, never
// read-modify-write across round trips. The same statement flips
// is_completed once the target is reached.
func (r *postgresRepository) IncrementAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	const query = `
		UPDATE donation_campaigns
		SET current_amount = current_amount + $1,
		    is_completed = (current_amount + $1) >= target_amount,
		    updated_at = now()
		WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("failed to increment campaign amount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return campaign.ErrNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) listCacheKey(filter *campaign.Filter) string {
	// Only the hot public queries are cached. The limit is part of the
	// key so a page cached for one size is never served for another.
	if !filter.ActiveOnly || filter.Offset != 0 {
		return ""
	}
	key := fmt.Sprintf("%sactive:limit=%d", listCachePrefix, filter.EffectiveLimit())
	if filter.Featured != nil {
		key = fmt.Sprintf("%s:featured=%t", key, *filter.Featured)
	}
	return key
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeletePattern(ctx, listCachePrefix+"*"); err != nil {
		logger.Error("failed to invalidate campaign cache", err)
	}
}

func scanCampaign(row pgx.Row) (*campaign.Campaign, error) {
	entity := &campaign.Campaign{}
	err := row.Scan(
		&entity.ID, &entity.Title, &entity.Slug, &entity.Description,
		&entity.TargetAmount, &entity.CurrentAmount, &entity.Currency,
		&entity.IsActive, &entity.IsFeatured, &entity.IsCompleted,
		&entity.StartDate, &entity.EndDate, &entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

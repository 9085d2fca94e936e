package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"animalovers-backend/internal/domains/settings"
	"animalovers-backend/pkg/cache"
	"animalovers-backend/pkg/database"
	"animalovers-backend/pkg/logger"
)

const (
	settingsCacheKey = "settings:site"
	settingsCacheTTL = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) settings.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func (r *postgresRepository) Get(ctx context.Context) (*settings.Settings, error) {
	if r.cache != nil {
		cached := &settings.Settings{}
		if err := r.cache.Get(ctx, settingsCacheKey, cached); err == nil {
			return cached, nil
		}
	}

	const query = `SELECT data, version, updated_at FROM site_settings WHERE id = 1`

	entity := &settings.Settings{}
	err := r.pool.QueryRow(ctx, query).Scan(&entity.Data, &entity.Version, &entity.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, settingsCacheKey, entity, settingsCacheTTL); err != nil {
			logger.Error("failed to cache settings", err)
		}
	}
	return entity, nil
}

// Update is a compare-and-swap on the version column. A zero-row UPDATE
// is disambiguated into not-initialized versus stale-version; the probe
// runs in the same transaction so the row cannot appear in between.
func (r *postgresRepository) Update(ctx context.Context, req *settings.UpdateSettingsReq) (*settings.Settings, error) {
	const query = `
		UPDATE site_settings
		SET data = $1, version = version + 1, updated_at = now()
		WHERE id = 1 AND version = $2
		RETURNING data, version, updated_at`

	entity := &settings.Settings{}
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, req.Data, req.Version).
			Scan(&entity.Data, &entity.Version, &entity.UpdatedAt)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to update settings: %w", err)
		}

		var exists bool
		if probeErr := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM site_settings WHERE id = 1)`,
		).Scan(&exists); probeErr != nil {
			return fmt.Errorf("failed to update settings: %w", probeErr)
		}
		if !exists {
			return settings.ErrNotFound
		}
		return settings.ErrVersionConflict
	})
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, settingsCacheKey); err != nil {
			logger.Error("failed to invalidate settings cache", err)
		}
	}
	return entity, nil
}

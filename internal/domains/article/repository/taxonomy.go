package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"animalovers-backend/internal/domains/article"
)

// Table names accepted by NewTaxonomyRepository. The table name is
// interpolated into SQL, so it must come from this closed set.
const (
	TableArticleCategories = "article_categories"
	TableArticleTags       = "article_tags"
)

type taxonomyRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewTaxonomyRepository(pool *pgxpool.Pool, table string) article.TaxonomyRepository {
	if table != TableArticleCategories && table != TableArticleTags {
		panic(fmt.Sprintf("unknown taxonomy table %q", table))
	}
	return &taxonomyRepository{pool: pool, table: table}
}

func (r *taxonomyRepository) Create(ctx context.Context, name, slug string, color *string) (*article.TaxonomyItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, slug, color, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, color, created_at`, r.table)

	item := &article.TaxonomyItem{}
	err := r.pool.QueryRow(ctx, query, uuid.New(), name, slug, color, time.Now()).
		Scan(&item.ID, &item.Name, &item.Slug, &item.Color, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s row: %w", r.table, err)
	}
	return item, nil
}

func (r *taxonomyRepository) List(ctx context.Context) ([]article.TaxonomyItem, error) {
	query := fmt.Sprintf(`SELECT id, name, slug, color, created_at FROM %s ORDER BY name`, r.table)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	items := []article.TaxonomyItem{}
	for rows.Next() {
		item := article.TaxonomyItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &item.Color, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *taxonomyRepository) Update(ctx context.Context, id uuid.UUID, req *article.TaxonomyReq) (*article.TaxonomyItem, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET name = $1, slug = $2, color = $3
		WHERE id = $4
		RETURNING id, name, slug, color, created_at`, r.table)

	item := &article.TaxonomyItem{}
	err := r.pool.QueryRow(ctx, query, req.Name, req.Slug, req.Color, id).
		Scan(&item.ID, &item.Name, &item.Slug, &item.Color, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrTaxonomyNotFound
		}
		return nil, fmt.Errorf("failed to update %s row: %w", r.table, err)
	}
	return item, nil
}

func (r *taxonomyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s row: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrTaxonomyNotFound
	}
	return nil
}

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

	"animalovers-backend/internal/domains/category"
	"animalovers-backend/pkg/cache"
	"animalovers-backend/pkg/logger"
)

const (
	categoryColumns = `id, name, slug, parent_id, species, sort_order, is_active, created_at, updated_at`
	treeCacheKey    = "categories:tree"
	cacheTTL        = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) category.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func (r *postgresRepository) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		INSERT INTO product_categories (id, name, slug, parent_id, species, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + categoryColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Name, entity.Slug, entity.ParentID,
		entity.Species, entity.SortOrder, entity.IsActive,
		entity.CreatedAt, entity.UpdatedAt,
	)

	created, err := scanCategory(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.ConstraintName {
			case "product_categories_slug_key":
				return nil, category.ErrDuplicateSlug
			case "product_categories_parent_id_fkey":
				return nil, category.ErrParentNotFound
			}
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM product_categories WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM product_categories WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg interface{}) (*category.Category, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	entity, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) ListAll(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	var cached []category.Category
	if activeOnly && r.cache != nil {
		if err := r.cache.Get(ctx, treeCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	query := `SELECT ` + categoryColumns + ` FROM product_categories`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY sort_order, name`

	items, err := r.list(ctx, query)
	if err != nil {
		return nil, err
	}

	if activeOnly && r.cache != nil {
		if err := r.cache.Set(ctx, treeCacheKey, items, cacheTTL); err != nil {
			logger.Error("failed to cache category list", err)
		}
	}
	return items, nil
}

func (r *postgresRepository) ListRoots(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM product_categories WHERE parent_id IS NULL`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY sort_order, name`
	return r.list(ctx, query)
}

func (r *postgresRepository) ListChildren(ctx context.Context, parentID uuid.UUID, activeOnly bool) ([]category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM product_categories WHERE parent_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY sort_order, name`
	return r.list(ctx, query, parentID)
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]category.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	items := []category.Category{}
	for rows.Next() {
		entity, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		items = append(items, *entity)
	}
	return items, rows.Err()
}

// Update only touches the columns whose fields are non-nil, so a partial
// payload never overwrites stored values.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryReq) (*category.Category, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Slug != nil {
		addSet("slug", *req.Slug)
	}
	if req.ParentID != nil {
		addSet("parent_id", *req.ParentID)
	}
	if req.Species != nil {
		addSet("species", *req.Species)
	}
	if req.SortOrder != nil {
		addSet("sort_order", *req.SortOrder)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	addSet("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE product_categories SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, categoryColumns,
	)

	row := r.pool.QueryRow(ctx, query, args...)
	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "product_categories_slug_key" {
			return nil, category.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		// Foreign key violation: something still references this row.
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return category.ErrInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM product_categories WHERE parent_id = $1)
		    OR EXISTS (SELECT 1 FROM products WHERE category_id = $1)`

	var inUse bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&inUse); err != nil {
		return false, fmt.Errorf("failed to check category references: %w", err)
	}
	return inUse, nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, treeCacheKey); err != nil {
		logger.Error("failed to invalidate category cache", err)
	}
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	entity := &category.Category{}
	err := row.Scan(
		&entity.ID, &entity.Name, &entity.Slug, &entity.ParentID,
		&entity.Species, &entity.SortOrder, &entity.IsActive,
		&entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

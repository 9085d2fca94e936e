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

	"animalovers-backend/internal/domains/product"
)

const productColumns = `id, name, slug, description, price, stock_quantity, category_id, brand_id,
	species, is_featured, is_bestseller, is_new, is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) product.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *product.Product) (*product.Product, error) {
	const query = `
		INSERT INTO products (id, name, slug, description, price, stock_quantity, category_id, brand_id,
			species, is_featured, is_bestseller, is_new, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Name, entity.Slug, entity.Description, entity.Price,
		entity.StockQuantity, entity.CategoryID, entity.BrandID, entity.Species,
		entity.IsFeatured, entity.IsBestseller, entity.IsNew, entity.IsActive,
		entity.CreatedAt, entity.UpdatedAt,
	)

	created, err := scanProduct(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "products_slug_key" {
			return nil, product.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg interface{}) (*product.Product, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	entity, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return entity, nil
}

// List composes predicates incrementally: only filters that are present
// contribute a clause, so an empty filter matches everything.
func (r *postgresRepository) List(ctx context.Context, filter *product.Filter) ([]product.Product, error) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	addWhere := func(clause string, value interface{}) {
		where = append(where, fmt.Sprintf(clause, idx))
		args = append(args, value)
		idx++
	}

	if filter.CategoryID != nil {
		addWhere("category_id = $%d", *filter.CategoryID)
	}
	if filter.Species != nil {
		addWhere("species = $%d", *filter.Species)
	}
	if filter.Search != nil {
		// Case-insensitive substring match over the text columns.
		clause := fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx)
		where = append(where, clause)
		args = append(args, "%"+*filter.Search+"%")
		idx++
	}
	if filter.PriceMin != nil {
		addWhere("price >= $%d", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		addWhere("price <= $%d", *filter.PriceMax)
	}
	if filter.IsFeatured != nil {
		addWhere("is_featured = $%d", *filter.IsFeatured)
	}
	if filter.IsBestseller != nil {
		addWhere("is_bestseller = $%d", *filter.IsBestseller)
	}
	if filter.IsNew != nil {
		addWhere("is_new = $%d", *filter.IsNew)
	}
	if filter.IsActive != nil {
		addWhere("is_active = $%d", *filter.IsActive)
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, filter.EffectiveLimit(), filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	items := []product.Product{}
	for rows.Next() {
		entity, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		items = append(items, *entity)
	}
	return items, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *product.UpdateProductReq) (*product.Product, error) {
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
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Price != nil {
		addSet("price", *req.Price)
	}
	if req.StockQuantity != nil {
		addSet("stock_quantity", *req.StockQuantity)
	}
	if req.CategoryID != nil {
		addSet("category_id", *req.CategoryID)
	}
	if req.BrandID != nil {
		addSet("brand_id", *req.BrandID)
	}
	if req.Species != nil {
		addSet("species", *req.Species)
	}
	if req.IsFeatured != nil {
		addSet("is_featured", *req.IsFeatured)
	}
	if req.IsBestseller != nil {
		addSet("is_bestseller", *req.IsBestseller)
	}
	if req.IsNew != nil {
		addSet("is_new", *req.IsNew)
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
		`UPDATE products SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, productColumns,
	)

	row := r.pool.QueryRow(ctx, query, args...)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "products_slug_key" {
			return nil, product.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	entity := &product.Product{}
	err := row.Scan(
		&entity.ID, &entity.Name, &entity.Slug, &entity.Description, &entity.Price,
		&entity.StockQuantity, &entity.CategoryID, &entity.BrandID, &entity.Species,
		&entity.IsFeatured, &entity.IsBestseller, &entity.IsNew, &entity.IsActive,
		&entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

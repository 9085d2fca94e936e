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

	"animalovers-backend/internal/domains/article"
)

const articleColumns = `a.id, a.title, a.slug, a.content, a.excerpt, a.status, a.category_id, a.tags,
	a.species, a.age_range, a.author_id, a.published_at, a.created_at, a.updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) article.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *article.Article) (*article.Article, error) {
	const query = `
		INSERT INTO articles AS a (id, title, slug, content, excerpt, status, category_id, tags,
			species, age_range, author_id, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + articleColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Title, entity.Slug, entity.Content, entity.Excerpt,
		entity.Status, entity.CategoryID, entity.Tags, entity.Species,
		entity.AgeRange, entity.AuthorID, entity.PublishedAt,
		entity.CreatedAt, entity.UpdatedAt,
	)

	created, err := scanArticle(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "articles_slug_key" {
			return nil, article.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles a WHERE a.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles a WHERE a.slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg interface{}) (*article.Article, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	entity, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *article.Filter) ([]article.Article, error) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("a.status = $%d", idx))
		args = append(args, *filter.Status)
		idx++
	}
	if filter.CategorySlug != nil {
		// The public site filters by the category's slug, not its id.
		where = append(where, fmt.Sprintf(
			"a.category_id = (SELECT id FROM article_categories WHERE slug = $%d)", idx))
		args = append(args, *filter.CategorySlug)
		idx++
	}
	if filter.Species != nil {
		where = append(where, fmt.Sprintf("a.species = $%d", idx))
		args = append(args, *filter.Species)
		idx++
	}
	if filter.AgeRange != nil {
		where = append(where, fmt.Sprintf("a.age_range = $%d", idx))
		args = append(args, *filter.AgeRange)
		idx++
	}
	if filter.Search != nil {
		where = append(where, fmt.Sprintf("(a.title ILIKE $%d OR a.content ILIKE $%d)", idx, idx))
		args = append(args, "%"+*filter.Search+"%")
		idx++
	}

	query := `SELECT ` + articleColumns + ` FROM articles a`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY a.published_at DESC NULLS LAST, a.created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, filter.EffectiveLimit(), filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	items := []article.Article{}
	for rows.Next() {
		entity, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		items = append(items, *entity)
	}
	return items, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *article.UpdateArticleReq) (*article.Article, error) {
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
	if req.Content != nil {
		addSet("content", *req.Content)
	}
	if req.Excerpt != nil {
		addSet("excerpt", *req.Excerpt)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
		if *req.Status == article.StatusPublished {
			addSet("published_at", time.Now())
		}
	}
	if req.CategoryID != nil {
		addSet("category_id", *req.CategoryID)
	}
	if req.Tags != nil {
		addSet("tags", req.Tags)
	}
	if req.Species != nil {
		addSet("species", *req.Species)
	}
	if req.AgeRange != nil {
		addSet("age_range", *req.AgeRange)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	addSet("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE articles AS a SET %s WHERE a.id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, articleColumns,
	)

	row := r.pool.QueryRow(ctx, query, args...)
	updated, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrNotFound
	}
	return nil
}

func scanArticle(row pgx.Row) (*article.Article, error) {
	entity := &article.Article{}
	err := row.Scan(
		&entity.ID, &entity.Title, &entity.Slug, &entity.Content, &entity.Excerpt,
		&entity.Status, &entity.CategoryID, &entity.Tags, &entity.Species,
		&entity.AgeRange, &entity.AuthorID, &entity.PublishedAt,
		&entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

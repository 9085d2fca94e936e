package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"animalovers-backend/internal/domains/adoption"
)

const animalColumns = `id, name, category, age_range, description, image_url,
	adoption_fee, is_available, is_featured, reservations_count, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) adoption.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *adoption.Animal) (*adoption.Animal, error) {
	const query = `
		INSERT INTO adoption_animals (id, name, category, age_range, description, image_url,
			adoption_fee, is_available, is_featured, reservations_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + animalColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Name, entity.Category, entity.AgeRange,
		entity.Description, entity.ImageURL, entity.AdoptionFee,
		entity.IsAvailable, entity.IsFeatured, entity.ReservationsCount,
		entity.CreatedAt, entity.UpdatedAt,
	)

	created, err := scanAnimal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*adoption.Animal, error) {
	const query = `SELECT ` + animalColumns + ` FROM adoption_animals WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	entity, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, adoption.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *adoption.Filter) ([]adoption.Animal, error) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	if filter.AvailableOnly {
		where = append(where, "is_available = true")
	}
	if filter.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", idx))
		args = append(args, *filter.Category)
		idx++
	}
	if filter.AgeRange != nil {
		where = append(where, fmt.Sprintf("age_range = $%d", idx))
		args = append(args, *filter.AgeRange)
		idx++
	}
	if filter.IsFeatured != nil {
		where = append(where, fmt.Sprintf("is_featured = $%d", idx))
		args = append(args, *filter.IsFeatured)
		idx++
	}
	if filter.Search != nil {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+*filter.Search+"%")
		idx++
	}

	query := `SELECT ` + animalColumns + ` FROM adoption_animals`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, filter.EffectiveLimit(), filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	defer rows.Close()

	items := []adoption.Animal{}
	for rows.Next() {
		entity, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan animal: %w", err)
		}
		items = append(items, *entity)
	}
	return items, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *adoption.UpdateAnimalReq) (*adoption.Animal, error) {
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
	if req.Category != nil {
		addSet("category", *req.Category)
	}
	if req.AgeRange != nil {
		addSet("age_range", *req.AgeRange)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.ImageURL != nil {
		addSet("image_url", *req.ImageURL)
	}
	if req.AdoptionFee != nil {
		addSet("adoption_fee", *req.AdoptionFee)
	}
	if req.IsAvailable != nil {
		addSet("is_available", *req.IsAvailable)
	}
	if req.IsFeatured != nil {
		addSet("is_featured", *req.IsFeatured)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	addSet("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE adoption_animals SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, animalColumns,
	)

	row := r.pool.QueryRow(ctx, query, args...)
	updated, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, adoption.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM adoption_animals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adoption.ErrNotFound
	}
	return nil
}

// Reserve bumps the counter inside the UPDATE, so concurrent
// reservations never lose an increment.
func (r *postgresRepository) Reserve(ctx context.Context, id uuid.UUID) (*adoption.Animal, error) {
	const query = `
		UPDATE adoption_animals
		SET reservations_count = reservations_count + 1, updated_at = now()
		WHERE id = $1
		RETURNING ` + animalColumns

	row := r.pool.QueryRow(ctx, query, id)
	updated, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, adoption.ErrNotFound
		}
		return nil, fmt.Errorf("failed to reserve animal: %w", err)
	}
	return updated, nil
}

func scanAnimal(row pgx.Row) (*adoption.Animal, error) {
	entity := &adoption.Animal{}
	err := row.Scan(
		&entity.ID, &entity.Name, &entity.Category, &entity.AgeRange,
		&entity.Description, &entity.ImageURL, &entity.AdoptionFee,
		&entity.IsAvailable, &entity.IsFeatured, &entity.ReservationsCount,
		&entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

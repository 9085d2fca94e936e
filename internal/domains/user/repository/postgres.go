package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"animalovers-backend/internal/domains/user"
)

const userColumns = `id, email, first_name, last_name, role, is_active, password_hash, created_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return r.getOne(ctx, query, email)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	entity, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *user.Filter) ([]user.User, error) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	if filter.Role != nil {
		where = append(where, fmt.Sprintf("role = $%d", idx))
		args = append(args, *filter.Role)
		idx++
	}
	if filter.IsActive != nil {
		where = append(where, fmt.Sprintf("is_active = $%d", idx))
		args = append(args, *filter.IsActive)
		idx++
	}

	query := `SELECT ` + userColumns + ` FROM users`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, filter.EffectiveLimit(), filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	items := []user.User{}
	for rows.Next() {
		entity, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		items = append(items, *entity)
	}
	return items, rows.Err()
}

func scanUser(row pgx.Row) (*user.User, error) {
	entity := &user.User{}
	err := row.Scan(
		&entity.ID, &entity.Email, &entity.FirstName, &entity.LastName,
		&entity.Role, &entity.IsActive, &entity.PasswordHash, &entity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

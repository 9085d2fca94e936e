package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"animalovers-backend/internal/domains/donation"
)

const donationColumns = `id, amount, donor_email, donor_name, is_monthly, cause,
	payment_method, payment_status, campaign_id, transaction_id, created_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) donation.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *donation.Donation) (*donation.Donation, error) {
	const query = `
		INSERT INTO donations (id, amount, donor_email, donor_name, is_monthly, cause,
			payment_method, payment_status, campaign_id, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + donationColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Amount, entity.DonorEmail, entity.DonorName,
		entity.IsMonthly, entity.Cause, entity.PaymentMethod,
		entity.PaymentStatus, entity.CampaignID, entity.TransactionID,
		entity.CreatedAt,
	)

	created, err := scanDonation(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "donations_transaction_id_key" {
			return nil, donation.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	const query = `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	entity, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, donation.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *donation.Filter) ([]donation.Donation, error) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("payment_status = $%d", idx))
		args = append(args, *filter.Status)
		idx++
	}
	if filter.CampaignID != nil {
		where = append(where, fmt.Sprintf("campaign_id = $%d", idx))
		args = append(args, *filter.CampaignID)
		idx++
	}

	query := `SELECT ` + donationColumns + ` FROM donations`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, filter.EffectiveLimit(), filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer rows.Close()

	items := []donation.Donation{}
	for rows.Next() {
		entity, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		items = append(items, *entity)
	}
	return items, rows.Err()
}

func (r *postgresRepository) Stats(ctx context.Context) (*donation.Stats, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM donations
		WHERE payment_status = 'completed'`

	stats := &donation.Stats{}
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.TotalAmount, &stats.Count); err != nil {
		return nil, fmt.Errorf("failed to aggregate donations: %w", err)
	}
	return stats, nil
}

func scanDonation(row pgx.Row) (*donation.Donation, error) {
	entity := &donation.Donation{}
	err := row.Scan(
		&entity.ID, &entity.Amount, &entity.DonorEmail, &entity.DonorName,
		&entity.IsMonthly, &entity.Cause, &entity.PaymentMethod,
		&entity.PaymentStatus, &entity.CampaignID, &entity.TransactionID,
		&entity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

package campaign

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, entity *Campaign) (*Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	GetBySlug(ctx context.Context, slug string) (*Campaign, error)
	List(ctx context.Context, filter *Filter) ([]Campaign, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCampaignReq) (*Campaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementAmount adds amount to current_amount in one statement.
	// The addition happens server-side so concurrent donations to the
	// same campaign never lose updates.
	IncrementAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

type Service interface {
	Create(ctx context.Context, req *CreateCampaignReq) (*Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	GetBySlug(ctx context.Context, slug string) (*Campaign, error)
	List(ctx context.Context, filter *Filter) ([]Campaign, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCampaignReq) (*Campaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package donation

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, entity *Donation) (*Donation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Donation, error)
	List(ctx context.Context, filter *Filter) ([]Donation, error)
	Stats(ctx context.Context) (*Stats, error)
}

// CampaignIncrementer is the one thing the donation flow needs from the
// campaign domain: a single-statement, data-layer-atomic increment of
// current_amount.
type CampaignIncrementer interface {
	IncrementAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

type Service interface {
	// ProcessDonation validates, records the donation as completed and
	// increments the campaign total when one is referenced.
	ProcessDonation(ctx context.Context, req *ProcessDonationReq) (*Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Donation, error)
	List(ctx context.Context, filter *Filter) ([]Donation, error)
	Stats(ctx context.Context) (*Stats, error)
}

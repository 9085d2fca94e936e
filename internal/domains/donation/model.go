package donation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Donation is a single monetary contribution, optionally earmarked for
// a campaign. Completed donations are immutable: there is no update
// path anywhere in the system.
type Donation struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	DonorEmail    string          `json:"donor_email"`
	DonorName     *string         `json:"donor_name"`
	IsMonthly     bool            `json:"is_monthly"`
	Cause         string          `json:"cause"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	CampaignID    *uuid.UUID      `json:"campaign_id"`
	// TransactionID is the payment gateway's id when the donation came
	// in through the callback route. Unique, so a replayed callback
	// cannot record the donation twice.
	TransactionID *string   `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Receipt is what the donor-facing routes answer with.
type Receipt struct {
	Message string `json:"message"`
}

// Stats aggregates completed donations for the back-office.
type Stats struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
}

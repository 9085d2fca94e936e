package donation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"animalovers-backend/internal/shared"
)

type ProcessDonationReq struct {
	Amount        decimal.Decimal `json:"amount"`
	Email         string          `json:"email"`
	DonorName     *string         `json:"donorName"`
	IsMonthly     bool            `json:"isMonthly"`
	Cause         string          `json:"cause"`
	CampaignID    *uuid.UUID      `json:"campaignId"`
	PaymentMethod string          `json:"paymentMethod"`
	// TransactionID is only set by the payment callback route.
	TransactionID *string `json:"-"`
}

// Validate rejects before anything is written: a failed validation must
// leave no partial state behind.
func (r ProcessDonationReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.By(positiveAmount)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Cause, validation.Length(0, 100)),
		validation.Field(&r.PaymentMethod, validation.Length(0, 50)),
	)
}

type Filter struct {
	shared.Pagination

	Status     *string
	CampaignID *uuid.UUID
}

func (f *Filter) Validate() error {
	return f.Pagination.Validate()
}

func positiveAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return validation.NewError("validation_amount", "amount must be greater than zero")
	}
	return nil
}

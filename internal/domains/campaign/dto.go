package campaign

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"animalovers-backend/internal/shared"
)

type CreateCampaignReq struct {
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Currency     string          `json:"currency"`
	IsActive     *bool           `json:"is_active"`
	IsFeatured   bool            `json:"is_featured"`
	StartDate    *time.Time      `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
}

func (r CreateCampaignReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.TargetAmount, validation.By(positiveDecimal)),
		validation.Field(&r.Currency, validation.Length(0, 8)),
	)
}

type UpdateCampaignReq struct {
	Title        *string          `json:"title"`
	Slug         *string          `json:"slug"`
	Description  *string          `json:"description"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	Currency     *string          `json:"currency"`
	IsActive     *bool            `json:"is_active"`
	IsFeatured   *bool            `json:"is_featured"`
	IsCompleted  *bool            `json:"is_completed"`
	StartDate    *time.Time       `json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`
}

func (r UpdateCampaignReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.TargetAmount, validation.By(optionalPositiveDecimal)),
	)
}

type Filter struct {
	shared.Pagination

	ActiveOnly bool
	Featured   *bool
}

func (f *Filter) Validate() error {
	return f.Pagination.Validate()
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return validation.NewError("validation_amount", "target_amount must be greater than zero")
	}
	return nil
}

func optionalPositiveDecimal(value interface{}) error {
	d, ok := value.(*decimal.Decimal)
	if !ok || d == nil {
		return nil
	}
	if !d.IsPositive() {
		return validation.NewError("validation_amount", "target_amount must be greater than zero")
	}
	return nil
}

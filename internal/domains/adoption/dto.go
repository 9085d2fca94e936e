package adoption

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"animalovers-backend/internal/shared"
)

type CreateAnimalReq struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	AgeRange    *string         `json:"age_range"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"image_url"`
	AdoptionFee decimal.Decimal `json:"adoption_fee"`
	IsAvailable *bool           `json:"is_available"`
	IsFeatured  bool            `json:"is_featured"`
}

func (r CreateAnimalReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Category, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.AdoptionFee, validation.By(nonNegativeFee)),
	)
}

type UpdateAnimalReq struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	AgeRange    *string          `json:"age_range"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"image_url"`
	AdoptionFee *decimal.Decimal `json:"adoption_fee"`
	IsAvailable *bool            `json:"is_available"`
	IsFeatured  *bool            `json:"is_featured"`
}

func (r UpdateAnimalReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.AdoptionFee, validation.By(optionalNonNegativeFee)),
	)
}

type Filter struct {
	shared.Pagination

	Category      *string
	AgeRange      *string
	AvailableOnly bool
	IsFeatured    *bool
	Search        *string
}

func (f *Filter) Validate() error {
	return f.Pagination.Validate()
}

func nonNegativeFee(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() {
		return validation.NewError("validation_fee", "adoption_fee must not be negative")
	}
	return nil
}

func optionalNonNegativeFee(value interface{}) error {
	d, ok := value.(*decimal.Decimal)
	if !ok || d == nil {
		return nil
	}
	if d.IsNegative() {
		return validation.NewError("validation_fee", "adoption_fee must not be negative")
	}
	return nil
}

package product

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"animalovers-backend/internal/shared"
)

type CreateProductReq struct {
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	BrandID       *uuid.UUID      `json:"brand_id"`
	Species       *string         `json:"species"`
	IsFeatured    bool            `json:"is_featured"`
	IsBestseller  bool            `json:"is_bestseller"`
	IsNew         bool            `json:"is_new"`
	IsActive      *bool           `json:"is_active"`
}

func (r CreateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Price, validation.By(positiveDecimal)),
		validation.Field(&r.StockQuantity, validation.Min(0)),
	)
}

type UpdateProductReq struct {
	Name          *string          `json:"name"`
	Slug          *string          `json:"slug"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	BrandID       *uuid.UUID       `json:"brand_id"`
	Species       *string          `json:"species"`
	IsFeatured    *bool            `json:"is_featured"`
	IsBestseller  *bool            `json:"is_bestseller"`
	IsNew         *bool            `json:"is_new"`
	IsActive      *bool            `json:"is_active"`
}

func (r UpdateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.Slug, validation.NilOrNotEmpty),
		validation.Field(&r.Price, validation.By(optionalPositiveDecimal)),
		validation.Field(&r.StockQuantity, validation.By(optionalNonNegativeInt)),
	)
}

// Filter holds the optional list predicates. Absent fields contribute
// no predicate at all.
type Filter struct {
	shared.Pagination

	CategoryID   *uuid.UUID
	Species      *string
	Search       *string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	IsFeatured   *bool
	IsBestseller *bool
	IsNew        *bool
	IsActive     *bool
}

func (f *Filter) Validate() error {
	return f.Pagination.Validate()
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return validation.NewError("validation_price", "price must be greater than zero")
	}
	return nil
}

func optionalPositiveDecimal(value interface{}) error {
	d, ok := value.(*decimal.Decimal)
	if !ok || d == nil {
		return nil
	}
	if !d.IsPositive() {
		return validation.NewError("validation_price", "price must be greater than zero")
	}
	return nil
}

func optionalNonNegativeInt(value interface{}) error {
	n, ok := value.(*int)
	if !ok || n == nil {
		return nil
	}
	if *n < 0 {
		return validation.NewError("validation_stock", "stock_quantity must not be negative")
	}
	return nil
}

package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a shop item. Price is always strictly positive and stock
// never goes below zero; both are enforced at create/update time and by
// database check constraints.
type Product struct {
	ID            uuid.UUID       `json:"id"`
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
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

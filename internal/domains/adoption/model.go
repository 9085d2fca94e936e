package adoption

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Animal is an adoptable animal listed on the site. AdoptionFee may be
// zero but never negative. ReservationsCount only ever grows, through
// the Reserve increment.
type Animal struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	AgeRange          *string         `json:"age_range"`
	Description       *string         `json:"description"`
	ImageURL          *string         `json:"image_url"`
	AdoptionFee       decimal.Decimal `json:"adoption_fee"`
	IsAvailable       bool            `json:"is_available"`
	IsFeatured        bool            `json:"is_featured"`
	ReservationsCount int             `json:"reservations_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

package adoption

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, entity *Animal) (*Animal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Animal, error)
	List(ctx context.Context, filter *Filter) ([]Animal, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAnimalReq) (*Animal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Reserve increments reservations_count in a single statement, the
	// same way campaign totals are credited.
	Reserve(ctx context.Context, id uuid.UUID) (*Animal, error)
}

type Service interface {
	Create(ctx context.Context, req *CreateAnimalReq) (*Animal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Animal, error)
	List(ctx context.Context, filter *Filter) ([]Animal, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAnimalReq) (*Animal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reserve(ctx context.Context, id uuid.UUID) (*Animal, error)
}

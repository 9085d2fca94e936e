package product

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, entity *Product) (*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, filter *Filter) ([]Product, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProductReq) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	Create(ctx context.Context, req *CreateProductReq) (*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, filter *Filter) ([]Product, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProductReq) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

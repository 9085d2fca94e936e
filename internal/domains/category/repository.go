package category

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, entity *Category) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	ListAll(ctx context.Context, activeOnly bool) ([]Category, error)
	ListRoots(ctx context.Context, activeOnly bool) ([]Category, error)
	ListChildren(ctx context.Context, parentID uuid.UUID, activeOnly bool) ([]Category, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryReq) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// InUse reports whether the category is referenced by child
	// categories or products. Deletion is refused while it is.
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
}

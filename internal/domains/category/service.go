package category

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req *CreateCategoryReq) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	// GetHierarchy serves the three retrieval modes: full tree, roots
	// only, or children of one parent. Children are only populated in
	// tree mode.
	GetHierarchy(ctx context.Context, q HierarchyQuery) ([]Node, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryReq) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package article

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, entity *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, filter *Filter) ([]Article, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateArticleReq) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaxonomyRepository manages one of the lookup tables (article
// categories or tags); both tables share a shape, so one implementation
// parameterized by table name serves each.
type TaxonomyRepository interface {
	Create(ctx context.Context, name, slug string, color *string) (*TaxonomyItem, error)
	List(ctx context.Context) ([]TaxonomyItem, error)
	Update(ctx context.Context, id uuid.UUID, req *TaxonomyReq) (*TaxonomyItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	Create(ctx context.Context, req *CreateArticleReq) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, filter *Filter) ([]Article, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateArticleReq) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

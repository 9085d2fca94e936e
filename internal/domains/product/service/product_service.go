package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"animalovers-backend/internal/domains/product"
	"animalovers-backend/internal/shared/utils"
)

type productService struct {
	repo product.Repository
}

func NewProductService(repo product.Repository) product.Service {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req *product.CreateProductReq) (*product.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", product.ErrValidation, err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	entity := &product.Product{
		ID:            uuid.New(),
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		BrandID:       req.BrandID,
		Species:       req.Species,
		IsFeatured:    req.IsFeatured,
		IsBestseller:  req.IsBestseller,
		IsNew:         req.IsNew,
		IsActive:      isActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.repo.Create(ctx, entity)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *productService) List(ctx context.Context, filter *product.Filter) ([]product.Product, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req *product.UpdateProductReq) (*product.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", product.ErrValidation, err)
	}
	return s.repo.Update(ctx, id, req)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

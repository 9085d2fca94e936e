package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"animalovers-backend/internal/domains/category"
	"animalovers-backend/internal/shared/utils"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateCategoryReq) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	// Two-level hierarchy: a child cannot itself be a parent.
	if req.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, category.ErrParentNotFound
		}
		if parent.ParentID != nil {
			return nil, fmt.Errorf("%w: categories nest at most one level deep", category.ErrValidation)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	entity := &category.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      slug,
		ParentID:  req.ParentID,
		Species:   req.Species,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.repo.Create(ctx, entity)
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *categoryService) GetHierarchy(ctx context.Context, q category.HierarchyQuery) ([]category.Node, error) {
	switch q.Mode {
	case category.ModeRoots:
		roots, err := s.repo.ListRoots(ctx, true)
		if err != nil {
			return nil, err
		}
		return asNodes(roots), nil

	case category.ModeChildren:
		children, err := s.repo.ListChildren(ctx, q.ParentID, true)
		if err != nil {
			return nil, err
		}
		return asNodes(children), nil

	default:
		all, err := s.repo.ListAll(ctx, true)
		if err != nil {
			return nil, err
		}
		return buildTree(all), nil
	}
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryReq) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}
	return s.repo.Update(ctx, id, req)
}

// Delete refuses to remove a category that is still referenced; the
// caller gets a distinguishable in-use error instead of a cascade.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	inUse, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return category.ErrInUse
	}
	return s.repo.Delete(ctx, id)
}

func asNodes(items []category.Category) []category.Node {
	nodes := make([]category.Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, category.Node{Category: item})
	}
	return nodes
}

// buildTree organizes a flat category list into roots with children.
func buildTree(all []category.Category) []category.Node {
	nodes := []category.Node{}
	byParent := map[uuid.UUID][]category.Category{}

	for _, item := range all {
		if item.ParentID != nil {
			byParent[*item.ParentID] = append(byParent[*item.ParentID], item)
		}
	}

	for _, item := range all {
		if item.ParentID != nil {
			continue
		}
		children := byParent[item.ID]
		if children == nil {
			children = []category.Category{}
		}
		nodes = append(nodes, category.Node{Category: item, Children: children})
	}

	return nodes
}

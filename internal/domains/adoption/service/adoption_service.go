package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"animalovers-backend/internal/domains/adoption"
)

type adoptionService struct {
	repo adoption.Repository
}

func NewAdoptionService(repo adoption.Repository) adoption.Service {
	return &adoptionService{repo: repo}
}

func (s *adoptionService) Create(ctx context.Context, req *adoption.CreateAnimalReq) (*adoption.Animal, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", adoption.ErrValidation, err)
	}

	// New listings are available unless the request says otherwise.
	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	entity := &adoption.Animal{
		ID:          uuid.New(),
		Name:        req.Name,
		Category:    req.Category,
		AgeRange:    req.AgeRange,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AdoptionFee: req.AdoptionFee,
		IsAvailable: isAvailable,
		IsFeatured:  req.IsFeatured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, entity)
}

func (s *adoptionService) GetByID(ctx context.Context, id uuid.UUID) (*adoption.Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *adoptionService) List(ctx context.Context, filter *adoption.Filter) ([]adoption.Animal, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *adoptionService) Update(ctx context.Context, id uuid.UUID, req *adoption.UpdateAnimalReq) (*adoption.Animal, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", adoption.ErrValidation, err)
	}
	return s.repo.Update(ctx, id, req)
}

func (s *adoptionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *adoptionService) Reserve(ctx context.Context, id uuid.UUID) (*adoption.Animal, error) {
	return s.repo.Reserve(ctx, id)
}

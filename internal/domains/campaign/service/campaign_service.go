package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"animalovers-backend/internal/domains/campaign"
	"animalovers-backend/internal/shared/utils"
)

type campaignService struct {
	repo campaign.Repository
}

func NewCampaignService(repo campaign.Repository) campaign.Service {
	return &campaignService{repo: repo}
}

func (s *campaignService) Create(ctx context.Context, req *campaign.CreateCampaignReq) (*campaign.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", campaign.ErrValidation, err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	currency := req.Currency
	if currency == "" {
		currency = "XOF"
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	entity := &campaign.Campaign{
		ID:            uuid.New(),
		Title:         req.Title,
		Slug:          slug,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Currency:      currency,
		IsActive:      isActive,
		IsFeatured:    req.IsFeatured,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.repo.Create(ctx, entity)
}

func (s *campaignService) GetByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *campaignService) GetBySlug(ctx context.Context, slug string) (*campaign.Campaign, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *campaignService) List(ctx context.Context, filter *campaign.Filter) ([]campaign.Campaign, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *campaignService) Update(ctx context.Context, id uuid.UUID, req *campaign.UpdateCampaignReq) (*campaign.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", campaign.ErrValidation, err)
	}
	return s.repo.Update(ctx, id, req)
}

func (s *campaignService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"animalovers-backend/internal/domains/donation"
	"animalovers-backend/pkg/logger"
)

type donationService struct {
	repo      donation.Repository
	campaigns donation.CampaignIncrementer
}

func NewDonationService(repo donation.Repository, campaigns donation.CampaignIncrementer) donation.Service {
	return &donationService{repo: repo, campaigns: campaigns}
}

// ProcessDonation is the one cross-entity write in the system: a
// donation insert followed by an atomic increment of the campaign's
// collected amount. There is no transaction spanning the two; if the
// increment fails after the insert succeeded, the stale campaign total
// is logged for reconciliation rather than rolled back.
func (s *donationService) ProcessDonation(ctx context.Context, req *donation.ProcessDonationReq) (*donation.Receipt, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", donation.ErrValidation, err)
	}

	entity := &donation.Donation{
		ID:            uuid.New(),
		Amount:        req.Amount,
		DonorEmail:    req.Email,
		DonorName:     req.DonorName,
		IsMonthly:     req.IsMonthly,
		Cause:         req.Cause,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: donation.StatusCompleted,
		CampaignID:    req.CampaignID,
		TransactionID: req.TransactionID,
		CreatedAt:     time.Now(),
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		// A replayed gateway callback carries a transaction id we have
		// already recorded; the first processing run did all the work.
		if errors.Is(err, donation.ErrDuplicateTransaction) {
			return &donation.Receipt{Message: "donation already recorded, thank you"}, nil
		}
		return nil, err
	}

	if created.CampaignID != nil {
		if err := s.campaigns.IncrementAmount(ctx, *created.CampaignID, created.Amount); err != nil {
			logger.Error("campaign increment failed after donation insert, total is stale", err)
			logger.Warn("donation recorded without campaign credit", map[string]interface{}{
				"donation_id": created.ID.String(),
				"campaign_id": created.CampaignID.String(),
				"amount":      created.Amount.String(),
			})
		}
	}

	return &donation.Receipt{Message: "thank you for your donation"}, nil
}

func (s *donationService) GetByID(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *donationService) List(ctx context.Context, filter *donation.Filter) ([]donation.Donation, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *donationService) Stats(ctx context.Context) (*donation.Stats, error) {
	return s.repo.Stats(ctx)
}

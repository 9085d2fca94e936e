package service

import (
	"context"
	"fmt"

	"animalovers-backend/internal/domains/settings"
)

type settingsService struct {
	repo settings.Repository
}

func NewSettingsService(repo settings.Repository) settings.Service {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*settings.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, req *settings.UpdateSettingsReq) (*settings.Settings, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", settings.ErrValidation, err)
	}
	return s.repo.Update(ctx, req)
}

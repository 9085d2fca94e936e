package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"animalovers-backend/internal/domains/stats"
)

type statsService struct {
	repo stats.Repository
}

func NewStatsService(repo stats.Repository) stats.Service {
	return &statsService{repo: repo}
}

// Overview fans the four aggregates out concurrently. Any failing query
// fails the whole snapshot; a dashboard with a silently missing number
// is worse than an error.
func (s *statsService) Overview(ctx context.Context) (*stats.Overview, error) {
	overview := &stats.Overview{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountArticles(gctx)
		overview.ArticleCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountProducts(gctx)
		overview.ProductCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountActiveCampaigns(gctx)
		overview.ActiveCampaigns = n
		return err
	})
	g.Go(func() error {
		total, err := s.repo.SumCompletedDonations(gctx)
		overview.TotalDonations = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

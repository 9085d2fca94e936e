package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"animalovers-backend/internal/domains/article"
	"animalovers-backend/internal/shared/utils"
)

type articleService struct {
	repo article.Repository
}

func NewArticleService(repo article.Repository) article.Service {
	return &articleService{repo: repo}
}

func (s *articleService) Create(ctx context.Context, req *article.CreateArticleReq) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", article.ErrValidation, err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	status := req.Status
	if status == "" {
		status = article.StatusDraft
	}

	now := time.Now()
	entity := &article.Article{
		ID:         uuid.New(),
		Title:      req.Title,
		Slug:       slug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Status:     status,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Species:    req.Species,
		AgeRange:   req.AgeRange,
		AuthorID:   req.AuthorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status == article.StatusPublished {
		entity.PublishedAt = &now
	}
	if entity.Tags == nil {
		entity.Tags = []string{}
	}

	return s.repo.Create(ctx, entity)
}

func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *articleService) List(ctx context.Context, filter *article.Filter) ([]article.Article, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, req *article.UpdateArticleReq) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", article.ErrValidation, err)
	}
	return s.repo.Update(ctx, id, req)
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

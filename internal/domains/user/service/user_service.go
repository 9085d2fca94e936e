package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"animalovers-backend/internal/domains/user"
	"animalovers-backend/pkg/jwt"
)

type userService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

func NewUserService(repo user.Repository, manager *jwt.Manager) user.Service {
	return &userService{repo: repo, jwt: manager}
}

func (s *userService) Login(ctx context.Context, req *user.LoginReq) (*user.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}
	if !account.IsActive || account.Role != user.RoleAdmin {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(account.ID.String(), account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &user.AuthResult{Token: token, User: account}, nil
}

func (s *userService) Verify(ctx context.Context, userID string) (*user.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, user.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, filter *user.Filter) ([]user.User, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter *Filter) ([]User, error)
}

type Service interface {
	// Login checks the password and requires the admin role; every
	// failure mode collapses into ErrInvalidCredentials.
	Login(ctx context.Context, req *LoginReq) (*AuthResult, error)
	// Verify resolves a valid token's subject back to the stored user.
	Verify(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, filter *Filter) ([]User, error)
}

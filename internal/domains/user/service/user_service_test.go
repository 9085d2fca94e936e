package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"animalovers-backend/internal/domains/user"
	"animalovers-backend/pkg/jwt"
)

type fakeRepo struct {
	byEmail map[string]*user.User
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter *user.Filter) ([]user.User, error) {
	return nil, nil
}

func account(t *testing.T, email, password, role string, active bool) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &user.User{
		ID:           uuid.New(),
		Email:        email,
		Role:         role,
		IsActive:     active,
		PasswordHash: string(hash),
	}
}

func newService(accounts ...*user.User) user.Service {
	repo := &fakeRepo{byEmail: map[string]*user.User{}}
	for _, a := range accounts {
		repo.byEmail[a.Email] = a
	}
	return NewUserService(repo, jwt.NewManager("test-secret", time.Hour))
}

func TestLoginSuccess(t *testing.T) {
	admin := account(t, "admin@example.com", "hunter2", user.RoleAdmin, true)
	svc := newService(admin)

	result, err := svc.Login(context.Background(), &user.LoginReq{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, admin.ID, result.User.ID)

	// The minted token verifies and carries the account identity.
	claims, err := jwt.NewManager("test-secret", time.Hour).Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.UserID)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	admin := account(t, "admin@example.com", "hunter2", user.RoleAdmin, true)
	regular := account(t, "user@example.com", "hunter2", user.RoleUser, true)
	inactive := account(t, "gone@example.com", "hunter2", user.RoleAdmin, false)
	svc := newService(admin, regular, inactive)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "hunter2"},
		{"wrong password", "admin@example.com", "wrong"},
		{"non-admin role", "user@example.com", "hunter2"},
		{"inactive account", "gone@example.com", "hunter2"},
		{"empty password", "admin@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &user.LoginReq{
				Email:    tt.email,
				Password: tt.password,
			})
			assert.ErrorIs(t, err, user.ErrInvalidCredentials)
		})
	}
}

func TestVerifyResolvesAccount(t *testing.T) {
	admin := account(t, "admin@example.com", "hunter2", user.RoleAdmin, true)
	svc := newService(admin)

	got, err := svc.Verify(context.Background(), admin.ID.String())
	require.NoError(t, err)
	assert.Equal(t, admin.Email, got.Email)

	_, err = svc.Verify(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

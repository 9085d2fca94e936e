package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/internal/domains/adoption"
)

type fakeRepo struct {
	created  []*adoption.Animal
	reserved []uuid.UUID
}

func (f *fakeRepo) Create(ctx context.Context, entity *adoption.Animal) (*adoption.Animal, error) {
	f.created = append(f.created, entity)
	return entity, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*adoption.Animal, error) {
	return nil, adoption.ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter *adoption.Filter) ([]adoption.Animal, error) {
	return []adoption.Animal{}, nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, req *adoption.UpdateAnimalReq) (*adoption.Animal, error) {
	return nil, adoption.ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return adoption.ErrNotFound
}

func (f *fakeRepo) Reserve(ctx context.Context, id uuid.UUID) (*adoption.Animal, error) {
	f.reserved = append(f.reserved, id)
	return &adoption.Animal{ID: id, ReservationsCount: len(f.reserved)}, nil
}

func TestCreateAnimalDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewAdoptionService(repo)

	created, err := svc.Create(context.Background(), &adoption.CreateAnimalReq{
		Name:     "Rex",
		Category: "chien",
	})
	require.NoError(t, err)
	assert.True(t, created.IsAvailable, "new listings default to available")
	assert.True(t, created.AdoptionFee.IsZero())
	assert.Equal(t, 0, created.ReservationsCount)
}

func TestCreateAnimalNegativeFee(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewAdoptionService(repo)

	_, err := svc.Create(context.Background(), &adoption.CreateAnimalReq{
		Name:        "Rex",
		Category:    "chien",
		AdoptionFee: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, adoption.ErrValidation)
	assert.Empty(t, repo.created)
}

func TestCreateAnimalZeroFeeAllowed(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewAdoptionService(repo)

	_, err := svc.Create(context.Background(), &adoption.CreateAnimalReq{
		Name:        "Minou",
		Category:    "chat",
		AdoptionFee: decimal.Zero,
	})
	assert.NoError(t, err)
}

func TestReserveDelegates(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewAdoptionService(repo)

	id := uuid.New()
	animal, err := svc.Reserve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, animal.ID)
	assert.Equal(t, []uuid.UUID{id}, repo.reserved)
}

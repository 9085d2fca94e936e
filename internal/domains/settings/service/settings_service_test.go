package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/internal/domains/settings"
)

type fakeRepo struct {
	current *settings.Settings
	updated []*settings.UpdateSettingsReq
}

func (f *fakeRepo) Get(ctx context.Context) (*settings.Settings, error) {
	if f.current == nil {
		return nil, settings.ErrNotFound
	}
	return f.current, nil
}

func (f *fakeRepo) Update(ctx context.Context, req *settings.UpdateSettingsReq) (*settings.Settings, error) {
	if f.current == nil {
		return nil, settings.ErrNotFound
	}
	if req.Version != f.current.Version {
		return nil, settings.ErrVersionConflict
	}
	f.updated = append(f.updated, req)
	f.current = &settings.Settings{Data: req.Data, Version: req.Version + 1}
	return f.current, nil
}

func TestUpdateRejectsInvalidDocument(t *testing.T) {
	repo := &fakeRepo{current: &settings.Settings{Data: json.RawMessage(`{}`)}}
	svc := NewSettingsService(repo)

	_, err := svc.Update(context.Background(), &settings.UpdateSettingsReq{
		Data: json.RawMessage(`{"broken`),
	})
	assert.ErrorIs(t, err, settings.ErrValidation)
	assert.Empty(t, repo.updated)
}

func TestUpdateCompareAndSwap(t *testing.T) {
	repo := &fakeRepo{current: &settings.Settings{Data: json.RawMessage(`{}`), Version: 3}}
	svc := NewSettingsService(repo)

	// Stale version loses.
	_, err := svc.Update(context.Background(), &settings.UpdateSettingsReq{
		Data:    json.RawMessage(`{"title":"old"}`),
		Version: 2,
	})
	assert.ErrorIs(t, err, settings.ErrVersionConflict)

	// Current version wins and bumps.
	updated, err := svc.Update(context.Background(), &settings.UpdateSettingsReq{
		Data:    json.RawMessage(`{"title":"new"}`),
		Version: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Version)
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, 409, settings.StatusCode(settings.ErrVersionConflict))
	assert.Equal(t, 404, settings.StatusCode(settings.ErrNotFound))
	assert.Equal(t, 400, settings.StatusCode(settings.ErrValidation))
}

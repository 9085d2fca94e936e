package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/internal/domains/campaign"
	"animalovers-backend/pkg/cache"
)

type fakeCache struct {
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.store[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
	}
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	f.store = map[string][]byte{}
	return nil
}

func TestListCacheKeyVariesWithLimit(t *testing.T) {
	r := &postgresRepository{}

	small := &campaign.Filter{ActiveOnly: true}
	small.SetLimit(1)
	byDefault := &campaign.Filter{ActiveOnly: true}

	assert.NotEmpty(t, r.listCacheKey(small))
	assert.NotEqual(t, r.listCacheKey(small), r.listCacheKey(byDefault))
}

func TestListCacheKeySkipsUncachedQueries(t *testing.T) {
	r := &postgresRepository{}

	// Admin listings see inactive campaigns and must not share entries.
	assert.Empty(t, r.listCacheKey(&campaign.Filter{}))

	paged := &campaign.Filter{ActiveOnly: true}
	paged.Offset = 20
	assert.Empty(t, r.listCacheKey(paged))
}

func TestListCacheHitMatchesRequestedLimit(t *testing.T) {
	c := newFakeCache()
	r := &postgresRepository{cache: c}

	wide := &campaign.Filter{ActiveOnly: true}
	seeded := []campaign.Campaign{
		{Title: "Stérilisation 2026"},
		{Title: "Refuge de Cotonou"},
		{Title: "Campagne vaccinale"},
	}
	require.NoError(t, c.Set(context.Background(), r.listCacheKey(wide), seeded, time.Minute))

	// Same limit: served from cache without touching the pool.
	got, err := r.List(context.Background(), wide)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// A different limit must not see the wider cached page.
	narrow := &campaign.Filter{ActiveOnly: true}
	narrow.SetLimit(1)
	_, ok := c.store[r.listCacheKey(narrow)]
	assert.False(t, ok)
	assert.NotEqual(t, r.listCacheKey(wide), r.listCacheKey(narrow))
}

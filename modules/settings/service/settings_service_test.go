package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-api/core/cache"
	"salon-api/modules/settings/dto"
	"salon-api/modules/settings/entity"
)

type memorySettingsRepo struct {
	perms    *entity.StorePermissions
	getCalls int
}

func (m *memorySettingsRepo) GetPermissions(context.Context) (*entity.StorePermissions, error) {
	m.getCalls++
	return m.perms, nil
}

func (m *memorySettingsRepo) SavePermissions(_ context.Context, perms *entity.StorePermissions) error {
	saved := *perms
	m.perms = &saved
	return nil
}

type memoryCache struct {
	values map[string]string
	broken bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	if m.broken {
		return "", fmt.Errorf("redis down")
	}
	val, ok := m.values[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return val, nil
}

func (m *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if m.broken {
		return fmt.Errorf("redis down")
	}
	m.values[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	if m.broken {
		return fmt.Errorf("redis down")
	}
	delete(m.values, key)
	return nil
}

func boolPtr(b bool) *bool { return &b }

func TestGetPermissions_DefaultsWhenUnset(t *testing.T) {
	svc := NewSettingsService(&memorySettingsRepo{}, newMemoryCache())

	perms, appErr := svc.GetPermissions(context.Background())
	require.Nil(t, appErr)
	assert.True(t, perms.CanEditSales)
	assert.False(t, perms.CanDeleteSales)
	assert.False(t, perms.CanSeeTotals)
	assert.False(t, perms.CanDownloadReport)
}

func TestGetPermissions_UsesCache(t *testing.T) {
	repo := &memorySettingsRepo{}
	svc := NewSettingsService(repo, newMemoryCache())
	ctx := context.Background()

	_, appErr := svc.GetPermissions(ctx)
	require.Nil(t, appErr)
	_, appErr = svc.GetPermissions(ctx)
	require.Nil(t, appErr)

	assert.Equal(t, 1, repo.getCalls, "second read must come from the cache")
}

func TestGetPermissions_BrokenCacheFallsThrough(t *testing.T) {
	repo := &memorySettingsRepo{perms: &entity.StorePermissions{
		ID:           entity.GlobalSettingsID,
		CanSeeTotals: true,
	}}
	svc := NewSettingsService(repo, &memoryCache{broken: true})

	perms, appErr := svc.GetPermissions(context.Background())
	require.Nil(t, appErr)
	assert.True(t, perms.CanSeeTotals)
}

func TestUpdatePermissions_PartialMerge(t *testing.T) {
	repo := &memorySettingsRepo{}
	svc := NewSettingsService(repo, newMemoryCache())
	ctx := context.Background()

	perms, appErr := svc.UpdatePermissions(ctx, &dto.UpdatePermissionsRequest{
		CanSeeTotals: boolPtr(true),
	})
	require.Nil(t, appErr)
	// Untouched fields keep their stored values.
	assert.True(t, perms.CanEditSales)
	assert.True(t, perms.CanSeeTotals)
	assert.False(t, perms.CanDeleteSales)

	perms, appErr = svc.UpdatePermissions(ctx, &dto.UpdatePermissionsRequest{
		CanEditSales: boolPtr(false),
	})
	require.Nil(t, appErr)
	assert.False(t, perms.CanEditSales)
	assert.True(t, perms.CanSeeTotals)
}

func TestUpdatePermissions_InvalidatesCache(t *testing.T) {
	repo := &memorySettingsRepo{}
	c := newMemoryCache()
	svc := NewSettingsService(repo, c)
	ctx := context.Background()

	_, appErr := svc.GetPermissions(ctx)
	require.Nil(t, appErr)
	assert.NotEmpty(t, c.values)

	_, appErr = svc.UpdatePermissions(ctx, &dto.UpdatePermissionsRequest{CanDeleteSales: boolPtr(true)})
	require.Nil(t, appErr)
	assert.Empty(t, c.values, "a write must drop the cached entry")

	perms, appErr := svc.GetPermissions(ctx)
	require.Nil(t, appErr)
	assert.True(t, perms.CanDeleteSales)
}

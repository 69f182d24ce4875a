package service

import (
	"context"
	"encoding/json"
	"time"

	"salon-api/core/cache"
	"salon-api/core/errors"
	"salon-api/core/logger"
	"salon-api/modules/settings/dto"
	"salon-api/modules/settings/entity"
	"salon-api/modules/settings/repository"
)

const (
	permissionsCacheKey = "settings:permissions"
	permissionsCacheTTL = 5 * time.Minute
)

type SettingsService interface {
	GetPermissions(ctx context.Context) (*entity.StorePermissions, *errors.AppError)
	UpdatePermissions(ctx context.Context, req *dto.UpdatePermissionsRequest) (*entity.StorePermissions, *errors.AppError)
}

type settingsService struct {
	repo  repository.SettingsRepository
	cache cache.Cache
}

func NewSettingsService(repo repository.SettingsRepository, c cache.Cache) SettingsService {
	return &settingsService{repo: repo, cache: c}
}

// GetPermissions reads through the cache. Any cache failure is treated as a
// miss so redis being down never breaks the endpoint.
func (s *settingsService) GetPermissions(ctx context.Context) (*entity.StorePermissions, *errors.AppError) {
	if cached, err := s.cache.Get(ctx, permissionsCacheKey); err == nil {
		var perms entity.StorePermissions
		if err := json.Unmarshal([]byte(cached), &perms); err == nil {
			return &perms, nil
		}
		logger.Warn("SettingsService:GetPermissions:BadCacheEntry", "key", permissionsCacheKey)
	}

	perms, err := s.repo.GetPermissions(ctx)
	if err != nil {
		logger.Error("SettingsService:GetPermissions:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load permissions", err)
	}
	if perms == nil {
		perms = entity.DefaultPermissions()
	}

	s.cachePermissions(ctx, perms)
	return perms, nil
}

func (s *settingsService) UpdatePermissions(ctx context.Context, req *dto.UpdatePermissionsRequest) (*entity.StorePermissions, *errors.AppError) {
	perms, appErr := s.GetPermissions(ctx)
	if appErr != nil {
		return nil, appErr
	}

	if req.CanEditSales != nil {
		perms.CanEditSales = *req.CanEditSales
	}
	if req.CanDeleteSales != nil {
		perms.CanDeleteSales = *req.CanDeleteSales
	}
	if req.CanSeeTotals != nil {
		perms.CanSeeTotals = *req.CanSeeTotals
	}
	if req.CanDownloadReport != nil {
		perms.CanDownloadReport = *req.CanDownloadReport
	}
	perms.ID = entity.GlobalSettingsID

	if err := s.repo.SavePermissions(ctx, perms); err != nil {
		logger.Error("SettingsService:UpdatePermissions:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save permissions", err)
	}

	if err := s.cache.Delete(ctx, permissionsCacheKey); err != nil {
		logger.Warn("SettingsService:UpdatePermissions:CacheInvalidate", "error", err)
	}
	return perms, nil
}

func (s *settingsService) cachePermissions(ctx context.Context, perms *entity.StorePermissions) {
	raw, err := json.Marshal(perms)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, permissionsCacheKey, string(raw), permissionsCacheTTL); err != nil {
		logger.Warn("SettingsService:CachePermissions:Error", "error", err)
	}
}

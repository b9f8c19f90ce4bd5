package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/repositories"
	apperrors "order-catalog/pkg/errors"
)

const (
	branchMenuKeyFmt     = "branch:%d:menu:v%d"
	branchMenuPatternFmt = "branch:%d:menu:v*"
	popularItemsKeyFmt   = "branch:%d:popular-items"
)

// MenuCacheService owns the menu cache keys. The menu version is embedded in
// the key by the caller; the cache itself knows nothing about versioning.
// Every failure here is logged and swallowed: cache trouble must never take
// the menu endpoints down.
type MenuCacheService struct {
	cacheRepo       repositories.CacheRepositoryInterface
	logger          *zap.Logger
	menuTTL         time.Duration
	popularItemsTTL time.Duration
}

func NewMenuCacheService(
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	menuTTL, popularItemsTTL time.Duration,
) *MenuCacheService {
	return &MenuCacheService{
		cacheRepo:       cacheRepo,
		logger:          logger,
		menuTTL:         menuTTL,
		popularItemsTTL: popularItemsTTL,
	}
}

func (s *MenuCacheService) CacheBranchMenu(ctx context.Context, branchID uint64, version int, menu []dto.MenuItemDTO) {
	key := fmt.Sprintf(branchMenuKeyFmt, branchID, version)
	payload, err := json.Marshal(menu)
	if err != nil {
		s.logger.Warn("failed to serialize menu for caching", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cacheRepo.Set(ctx, key, string(payload), s.menuTTL); err != nil {
		s.logger.Warn("failed to cache branch menu", zap.String("key", key), zap.Error(err))
	}
}

func (s *MenuCacheService) GetBranchMenu(ctx context.Context, branchID uint64, version int) ([]dto.MenuItemDTO, bool) {
	key := fmt.Sprintf(branchMenuKeyFmt, branchID, version)
	raw, err := s.cacheRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheMiss) {
			s.logger.Warn("failed to read branch menu from cache", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var menu []dto.MenuItemDTO
	if err := json.Unmarshal([]byte(raw), &menu); err != nil {
		s.logger.Warn("failed to deserialize cached menu", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	s.logger.Debug("cache hit for branch menu", zap.Uint64("branchID", branchID), zap.Int("version", version))
	return menu, true
}

// EvictBranchMenu drops every cached version for the branch. The version
// bump already retires the live key; this wildcard pass covers entries still
// being served to in-flight readers.
func (s *MenuCacheService) EvictBranchMenu(ctx context.Context, branchID uint64) {
	pattern := fmt.Sprintf(branchMenuPatternFmt, branchID)
	if err := s.cacheRepo.DelByPattern(ctx, pattern); err != nil {
		s.logger.Warn("failed to evict branch menu", zap.String("pattern", pattern), zap.Error(err))
	}
}

func (s *MenuCacheService) CachePopularItems(ctx context.Context, branchID uint64, items []dto.MenuItemDTO) {
	key := fmt.Sprintf(popularItemsKeyFmt, branchID)
	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("failed to serialize popular items for caching", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cacheRepo.Set(ctx, key, string(payload), s.popularItemsTTL); err != nil {
		s.logger.Warn("failed to cache popular items", zap.String("key", key), zap.Error(err))
	}
}

func (s *MenuCacheService) GetPopularItems(ctx context.Context, branchID uint64) ([]dto.MenuItemDTO, bool) {
	key := fmt.Sprintf(popularItemsKeyFmt, branchID)
	raw, err := s.cacheRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheMiss) {
			s.logger.Warn("failed to read popular items from cache", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var items []dto.MenuItemDTO
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("failed to deserialize cached popular items", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return items, true
}

func (s *MenuCacheService) EvictPopularItems(ctx context.Context, branchID uint64) {
	key := fmt.Sprintf(popularItemsKeyFmt, branchID)
	if err := s.cacheRepo.Del(ctx, key); err != nil {
		s.logger.Warn("failed to evict popular items", zap.String("key", key), zap.Error(err))
	}
}

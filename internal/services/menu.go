package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/entities"
	"order-catalog/internal/repositories"
)

const popularItemsLimit = 10

// MenuService owns menu mutations and the cache consistency protocol: every
// successful create/update/soft-delete bumps the branch's menu version by
// exactly one and then evicts the branch's cached listings.
type MenuService struct {
	menuRepo   repositories.MenuItemRepositoryInterface
	branchRepo repositories.BranchRepositoryInterface
	cache      *MenuCacheService
	txManager  repositories.TxManagerInterface
	logger     *zap.Logger
}

func NewMenuService(
	menuRepo repositories.MenuItemRepositoryInterface,
	branchRepo repositories.BranchRepositoryInterface,
	cache *MenuCacheService,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *MenuService {
	return &MenuService{
		menuRepo:   menuRepo,
		branchRepo: branchRepo,
		cache:      cache,
		txManager:  txManager,
		logger:     logger,
	}
}

func (s *MenuService) CreateMenuItem(ctx context.Context, branchID uint64, in dto.CreateMenuItemDTO) (*dto.MenuItemDTO, error) {
	s.logger.Info("creating menu item", zap.Uint64("branchID", branchID))

	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, err
	}

	item := entities.MenuItem{
		BranchID:               branchID,
		Name:                   in.Name,
		Price:                  in.Price,
		Category:               in.Category,
		IsAvailable:            true,
		PreparationTimeMinutes: in.PreparationTimeMinutes,
		Tags:                   in.Tags,
	}
	if in.Description != "" {
		item.Description = &in.Description
	}

	var newID uint64
	err = s.txManager.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		newID, txErr = s.menuRepo.CreateMenuItem(ctx, tx, item)
		if txErr != nil {
			return txErr
		}
		return s.branchRepo.BumpMenuVersion(ctx, tx, branchID)
	})
	if err != nil {
		return nil, err
	}

	s.evictBranchCaches(ctx, branchID)

	created, err := s.menuRepo.FindMenuItem(ctx, newID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("menu item created", zap.Uint64("menuItemID", newID), zap.Uint64("branchID", branchID))
	return toMenuItemDTO(created), nil
}

func (s *MenuService) GetMenuItem(ctx context.Context, menuItemID uint64) (*dto.MenuItemDTO, error) {
	item, err := s.menuRepo.FindMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	return toMenuItemDTO(item), nil
}

// GetBranchMenu serves the full listing through the versioned cache: the key
// is computed from the branch's menu version as observed right now, so a hit
// is always for the version the reader just saw. Category-filtered reads go
// straight to the store.
func (s *MenuService) GetBranchMenu(ctx context.Context, branchID uint64, category string, limit, offset uint64) ([]dto.MenuItemDTO, error) {
	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	cacheable := category == "" && limit == 0 && offset == 0
	if cacheable {
		if menu, ok := s.cache.GetBranchMenu(ctx, branchID, branch.MenuVersion); ok {
			return menu, nil
		}
	}

	items, err := s.menuRepo.GetBranchMenu(ctx, branchID, category, limit, offset)
	if err != nil {
		return nil, err
	}
	menu := toMenuItemDTOs(items)

	if cacheable {
		s.cache.CacheBranchMenu(ctx, branchID, branch.MenuVersion, menu)
	}
	return menu, nil
}

func (s *MenuService) GetPopularItems(ctx context.Context, branchID uint64) ([]dto.MenuItemDTO, error) {
	if _, err := s.branchRepo.FindBranch(ctx, branchID); err != nil {
		return nil, err
	}

	if items, ok := s.cache.GetPopularItems(ctx, branchID); ok {
		return items, nil
	}

	items, err := s.menuRepo.GetPopularItems(ctx, branchID, popularItemsLimit)
	if err != nil {
		return nil, err
	}
	popular := toMenuItemDTOs(items)
	s.cache.CachePopularItems(ctx, branchID, popular)
	return popular, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, menuItemID uint64, in dto.UpdateMenuItemDTO) (*dto.MenuItemDTO, error) {
	s.logger.Info("updating menu item", zap.Uint64("menuItemID", menuItemID))

	item, err := s.menuRepo.FindMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	branch, err := s.branchRepo.FindBranch(ctx, item.BranchID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, err
	}

	if in.Name.Valid {
		item.Name = in.Name.String
	}
	if in.Description.Valid {
		item.Description = &in.Description.String
	}
	if in.Price.Valid {
		item.Price = in.Price.Float64
	}
	if in.Category.Valid {
		item.Category = in.Category.String
	}
	if in.IsAvailable.Valid {
		item.IsAvailable = in.IsAvailable.Bool
	}
	if in.PreparationTimeMinutes.Valid {
		v := int(in.PreparationTimeMinutes.Int)
		item.PreparationTimeMinutes = &v
	}
	if in.Tags != nil {
		item.Tags = in.Tags
	}

	err = s.txManager.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if txErr := s.menuRepo.UpdateMenuItem(ctx, tx, menuItemID, *item); txErr != nil {
			return txErr
		}
		return s.branchRepo.BumpMenuVersion(ctx, tx, item.BranchID)
	})
	if err != nil {
		return nil, err
	}

	s.evictBranchCaches(ctx, item.BranchID)

	s.logger.Info("menu item updated", zap.Uint64("menuItemID", menuItemID))
	return toMenuItemDTO(item), nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, menuItemID uint64) error {
	s.logger.Info("deleting menu item", zap.Uint64("menuItemID", menuItemID))

	item, err := s.menuRepo.FindMenuItem(ctx, menuItemID)
	if err != nil {
		return err
	}
	branch, err := s.branchRepo.FindBranch(ctx, item.BranchID)
	if err != nil {
		return err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return err
	}

	err = s.txManager.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if txErr := s.menuRepo.SoftDeleteMenuItem(ctx, tx, menuItemID); txErr != nil {
			return txErr
		}
		return s.branchRepo.BumpMenuVersion(ctx, tx, item.BranchID)
	})
	if err != nil {
		return err
	}

	s.evictBranchCaches(ctx, item.BranchID)

	s.logger.Info("menu item deleted", zap.Uint64("menuItemID", menuItemID))
	return nil
}

func (s *MenuService) evictBranchCaches(ctx context.Context, branchID uint64) {
	s.cache.EvictBranchMenu(ctx, branchID)
	s.cache.EvictPopularItems(ctx, branchID)
}

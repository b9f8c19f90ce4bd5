package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/entities"
	"order-catalog/internal/repositories"
	apperrors "order-catalog/pkg/errors"
)

// OrderService places orders against a branch's live menu, snapshotting item
// names and prices so later menu edits never rewrite order history.
type OrderService struct {
	orderRepo  repositories.OrderRepositoryInterface
	menuRepo   repositories.MenuItemRepositoryInterface
	branchRepo repositories.BranchRepositoryInterface
	txManager  repositories.TxManagerInterface
	logger     *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	menuRepo repositories.MenuItemRepositoryInterface,
	branchRepo repositories.BranchRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		menuRepo:   menuRepo,
		branchRepo: branchRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, branchID uint64, in dto.PlaceOrderDTO) (*dto.OrderDTO, error) {
	s.logger.Info("placing order", zap.Uint64("branchID", branchID))

	if _, err := s.branchRepo.FindBranch(ctx, branchID); err != nil {
		return nil, err
	}

	order := entities.Order{
		BranchID:      branchID,
		OrderNumber:   generateOrderNumber(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Status:        entities.OrderStatusPlaced,
	}

	for _, reqItem := range in.Items {
		menuItem, err := s.menuRepo.FindMenuItem(ctx, reqItem.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem.BranchID != branchID {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("menu item %d does not belong to branch %d", reqItem.MenuItemID, branchID),
			)
		}
		if !menuItem.IsAvailable {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("menu item %q is currently unavailable", menuItem.Name),
			)
		}
		lineTotal := menuItem.Price * float64(reqItem.Quantity)
		order.Items = append(order.Items, entities.OrderItem{
			MenuItemID: menuItem.ID,
			ItemName:   menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   reqItem.Quantity,
			LineTotal:  lineTotal,
		})
		order.TotalAmount += lineTotal
	}

	var newID uint64
	err := s.txManager.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		newID, txErr = s.orderRepo.CreateOrder(ctx, tx, order)
		if txErr != nil {
			return txErr
		}
		return s.branchRepo.IncrementTotalOrders(ctx, tx, branchID)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.orderRepo.FindOrder(ctx, newID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("order placed",
		zap.Uint64("orderID", newID),
		zap.String("orderNumber", created.OrderNumber),
	)
	return toOrderDTO(created), nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint64) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderDTO(order), nil
}

// GetBranchOrders lists a branch's orders for its owning vendor.
func (s *OrderService) GetBranchOrders(ctx context.Context, branchID uint64, limit, offset uint64) ([]dto.OrderDTO, uint64, error) {
	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, 0, err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, 0, err
	}

	orders, total, err := s.orderRepo.GetBranchOrders(ctx, branchID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, *toOrderDTO(&orders[i]))
	}
	return out, total, nil
}

func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
)

type fakeOrderRepo struct {
	orders map[uint64]*entities.Order
	nextID uint64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint64]*entities.Order), nextID: 1}
}

func (r *fakeOrderRepo) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetBranchOrders(ctx context.Context, branchID uint64, limit, offset uint64) ([]entities.Order, uint64, error) {
	var out []entities.Order
	for _, o := range r.orders {
		if o.BranchID == branchID {
			out = append(out, *o)
		}
	}
	return out, uint64(len(out)), nil
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, tx pgx.Tx, order entities.Order) (uint64, error) {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = &order
	return order.ID, nil
}

func newOrderFixture() (*OrderService, *fakeBranchRepo, *fakeMenuRepo, *fakeOrderRepo) {
	branchRepo := newFakeBranchRepo(testBranch())
	menuRepo := newFakeMenuRepo(
		&entities.MenuItem{ID: 1, BranchID: 1, Name: "Masala Dosa", Price: 120, Category: "South Indian", IsAvailable: true},
		&entities.MenuItem{ID: 2, BranchID: 1, Name: "Filter Coffee", Price: 40, Category: "Beverages", IsAvailable: true},
		&entities.MenuItem{ID: 3, BranchID: 1, Name: "Vada", Price: 50, Category: "South Indian", IsAvailable: false},
		&entities.MenuItem{ID: 4, BranchID: 2, Name: "Pizza", Price: 300, Category: "Italian", IsAvailable: true},
	)
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, menuRepo, branchRepo, fakeTxManager{}, zap.NewNop())
	return svc, branchRepo, menuRepo, orderRepo
}

func TestPlaceOrder_SnapshotsPricesAndTotals(t *testing.T) {
	svc, branchRepo, menuRepo, _ := newOrderFixture()

	res, err := svc.PlaceOrder(context.Background(), 1, dto.PlaceOrderDTO{
		CustomerName:  "Asha",
		CustomerPhone: "+919900000000",
		Items: []dto.PlaceOrderItemDTO{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entities.OrderStatusPlaced, res.Status)
	assert.True(t, len(res.OrderNumber) > 4 && res.OrderNumber[:4] == "ORD-")
	assert.Equal(t, 2*120.0+3*40.0, res.TotalAmount)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Masala Dosa", res.Items[0].ItemName)
	assert.Equal(t, 120.0, res.Items[0].UnitPrice)
	assert.Equal(t, 240.0, res.Items[0].LineTotal)

	stored, _ := branchRepo.FindBranch(context.Background(), 1)
	assert.Equal(t, 1, stored.TotalOrders)

	// Price changes after the fact must not rewrite the snapshot.
	menuRepo.items[1].Price = 999
	fetched, err := svc.GetOrder(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, fetched.Items[0].UnitPrice)
}

func TestPlaceOrder_RejectsForeignItem(t *testing.T) {
	svc, branchRepo, _, orderRepo := newOrderFixture()

	_, err := svc.PlaceOrder(context.Background(), 1, dto.PlaceOrderDTO{
		CustomerName:  "Asha",
		CustomerPhone: "+919900000000",
		Items:         []dto.PlaceOrderItemDTO{{MenuItemID: 4, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))

	assert.Empty(t, orderRepo.orders)
	stored, _ := branchRepo.FindBranch(context.Background(), 1)
	assert.Equal(t, 0, stored.TotalOrders)
}

func TestPlaceOrder_RejectsUnavailableItem(t *testing.T) {
	svc, _, _, orderRepo := newOrderFixture()

	_, err := svc.PlaceOrder(context.Background(), 1, dto.PlaceOrderDTO{
		CustomerName:  "Asha",
		CustomerPhone: "+919900000000",
		Items:         []dto.PlaceOrderItemDTO{{MenuItemID: 3, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
	assert.Empty(t, orderRepo.orders)
}

func TestPlaceOrder_RejectsDeletedItem(t *testing.T) {
	svc, _, menuRepo, _ := newOrderFixture()
	menuRepo.items[1].IsDeleted = true

	_, err := svc.PlaceOrder(context.Background(), 1, dto.PlaceOrderDTO{
		CustomerName:  "Asha",
		CustomerPhone: "+919900000000",
		Items:         []dto.PlaceOrderItemDTO{{MenuItemID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperrors.ErrMenuItemNotFound)
}

func TestPlaceOrder_BranchNotFound(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	_, err := svc.PlaceOrder(context.Background(), 99, dto.PlaceOrderDTO{
		CustomerName:  "Asha",
		CustomerPhone: "+919900000000",
		Items:         []dto.PlaceOrderItemDTO{{MenuItemID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperrors.ErrBranchNotFound)
}

func TestGetBranchOrders_OwnerOnly(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	_, err := svc.PlaceOrder(context.Background(), 1, dto.PlaceOrderDTO{
		CustomerName:  "Asha",
		CustomerPhone: "+919900000000",
		Items:         []dto.PlaceOrderItemDTO{{MenuItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	orders, total, err := svc.GetBranchOrders(ownerCtx(), 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Len(t, orders, 1)

	_, _, err = svc.GetBranchOrders(context.Background(), 1, 20, 0)
	assert.Error(t, err, "anonymous callers cannot list orders")
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
)

type OrderRepositoryInterface interface {
	FindOrder(ctx context.Context, id uint64) (*entities.Order, error)
	GetBranchOrders(ctx context.Context, branchID uint64, limit, offset uint64) ([]entities.Order, uint64, error)
	CreateOrder(ctx context.Context, tx pgx.Tx, order entities.Order) (uint64, error)
}

type OrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderRepositoryInterface {
	return &OrderRepository{storage: storage, logger: logger}
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(
		&o.ID, &o.BranchID, &o.OrderNumber, &o.CustomerName, &o.CustomerPhone,
		&o.Status, &o.TotalAmount, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID uint64) ([]entities.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_item_id, item_name, unit_price, quantity, line_total
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.OrderItem, 0)
	for rows.Next() {
		var it entities.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.ItemName, &it.UnitPrice, &it.Quantity, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepository) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	query := `
		SELECT id, branch_id, order_number, customer_name, customer_phone, status, total_amount, created_at
		FROM orders
		WHERE id = $1
	`
	order, err := scanOrder(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *OrderRepository) GetBranchOrders(ctx context.Context, branchID uint64, limit, offset uint64) ([]entities.Order, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	var total uint64
	sqlCount, argsCount, _ := psql.Select("COUNT(id)").From("orders").Where(sq.Eq{"branch_id": branchID}).ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Order{}, 0, nil
	}

	query, args, err := psql.Select("id", "branch_id", "order_number", "customer_name", "customer_phone", "status", "total_amount", "created_at").
		From("orders").
		Where(sq.Eq{"branch_id": branchID}).
		OrderBy("id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, limit)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, rows.Err()
}

// CreateOrder inserts the order and its item snapshots inside the caller's
// transaction.
func (r *OrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order entities.Order) (uint64, error) {
	var newID uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO orders (branch_id, order_number, customer_name, customer_phone, status, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`, order.BranchID, order.OrderNumber, order.CustomerName, order.CustomerPhone, order.Status, order.TotalAmount).Scan(&newID)
	if err != nil {
		return 0, err
	}

	for _, item := range order.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, item_name, unit_price, quantity, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, newID, item.MenuItemID, item.ItemName, item.UnitPrice, item.Quantity, item.LineTotal)
		if err != nil {
			return 0, err
		}
	}
	return newID, nil
}

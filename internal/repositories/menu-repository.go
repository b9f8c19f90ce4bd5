package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
)

type MenuItemRepositoryInterface interface {
	FindMenuItem(ctx context.Context, id uint64) (*entities.MenuItem, error)
	GetBranchMenu(ctx context.Context, branchID uint64, category string, limit, offset uint64) ([]entities.MenuItem, error)
	GetPopularItems(ctx context.Context, branchID uint64, limit uint64) ([]entities.MenuItem, error)
	CreateMenuItem(ctx context.Context, tx pgx.Tx, item entities.MenuItem) (uint64, error)
	UpdateMenuItem(ctx context.Context, tx pgx.Tx, id uint64, item entities.MenuItem) error
	SoftDeleteMenuItem(ctx context.Context, tx pgx.Tx, id uint64) error
}

type MenuItemRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMenuItemRepository(storage *pgxpool.Pool, logger *zap.Logger) MenuItemRepositoryInterface {
	return &MenuItemRepository{storage: storage, logger: logger}
}

var menuItemColumns = []string{
	"m.id", "m.branch_id", "m.name", "m.description", "m.price", "m.category",
	"m.is_available", "m.preparation_time_minutes", "m.tags", "m.is_deleted",
	"m.created_at", "m.updated_at",
}

func scanMenuItem(row pgx.Row) (*entities.MenuItem, error) {
	var m entities.MenuItem
	var description sql.NullString
	var prepTime sql.NullInt32

	err := row.Scan(
		&m.ID, &m.BranchID, &m.Name, &description, &m.Price, &m.Category,
		&m.IsAvailable, &prepTime, &m.Tags, &m.IsDeleted,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan menu item: %w", err)
	}

	if description.Valid {
		m.Description = &description.String
	}
	if prepTime.Valid {
		v := int(prepTime.Int32)
		m.PreparationTimeMinutes = &v
	}
	return &m, nil
}

// FindMenuItem resolves a live (not soft-deleted) item.
func (r *MenuItemRepository) FindMenuItem(ctx context.Context, id uint64) (*entities.MenuItem, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(menuItemColumns...).
		From("menu_items m").
		Where(sq.Eq{"m.id": id, "m.is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanMenuItem(r.storage.QueryRow(ctx, query, args...))
}

func (r *MenuItemRepository) GetBranchMenu(ctx context.Context, branchID uint64, category string, limit, offset uint64) ([]entities.MenuItem, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Select(menuItemColumns...).
		From("menu_items m").
		Where(sq.Eq{"m.branch_id": branchID, "m.is_deleted": false}).
		OrderBy("m.category", "m.name")
	if category != "" {
		builder = builder.Where(sq.Eq{"m.category": category})
	}
	if limit > 0 {
		builder = builder.Limit(limit).Offset(offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetPopularItems ranks a branch's live items by how often they were ordered.
func (r *MenuItemRepository) GetPopularItems(ctx context.Context, branchID uint64, limit uint64) ([]entities.MenuItem, error) {
	query := `
		SELECT m.id, m.branch_id, m.name, m.description, m.price, m.category,
		       m.is_available, m.preparation_time_minutes, m.tags, m.is_deleted,
		       m.created_at, m.updated_at
		FROM menu_items m
		LEFT JOIN order_items oi ON oi.menu_item_id = m.id
		WHERE m.branch_id = $1 AND m.is_deleted = FALSE AND m.is_available = TRUE
		GROUP BY m.id
		ORDER BY COALESCE(SUM(oi.quantity), 0) DESC, m.id
		LIMIT $2
	`
	rows, err := r.storage.Query(ctx, query, branchID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.MenuItem, 0, limit)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *MenuItemRepository) CreateMenuItem(ctx context.Context, tx pgx.Tx, item entities.MenuItem) (uint64, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	query := `
		INSERT INTO menu_items (branch_id, name, description, price, category, is_available,
		                        preparation_time_minutes, tags, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := querier.QueryRow(ctx, query,
		item.BranchID, item.Name, item.Description, item.Price, item.Category,
		item.IsAvailable, item.PreparationTimeMinutes, item.Tags,
	).Scan(&newID)
	return newID, err
}

func (r *MenuItemRepository) UpdateMenuItem(ctx context.Context, tx pgx.Tx, id uint64, item entities.MenuItem) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, is_available = $5,
		    preparation_time_minutes = $6, tags = $7, updated_at = NOW()
		WHERE id = $8 AND is_deleted = FALSE
	`
	result, err := querier.Exec(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.IsAvailable,
		item.PreparationTimeMinutes, item.Tags, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMenuItemNotFound
	}
	return nil
}

// SoftDeleteMenuItem flags the row; it also drops availability so the item
// cannot be ordered through any stale listing.
func (r *MenuItemRepository) SoftDeleteMenuItem(ctx context.Context, tx pgx.Tx, id uint64) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	result, err := querier.Exec(ctx,
		`UPDATE menu_items SET is_deleted = TRUE, is_available = FALSE, updated_at = NOW() WHERE id = $1 AND is_deleted = FALSE`,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMenuItemNotFound
	}
	return nil
}

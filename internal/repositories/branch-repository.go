package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/schedule"
)

type BranchRepositoryInterface interface {
	GetBranches(ctx context.Context, vendorID uint64, limit, offset uint64) ([]entities.Branch, uint64, error)
	FindBranch(ctx context.Context, id uint64) (*entities.Branch, error)
	CreateBranch(ctx context.Context, branch entities.Branch) (uint64, error)
	UpdateBranch(ctx context.Context, id uint64, branch entities.Branch) error
	SetOperatingHours(ctx context.Context, id uint64, hours schedule.Week, isOpen bool) error
	SetOpen(ctx context.Context, id uint64, isOpen bool) error
	BumpMenuVersion(ctx context.Context, tx pgx.Tx, id uint64) error
	SetOnboardingStatus(ctx context.Context, id uint64, status string) error
	IncrementTotalOrders(ctx context.Context, tx pgx.Tx, id uint64) error
}

type BranchRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewBranchRepository(storage *pgxpool.Pool, logger *zap.Logger) BranchRepositoryInterface {
	return &BranchRepository{storage: storage, logger: logger}
}

var branchColumns = []string{
	"b.id", "b.vendor_id", "b.branch_name", "b.branch_code", "b.display_name",
	"b.address", "b.latitude", "b.longitude", "b.city",
	"b.branch_phone", "b.branch_email", "b.manager_name", "b.manager_phone",
	"b.onboarding_status", "b.is_active", "b.is_open", "b.operating_hours",
	"b.rating", "b.total_orders", "b.menu_version", "b.created_at", "b.updated_at",
	"v.user_id", "v.business_name",
}

func scanBranch(row pgx.Row) (*entities.Branch, error) {
	var b entities.Branch
	var vendor entities.Vendor
	var displayName, branchPhone, branchEmail, managerName, managerPhone sql.NullString
	var latitude, longitude sql.NullFloat64
	var addressRaw, hoursRaw []byte

	err := row.Scan(
		&b.ID, &b.VendorID, &b.BranchName, &b.BranchCode, &displayName,
		&addressRaw, &latitude, &longitude, &b.City,
		&branchPhone, &branchEmail, &managerName, &managerPhone,
		&b.OnboardingStatus, &b.IsActive, &b.IsOpen, &hoursRaw,
		&b.Rating, &b.TotalOrders, &b.MenuVersion, &b.CreatedAt, &b.UpdatedAt,
		&vendor.UserID, &vendor.BusinessName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan branch: %w", err)
	}

	if displayName.Valid {
		b.DisplayName = &displayName.String
	}
	if branchPhone.Valid {
		b.BranchPhone = &branchPhone.String
	}
	if branchEmail.Valid {
		b.BranchEmail = &branchEmail.String
	}
	if managerName.Valid {
		b.ManagerName = &managerName.String
	}
	if managerPhone.Valid {
		b.ManagerPhone = &managerPhone.String
	}
	if latitude.Valid {
		b.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		b.Longitude = &longitude.Float64
	}
	if len(addressRaw) > 0 {
		if err := json.Unmarshal(addressRaw, &b.Address); err != nil {
			return nil, fmt.Errorf("unmarshal branch address: %w", err)
		}
	}
	if len(hoursRaw) > 0 {
		if err := json.Unmarshal(hoursRaw, &b.OperatingHours); err != nil {
			return nil, fmt.Errorf("unmarshal operating hours: %w", err)
		}
	}
	vendor.ID = b.VendorID
	b.Vendor = &vendor

	return &b, nil
}

func (r *BranchRepository) GetBranches(ctx context.Context, vendorID uint64, limit, offset uint64) ([]entities.Branch, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := psql.Select("COUNT(b.id)").From("vendor_branches AS b")
	if vendorID > 0 {
		countBuilder = countBuilder.Where(sq.Eq{"b.vendor_id": vendorID})
	}

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Branch{}, 0, nil
	}

	baseBuilder := psql.Select(branchColumns...).
		From("vendor_branches AS b").
		Join("vendors v ON b.vendor_id = v.id").
		OrderBy("b.id DESC").
		Limit(limit).
		Offset(offset)
	if vendorID > 0 {
		baseBuilder = baseBuilder.Where(sq.Eq{"b.vendor_id": vendorID})
	}

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	branches := make([]entities.Branch, 0, limit)
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, 0, err
		}
		branches = append(branches, *branch)
	}
	return branches, total, rows.Err()
}

func (r *BranchRepository) FindBranch(ctx context.Context, id uint64) (*entities.Branch, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(branchColumns...).
		From("vendor_branches b").
		Join("vendors v ON b.vendor_id = v.id").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanBranch(r.storage.QueryRow(ctx, query, args...))
}

func (r *BranchRepository) CreateBranch(ctx context.Context, branch entities.Branch) (uint64, error) {
	addressJSON, err := json.Marshal(branch.Address)
	if err != nil {
		return 0, fmt.Errorf("marshal branch address: %w", err)
	}
	hoursJSON, err := json.Marshal(branch.OperatingHours)
	if err != nil {
		return 0, fmt.Errorf("marshal operating hours: %w", err)
	}

	query := `
		INSERT INTO vendor_branches (
			vendor_id, branch_name, branch_code, display_name, address,
			latitude, longitude, city, branch_phone, branch_email,
			manager_name, manager_phone, onboarding_status, is_active, is_open,
			operating_hours, rating, total_orders, menu_version, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 0, 0, 1, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err = r.storage.QueryRow(ctx, query,
		branch.VendorID, branch.BranchName, branch.BranchCode, branch.DisplayName, addressJSON,
		branch.Latitude, branch.Longitude, branch.City, branch.BranchPhone, branch.BranchEmail,
		branch.ManagerName, branch.ManagerPhone, branch.OnboardingStatus, branch.IsActive, branch.IsOpen,
		hoursJSON,
	).Scan(&newID)
	return newID, err
}

func (r *BranchRepository) UpdateBranch(ctx context.Context, id uint64, branch entities.Branch) error {
	addressJSON, err := json.Marshal(branch.Address)
	if err != nil {
		return fmt.Errorf("marshal branch address: %w", err)
	}

	query := `
		UPDATE vendor_branches
		SET branch_name = $1, display_name = $2, address = $3, latitude = $4, longitude = $5,
		    city = $6, branch_phone = $7, branch_email = $8, manager_name = $9, manager_phone = $10,
		    updated_at = NOW()
		WHERE id = $11
	`
	result, err := r.storage.Exec(ctx, query,
		branch.BranchName, branch.DisplayName, addressJSON, branch.Latitude, branch.Longitude,
		branch.City, branch.BranchPhone, branch.BranchEmail, branch.ManagerName, branch.ManagerPhone, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}

// SetOperatingHours persists a validated week and the recomputed open flag
// in one UPDATE, so a reader never sees new hours with a stale flag.
func (r *BranchRepository) SetOperatingHours(ctx context.Context, id uint64, hours schedule.Week, isOpen bool) error {
	hoursJSON, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("marshal operating hours: %w", err)
	}

	result, err := r.storage.Exec(ctx,
		`UPDATE vendor_branches SET operating_hours = $1, is_open = $2, updated_at = NOW() WHERE id = $3`,
		hoursJSON, isOpen, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}

func (r *BranchRepository) SetOpen(ctx context.Context, id uint64, isOpen bool) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE vendor_branches SET is_open = $1, updated_at = NOW() WHERE id = $2`,
		isOpen, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}

// BumpMenuVersion adds exactly one to the branch's menu version. Plain
// last-write-wins increment: the counter invalidates caches, it is not a
// compare-and-swap token.
func (r *BranchRepository) BumpMenuVersion(ctx context.Context, tx pgx.Tx, id uint64) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	result, err := querier.Exec(ctx,
		`UPDATE vendor_branches SET menu_version = menu_version + 1, updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}

func (r *BranchRepository) SetOnboardingStatus(ctx context.Context, id uint64, status string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE vendor_branches SET onboarding_status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}

func (r *BranchRepository) IncrementTotalOrders(ctx context.Context, tx pgx.Tx, id uint64) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	result, err := querier.Exec(ctx,
		`UPDATE vendor_branches SET total_orders = total_orders + 1, updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
)

type VendorRepositoryInterface interface {
	GetVendors(ctx context.Context, limit, offset uint64) ([]entities.Vendor, uint64, error)
	FindVendor(ctx context.Context, id uint64) (*entities.Vendor, error)
	FindVendorByEmail(ctx context.Context, email string) (*entities.Vendor, error)
	CreateVendor(ctx context.Context, vendor entities.Vendor) (uint64, error)
	UpdateVendor(ctx context.Context, id uint64, vendor entities.Vendor) error
}

type VendorRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewVendorRepository(storage *pgxpool.Pool, logger *zap.Logger) VendorRepositoryInterface {
	return &VendorRepository{storage: storage, logger: logger}
}

var vendorColumns = []string{
	"v.id", "v.user_id", "v.business_name", "v.legal_name", "v.email",
	"v.phone", "v.business_type", "v.is_active", "v.created_at", "v.updated_at",
}

func scanVendor(row pgx.Row) (*entities.Vendor, error) {
	var v entities.Vendor
	var legalName sql.NullString

	err := row.Scan(
		&v.ID, &v.UserID, &v.BusinessName, &legalName, &v.Email,
		&v.Phone, &v.BusinessType, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrVendorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan vendor: %w", err)
	}

	if legalName.Valid {
		v.LegalName = &legalName.String
	}
	return &v, nil
}

func (r *VendorRepository) GetVendors(ctx context.Context, limit, offset uint64) ([]entities.Vendor, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	var total uint64
	sqlCount, argsCount, _ := psql.Select("COUNT(v.id)").From("vendors AS v").ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Vendor{}, 0, nil
	}

	query, args, err := psql.Select(vendorColumns...).
		From("vendors AS v").
		OrderBy("v.id DESC").
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

	vendors := make([]entities.Vendor, 0, limit)
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, 0, err
		}
		vendors = append(vendors, *vendor)
	}
	return vendors, total, rows.Err()
}

func (r *VendorRepository) findOne(ctx context.Context, where sq.Eq) (*entities.Vendor, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(vendorColumns...).From("vendors v").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scanVendor(r.storage.QueryRow(ctx, query, args...))
}

func (r *VendorRepository) FindVendor(ctx context.Context, id uint64) (*entities.Vendor, error) {
	return r.findOne(ctx, sq.Eq{"v.id": id})
}

func (r *VendorRepository) FindVendorByEmail(ctx context.Context, email string) (*entities.Vendor, error) {
	return r.findOne(ctx, sq.Eq{"v.email": email})
}

func (r *VendorRepository) CreateVendor(ctx context.Context, vendor entities.Vendor) (uint64, error) {
	query := `
		INSERT INTO vendors (user_id, business_name, legal_name, email, phone, business_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		vendor.UserID, vendor.BusinessName, vendor.LegalName, vendor.Email,
		vendor.Phone, vendor.BusinessType, vendor.IsActive,
	).Scan(&newID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrVendorExists
		}
		return 0, err
	}
	return newID, nil
}

func (r *VendorRepository) UpdateVendor(ctx context.Context, id uint64, vendor entities.Vendor) error {
	query := `
		UPDATE vendors
		SET business_name = $1, legal_name = $2, phone = $3, business_type = $4, updated_at = NOW()
		WHERE id = $5
	`
	result, err := r.storage.Exec(ctx, query,
		vendor.BusinessName, vendor.LegalName, vendor.Phone, vendor.BusinessType, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrVendorNotFound
	}
	return nil
}

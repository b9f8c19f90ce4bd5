package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/entities"
	"order-catalog/internal/repositories"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/utils"
)

type VendorService struct {
	vendorRepo repositories.VendorRepositoryInterface
	branchRepo repositories.BranchRepositoryInterface
	logger     *zap.Logger
}

func NewVendorService(
	vendorRepo repositories.VendorRepositoryInterface,
	branchRepo repositories.BranchRepositoryInterface,
	logger *zap.Logger,
) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		branchRepo: branchRepo,
		logger:     logger,
	}
}

// RegisterVendor creates a vendor profile owned by the calling user.
func (s *VendorService) RegisterVendor(ctx context.Context, in dto.RegisterVendorDTO) (*dto.VendorDTO, error) {
	callerID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("registering vendor", zap.String("email", in.Email))

	if _, err := s.vendorRepo.FindVendorByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.ErrVendorExists
	} else if !errors.Is(err, apperrors.ErrVendorNotFound) {
		return nil, err
	}

	vendor := entities.Vendor{
		UserID:       callerID,
		BusinessName: in.BusinessName,
		Email:        in.Email,
		Phone:        in.Phone,
		BusinessType: in.BusinessType,
		IsActive:     true,
	}
	if in.LegalName != "" {
		vendor.LegalName = &in.LegalName
	}

	newID, err := s.vendorRepo.CreateVendor(ctx, vendor)
	if err != nil {
		return nil, err
	}

	created, err := s.vendorRepo.FindVendor(ctx, newID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("vendor registered", zap.Uint64("vendorID", newID))
	return toVendorDTO(created), nil
}

func (s *VendorService) GetVendors(ctx context.Context, limit, offset uint64) ([]dto.VendorDTO, uint64, error) {
	vendors, total, err := s.vendorRepo.GetVendors(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.VendorDTO, 0, len(vendors))
	for i := range vendors {
		out = append(out, *toVendorDTO(&vendors[i]))
	}
	return out, total, nil
}

func (s *VendorService) GetVendor(ctx context.Context, vendorID uint64) (*dto.VendorDTO, error) {
	vendor, err := s.vendorRepo.FindVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return toVendorDTO(vendor), nil
}

func (s *VendorService) GetVendorBranches(ctx context.Context, vendorID uint64, limit, offset uint64) ([]dto.BranchDTO, uint64, error) {
	if _, err := s.vendorRepo.FindVendor(ctx, vendorID); err != nil {
		return nil, 0, err
	}
	branches, total, err := s.branchRepo.GetBranches(ctx, vendorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.BranchDTO, 0, len(branches))
	for i := range branches {
		out = append(out, *toBranchDTO(&branches[i]))
	}
	return out, total, nil
}

func (s *VendorService) UpdateVendor(ctx context.Context, vendorID uint64, in dto.UpdateVendorDTO) (*dto.VendorDTO, error) {
	s.logger.Info("updating vendor", zap.Uint64("vendorID", vendorID))

	vendor, err := s.vendorRepo.FindVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	callerID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if vendor.UserID != callerID {
		return nil, apperrors.ErrForbidden
	}

	if in.BusinessName.Valid {
		vendor.BusinessName = in.BusinessName.String
	}
	if in.LegalName.Valid {
		vendor.LegalName = &in.LegalName.String
	}
	if in.Phone.Valid {
		vendor.Phone = in.Phone.String
	}
	if in.BusinessType.Valid {
		vendor.BusinessType = in.BusinessType.String
	}

	if err := s.vendorRepo.UpdateVendor(ctx, vendorID, *vendor); err != nil {
		return nil, err
	}
	return toVendorDTO(vendor), nil
}

package services

import (
	"context"
	"time"

	"order-catalog/internal/dto"
	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/utils"
)

// authorizeBranchOwner checks the caller against the owning vendor's user id.
func authorizeBranchOwner(ctx context.Context, branch *entities.Branch) error {
	callerID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	if branch.Vendor == nil || branch.Vendor.UserID != callerID {
		return apperrors.ErrForbidden
	}
	return nil
}

func toVendorDTO(v *entities.Vendor) *dto.VendorDTO {
	return &dto.VendorDTO{
		ID:           v.ID,
		UserID:       v.UserID.String(),
		BusinessName: v.BusinessName,
		LegalName:    v.LegalName,
		Email:        v.Email,
		Phone:        v.Phone,
		BusinessType: v.BusinessType,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
	}
}

func toBranchDTO(b *entities.Branch) *dto.BranchDTO {
	return &dto.BranchDTO{
		ID:               b.ID,
		VendorID:         b.VendorID,
		BranchName:       b.BranchName,
		BranchCode:       b.BranchCode,
		DisplayName:      b.DisplayName,
		Address:          b.Address,
		City:             b.City,
		OnboardingStatus: b.OnboardingStatus,
		IsActive:         b.IsActive,
		IsOpen:           b.IsOpen,
		OperatingHours:   b.OperatingHours,
		Rating:           b.Rating,
		TotalOrders:      b.TotalOrders,
		MenuVersion:      b.MenuVersion,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func toMenuItemDTO(m *entities.MenuItem) *dto.MenuItemDTO {
	return &dto.MenuItemDTO{
		ID:                     m.ID,
		BranchID:               m.BranchID,
		Name:                   m.Name,
		Description:            m.Description,
		Price:                  m.Price,
		Category:               m.Category,
		IsAvailable:            m.IsAvailable,
		PreparationTimeMinutes: m.PreparationTimeMinutes,
		Tags:                   m.Tags,
		CreatedAt:              m.CreatedAt.Format(time.RFC3339),
	}
}

func toMenuItemDTOs(items []entities.MenuItem) []dto.MenuItemDTO {
	out := make([]dto.MenuItemDTO, 0, len(items))
	for i := range items {
		out = append(out, *toMenuItemDTO(&items[i]))
	}
	return out
}

func toDocumentDTO(d *entities.BranchDocument) *dto.DocumentDTO {
	return &dto.DocumentDTO{
		ID:                 d.ID,
		BranchID:           d.BranchID,
		DocumentType:       d.DocumentType,
		DocumentNumber:     d.DocumentNumber,
		DocumentURL:        d.DocumentURL,
		VerificationStatus: d.VerificationStatus,
		CreatedAt:          d.CreatedAt.Format(time.RFC3339),
	}
}

func toOrderDTO(o *entities.Order) *dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{
			MenuItemID: it.MenuItemID,
			ItemName:   it.ItemName,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
			LineTotal:  it.LineTotal,
		})
	}
	return &dto.OrderDTO{
		ID:            o.ID,
		BranchID:      o.BranchID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
		Items:         items,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

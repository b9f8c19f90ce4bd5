package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/services"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/utils"
)

type VendorController struct {
	vendorService *services.VendorService
	logger        *zap.Logger
}

func NewVendorController(
	vendorService *services.VendorService,
	logger *zap.Logger,
) *VendorController {
	return &VendorController{
		vendorService: vendorService,
		logger:        logger,
	}
}

func (c *VendorController) GetVendors(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx.QueryParams())

	vendors, total, err := c.vendorService.GetVendors(reqCtx, limit, offset)
	if err != nil {
		c.logger.Error("failed to list vendors", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, vendors, "Vendors fetched successfully", http.StatusOK, total)
}

func (c *VendorController) RegisterVendor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.RegisterVendorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.vendorService.RegisterVendor(reqCtx, payload)
	if err != nil {
		c.logger.Error("failed to register vendor", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Vendor registered successfully", http.StatusCreated)
}

func (c *VendorController) FindVendor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid vendor ID"))
	}

	res, err := c.vendorService.GetVendor(reqCtx, id)
	if err != nil {
		c.logger.Error("failed to find vendor", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Vendor fetched successfully", http.StatusOK)
}

func (c *VendorController) GetVendorBranches(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid vendor ID"))
	}
	limit, offset := utils.ParsePagination(ctx.QueryParams())

	branches, total, err := c.vendorService.GetVendorBranches(reqCtx, id, limit, offset)
	if err != nil {
		c.logger.Error("failed to list vendor branches", zap.Error(err), zap.Uint64("vendorID", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, branches, "Branches fetched successfully", http.StatusOK, total)
}

func (c *VendorController) UpdateVendor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid vendor ID"))
	}

	var payload dto.UpdateVendorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.vendorService.UpdateVendor(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("failed to update vendor", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Vendor updated successfully", http.StatusOK)
}

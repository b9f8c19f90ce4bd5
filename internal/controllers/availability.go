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

type AvailabilityController struct {
	availabilityService *services.AvailabilityService
	logger              *zap.Logger
}

func NewAvailabilityController(
	availabilityService *services.AvailabilityService,
	logger *zap.Logger,
) *AvailabilityController {
	return &AvailabilityController{
		availabilityService: availabilityService,
		logger:              logger,
	}
}

func (c *AvailabilityController) UpdateOperatingHours(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	var payload dto.OperatingHoursDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.availabilityService.UpdateOperatingHours(reqCtx, branchID, payload.Hours)
	if err != nil {
		c.logger.Error("failed to update operating hours", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Operating hours updated successfully", http.StatusOK)
}

func (c *AvailabilityController) GetOperatingHours(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	res, err := c.availabilityService.GetOperatingHours(reqCtx, branchID)
	if err != nil {
		c.logger.Error("failed to get operating hours", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Operating hours fetched successfully", http.StatusOK)
}

func (c *AvailabilityController) ToggleBranchStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	var payload dto.BranchStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.availabilityService.ToggleBranchStatus(reqCtx, branchID, *payload.IsOpen)
	if err != nil {
		c.logger.Error("failed to toggle branch status", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Branch status updated successfully", http.StatusOK)
}

func (c *AvailabilityController) CheckAvailability(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	res, err := c.availabilityService.CheckAvailability(reqCtx, branchID)
	if err != nil {
		c.logger.Error("failed to check availability", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Availability fetched successfully", http.StatusOK)
}

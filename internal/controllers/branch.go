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

type BranchController struct {
	branchService *services.BranchService
	logger        *zap.Logger
}

func NewBranchController(
	branchService *services.BranchService,
	logger *zap.Logger,
) *BranchController {
	return &BranchController{
		branchService: branchService,
		logger:        logger,
	}
}

func (c *BranchController) CreateBranch(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	vendorID, err := strconv.ParseUint(ctx.Param("vendorId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid vendor ID"))
	}

	var payload dto.CreateBranchDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.branchService.CreateBranch(reqCtx, vendorID, payload)
	if err != nil {
		c.logger.Error("failed to create branch", zap.Error(err), zap.Uint64("vendorID", vendorID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Branch created successfully", http.StatusCreated)
}

func (c *BranchController) FindBranch(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	res, err := c.branchService.GetBranch(reqCtx, id)
	if err != nil {
		c.logger.Error("failed to find branch", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Branch fetched successfully", http.StatusOK)
}

func (c *BranchController) UpdateBranch(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	vendorID, err := strconv.ParseUint(ctx.Param("vendorId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid vendor ID"))
	}
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	var payload dto.UpdateBranchDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.branchService.UpdateBranch(reqCtx, vendorID, branchID, payload)
	if err != nil {
		c.logger.Error("failed to update branch", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Branch updated successfully", http.StatusOK)
}

func (c *BranchController) UploadDocument(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	var payload dto.UploadDocumentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.branchService.UploadDocument(reqCtx, branchID, payload)
	if err != nil {
		c.logger.Error("failed to upload document", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Document uploaded successfully", http.StatusCreated)
}

func (c *BranchController) GetDocuments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	res, err := c.branchService.GetDocuments(reqCtx, branchID)
	if err != nil {
		c.logger.Error("failed to list documents", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Documents fetched successfully", http.StatusOK)
}

func (c *BranchController) GetOnboardingStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	res, err := c.branchService.GetOnboardingStatus(reqCtx, branchID)
	if err != nil {
		c.logger.Error("failed to get onboarding status", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Onboarding status fetched successfully", http.StatusOK)
}

package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/services"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/utils"
)

type MenuController struct {
	menuService *services.MenuService
	logger      *zap.Logger
}

func NewMenuController(
	menuService *services.MenuService,
	logger *zap.Logger,
) *MenuController {
	return &MenuController{
		menuService: menuService,
		logger:      logger,
	}
}

func (c *MenuController) CreateMenuItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	var payload dto.CreateMenuItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.menuService.CreateMenuItem(reqCtx, branchID, payload)
	if err != nil {
		c.logger.Error("failed to create menu item", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Menu item created successfully", http.StatusCreated)
}

func (c *MenuController) GetBranchMenu(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}
	category := ctx.QueryParam("category")

	// Full uncached listing unless the caller paginates explicitly.
	var limit, offset uint64
	if ctx.QueryParam("limit") != "" || ctx.QueryParam("offset") != "" || ctx.QueryParam("page") != "" {
		limit, offset = utils.ParsePagination(ctx.QueryParams())
	}

	res, err := c.menuService.GetBranchMenu(reqCtx, branchID, category, limit, offset)
	if err != nil {
		c.logger.Error("failed to get branch menu", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Menu fetched successfully", http.StatusOK)
}

func (c *MenuController) GetPopularItems(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	res, err := c.menuService.GetPopularItems(reqCtx, branchID)
	if err != nil {
		c.logger.Error("failed to get popular items", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Popular items fetched successfully", http.StatusOK)
}

func (c *MenuController) FindMenuItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("itemId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid menu item ID"))
	}

	res, err := c.menuService.GetMenuItem(reqCtx, id)
	if err != nil {
		c.logger.Error("failed to find menu item", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Menu item fetched successfully", http.StatusOK)
}

func (c *MenuController) UpdateMenuItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("itemId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid menu item ID"))
	}

	var payload dto.UpdateMenuItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.menuService.UpdateMenuItem(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("failed to update menu item", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Menu item updated successfully", http.StatusOK)
}

func (c *MenuController) DeleteMenuItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("itemId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid menu item ID"))
	}

	if err := c.menuService.DeleteMenuItem(reqCtx, id); err != nil {
		c.logger.Error("failed to delete menu item", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, nil, "Menu item deleted successfully", http.StatusOK)
}

func (c *MenuController) ExportBranchMenu(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	file, fileName, err := c.menuService.ExportBranchMenu(reqCtx, branchID)
	if err != nil {
		c.logger.Error("failed to export branch menu", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	ctx.Response().WriteHeader(http.StatusOK)
	return file.Write(ctx.Response())
}

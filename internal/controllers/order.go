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

type OrderController struct {
	orderService *services.OrderService
	logger       *zap.Logger
}

func NewOrderController(
	orderService *services.OrderService,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		orderService: orderService,
		logger:       logger,
	}
}

func (c *OrderController) PlaceOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}

	var payload dto.PlaceOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.orderService.PlaceOrder(reqCtx, branchID, payload)
	if err != nil {
		c.logger.Error("failed to place order", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Order placed successfully", http.StatusCreated)
}

func (c *OrderController) FindOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid order ID"))
	}

	res, err := c.orderService.GetOrder(reqCtx, id)
	if err != nil {
		c.logger.Error("failed to find order", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Order fetched successfully", http.StatusOK)
}

func (c *OrderController) GetBranchOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	branchID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid branch ID"))
	}
	limit, offset := utils.ParsePagination(ctx.QueryParams())

	orders, total, err := c.orderService.GetBranchOrders(reqCtx, branchID, limit, offset)
	if err != nil {
		c.logger.Error("failed to list branch orders", zap.Error(err), zap.Uint64("branchID", branchID))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, orders, "Orders fetched successfully", http.StatusOK, total)
}

package routes

import (
	"github.com/labstack/echo/v4"

	"order-catalog/internal/controllers"
	"order-catalog/pkg/middleware"
)

func runOrderRouter(api *echo.Group, ctrl *controllers.OrderController, authMW *middleware.AuthMiddleware) {
	api.POST("/branches/:id/orders", ctrl.PlaceOrder)
	api.GET("/orders/:id", ctrl.FindOrder)

	api.GET("/branches/:id/orders", ctrl.GetBranchOrders, authMW.Auth)
}

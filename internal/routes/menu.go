package routes

import (
	"github.com/labstack/echo/v4"

	"order-catalog/internal/controllers"
	"order-catalog/pkg/middleware"
)

func runMenuRouter(api *echo.Group, ctrl *controllers.MenuController, authMW *middleware.AuthMiddleware) {
	api.GET("/branches/:id/menu", ctrl.GetBranchMenu)
	api.GET("/branches/:id/menu/popular", ctrl.GetPopularItems)
	api.GET("/menu-items/:itemId", ctrl.FindMenuItem)

	api.POST("/branches/:id/menu", ctrl.CreateMenuItem, authMW.Auth)
	api.PUT("/menu-items/:itemId", ctrl.UpdateMenuItem, authMW.Auth)
	api.DELETE("/menu-items/:itemId", ctrl.DeleteMenuItem, authMW.Auth)
	api.GET("/branches/:id/menu/export", ctrl.ExportBranchMenu, authMW.Auth)
}

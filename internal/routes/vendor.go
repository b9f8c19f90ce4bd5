package routes

import (
	"github.com/labstack/echo/v4"

	"order-catalog/internal/controllers"
	"order-catalog/pkg/middleware"
)

func runVendorRouter(api *echo.Group, ctrl *controllers.VendorController, authMW *middleware.AuthMiddleware) {
	api.GET("/vendors", ctrl.GetVendors)
	api.GET("/vendors/:id", ctrl.FindVendor)
	api.GET("/vendors/:id/branches", ctrl.GetVendorBranches)

	api.POST("/vendors", ctrl.RegisterVendor, authMW.Auth)
	api.PUT("/vendors/:id", ctrl.UpdateVendor, authMW.Auth)
}

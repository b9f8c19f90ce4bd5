package routes

import (
	"github.com/labstack/echo/v4"

	"order-catalog/internal/controllers"
	"order-catalog/pkg/middleware"
)

func runAvailabilityRouter(api *echo.Group, ctrl *controllers.AvailabilityController, authMW *middleware.AuthMiddleware) {
	api.GET("/branches/:id/operating-hours", ctrl.GetOperatingHours)
	api.GET("/branches/:id/availability", ctrl.CheckAvailability)

	api.PUT("/branches/:id/operating-hours", ctrl.UpdateOperatingHours, authMW.Auth)
	api.PUT("/branches/:id/status", ctrl.ToggleBranchStatus, authMW.Auth)
}

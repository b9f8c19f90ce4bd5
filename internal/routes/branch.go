package routes

import (
	"github.com/labstack/echo/v4"

	"order-catalog/internal/controllers"
	"order-catalog/pkg/middleware"
)

func runBranchRouter(api *echo.Group, ctrl *controllers.BranchController, authMW *middleware.AuthMiddleware) {
	api.GET("/branches/:id", ctrl.FindBranch)

	api.POST("/vendors/:vendorId/branches", ctrl.CreateBranch, authMW.Auth)
	api.PUT("/vendors/:vendorId/branches/:id", ctrl.UpdateBranch, authMW.Auth)

	api.POST("/branches/:id/documents", ctrl.UploadDocument, authMW.Auth)
	api.GET("/branches/:id/documents", ctrl.GetDocuments, authMW.Auth)
	api.GET("/branches/:id/onboarding-status", ctrl.GetOnboardingStatus, authMW.Auth)
}

package routes

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"order-catalog/internal/controllers"
	"order-catalog/internal/repositories"
	"order-catalog/internal/services"
	"order-catalog/pkg/config"
	"order-catalog/pkg/middleware"
	"order-catalog/pkg/service"
)

// InitRouter wires repositories, services and controllers and registers every
// route under /api/v1. Mutating vendor routes require a Bearer token; catalog
// reads and order placement are public.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	location *time.Location,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api/v1")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	vendorRepo := repositories.NewVendorRepository(dbConn, logger)
	branchRepo := repositories.NewBranchRepository(dbConn, logger)
	docRepo := repositories.NewBranchDocumentRepository(dbConn)
	menuRepo := repositories.NewMenuItemRepository(dbConn, logger)
	orderRepo := repositories.NewOrderRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	menuCache := services.NewMenuCacheService(cacheRepo, logger, cfg.Cache.MenuTTL, cfg.Cache.PopularItemsTTL)
	vendorService := services.NewVendorService(vendorRepo, branchRepo, logger)
	branchService := services.NewBranchService(vendorRepo, branchRepo, docRepo, logger)
	availabilityService := services.NewAvailabilityService(branchRepo, location, logger)
	menuService := services.NewMenuService(menuRepo, branchRepo, menuCache, txManager, logger)
	orderService := services.NewOrderService(orderRepo, menuRepo, branchRepo, txManager, logger)

	vendorCtrl := controllers.NewVendorController(vendorService, logger)
	branchCtrl := controllers.NewBranchController(branchService, logger)
	availabilityCtrl := controllers.NewAvailabilityController(availabilityService, logger)
	menuCtrl := controllers.NewMenuController(menuService, logger)
	orderCtrl := controllers.NewOrderController(orderService, logger)

	runVendorRouter(api, vendorCtrl, authMW)
	runBranchRouter(api, branchCtrl, authMW)
	runAvailabilityRouter(api, availabilityCtrl, authMW)
	runMenuRouter(api, menuCtrl, authMW)
	runOrderRouter(api, orderCtrl, authMW)

	logger.Info("routes registered")
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"order-catalog/internal/routes"
	"order-catalog/pkg/config"
	"order-catalog/pkg/database/postgresql"
	apperrors "order-catalog/pkg/errors"
	applogger "order-catalog/pkg/logger"
	"order-catalog/pkg/service"
	"order-catalog/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				return utils.ErrorResponse(c, httpErr)
			}
			return err
		},
	}))

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := utils.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validation rules", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, "migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	location, err := time.LoadLocation(cfg.PlatformTimezone)
	if err != nil {
		logger.Fatal("failed to load platform timezone", zap.String("timezone", cfg.PlatformTimezone), zap.Error(err))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, location, logger, cfg)

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

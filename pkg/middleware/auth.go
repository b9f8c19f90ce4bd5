package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/service"
	"order-catalog/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth validates the Bearer token and stores the caller's user id in the
// request context for the service layer's ownership checks.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: empty Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: malformed Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: refresh token used for access")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess)
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			m.logger.Warn("AuthMiddleware: token carries a malformed user id", zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken)
		}

		c.SetRequest(c.Request().WithContext(utils.WithUserID(c.Request().Context(), userID)))
		return next(c)
	}
}

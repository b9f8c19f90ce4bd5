package routes

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"order-catalog/internal/controllers"
	"order-catalog/pkg/middleware"
	"order-catalog/pkg/service"
)

func TestAvailabilityRoutes(t *testing.T) {
	e := echo.New()
	api := e.Group("/api/v1")

	ctrl := controllers.NewAvailabilityController(nil, zap.NewNop())
	jwtSvc := service.NewJWTService("test-secret", time.Hour, time.Hour)
	authMW := middleware.NewAuthMiddleware(jwtSvc, zap.NewNop())

	runAvailabilityRouter(api, ctrl, authMW)

	registered := make(map[string]string)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = r.Name
	}

	assert.Contains(t, registered, http.MethodGet+" /api/v1/branches/:id/operating-hours")
	assert.Contains(t, registered, http.MethodGet+" /api/v1/branches/:id/availability")
	assert.Contains(t, registered, http.MethodPut+" /api/v1/branches/:id/operating-hours")

	// The status toggle is a PUT; the mobile clients were built against it.
	assert.Contains(t, registered, http.MethodPut+" /api/v1/branches/:id/status")
	assert.NotContains(t, registered, http.MethodPatch+" /api/v1/branches/:id/status")
}

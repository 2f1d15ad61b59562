package middleware

import (
	"net/http"

	"hrhub/internal/common"
	"hrhub/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireModule wraps a route group so its handlers only run when the
// module is enabled for the caller's tenant. The check is server-side on
// every request; disabling a module takes effect immediately even for
// clients holding a stale config.
func RequireModule(tenantSvc services.TenantService, gateSvc services.AccessGateService, moduleKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			tenantID, ok := common.GetTenantIDFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing tenant context")
			}

			tenant, err := tenantSvc.GetByID(ctx, tenantID)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Module access denied")
			}

			if !gateSvc.Check(ctx, tenant.Subdomain, moduleKey) {
				return echo.NewHTTPError(http.StatusForbidden, "This module is not enabled for your organization")
			}

			return next(c)
		}
	}
}

package handlers

import (
	"errors"
	"net/http"

	"hrhub/internal/common"
	"hrhub/internal/services"

	"github.com/labstack/echo/v4"
)

// ConfigHandlers serves the public tenant bootstrap endpoints. These are
// unauthenticated: the frontend calls them before any login happens.
type ConfigHandlers struct {
	configService services.TenantConfigService
	gateService   services.AccessGateService
}

func NewConfigHandlers(configService services.TenantConfigService, gateService services.AccessGateService) *ConfigHandlers {
	return &ConfigHandlers{
		configService: configService,
		gateService:   gateService,
	}
}

// GetTenantConfig handles GET /v1/config/:subdomain
func (h *ConfigHandlers) GetTenantConfig(c echo.Context) error {
	ctx := c.Request().Context()

	subdomain := c.Param("subdomain")
	if subdomain == "" {
		return common.SendValidationError(c, "subdomain", "Subdomain is required")
	}

	config, err := h.configService.Resolve(ctx, subdomain)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return common.SendNotFoundError(c, "Tenant")
		}
		return common.SendServerError(c, "Failed to resolve tenant configuration")
	}

	return c.JSON(http.StatusOK, config)
}

// CheckModuleAccess handles GET /v1/module-access?subdomain=&module=
// It always answers 200 with an enabled flag; a missing tenant or unknown
// module key is simply disabled, so callers cannot probe which subdomains
// exist.
func (h *ConfigHandlers) CheckModuleAccess(c echo.Context) error {
	ctx := c.Request().Context()

	subdomain := c.QueryParam("subdomain")
	moduleKey := c.QueryParam("module")
	if subdomain == "" || moduleKey == "" {
		return common.SendValidationError(c, "subdomain", "Both subdomain and module are required")
	}

	enabled := h.gateService.Check(ctx, subdomain, moduleKey)

	return c.JSON(http.StatusOK, map[string]bool{"enabled": enabled})
}

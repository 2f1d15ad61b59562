package handlers

import (
	"net/http"

	"hrhub/internal/common"
	"hrhub/internal/services"

	"github.com/labstack/echo/v4"
)

// ModuleHandlers exposes the module catalog to the provisioning console.
type ModuleHandlers struct {
	registryService services.ModuleRegistryService
}

func NewModuleHandlers(registryService services.ModuleRegistryService) *ModuleHandlers {
	return &ModuleHandlers{registryService: registryService}
}

// ListModules handles GET /v1/modules
func (h *ModuleHandlers) ListModules(c echo.Context) error {
	ctx := c.Request().Context()

	modules, err := h.registryService.List(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to list modules")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"modules": modules,
		"count":   len(modules),
	})
}

// InitializeModules handles POST /v1/modules/initialize. Safe to call more
// than once; modules already present are left untouched.
func (h *ModuleHandlers) InitializeModules(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.registryService.Initialize(ctx); err != nil {
		return common.SendServerError(c, "Failed to initialize module registry")
	}

	modules, err := h.registryService.List(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to list modules")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Module registry initialized",
		"modules": modules,
	})
}

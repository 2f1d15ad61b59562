package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hrhub/internal/common"
	"hrhub/internal/services"

	"github.com/labstack/echo/v4"
)

// TenantHandlers implements the provisioning console endpoints. All of
// these sit behind the admin middleware.
type TenantHandlers struct {
	tenantService services.TenantService
}

func NewTenantHandlers(tenantService services.TenantService) *TenantHandlers {
	return &TenantHandlers{tenantService: tenantService}
}

// CreateTenant handles POST /v1/tenants
func (h *TenantHandlers) CreateTenant(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if strings.TrimSpace(req.Name) == "" {
		return common.SendValidationError(c, "name", "Name is required")
	}
	if req.PrimaryColor != "" {
		if err := common.ValidateHexColor(req.PrimaryColor, "primary_color"); err != nil {
			return common.SendValidationError(c, "primary_color", err.Error())
		}
	}
	if req.SecondaryColor != "" {
		if err := common.ValidateHexColor(req.SecondaryColor, "secondary_color"); err != nil {
			return common.SendValidationError(c, "secondary_color", err.Error())
		}
	}
	if req.AdminEmail != "" && len(req.AdminPassword) < 8 {
		return common.SendValidationError(c, "admin_password", "Admin password must be at least 8 characters")
	}

	tenant, err := h.tenantService.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSubdomain) {
			return common.SendValidationError(c, "subdomain", err.Error())
		}
		return common.SendServerError(c, "Failed to create tenant")
	}

	return c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /v1/tenants/:id
func (h *TenantHandlers) GetTenant(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, err := common.ValidateUUID(c.Param("id"), "tenant ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	tenant, err := h.tenantService.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return common.SendNotFoundError(c, "Tenant")
		}
		return common.SendServerError(c, "Failed to get tenant")
	}

	return c.JSON(http.StatusOK, tenant)
}

// ListTenants handles GET /v1/tenants
func (h *TenantHandlers) ListTenants(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	tenants, err := h.tenantService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list tenants")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"tenants": tenants,
		"count":   len(tenants),
	})
}

// UpdateTenant handles PUT /v1/tenants/:id. The subdomain is immutable and
// silently ignored if present in the payload.
func (h *TenantHandlers) UpdateTenant(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, err := common.ValidateUUID(c.Param("id"), "tenant ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req services.UpdateTenantRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.ID = tenantID

	if req.PrimaryColor != nil {
		if err := common.ValidateHexColor(*req.PrimaryColor, "primary_color"); err != nil {
			return common.SendValidationError(c, "primary_color", err.Error())
		}
	}
	if req.SecondaryColor != nil {
		if err := common.ValidateHexColor(*req.SecondaryColor, "secondary_color"); err != nil {
			return common.SendValidationError(c, "secondary_color", err.Error())
		}
	}

	tenant, err := h.tenantService.Update(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return common.SendNotFoundError(c, "Tenant")
		}
		return common.SendServerError(c, "Failed to update tenant")
	}

	return c.JSON(http.StatusOK, tenant)
}

// DeactivateTenant handles DELETE /v1/tenants/:id. Deactivation is a soft
// delete: the row stays, config resolution starts failing.
func (h *TenantHandlers) DeactivateTenant(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, err := common.ValidateUUID(c.Param("id"), "tenant ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.tenantService.Deactivate(ctx, tenantID); err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return common.SendNotFoundError(c, "Tenant")
		}
		return common.SendServerError(c, "Failed to deactivate tenant")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Tenant deactivated"})
}

type toggleModuleRequest struct {
	IsEnabled *bool `json:"is_enabled"`
}

// ToggleModule handles PUT /v1/tenants/:id/modules/:key
func (h *TenantHandlers) ToggleModule(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, err := common.ValidateUUID(c.Param("id"), "tenant ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	moduleKey := c.Param("key")
	if moduleKey == "" {
		return common.SendValidationError(c, "key", "Module key is required")
	}

	var req toggleModuleRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.IsEnabled == nil {
		return common.SendValidationError(c, "is_enabled", "is_enabled is required")
	}

	state, err := h.tenantService.ToggleModule(ctx, tenantID, moduleKey, *req.IsEnabled)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCoreModuleImmutable):
			return common.SendConflictError(c, "CORE_MODULE_IMMUTABLE", "Core modules cannot be disabled")
		case errors.Is(err, services.ErrModuleUnknown):
			return common.SendValidationError(c, "key", "Unknown module key")
		case errors.Is(err, services.ErrTenantNotFound):
			return common.SendNotFoundError(c, "Tenant")
		default:
			return common.SendServerError(c, "Failed to update module state")
		}
	}

	return c.JSON(http.StatusOK, state)
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type LeaveHandlers struct {
	leaveService services.LeaveService
}

func NewLeaveHandlers(leaveService services.LeaveService) *LeaveHandlers {
	return &LeaveHandlers{leaveService: leaveService}
}

// CreateLeaveRequest handles POST /v1/leave-requests
func (h *LeaveHandlers) CreateLeaveRequest(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.CreateLeaveRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.TenantID = tenantID

	if req.EmployeeID == uuid.Nil {
		return common.SendValidationError(c, "employee_id", "Employee ID is required")
	}

	leave, err := h.leaveService.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, leave)
}

// GetLeaveRequest handles GET /v1/leave-requests/:id
func (h *LeaveHandlers) GetLeaveRequest(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	leaveID, err := common.ValidateUUID(c.Param("id"), "leave request ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	leave, err := h.leaveService.GetByID(ctx, tenantID, leaveID)
	if err != nil {
		return common.SendNotFoundError(c, "Leave request")
	}

	return c.JSON(http.StatusOK, leave)
}

// ListLeaveRequests handles GET /v1/leave-requests?status=
func (h *LeaveHandlers) ListLeaveRequests(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	status := c.QueryParam("status")
	if status != "" && !models.ValidLeaveStatus(status) {
		return common.SendValidationError(c, "status", "Invalid leave status")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	leaves, err := h.leaveService.List(ctx, tenantID, status, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list leave requests")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"leave_requests": leaves,
		"count":          len(leaves),
	})
}

// ApproveLeaveRequest handles POST /v1/leave-requests/:id/approve
func (h *LeaveHandlers) ApproveLeaveRequest(c echo.Context) error {
	return h.transition(c, h.leaveService.Approve)
}

// RejectLeaveRequest handles POST /v1/leave-requests/:id/reject
func (h *LeaveHandlers) RejectLeaveRequest(c echo.Context) error {
	return h.transition(c, h.leaveService.Reject)
}

func (h *LeaveHandlers) transition(c echo.Context, fn func(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error)) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	leaveID, err := common.ValidateUUID(c.Param("id"), "leave request ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	leave, err := fn(ctx, tenantID, leaveID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return common.SendConflictError(c, "INVALID_TRANSITION", "Only pending requests can be decided")
		}
		return common.SendNotFoundError(c, "Leave request")
	}

	return c.JSON(http.StatusOK, leave)
}

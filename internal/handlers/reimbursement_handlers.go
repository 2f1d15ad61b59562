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

type ReimbursementHandlers struct {
	reimbursementService services.ReimbursementService
}

func NewReimbursementHandlers(reimbursementService services.ReimbursementService) *ReimbursementHandlers {
	return &ReimbursementHandlers{reimbursementService: reimbursementService}
}

// CreateReimbursement handles POST /v1/reimbursements
func (h *ReimbursementHandlers) CreateReimbursement(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.CreateReimbursementRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.TenantID = tenantID

	if req.EmployeeID == uuid.Nil {
		return common.SendValidationError(c, "employee_id", "Employee ID is required")
	}
	if req.Amount <= 0 {
		return common.SendValidationError(c, "amount", "Amount must be positive")
	}

	reimbursement, err := h.reimbursementService.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, reimbursement)
}

// GetReimbursement handles GET /v1/reimbursements/:id
func (h *ReimbursementHandlers) GetReimbursement(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	reimbursementID, err := common.ValidateUUID(c.Param("id"), "reimbursement ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	reimbursement, err := h.reimbursementService.GetByID(ctx, tenantID, reimbursementID)
	if err != nil {
		return common.SendNotFoundError(c, "Reimbursement request")
	}

	return c.JSON(http.StatusOK, reimbursement)
}

// ListReimbursements handles GET /v1/reimbursements?status=
func (h *ReimbursementHandlers) ListReimbursements(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	status := c.QueryParam("status")
	if status != "" && !models.ValidReimbursementStatus(status) {
		return common.SendValidationError(c, "status", "Invalid reimbursement status")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	reimbursements, err := h.reimbursementService.List(ctx, tenantID, status, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list reimbursement requests")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"reimbursements": reimbursements,
		"count":          len(reimbursements),
	})
}

type decideReimbursementRequest struct {
	AdminComment *string `json:"admin_comment"`
}

// ApproveReimbursement handles POST /v1/reimbursements/:id/approve. Approval
// credits the employee's wallet with the requested amount.
func (h *ReimbursementHandlers) ApproveReimbursement(c echo.Context) error {
	return h.decide(c, h.reimbursementService.Approve)
}

// RejectReimbursement handles POST /v1/reimbursements/:id/reject
func (h *ReimbursementHandlers) RejectReimbursement(c echo.Context) error {
	return h.decide(c, h.reimbursementService.Reject)
}

func (h *ReimbursementHandlers) decide(c echo.Context, fn func(ctx context.Context, tenantID, id uuid.UUID, adminComment *string) (*models.ReimbursementRequest, error)) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	reimbursementID, err := common.ValidateUUID(c.Param("id"), "reimbursement ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req decideReimbursementRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	reimbursement, err := fn(ctx, tenantID, reimbursementID, req.AdminComment)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return common.SendConflictError(c, "INVALID_TRANSITION", "Only pending requests can be decided")
		}
		return common.SendNotFoundError(c, "Reimbursement request")
	}

	return c.JSON(http.StatusOK, reimbursement)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ComplaintHandlers struct {
	complaintService services.ComplaintService
}

func NewComplaintHandlers(complaintService services.ComplaintService) *ComplaintHandlers {
	return &ComplaintHandlers{complaintService: complaintService}
}

// CreateComplaint handles POST /v1/complaints
func (h *ComplaintHandlers) CreateComplaint(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.CreateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.TenantID = tenantID

	if req.EmployeeID == uuid.Nil {
		return common.SendValidationError(c, "employee_id", "Employee ID is required")
	}

	complaint, err := h.complaintService.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, complaint)
}

// GetComplaint handles GET /v1/complaints/:id
func (h *ComplaintHandlers) GetComplaint(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	complaintID, err := common.ValidateUUID(c.Param("id"), "complaint ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	complaint, err := h.complaintService.GetByID(ctx, tenantID, complaintID)
	if err != nil {
		return common.SendNotFoundError(c, "Complaint")
	}

	return c.JSON(http.StatusOK, complaint)
}

// ListComplaints handles GET /v1/complaints?status=
func (h *ComplaintHandlers) ListComplaints(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	status := c.QueryParam("status")
	if status != "" && !models.ValidComplaintStatus(status) {
		return common.SendValidationError(c, "status", "Invalid complaint status")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	complaints, err := h.complaintService.List(ctx, tenantID, status, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list complaints")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"complaints": complaints,
		"count":      len(complaints),
	})
}

type updateComplaintStatusRequest struct {
	Status string `json:"status"`
}

// UpdateComplaintStatus handles PUT /v1/complaints/:id/status
func (h *ComplaintHandlers) UpdateComplaintStatus(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	complaintID, err := common.ValidateUUID(c.Param("id"), "complaint ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req updateComplaintStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if !models.ValidComplaintStatus(req.Status) {
		return common.SendValidationError(c, "status", "Invalid complaint status")
	}

	complaint, err := h.complaintService.UpdateStatus(ctx, tenantID, complaintID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return common.SendConflictError(c, "INVALID_TRANSITION", "Closed complaints cannot be reopened")
		}
		return common.SendNotFoundError(c, "Complaint")
	}

	return c.JSON(http.StatusOK, complaint)
}

type addReplyRequest struct {
	Message string `json:"message"`
}

// AddReply handles POST /v1/complaints/:id/replies
func (h *ComplaintHandlers) AddReply(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	complaintID, err := common.ValidateUUID(c.Param("id"), "complaint ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req addReplyRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if strings.TrimSpace(req.Message) == "" {
		return common.SendValidationError(c, "message", "Message is required")
	}

	reply, err := h.complaintService.AddReply(ctx, tenantID, complaintID, userID, req.Message)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, reply)
}

// ListReplies handles GET /v1/complaints/:id/replies
func (h *ComplaintHandlers) ListReplies(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	complaintID, err := common.ValidateUUID(c.Param("id"), "complaint ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	replies, err := h.complaintService.ListReplies(ctx, tenantID, complaintID)
	if err != nil {
		return common.SendServerError(c, "Failed to list replies")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"replies": replies,
		"count":   len(replies),
	})
}

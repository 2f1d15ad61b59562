package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hrhub/internal/common"
	"hrhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AttendanceHandlers struct {
	attendanceService services.AttendanceService
}

func NewAttendanceHandlers(attendanceService services.AttendanceService) *AttendanceHandlers {
	return &AttendanceHandlers{attendanceService: attendanceService}
}

// RecordAttendance handles POST /v1/attendance. Posting twice for the same
// employee and date updates the existing record.
func (h *AttendanceHandlers) RecordAttendance(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.RecordAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.TenantID = tenantID

	if req.EmployeeID == uuid.Nil {
		return common.SendValidationError(c, "employee_id", "Employee ID is required")
	}

	record, err := h.attendanceService.Record(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusOK, record)
}

// ListAttendance handles GET /v1/attendance?employee_id=&from=&to=
func (h *AttendanceHandlers) ListAttendance(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var employeeID *uuid.UUID
	if s := c.QueryParam("employee_id"); s != "" {
		id, err := common.ValidateUUID(s, "employee ID")
		if err != nil {
			return common.SendValidationError(c, "employee_id", err.Error())
		}
		employeeID = &id
	}

	var from, to time.Time
	if s := c.QueryParam("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return common.SendValidationError(c, "from", "Invalid date, expected YYYY-MM-DD")
		}
		from = t
	}
	if s := c.QueryParam("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return common.SendValidationError(c, "to", "Invalid date, expected YYYY-MM-DD")
		}
		to = t
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	records, err := h.attendanceService.List(ctx, tenantID, employeeID, from, to, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list attendance")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"attendance": records,
		"count":      len(records),
	})
}

// DeleteAttendance handles DELETE /v1/attendance/:id
func (h *AttendanceHandlers) DeleteAttendance(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	recordID, err := common.ValidateUUID(c.Param("id"), "attendance ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.attendanceService.Delete(ctx, tenantID, recordID); err != nil {
		return common.SendServerError(c, "Failed to delete attendance record")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Attendance record deleted"})
}

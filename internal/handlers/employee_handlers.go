package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/services"

	"github.com/labstack/echo/v4"
)

type EmployeeHandlers struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandlers(employeeService services.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{employeeService: employeeService}
}

// CreateEmployee handles POST /v1/employees
func (h *EmployeeHandlers) CreateEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.TenantID = tenantID

	if strings.TrimSpace(req.Name) == "" {
		return common.SendValidationError(c, "name", "Name is required")
	}
	if req.Status != "" && !models.ValidEmploymentStatus(req.Status) {
		return common.SendValidationError(c, "status", "Invalid employment status")
	}

	employee, err := h.employeeService.Create(ctx, &req)
	if err != nil {
		return common.SendServerError(c, "Failed to create employee")
	}

	return c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /v1/employees/:id
func (h *EmployeeHandlers) GetEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	employee, err := h.employeeService.GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return common.SendNotFoundError(c, "Employee")
	}

	return c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /v1/employees
func (h *EmployeeHandlers) ListEmployees(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	status := c.QueryParam("status")
	if status != "" && !models.ValidEmploymentStatus(status) {
		return common.SendValidationError(c, "status", "Invalid employment status")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	employees, err := h.employeeService.List(ctx, tenantID, status, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list employees")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"employees": employees,
		"count":     len(employees),
	})
}

// UpdateEmployee handles PUT /v1/employees/:id
func (h *EmployeeHandlers) UpdateEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	employee, err := h.employeeService.GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return common.SendNotFoundError(c, "Employee")
	}

	if err := c.Bind(employee); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	employee.ID = employeeID
	employee.TenantID = tenantID

	if !models.ValidEmploymentStatus(employee.Status) {
		return common.SendValidationError(c, "status", "Invalid employment status")
	}

	if err := h.employeeService.Update(ctx, tenantID, employee); err != nil {
		return common.SendServerError(c, "Failed to update employee")
	}

	return c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /v1/employees/:id
func (h *EmployeeHandlers) DeleteEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.employeeService.Delete(ctx, tenantID, employeeID); err != nil {
		return common.SendServerError(c, "Failed to delete employee")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Employee deleted"})
}

type addNoteRequest struct {
	Note string `json:"note"`
}

// AddNote handles POST /v1/employees/:id/notes
func (h *EmployeeHandlers) AddNote(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req addNoteRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if strings.TrimSpace(req.Note) == "" {
		return common.SendValidationError(c, "note", "Note text is required")
	}

	note, err := h.employeeService.AddNote(ctx, tenantID, employeeID, userID, req.Note)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to add note")
	}

	return c.JSON(http.StatusCreated, note)
}

// ListNotes handles GET /v1/employees/:id/notes
func (h *EmployeeHandlers) ListNotes(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	notes, err := h.employeeService.ListNotes(ctx, tenantID, employeeID)
	if err != nil {
		return common.SendServerError(c, "Failed to list notes")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notes": notes,
		"count": len(notes),
	})
}

// DeleteNote handles DELETE /v1/employees/:id/notes/:noteId
func (h *EmployeeHandlers) DeleteNote(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	noteID, err := common.ValidateUUID(c.Param("noteId"), "note ID")
	if err != nil {
		return common.SendValidationError(c, "noteId", err.Error())
	}

	if err := h.employeeService.DeleteNote(ctx, tenantID, noteID); err != nil {
		return common.SendServerError(c, "Failed to delete note")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Note deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/services"

	"github.com/labstack/echo/v4"
)

type DocumentHandlers struct {
	documentService services.DocumentService
}

func NewDocumentHandlers(documentService services.DocumentService) *DocumentHandlers {
	return &DocumentHandlers{documentService: documentService}
}

// UploadDocument handles POST /v1/documents (multipart form: file,
// employee_id, document_type, title, description).
func (h *DocumentHandlers) UploadDocument(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.FormValue("employee_id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "employee_id", err.Error())
	}

	documentType := c.FormValue("document_type")
	if !models.ValidDocumentType(documentType) {
		return common.SendValidationError(c, "document_type", "Invalid document type")
	}

	title := c.FormValue("title")
	if title == "" {
		return common.SendValidationError(c, "title", "Title is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return common.SendValidationError(c, "file", "File is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	doc, err := h.documentService.Upload(ctx, &services.UploadDocumentRequest{
		TenantID:     tenantID,
		EmployeeID:   employeeID,
		DocumentType: documentType,
		Title:        title,
		Description:  c.FormValue("description"),
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Reader:       src,
		Size:         fileHeader.Size,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to upload document")
	}

	return c.JSON(http.StatusCreated, doc)
}

// DownloadDocument handles GET /v1/documents/:id/download. Returns a
// short-lived presigned URL rather than streaming the object.
func (h *DocumentHandlers) DownloadDocument(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	documentID, err := common.ValidateUUID(c.Param("id"), "document ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	url, err := h.documentService.DownloadURL(ctx, tenantID, documentID)
	if err != nil {
		return common.SendNotFoundError(c, "Document")
	}

	return c.JSON(http.StatusOK, map[string]string{"download_url": url})
}

// ListDocuments handles GET /v1/documents?employee_id=
func (h *DocumentHandlers) ListDocuments(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.QueryParam("employee_id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "employee_id", err.Error())
	}

	documents, err := h.documentService.ListByEmployee(ctx, tenantID, employeeID)
	if err != nil {
		return common.SendServerError(c, "Failed to list documents")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"documents": documents,
		"count":     len(documents),
	})
}

// DeleteDocument handles DELETE /v1/documents/:id
func (h *DocumentHandlers) DeleteDocument(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	documentID, err := common.ValidateUUID(c.Param("id"), "document ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.documentService.Delete(ctx, tenantID, documentID); err != nil {
		return common.SendServerError(c, "Failed to delete document")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Document deleted"})
}

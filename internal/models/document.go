package models

import (
	"time"

	"github.com/google/uuid"
)

// Document types.
const (
	DocumentCertificate = "certificate"
	DocumentContract    = "contract"
	DocumentCV          = "cv"
	DocumentID          = "id"
	DocumentOther       = "other"
)

// EmployeeDocument references a file stored in object storage; ObjectName
// is the storage key, download happens through presigned URLs.
type EmployeeDocument struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TenantID     uuid.UUID `json:"tenant_id" db:"tenant_id"`
	EmployeeID   uuid.UUID `json:"employee_id" db:"employee_id"`
	DocumentType string    `json:"document_type" db:"document_type"`
	Title        string    `json:"title" db:"title"`
	ObjectName   string    `json:"object_name" db:"object_name"`
	Description  string    `json:"description" db:"description"`
	UploadedAt   time.Time `json:"uploaded_at" db:"uploaded_at"`
}

func ValidDocumentType(s string) bool {
	switch s {
	case DocumentCertificate, DocumentContract, DocumentCV, DocumentID, DocumentOther:
		return true
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Reimbursement statuses.
const (
	ReimbursementPending  = "pending"
	ReimbursementApproved = "approved"
	ReimbursementRejected = "rejected"
)

func ValidReimbursementStatus(s string) bool {
	switch s {
	case ReimbursementPending, ReimbursementApproved, ReimbursementRejected:
		return true
	}
	return false
}

type ReimbursementRequest struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TenantID     uuid.UUID `json:"tenant_id" db:"tenant_id"`
	EmployeeID   uuid.UUID `json:"employee_id" db:"employee_id"`
	Amount       float64   `json:"amount" db:"amount"`
	Description  string    `json:"description" db:"description"`
	Status       string    `json:"status" db:"status"`
	AdminComment *string   `json:"admin_comment,omitempty" db:"admin_comment"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

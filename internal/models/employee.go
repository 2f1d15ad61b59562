package models

import (
	"time"

	"github.com/google/uuid"
)

// Employment statuses.
const (
	EmploymentActive     = "active"
	EmploymentVacation   = "vacation"
	EmploymentResigned   = "resigned"
	EmploymentTerminated = "terminated"
	EmploymentProbation  = "probation"
)

type Employee struct {
	ID                uuid.UUID `json:"id" db:"id"`
	TenantID          uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Name              string    `json:"name" db:"name"`
	Position          string    `json:"position" db:"position"`
	Department        string    `json:"department" db:"department"`
	HireDate          time.Time `json:"hire_date" db:"hire_date"`
	Salary            float64   `json:"salary" db:"salary"`
	OvertimeRate      float64   `json:"overtime_rate" db:"overtime_rate"`
	Status            string    `json:"status" db:"status"`
	Phone             string    `json:"phone" db:"phone"`
	Email             string    `json:"email" db:"email"`
	Address           string    `json:"address" db:"address"`
	EmergencyContact  string    `json:"emergency_contact" db:"emergency_contact"`
	ShiftStart        string    `json:"shift_start" db:"shift_start"`
	ShiftEnd          string    `json:"shift_end" db:"shift_end"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty" db:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// ValidEmploymentStatus reports whether s is a known employment status.
func ValidEmploymentStatus(s string) bool {
	switch s {
	case EmploymentActive, EmploymentVacation, EmploymentResigned, EmploymentTerminated, EmploymentProbation:
		return true
	}
	return false
}

type EmployeeNote struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TenantID   uuid.UUID `json:"tenant_id" db:"tenant_id"`
	EmployeeID uuid.UUID `json:"employee_id" db:"employee_id"`
	Note       string    `json:"note" db:"note"`
	CreatedBy  uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

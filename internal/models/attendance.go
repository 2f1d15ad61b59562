package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceOnLeave = "on_leave"
)

// Attendance is one record per (employee, date).
type Attendance struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	TenantID   uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	EmployeeID uuid.UUID  `json:"employee_id" db:"employee_id"`
	Date       time.Time  `json:"date" db:"date"`
	CheckIn    *time.Time `json:"check_in,omitempty" db:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty" db:"check_out"`
	Status     string     `json:"status" db:"status"`
	Paid       bool       `json:"paid" db:"paid"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceOnLeave:
		return true
	}
	return false
}

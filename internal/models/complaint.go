package models

import (
	"time"

	"github.com/google/uuid"
)

// Complaint statuses.
const (
	ComplaintOpen     = "open"
	ComplaintInReview = "in_review"
	ComplaintAnswered = "answered"
	ComplaintClosed   = "closed"
)

// Complaint urgencies.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

type Complaint struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TenantID      uuid.UUID `json:"tenant_id" db:"tenant_id"`
	EmployeeID    uuid.UUID `json:"employee_id" db:"employee_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Status        string    `json:"status" db:"status"`
	Urgency       string    `json:"urgency" db:"urgency"`
	AttachmentURL *string   `json:"attachment_url,omitempty" db:"attachment_url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type ComplaintReply struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ComplaintID uuid.UUID `json:"complaint_id" db:"complaint_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintOpen, ComplaintInReview, ComplaintAnswered, ComplaintClosed:
		return true
	}
	return false
}

func ValidUrgency(s string) bool {
	switch s {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Module keys known to the built-in catalog.
const (
	ModuleEmployees      = "employees"
	ModuleNotifications  = "notifications"
	ModuleAttendance     = "attendance"
	ModuleLeave          = "leave"
	ModuleWallet         = "wallet"
	ModuleComplaints     = "complaints"
	ModuleReimbursements = "reimbursements"
	ModuleDocuments      = "documents"
	ModuleTasks          = "tasks"
	ModuleReports        = "reports"
)

// Module is a catalog entry describing a toggleable feature area.
// Core modules are always enabled for every tenant and cannot be disabled.
type Module struct {
	Key         string    `json:"key" db:"module_key"`
	Name        string    `json:"name" db:"module_name"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	IsCore      bool      `json:"is_core" db:"is_core"`
	SortOrder   int       `json:"sort_order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TenantModule is the per-tenant flag for one module.
type TenantModule struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TenantID  uuid.UUID `json:"tenant_id" db:"tenant_id"`
	ModuleKey string    `json:"module_key" db:"module_key"`
	IsEnabled bool      `json:"is_enabled" db:"is_enabled"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultModules is the built-in catalog seeded by registry initialization.
var DefaultModules = []Module{
	{Key: ModuleEmployees, Name: "Employee Management", Description: "Manage employees, departments, and positions", Icon: "users", IsCore: true, SortOrder: 1},
	{Key: ModuleAttendance, Name: "Attendance Tracking", Description: "Track employee attendance and working hours", Icon: "clock", IsCore: false, SortOrder: 2},
	{Key: ModuleLeave, Name: "Leave Management", Description: "Request and approve employee leave", Icon: "calendar-off", IsCore: false, SortOrder: 3},
	{Key: ModuleWallet, Name: "Wallet & Salary", Description: "Manage employee wallets, salaries, and transactions", Icon: "wallet", IsCore: false, SortOrder: 4},
	{Key: ModuleComplaints, Name: "Complaint System", Description: "Handle employee complaints and support tickets", Icon: "message-square", IsCore: false, SortOrder: 5},
	{Key: ModuleReimbursements, Name: "Reimbursements", Description: "Review and pay out expense reimbursements", Icon: "receipt", IsCore: false, SortOrder: 6},
	{Key: ModuleDocuments, Name: "Documents & Notes", Description: "Employee documents, attachments, and notes", Icon: "folder", IsCore: false, SortOrder: 7},
	{Key: ModuleTasks, Name: "Task Management", Description: "Assign and track tasks and projects", Icon: "clipboard-list", IsCore: false, SortOrder: 8},
	{Key: ModuleReports, Name: "Reports & Analytics", Description: "View detailed reports and analytics", Icon: "bar-chart", IsCore: false, SortOrder: 9},
	{Key: ModuleNotifications, Name: "Notifications", Description: "Email and system notifications", Icon: "bell", IsCore: true, SortOrder: 10},
}

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/google/uuid"
)

type AttendanceService interface {
	// Record upserts the attendance record for (employee, date).
	Record(ctx context.Context, req *RecordAttendanceRequest) (*models.Attendance, error)
	// List returns records with date in [from, to]. A zero from is
	// unbounded and a zero to means today.
	List(ctx context.Context, tenantID uuid.UUID, employeeID *uuid.UUID, from, to time.Time, limit, offset int) ([]*models.Attendance, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	// SweepAbsentees backfills absent records for every active employee of
	// every tenant that has the attendance module enabled. Run nightly.
	SweepAbsentees(ctx context.Context, date time.Time) error
}

type RecordAttendanceRequest struct {
	TenantID   uuid.UUID
	EmployeeID uuid.UUID  `json:"employee_id"`
	Date       time.Time  `json:"date"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	Status     string     `json:"status"`
	Paid       bool       `json:"paid"`
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	employeeRepo   repositories.EmployeeRepository
	tenantRepo     repositories.TenantRepository
	gateSvc        AccessGateService
}

func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	employeeRepo repositories.EmployeeRepository,
	tenantRepo repositories.TenantRepository,
	gateSvc AccessGateService,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		tenantRepo:     tenantRepo,
		gateSvc:        gateSvc,
	}
}

func (s *attendanceService) Record(ctx context.Context, req *RecordAttendanceRequest) (*models.Attendance, error) {
	status := req.Status
	if status == "" {
		status = models.AttendancePresent
	}
	if !models.ValidAttendanceStatus(status) {
		return nil, fmt.Errorf("invalid attendance status: %s", status)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.TenantID, req.EmployeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	a := &models.Attendance{
		ID:         uuid.New(),
		TenantID:   req.TenantID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date.Truncate(24 * time.Hour),
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     status,
		Paid:       req.Paid,
	}
	if err := s.attendanceRepo.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *attendanceService) List(ctx context.Context, tenantID uuid.UUID, employeeID *uuid.UUID, from, to time.Time, limit, offset int) ([]*models.Attendance, error) {
	// Omitted bounds are open-ended: a zero from matches the oldest
	// records and a zero to defaults to today.
	if to.IsZero() {
		to = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if !from.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.attendanceRepo.List(ctx, tenantID, employeeID, from, to, limit, offset)
}

func (s *attendanceService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.attendanceRepo.Delete(ctx, tenantID, id)
}

func (s *attendanceService) SweepAbsentees(ctx context.Context, date time.Time) error {
	const pageSize = 100
	for offset := 0; ; offset += pageSize {
		tenants, err := s.tenantRepo.List(ctx, pageSize, offset)
		if err != nil {
			return err
		}
		for _, tenant := range tenants {
			if !tenant.IsActive {
				continue
			}
			if !s.gateSvc.Check(ctx, tenant.Subdomain, models.ModuleAttendance) {
				continue
			}
			marked, err := s.attendanceRepo.MarkAbsentees(ctx, tenant.ID, date)
			if err != nil {
				log.Printf("WARN: absence sweep failed for tenant %s: %v", tenant.Subdomain, err)
				continue
			}
			if marked > 0 {
				log.Printf("Marked %d employees absent for tenant %s on %s", marked, tenant.Subdomain, date.Format("2006-01-02"))
			}
		}
		if len(tenants) < pageSize {
			return nil
		}
	}
}

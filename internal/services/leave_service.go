package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LeaveService interface {
	Create(ctx context.Context, req *CreateLeaveRequest) (*models.LeaveRequest, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error)
	// Approve and Reject are only valid from the pending status; anything
	// else fails with ErrInvalidTransition.
	Approve(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error)
	Reject(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error)
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.LeaveRequest, error)
}

type CreateLeaveRequest struct {
	TenantID   uuid.UUID
	EmployeeID uuid.UUID `json:"employee_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
}

type leaveService struct {
	leaveRepo    repositories.LeaveRepository
	employeeRepo repositories.EmployeeRepository
}

func NewLeaveService(leaveRepo repositories.LeaveRepository, employeeRepo repositories.EmployeeRepository) LeaveService {
	return &leaveService{leaveRepo: leaveRepo, employeeRepo: employeeRepo}
}

func (s *leaveService) Create(ctx context.Context, req *CreateLeaveRequest) (*models.LeaveRequest, error) {
	if req.Reason == "" {
		return nil, fmt.Errorf("reason is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.TenantID, req.EmployeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	lr := &models.LeaveRequest{
		ID:         uuid.New(),
		TenantID:   req.TenantID,
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     models.LeavePending,
	}
	if err := s.leaveRepo.Create(ctx, lr); err != nil {
		return nil, err
	}
	return lr, nil
}

func (s *leaveService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error) {
	lr, err := s.leaveRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("leave request not found")
		}
		return nil, err
	}
	return lr, nil
}

func (s *leaveService) Approve(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error) {
	return s.transition(ctx, tenantID, id, models.LeaveApproved)
}

func (s *leaveService) Reject(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error) {
	return s.transition(ctx, tenantID, id, models.LeaveRejected)
}

func (s *leaveService) transition(ctx context.Context, tenantID, id uuid.UUID, status string) (*models.LeaveRequest, error) {
	lr, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if lr.Status != models.LeavePending {
		return nil, ErrInvalidTransition
	}
	if err := s.leaveRepo.UpdateStatus(ctx, tenantID, id, status); err != nil {
		return nil, err
	}
	lr.Status = status
	return lr, nil
}

func (s *leaveService) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.LeaveRequest, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.leaveRepo.List(ctx, tenantID, status, limit, offset)
}

package services

import (
	"context"
	"errors"
	"fmt"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ComplaintService interface {
	Create(ctx context.Context, req *CreateComplaintRequest) (*models.Complaint, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) (*models.Complaint, error)
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Complaint, error)
	AddReply(ctx context.Context, tenantID, complaintID, userID uuid.UUID, message string) (*models.ComplaintReply, error)
	ListReplies(ctx context.Context, tenantID, complaintID uuid.UUID) ([]*models.ComplaintReply, error)
}

type CreateComplaintRequest struct {
	TenantID      uuid.UUID
	EmployeeID    uuid.UUID `json:"employee_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Urgency       string    `json:"urgency"`
	AttachmentURL *string   `json:"attachment_url"`
}

type complaintService struct {
	complaintRepo repositories.ComplaintRepository
	employeeRepo  repositories.EmployeeRepository
}

func NewComplaintService(complaintRepo repositories.ComplaintRepository, employeeRepo repositories.EmployeeRepository) ComplaintService {
	return &complaintService{complaintRepo: complaintRepo, employeeRepo: employeeRepo}
}

func (s *complaintService) Create(ctx context.Context, req *CreateComplaintRequest) (*models.Complaint, error) {
	if req.Title == "" || req.Description == "" {
		return nil, fmt.Errorf("title and description are required")
	}
	urgency := req.Urgency
	if urgency == "" {
		urgency = models.UrgencyLow
	}
	if !models.ValidUrgency(urgency) {
		return nil, fmt.Errorf("invalid urgency: %s", urgency)
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.TenantID, req.EmployeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	cp := &models.Complaint{
		ID:            uuid.New(),
		TenantID:      req.TenantID,
		EmployeeID:    req.EmployeeID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        models.ComplaintOpen,
		Urgency:       urgency,
		AttachmentURL: req.AttachmentURL,
	}
	if err := s.complaintRepo.Create(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

func (s *complaintService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Complaint, error) {
	cp, err := s.complaintRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("complaint not found")
		}
		return nil, err
	}
	return cp, nil
}

func (s *complaintService) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) (*models.Complaint, error) {
	if !models.ValidComplaintStatus(status) {
		return nil, fmt.Errorf("invalid complaint status: %s", status)
	}
	cp, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if cp.Status == models.ComplaintClosed {
		return nil, ErrInvalidTransition
	}
	if err := s.complaintRepo.UpdateStatus(ctx, tenantID, id, status); err != nil {
		return nil, err
	}
	cp.Status = status
	return cp, nil
}

func (s *complaintService) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Complaint, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.complaintRepo.List(ctx, tenantID, status, limit, offset)
}

func (s *complaintService) AddReply(ctx context.Context, tenantID, complaintID, userID uuid.UUID, message string) (*models.ComplaintReply, error) {
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	cp, err := s.GetByID(ctx, tenantID, complaintID)
	if err != nil {
		return nil, err
	}

	reply := &models.ComplaintReply{
		ID:          uuid.New(),
		ComplaintID: cp.ID,
		UserID:      userID,
		Message:     message,
	}
	if err := s.complaintRepo.AddReply(ctx, reply); err != nil {
		return nil, err
	}

	// First reply moves an open complaint to answered.
	if cp.Status == models.ComplaintOpen {
		if err := s.complaintRepo.UpdateStatus(ctx, tenantID, complaintID, models.ComplaintAnswered); err != nil {
			return nil, err
		}
	}
	return reply, nil
}

func (s *complaintService) ListReplies(ctx context.Context, tenantID, complaintID uuid.UUID) ([]*models.ComplaintReply, error) {
	cp, err := s.GetByID(ctx, tenantID, complaintID)
	if err != nil {
		return nil, err
	}
	return s.complaintRepo.ListReplies(ctx, cp.ID)
}

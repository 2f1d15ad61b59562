package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReimbursementService interface {
	Create(ctx context.Context, req *CreateReimbursementRequest) (*models.ReimbursementRequest, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.ReimbursementRequest, error)
	// Approve credits the employee's wallet with the approved amount.
	Approve(ctx context.Context, tenantID, id uuid.UUID, adminComment *string) (*models.ReimbursementRequest, error)
	Reject(ctx context.Context, tenantID, id uuid.UUID, adminComment *string) (*models.ReimbursementRequest, error)
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.ReimbursementRequest, error)
}

type CreateReimbursementRequest struct {
	TenantID    uuid.UUID
	EmployeeID  uuid.UUID `json:"employee_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

type reimbursementService struct {
	reimbursementRepo repositories.ReimbursementRepository
	employeeRepo      repositories.EmployeeRepository
	walletSvc         WalletService
}

func NewReimbursementService(
	reimbursementRepo repositories.ReimbursementRepository,
	employeeRepo repositories.EmployeeRepository,
	walletSvc WalletService,
) ReimbursementService {
	return &reimbursementService{
		reimbursementRepo: reimbursementRepo,
		employeeRepo:      employeeRepo,
		walletSvc:         walletSvc,
	}
}

func (s *reimbursementService) Create(ctx context.Context, req *CreateReimbursementRequest) (*models.ReimbursementRequest, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.TenantID, req.EmployeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	rr := &models.ReimbursementRequest{
		ID:          uuid.New(),
		TenantID:    req.TenantID,
		EmployeeID:  req.EmployeeID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      models.ReimbursementPending,
	}
	if err := s.reimbursementRepo.Create(ctx, rr); err != nil {
		return nil, err
	}
	return rr, nil
}

func (s *reimbursementService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.ReimbursementRequest, error) {
	rr, err := s.reimbursementRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("reimbursement request not found")
		}
		return nil, err
	}
	return rr, nil
}

func (s *reimbursementService) Approve(ctx context.Context, tenantID, id uuid.UUID, adminComment *string) (*models.ReimbursementRequest, error) {
	rr, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if rr.Status != models.ReimbursementPending {
		return nil, ErrInvalidTransition
	}

	if err := s.reimbursementRepo.UpdateStatus(ctx, tenantID, id, models.ReimbursementApproved, adminComment); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Reimbursement %s approved", rr.ID)
	if _, err := s.walletSvc.Deposit(ctx, tenantID, rr.EmployeeID, rr.Amount, description); err != nil {
		// Put the request back to pending so the approval can be retried
		// without leaving an approved-but-unpaid record.
		if revertErr := s.reimbursementRepo.UpdateStatus(ctx, tenantID, id, models.ReimbursementPending, rr.AdminComment); revertErr != nil {
			log.Printf("ERROR: could not revert reimbursement %s to pending after failed credit: %v", rr.ID, revertErr)
		}
		return nil, fmt.Errorf("wallet credit failed: %w", err)
	}

	rr.Status = models.ReimbursementApproved
	rr.AdminComment = adminComment
	return rr, nil
}

func (s *reimbursementService) Reject(ctx context.Context, tenantID, id uuid.UUID, adminComment *string) (*models.ReimbursementRequest, error) {
	rr, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if rr.Status != models.ReimbursementPending {
		return nil, ErrInvalidTransition
	}
	if err := s.reimbursementRepo.UpdateStatus(ctx, tenantID, id, models.ReimbursementRejected, adminComment); err != nil {
		return nil, err
	}
	rr.Status = models.ReimbursementRejected
	rr.AdminComment = adminComment
	return rr, nil
}

func (s *reimbursementService) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.ReimbursementRequest, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.reimbursementRepo.List(ctx, tenantID, status, limit, offset)
}

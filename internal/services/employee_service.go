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

type EmployeeService interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Employee, error)
	Update(ctx context.Context, tenantID uuid.UUID, employee *models.Employee) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Employee, error)

	AddNote(ctx context.Context, tenantID, employeeID, authorID uuid.UUID, note string) (*models.EmployeeNote, error)
	ListNotes(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*models.EmployeeNote, error)
	DeleteNote(ctx context.Context, tenantID, noteID uuid.UUID) error
}

type CreateEmployeeRequest struct {
	TenantID         uuid.UUID
	Name             string    `json:"name"`
	Position         string    `json:"position"`
	Department       string    `json:"department"`
	HireDate         time.Time `json:"hire_date"`
	Salary           float64   `json:"salary"`
	OvertimeRate     float64   `json:"overtime_rate"`
	Status           string    `json:"status"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergency_contact"`
	ShiftStart       string    `json:"shift_start"`
	ShiftEnd         string    `json:"shift_end"`
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
	noteRepo     repositories.NoteRepository
	walletRepo   repositories.WalletRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository, noteRepo repositories.NoteRepository, walletRepo repositories.WalletRepository) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		noteRepo:     noteRepo,
		walletRepo:   walletRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error) {
	if req.Name == "" || req.Position == "" {
		return nil, fmt.Errorf("name and position are required")
	}
	status := req.Status
	if status == "" {
		status = models.EmploymentActive
	}
	if !models.ValidEmploymentStatus(status) {
		return nil, fmt.Errorf("invalid employment status: %s", status)
	}
	if req.Salary < 0 {
		return nil, fmt.Errorf("salary cannot be negative")
	}

	shiftStart := req.ShiftStart
	if shiftStart == "" {
		shiftStart = "09:00"
	}
	shiftEnd := req.ShiftEnd
	if shiftEnd == "" {
		shiftEnd = "17:00"
	}

	employee := &models.Employee{
		ID:               uuid.New(),
		TenantID:         req.TenantID,
		Name:             req.Name,
		Position:         req.Position,
		Department:       req.Department,
		HireDate:         req.HireDate,
		Salary:           req.Salary,
		OvertimeRate:     req.OvertimeRate,
		Status:           status,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		ShiftStart:       shiftStart,
		ShiftEnd:         shiftEnd,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	// Every employee gets an empty wallet up front.
	wallet := &models.Wallet{
		ID:         uuid.New(),
		TenantID:   req.TenantID,
		EmployeeID: employee.ID,
		Balance:    0,
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet for employee: %w", err)
	}

	return employee, nil
}

func (s *employeeService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Update(ctx context.Context, tenantID uuid.UUID, employee *models.Employee) error {
	if !models.ValidEmploymentStatus(employee.Status) {
		return fmt.Errorf("invalid employment status: %s", employee.Status)
	}
	employee.TenantID = tenantID
	return s.employeeRepo.Update(ctx, employee)
}

func (s *employeeService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.employeeRepo.Delete(ctx, tenantID, id)
}

func (s *employeeService) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Employee, error) {
	if status != "" && !models.ValidEmploymentStatus(status) {
		return nil, fmt.Errorf("invalid employment status: %s", status)
	}
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.employeeRepo.List(ctx, tenantID, status, limit, offset)
}

func (s *employeeService) AddNote(ctx context.Context, tenantID, employeeID, authorID uuid.UUID, note string) (*models.EmployeeNote, error) {
	if note == "" {
		return nil, fmt.Errorf("note text is required")
	}
	if _, err := s.GetByID(ctx, tenantID, employeeID); err != nil {
		return nil, err
	}

	n := &models.EmployeeNote{
		ID:         uuid.New(),
		TenantID:   tenantID,
		EmployeeID: employeeID,
		Note:       note,
		CreatedBy:  authorID,
	}
	if err := s.noteRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *employeeService) ListNotes(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*models.EmployeeNote, error) {
	return s.noteRepo.ListByEmployee(ctx, tenantID, employeeID)
}

func (s *employeeService) DeleteNote(ctx context.Context, tenantID, noteID uuid.UUID) error {
	return s.noteRepo.Delete(ctx, tenantID, noteID)
}

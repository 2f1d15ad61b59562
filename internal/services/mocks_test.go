package services

import (
	"context"
	"time"

	"hrhub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockModuleRepository struct {
	mock.Mock
}

func (m *MockModuleRepository) List(ctx context.Context) ([]*models.Module, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Module), args.Error(1)
}

func (m *MockModuleRepository) GetByKey(ctx context.Context, key string) (*models.Module, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Module), args.Error(1)
}

func (m *MockModuleRepository) SeedDefaults(ctx context.Context, modules []models.Module) error {
	args := m.Called(ctx, modules)
	return args.Error(0)
}

type MockTenantModuleRepository struct {
	mock.Mock
}

func (m *MockTenantModuleRepository) Upsert(ctx context.Context, tm *models.TenantModule) error {
	args := m.Called(ctx, tm)
	return args.Error(0)
}

func (m *MockTenantModuleRepository) Get(ctx context.Context, tenantID uuid.UUID, moduleKey string) (*models.TenantModule, error) {
	args := m.Called(ctx, tenantID, moduleKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TenantModule), args.Error(1)
}

func (m *MockTenantModuleRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.TenantModule, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TenantModule), args.Error(1)
}

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Update(ctx context.Context, tenant *models.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) List(ctx context.Context, limit, offset int) ([]*models.Tenant, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tenant), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetTenantConfig(ctx context.Context, subdomain string) (*models.TenantConfig, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TenantConfig), args.Error(1)
}

func (m *MockCacheService) SetTenantConfig(ctx context.Context, subdomain string, config *models.TenantConfig, ttl time.Duration) error {
	args := m.Called(ctx, subdomain, config, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteTenantConfig(ctx context.Context, subdomain string) error {
	args := m.Called(ctx, subdomain)
	return args.Error(0)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) Create(ctx context.Context, lr *models.LeaveRequest) error {
	args := m.Called(ctx, lr)
	return args.Error(0)
}

func (m *MockLeaveRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error {
	args := m.Called(ctx, tenantID, id, status)
	return args.Error(0)
}

func (m *MockLeaveRepository) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.LeaveRequest, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaveRequest), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Employee, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Employee, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Employee), args.Error(1)
}

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) (*models.Wallet, error) {
	args := m.Called(ctx, tenantID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Credit(ctx context.Context, tenantID, walletID uuid.UUID, amount float64, description string) error {
	args := m.Called(ctx, tenantID, walletID, amount, description)
	return args.Error(0)
}

func (m *MockWalletRepository) Debit(ctx context.Context, tenantID, walletID uuid.UUID, amount float64, description string) (bool, error) {
	args := m.Called(ctx, tenantID, walletID, amount, description)
	return args.Bool(0), args.Error(1)
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*models.WalletTransaction, error) {
	args := m.Called(ctx, walletID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WalletTransaction), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Upsert(ctx context.Context, a *models.Attendance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttendanceRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Attendance, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) List(ctx context.Context, tenantID uuid.UUID, employeeID *uuid.UUID, from, to time.Time, limit, offset int) ([]*models.Attendance, error) {
	args := m.Called(ctx, tenantID, employeeID, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockAttendanceRepository) MarkAbsentees(ctx context.Context, tenantID uuid.UUID, date time.Time) (int64, error) {
	args := m.Called(ctx, tenantID, date)
	return args.Get(0).(int64), args.Error(1)
}

type MockReimbursementRepository struct {
	mock.Mock
}

func (m *MockReimbursementRepository) Create(ctx context.Context, req *models.ReimbursementRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockReimbursementRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.ReimbursementRequest, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReimbursementRequest), args.Error(1)
}

func (m *MockReimbursementRepository) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string, adminComment *string) error {
	args := m.Called(ctx, tenantID, id, status, adminComment)
	return args.Error(0)
}

func (m *MockReimbursementRepository) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.ReimbursementRequest, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReimbursementRequest), args.Error(1)
}

type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) (*models.Wallet, error) {
	args := m.Called(ctx, tenantID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletService) Deposit(ctx context.Context, tenantID, employeeID uuid.UUID, amount float64, description string) (*models.Wallet, error) {
	args := m.Called(ctx, tenantID, employeeID, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletService) Withdraw(ctx context.Context, tenantID, employeeID uuid.UUID, amount float64, description string) (*models.Wallet, error) {
	args := m.Called(ctx, tenantID, employeeID, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletService) ListTransactions(ctx context.Context, tenantID, employeeID uuid.UUID, limit, offset int) ([]*models.WalletTransaction, error) {
	args := m.Called(ctx, tenantID, employeeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WalletTransaction), args.Error(1)
}

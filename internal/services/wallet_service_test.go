package services

import (
	"context"
	"testing"

	"hrhub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockWalletRepo *MockWalletRepository
	service        WalletService
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockWalletRepo = &MockWalletRepository{}
	suite.service = NewWalletService(suite.mockWalletRepo)

	suite.mockWalletRepo.Test(suite.T())
}

func (suite *WalletServiceTestSuite) TearDownTest() {
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (suite *WalletServiceTestSuite) TestDeposit() {
	ctx := context.Background()
	tenantID := uuid.New()
	employeeID := uuid.New()
	walletID := uuid.New()

	suite.mockWalletRepo.On("GetByEmployee", ctx, tenantID, employeeID).
		Return(&models.Wallet{ID: walletID, TenantID: tenantID, EmployeeID: employeeID, Balance: 100}, nil).Once()
	suite.mockWalletRepo.On("Credit", ctx, tenantID, walletID, 50.0, "Bonus").Return(nil)
	suite.mockWalletRepo.On("GetByEmployee", ctx, tenantID, employeeID).
		Return(&models.Wallet{ID: walletID, TenantID: tenantID, EmployeeID: employeeID, Balance: 150}, nil).Once()

	wallet, err := suite.service.Deposit(ctx, tenantID, employeeID, 50, "Bonus")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 150.0, wallet.Balance)
}

func (suite *WalletServiceTestSuite) TestDeposit_RejectsNonPositiveAmount() {
	ctx := context.Background()

	wallet, err := suite.service.Deposit(ctx, uuid.New(), uuid.New(), -10, "Bad")
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), wallet)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestWithdraw_InsufficientBalance() {
	ctx := context.Background()
	tenantID := uuid.New()
	employeeID := uuid.New()
	walletID := uuid.New()

	suite.mockWalletRepo.On("GetByEmployee", ctx, tenantID, employeeID).
		Return(&models.Wallet{ID: walletID, TenantID: tenantID, EmployeeID: employeeID, Balance: 20}, nil)
	suite.mockWalletRepo.On("Debit", ctx, tenantID, walletID, 50.0, "Advance").Return(false, nil)

	wallet, err := suite.service.Withdraw(ctx, tenantID, employeeID, 50, "Advance")
	assert.ErrorIs(suite.T(), err, ErrInsufficientBalance)
	assert.Nil(suite.T(), wallet)
}

func (suite *WalletServiceTestSuite) TestWithdraw() {
	ctx := context.Background()
	tenantID := uuid.New()
	employeeID := uuid.New()
	walletID := uuid.New()

	suite.mockWalletRepo.On("GetByEmployee", ctx, tenantID, employeeID).
		Return(&models.Wallet{ID: walletID, TenantID: tenantID, EmployeeID: employeeID, Balance: 100}, nil).Once()
	suite.mockWalletRepo.On("Debit", ctx, tenantID, walletID, 40.0, "Advance").Return(true, nil)
	suite.mockWalletRepo.On("GetByEmployee", ctx, tenantID, employeeID).
		Return(&models.Wallet{ID: walletID, TenantID: tenantID, EmployeeID: employeeID, Balance: 60}, nil).Once()

	wallet, err := suite.service.Withdraw(ctx, tenantID, employeeID, 40, "Advance")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 60.0, wallet.Balance)
}

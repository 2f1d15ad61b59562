package services

import (
	"context"
	"fmt"
	"testing"

	"hrhub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReimbursementServiceTestSuite struct {
	suite.Suite
	mockReimbursementRepo *MockReimbursementRepository
	mockEmployeeRepo      *MockEmployeeRepository
	mockWalletSvc         *MockWalletService
	service               ReimbursementService
}

func (suite *ReimbursementServiceTestSuite) SetupTest() {
	suite.mockReimbursementRepo = &MockReimbursementRepository{}
	suite.mockEmployeeRepo = &MockEmployeeRepository{}
	suite.mockWalletSvc = &MockWalletService{}
	suite.service = NewReimbursementService(suite.mockReimbursementRepo, suite.mockEmployeeRepo, suite.mockWalletSvc)

	suite.mockReimbursementRepo.Test(suite.T())
	suite.mockEmployeeRepo.Test(suite.T())
	suite.mockWalletSvc.Test(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TearDownTest() {
	suite.mockReimbursementRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockWalletSvc.AssertExpectations(suite.T())
}

func TestReimbursementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReimbursementServiceTestSuite))
}

func pendingReimbursement(tenantID uuid.UUID) *models.ReimbursementRequest {
	return &models.ReimbursementRequest{
		ID:          uuid.New(),
		TenantID:    tenantID,
		EmployeeID:  uuid.New(),
		Amount:      120.50,
		Description: "Train tickets",
		Status:      models.ReimbursementPending,
	}
}

func (suite *ReimbursementServiceTestSuite) TestApprove_CreditsWallet() {
	ctx := context.Background()
	tenantID := uuid.New()
	rr := pendingReimbursement(tenantID)

	suite.mockReimbursementRepo.On("GetByID", ctx, tenantID, rr.ID).Return(rr, nil)
	suite.mockReimbursementRepo.On("UpdateStatus", ctx, tenantID, rr.ID, models.ReimbursementApproved, (*string)(nil)).Return(nil)
	suite.mockWalletSvc.On("Deposit", ctx, tenantID, rr.EmployeeID, 120.50, mock.AnythingOfType("string")).Return(&models.Wallet{}, nil)

	approved, err := suite.service.Approve(ctx, tenantID, rr.ID, nil)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReimbursementApproved, approved.Status)
}

func (suite *ReimbursementServiceTestSuite) TestApprove_RevertsOnCreditFailure() {
	ctx := context.Background()
	tenantID := uuid.New()
	rr := pendingReimbursement(tenantID)

	suite.mockReimbursementRepo.On("GetByID", ctx, tenantID, rr.ID).Return(rr, nil)
	suite.mockReimbursementRepo.On("UpdateStatus", ctx, tenantID, rr.ID, models.ReimbursementApproved, (*string)(nil)).Return(nil)
	suite.mockWalletSvc.On("Deposit", ctx, tenantID, rr.EmployeeID, 120.50, mock.AnythingOfType("string")).Return(nil, fmt.Errorf("wallet unavailable"))
	// A failed credit must not leave the request approved and unpaid.
	suite.mockReimbursementRepo.On("UpdateStatus", ctx, tenantID, rr.ID, models.ReimbursementPending, (*string)(nil)).Return(nil)

	approved, err := suite.service.Approve(ctx, tenantID, rr.ID, nil)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), approved)
}

func (suite *ReimbursementServiceTestSuite) TestApprove_AlreadyDecided() {
	ctx := context.Background()
	tenantID := uuid.New()
	rr := pendingReimbursement(tenantID)
	rr.Status = models.ReimbursementRejected

	suite.mockReimbursementRepo.On("GetByID", ctx, tenantID, rr.ID).Return(rr, nil)

	approved, err := suite.service.Approve(ctx, tenantID, rr.ID, nil)
	assert.ErrorIs(suite.T(), err, ErrInvalidTransition)
	assert.Nil(suite.T(), approved)
	suite.mockWalletSvc.AssertNotCalled(suite.T(), "Deposit",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestReject_DoesNotTouchWallet() {
	ctx := context.Background()
	tenantID := uuid.New()
	rr := pendingReimbursement(tenantID)

	suite.mockReimbursementRepo.On("GetByID", ctx, tenantID, rr.ID).Return(rr, nil)
	suite.mockReimbursementRepo.On("UpdateStatus", ctx, tenantID, rr.ID, models.ReimbursementRejected, (*string)(nil)).Return(nil)

	rejected, err := suite.service.Reject(ctx, tenantID, rr.ID, nil)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReimbursementRejected, rejected.Status)
	suite.mockWalletSvc.AssertNotCalled(suite.T(), "Deposit",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

package services

import (
	"context"
	"testing"
	"time"

	"hrhub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LeaveServiceTestSuite struct {
	suite.Suite
	mockLeaveRepo    *MockLeaveRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          LeaveService
}

func (suite *LeaveServiceTestSuite) SetupTest() {
	suite.mockLeaveRepo = &MockLeaveRepository{}
	suite.mockEmployeeRepo = &MockEmployeeRepository{}
	suite.service = NewLeaveService(suite.mockLeaveRepo, suite.mockEmployeeRepo)

	suite.mockLeaveRepo.Test(suite.T())
	suite.mockEmployeeRepo.Test(suite.T())
}

func (suite *LeaveServiceTestSuite) TearDownTest() {
	suite.mockLeaveRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}

func (suite *LeaveServiceTestSuite) TestCreate_StartsPending() {
	ctx := context.Background()
	tenantID := uuid.New()
	employeeID := uuid.New()

	suite.mockEmployeeRepo.On("GetByID", ctx, tenantID, employeeID).
		Return(&models.Employee{ID: employeeID, TenantID: tenantID}, nil)
	suite.mockLeaveRepo.On("Create", ctx, mock.AnythingOfType("*models.LeaveRequest")).Return(nil)

	lr, err := suite.service.Create(ctx, &CreateLeaveRequest{
		TenantID:   tenantID,
		EmployeeID: employeeID,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 0, 2),
		Reason:     "Family event",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.LeavePending, lr.Status)
}

func (suite *LeaveServiceTestSuite) TestApprove_PendingOnly() {
	ctx := context.Background()
	tenantID := uuid.New()
	leaveID := uuid.New()

	suite.mockLeaveRepo.On("GetByID", ctx, tenantID, leaveID).
		Return(&models.LeaveRequest{ID: leaveID, TenantID: tenantID, Status: models.LeavePending}, nil)
	suite.mockLeaveRepo.On("UpdateStatus", ctx, tenantID, leaveID, models.LeaveApproved).Return(nil)

	lr, err := suite.service.Approve(ctx, tenantID, leaveID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.LeaveApproved, lr.Status)
}

func (suite *LeaveServiceTestSuite) TestApprove_AlreadyDecided() {
	ctx := context.Background()
	tenantID := uuid.New()
	leaveID := uuid.New()

	suite.mockLeaveRepo.On("GetByID", ctx, tenantID, leaveID).
		Return(&models.LeaveRequest{ID: leaveID, TenantID: tenantID, Status: models.LeaveRejected}, nil)

	lr, err := suite.service.Approve(ctx, tenantID, leaveID)
	assert.ErrorIs(suite.T(), err, ErrInvalidTransition)
	assert.Nil(suite.T(), lr)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestReject_Pending() {
	ctx := context.Background()
	tenantID := uuid.New()
	leaveID := uuid.New()

	suite.mockLeaveRepo.On("GetByID", ctx, tenantID, leaveID).
		Return(&models.LeaveRequest{ID: leaveID, TenantID: tenantID, Status: models.LeavePending}, nil)
	suite.mockLeaveRepo.On("UpdateStatus", ctx, tenantID, leaveID, models.LeaveRejected).Return(nil)

	lr, err := suite.service.Reject(ctx, tenantID, leaveID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.LeaveRejected, lr.Status)
}

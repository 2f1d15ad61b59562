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

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockAttendanceRepo *MockAttendanceRepository
	mockEmployeeRepo   *MockEmployeeRepository
	mockTenantRepo     *MockTenantRepository
	service            AttendanceService
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockAttendanceRepo = &MockAttendanceRepository{}
	suite.mockEmployeeRepo = &MockEmployeeRepository{}
	suite.mockTenantRepo = &MockTenantRepository{}
	suite.service = NewAttendanceService(suite.mockAttendanceRepo, suite.mockEmployeeRepo, suite.mockTenantRepo, nil)

	suite.mockAttendanceRepo.Test(suite.T())
	suite.mockEmployeeRepo.Test(suite.T())
	suite.mockTenantRepo.Test(suite.T())
}

func (suite *AttendanceServiceTestSuite) TearDownTest() {
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}

func (suite *AttendanceServiceTestSuite) TestList_NoDateFilters() {
	ctx := context.Background()
	tenantID := uuid.New()

	// With no bounds supplied the range must still cover existing rows:
	// from stays at the zero value and to lands on today, not year one.
	suite.mockAttendanceRepo.On("List", ctx, tenantID, (*uuid.UUID)(nil),
		time.Time{}, mock.MatchedBy(func(to time.Time) bool {
			return !to.IsZero() && time.Since(to) < 48*time.Hour
		}), 50, 0).Return([]*models.Attendance{}, nil)

	_, err := suite.service.List(ctx, tenantID, nil, time.Time{}, time.Time{}, 50, 0)
	assert.NoError(suite.T(), err)
}

func (suite *AttendanceServiceTestSuite) TestList_FromWithoutTo() {
	ctx := context.Background()
	tenantID := uuid.New()
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAttendanceRepo.On("List", ctx, tenantID, (*uuid.UUID)(nil),
		from, mock.MatchedBy(func(to time.Time) bool {
			return !to.Before(from)
		}), 50, 0).Return([]*models.Attendance{}, nil)

	_, err := suite.service.List(ctx, tenantID, nil, from, time.Time{}, 50, 0)
	assert.NoError(suite.T(), err)
}

func (suite *AttendanceServiceTestSuite) TestList_InvertedRange() {
	ctx := context.Background()
	tenantID := uuid.New()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.List(ctx, tenantID, nil, from, to, 50, 0)
	assert.Error(suite.T(), err)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "List",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

package services

import (
	"context"
	"testing"

	"hrhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockTenantConfigService struct {
	mock.Mock
}

func (m *MockTenantConfigService) Resolve(ctx context.Context, subdomain string) (*models.TenantConfig, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TenantConfig), args.Error(1)
}

type AccessGateServiceTestSuite struct {
	suite.Suite
	mockConfigSvc *MockTenantConfigService
	service       AccessGateService
}

func (suite *AccessGateServiceTestSuite) SetupTest() {
	suite.mockConfigSvc = &MockTenantConfigService{}
	suite.service = NewAccessGateService(suite.mockConfigSvc)

	suite.mockConfigSvc.Test(suite.T())
}

func (suite *AccessGateServiceTestSuite) TearDownTest() {
	suite.mockConfigSvc.AssertExpectations(suite.T())
}

func TestAccessGateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessGateServiceTestSuite))
}

func (suite *AccessGateServiceTestSuite) TestCheck_EnabledModule() {
	ctx := context.Background()
	suite.mockConfigSvc.On("Resolve", ctx, "acme").Return(&models.TenantConfig{
		Modules: map[string]bool{models.ModuleLeave: true},
	}, nil)

	assert.True(suite.T(), suite.service.Check(ctx, "acme", models.ModuleLeave))
}

func (suite *AccessGateServiceTestSuite) TestCheck_DisabledModule() {
	ctx := context.Background()
	suite.mockConfigSvc.On("Resolve", ctx, "acme").Return(&models.TenantConfig{
		Modules: map[string]bool{models.ModuleLeave: false},
	}, nil)

	assert.False(suite.T(), suite.service.Check(ctx, "acme", models.ModuleLeave))
}

func (suite *AccessGateServiceTestSuite) TestCheck_UnknownModuleKey() {
	ctx := context.Background()
	suite.mockConfigSvc.On("Resolve", ctx, "acme").Return(&models.TenantConfig{
		Modules: map[string]bool{models.ModuleLeave: true},
	}, nil)

	assert.False(suite.T(), suite.service.Check(ctx, "acme", "payroll-ng"))
}

func (suite *AccessGateServiceTestSuite) TestCheck_UnknownTenantFailsClosed() {
	ctx := context.Background()
	suite.mockConfigSvc.On("Resolve", ctx, "ghost").Return(nil, ErrTenantNotFound)

	assert.False(suite.T(), suite.service.Check(ctx, "ghost", models.ModuleLeave))
}

func (suite *AccessGateServiceTestSuite) TestCheck_ResolutionErrorFailsClosed() {
	ctx := context.Background()
	suite.mockConfigSvc.On("Resolve", ctx, "acme").Return(nil, assert.AnError)

	assert.False(suite.T(), suite.service.Check(ctx, "acme", models.ModuleLeave))
}

package services

import (
	"context"
	"testing"

	"hrhub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockTenantModuleService struct {
	mock.Mock
}

func (m *MockTenantModuleService) DefaultsFor(modules []*models.Module, selectedKeys []string) map[string]bool {
	args := m.Called(modules, selectedKeys)
	return args.Get(0).(map[string]bool)
}

func (m *MockTenantModuleService) Set(ctx context.Context, tenantID uuid.UUID, moduleKey string, enabled bool) (*models.TenantModule, error) {
	args := m.Called(ctx, tenantID, moduleKey, enabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TenantModule), args.Error(1)
}

func (m *MockTenantModuleService) Resolve(ctx context.Context, tenantID uuid.UUID) (map[string]bool, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type TenantConfigServiceTestSuite struct {
	suite.Suite
	mockTenantRepo      *MockTenantRepository
	mockTenantModuleSvc *MockTenantModuleService
	mockCache           *MockCacheService
	service             TenantConfigService
}

func (suite *TenantConfigServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = &MockTenantRepository{}
	suite.mockTenantModuleSvc = &MockTenantModuleService{}
	suite.mockCache = &MockCacheService{}
	suite.service = NewTenantConfigService(suite.mockTenantRepo, suite.mockTenantModuleSvc, suite.mockCache, "hrhub.app")

	suite.mockTenantRepo.Test(suite.T())
	suite.mockTenantModuleSvc.Test(suite.T())
	suite.mockCache.Test(suite.T())
}

func (suite *TenantConfigServiceTestSuite) TearDownTest() {
	suite.mockTenantRepo.AssertExpectations(suite.T())
	suite.mockTenantModuleSvc.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func TestTenantConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantConfigServiceTestSuite))
}

func (suite *TenantConfigServiceTestSuite) activeTenant() *models.Tenant {
	email := "admin@acme.com"
	return &models.Tenant{
		ID:             uuid.New(),
		Name:           "Acme Corp",
		Subdomain:      "acme",
		DomainType:     models.DomainTypeSubdomain,
		PrimaryColor:   "#3498db",
		SecondaryColor: "#2ecc71",
		ContactEmail:   &email,
		IsActive:       true,
	}
}

func (suite *TenantConfigServiceTestSuite) TestResolve_UnknownSubdomain() {
	ctx := context.Background()

	suite.mockCache.On("GetTenantConfig", ctx, "ghost").Return(nil, nil)
	suite.mockTenantRepo.On("GetBySubdomain", ctx, "ghost").Return(nil, pgx.ErrNoRows)

	config, err := suite.service.Resolve(ctx, "ghost")
	assert.ErrorIs(suite.T(), err, ErrTenantNotFound)
	assert.Nil(suite.T(), config)
}

func (suite *TenantConfigServiceTestSuite) TestResolve_InactiveTenant() {
	ctx := context.Background()
	tenant := suite.activeTenant()
	tenant.IsActive = false

	suite.mockCache.On("GetTenantConfig", ctx, "acme").Return(nil, nil)
	suite.mockTenantRepo.On("GetBySubdomain", ctx, "acme").Return(tenant, nil)

	config, err := suite.service.Resolve(ctx, "acme")
	assert.ErrorIs(suite.T(), err, ErrTenantNotFound)
	assert.Nil(suite.T(), config)
}

func (suite *TenantConfigServiceTestSuite) TestResolve_AssemblesConfig() {
	ctx := context.Background()
	tenant := suite.activeTenant()
	flags := map[string]bool{
		models.ModuleEmployees: true,
		models.ModuleLeave:     true,
		models.ModuleWallet:    false,
	}

	suite.mockCache.On("GetTenantConfig", ctx, "acme").Return(nil, nil)
	suite.mockTenantRepo.On("GetBySubdomain", ctx, "acme").Return(tenant, nil)
	suite.mockTenantModuleSvc.On("Resolve", ctx, tenant.ID).Return(flags, nil)
	suite.mockCache.On("SetTenantConfig", ctx, "acme", mock.AnythingOfType("*models.TenantConfig"), configCacheTTL).Return(nil)

	config, err := suite.service.Resolve(ctx, "acme")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", config.Name)
	assert.Equal(suite.T(), "acme", config.Subdomain)
	assert.Equal(suite.T(), "acme.hrhub.app", config.Domain)
	assert.Equal(suite.T(), flags, config.Modules)
	assert.Equal(suite.T(), "#3498db", config.Theme.Primary)
	assert.Equal(suite.T(), "#2ecc71", config.Theme.Secondary)
	assert.Equal(suite.T(), "admin@acme.com", *config.Contact.Email)
	assert.True(suite.T(), config.IsActive)
}

func (suite *TenantConfigServiceTestSuite) TestResolve_NormalizesSubdomain() {
	ctx := context.Background()
	tenant := suite.activeTenant()

	suite.mockCache.On("GetTenantConfig", ctx, "acme").Return(nil, nil)
	suite.mockTenantRepo.On("GetBySubdomain", ctx, "acme").Return(tenant, nil)
	suite.mockTenantModuleSvc.On("Resolve", ctx, tenant.ID).Return(map[string]bool{}, nil)
	suite.mockCache.On("SetTenantConfig", ctx, "acme", mock.Anything, configCacheTTL).Return(nil)

	config, err := suite.service.Resolve(ctx, "  ACME  ")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "acme", config.Subdomain)
}

func (suite *TenantConfigServiceTestSuite) TestResolve_CacheHitSkipsStore() {
	ctx := context.Background()
	cached := &models.TenantConfig{Name: "Acme Corp", Subdomain: "acme"}

	suite.mockCache.On("GetTenantConfig", ctx, "acme").Return(cached, nil)

	config, err := suite.service.Resolve(ctx, "acme")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), cached, config)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "GetBySubdomain", mock.Anything, mock.Anything)
}

func (suite *TenantConfigServiceTestSuite) TestResolve_CacheErrorFallsThrough() {
	ctx := context.Background()
	tenant := suite.activeTenant()

	suite.mockCache.On("GetTenantConfig", ctx, "acme").Return(nil, assert.AnError)
	suite.mockTenantRepo.On("GetBySubdomain", ctx, "acme").Return(tenant, nil)
	suite.mockTenantModuleSvc.On("Resolve", ctx, tenant.ID).Return(map[string]bool{}, nil)
	suite.mockCache.On("SetTenantConfig", ctx, "acme", mock.Anything, configCacheTTL).Return(nil)

	config, err := suite.service.Resolve(ctx, "acme")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", config.Name)
}

package services

import (
	"context"
	"testing"

	"hrhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ModuleRegistryServiceTestSuite struct {
	suite.Suite
	mockModuleRepo *MockModuleRepository
	service        ModuleRegistryService
}

func (suite *ModuleRegistryServiceTestSuite) SetupTest() {
	suite.mockModuleRepo = &MockModuleRepository{}
	suite.service = NewModuleRegistryService(suite.mockModuleRepo)

	suite.mockModuleRepo.Test(suite.T())
}

func (suite *ModuleRegistryServiceTestSuite) TearDownTest() {
	suite.mockModuleRepo.AssertExpectations(suite.T())
}

func TestModuleRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleRegistryServiceTestSuite))
}

func (suite *ModuleRegistryServiceTestSuite) TestInitialize_SeedsBuiltInCatalog() {
	ctx := context.Background()
	suite.mockModuleRepo.On("SeedDefaults", ctx, models.DefaultModules).Return(nil)

	assert.NoError(suite.T(), suite.service.Initialize(ctx))
}

func (suite *ModuleRegistryServiceTestSuite) TestInitialize_Repeatable() {
	ctx := context.Background()
	suite.mockModuleRepo.On("SeedDefaults", ctx, models.DefaultModules).Return(nil).Twice()

	assert.NoError(suite.T(), suite.service.Initialize(ctx))
	assert.NoError(suite.T(), suite.service.Initialize(ctx))
}

func (suite *ModuleRegistryServiceTestSuite) TestList() {
	ctx := context.Background()
	modules := []*models.Module{
		{Key: models.ModuleEmployees, IsCore: true},
		{Key: models.ModuleLeave},
	}
	suite.mockModuleRepo.On("List", ctx).Return(modules, nil)

	got, err := suite.service.List(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), modules, got)
}

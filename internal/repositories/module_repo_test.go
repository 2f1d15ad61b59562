package repositories

import (
	"context"
	"testing"
	"time"

	"hrhub/internal/models"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ModuleRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo ModuleRepository
	ctx  context.Context
}

func (suite *ModuleRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewModuleRepo(mock)
	suite.ctx = context.Background()
}

func (suite *ModuleRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestModuleRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleRepoTestSuite))
}

func (suite *ModuleRepoTestSuite) TestList_CoreFirst() {
	now := time.Now()
	rows := pgxmock.NewRows([]string{"module_key", "module_name", "description", "icon", "is_core", "sort_order", "created_at"}).
		AddRow("employees", "Employee Management", "", "users", true, 1, now).
		AddRow("attendance", "Attendance Tracking", "", "clock", false, 2, now)

	suite.mock.ExpectQuery("SELECT module_key, module_name, description, icon, is_core, sort_order, created_at").
		WillReturnRows(rows)

	modules, err := suite.repo.List(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), modules, 2)
	assert.Equal(suite.T(), "employees", modules[0].Key)
	assert.True(suite.T(), modules[0].IsCore)
	assert.Equal(suite.T(), "attendance", modules[1].Key)
}

func (suite *ModuleRepoTestSuite) TestList_EmptyRegistry() {
	rows := pgxmock.NewRows([]string{"module_key", "module_name", "description", "icon", "is_core", "sort_order", "created_at"})

	suite.mock.ExpectQuery("SELECT module_key, module_name, description, icon, is_core, sort_order, created_at").
		WillReturnRows(rows)

	modules, err := suite.repo.List(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), modules)
	assert.Empty(suite.T(), modules)
}

func (suite *ModuleRepoTestSuite) TestGetByKey() {
	now := time.Now()
	rows := pgxmock.NewRows([]string{"module_key", "module_name", "description", "icon", "is_core", "sort_order", "created_at"}).
		AddRow("leave", "Leave Management", "", "calendar-off", false, 3, now)

	suite.mock.ExpectQuery("SELECT module_key, module_name, description, icon, is_core, sort_order, created_at").
		WithArgs("leave").
		WillReturnRows(rows)

	module, err := suite.repo.GetByKey(suite.ctx, "leave")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "leave", module.Key)
	assert.False(suite.T(), module.IsCore)
}

func (suite *ModuleRepoTestSuite) TestSeedDefaults_InsertsEachModule() {
	modules := []models.Module{
		{Key: "employees", Name: "Employee Management", Icon: "users", IsCore: true, SortOrder: 1},
		{Key: "leave", Name: "Leave Management", Icon: "calendar-off", SortOrder: 3},
	}

	for _, m := range modules {
		suite.mock.ExpectExec("INSERT INTO modules").
			WithArgs(m.Key, m.Name, m.Description, m.Icon, m.IsCore, m.SortOrder).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	assert.NoError(suite.T(), suite.repo.SeedDefaults(suite.ctx, modules))
}

func (suite *ModuleRepoTestSuite) TestSeedDefaults_SkipsExistingKeys() {
	modules := []models.Module{
		{Key: "employees", Name: "Employee Management", Icon: "users", IsCore: true, SortOrder: 1},
	}

	// ON CONFLICT DO NOTHING reports zero rows for an existing key; that
	// is still a successful seed.
	suite.mock.ExpectExec("INSERT INTO modules").
		WithArgs("employees", "Employee Management", "", "users", true, 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	assert.NoError(suite.T(), suite.repo.SeedDefaults(suite.ctx, modules))
}

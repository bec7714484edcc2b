//go:build integration
// +build integration

package repository

import (
	"testing"

	"roster-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GestorRepositoryTestSuite tests the GestorRepository
type GestorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GestorRepository
	factories     *testutils.FactorySet

	userID uuid.UUID
	orgID  uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *GestorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGestorRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GestorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GestorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	user := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))
	org := suite.factories.Organization.Create(user.ID)
	suite.NoError(NewOrganizationRepository(suite.baseTestSuite.DB).Create(org))
	suite.userID = user.ID
	suite.orgID = org.ID
}

// TearDownTest runs after each test
func (suite *GestorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a gestor
func (suite *GestorRepositoryTestSuite) TestCreate() {
	gestor := suite.factories.Gestor.Create(suite.userID, suite.orgID, "TI")

	suite.NoError(suite.repo.Create(gestor))
	suite.NotEqual(uuid.Nil, gestor.ID)
}

// TestTeamSeatUniqueIndex tests that the (organization, team) index
// rejects a second gestor for the same team even under racing writers
func (suite *GestorRepositoryTestSuite) TestTeamSeatUniqueIndex() {
	first := suite.factories.Gestor.Create(suite.userID, suite.orgID, "TI")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Gestor.Create(suite.userID, suite.orgID, "TI")

	suite.Error(suite.repo.Create(second))

	// A different team is still free
	third := suite.factories.Gestor.Create(suite.userID, suite.orgID, "Financeiro")
	suite.NoError(suite.repo.Create(third))
}

// TestCountByOwnerTeam tests the seat-occupancy count
func (suite *GestorRepositoryTestSuite) TestCountByOwnerTeam() {
	gestor := suite.factories.Gestor.Create(suite.userID, suite.orgID, "TI")
	suite.NoError(suite.repo.Create(gestor))

	team := "TI"
	occupied, err := suite.repo.CountByOwner(suite.userID, suite.orgID, RosterFilter{Team: &team})
	suite.NoError(err)
	suite.Equal(int64(1), occupied)

	// Excluding the holder empties the seat, which is what lets an
	// unchanged re-save through
	occupied, err = suite.repo.CountByOwner(suite.userID, suite.orgID, RosterFilter{Team: &team, ExcludeID: &gestor.ID})
	suite.NoError(err)
	suite.Equal(int64(0), occupied)
}

// TestUpdateTeamChange tests moving a gestor to a free team seat
func (suite *GestorRepositoryTestSuite) TestUpdateTeamChange() {
	gestor := suite.factories.Gestor.Create(suite.userID, suite.orgID, "TI")
	suite.NoError(suite.repo.Create(gestor))

	gestor.Team = "Financeiro"
	suite.NoError(suite.repo.Update(gestor))

	found, err := suite.repo.GetByID(gestor.ID)
	suite.NoError(err)
	suite.Equal("Financeiro", found.Team)
}

// TestGetOwned tests the owner-scoped lookup
func (suite *GestorRepositoryTestSuite) TestGetOwned() {
	gestor := suite.factories.Gestor.Create(suite.userID, suite.orgID, "TI")
	suite.NoError(suite.repo.Create(gestor))

	_, err := suite.repo.GetOwned(uuid.New(), gestor.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGestorRepositoryTestSuite runs the test suite
func TestGestorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GestorRepositoryTestSuite))
}

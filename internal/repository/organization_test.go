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

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet

	userID uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	user := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))
	suite.userID = user.ID
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndUniqueness tests global name and cnpj uniqueness
func (suite *OrganizationRepositoryTestSuite) TestCreateAndUniqueness() {
	org := suite.factories.Organization.Create(suite.userID)
	suite.NoError(suite.repo.Create(org))

	dupName := suite.factories.Organization.Create(suite.userID)
	dupName.OrganizationName = org.OrganizationName
	suite.Error(suite.repo.Create(dupName))

	dupCNPJ := suite.factories.Organization.Create(suite.userID)
	dupCNPJ.CNPJ = org.CNPJ
	suite.Error(suite.repo.Create(dupCNPJ))
}

// TestGetWithRoster tests eager loading of the full roster
func (suite *OrganizationRepositoryTestSuite) TestGetWithRoster() {
	org := suite.factories.Organization.Create(suite.userID)
	suite.NoError(suite.repo.Create(org))

	memberRepo := NewMemberRepository(suite.baseTestSuite.DB)
	suite.NoError(memberRepo.Create(suite.factories.Member.Create(suite.userID, org.ID)))
	suite.NoError(memberRepo.Create(suite.factories.Member.WithTeam(suite.userID, org.ID, "Financeiro")))
	suite.NoError(NewGestorRepository(suite.baseTestSuite.DB).Create(suite.factories.Gestor.Create(suite.userID, org.ID, "TI")))
	suite.NoError(NewAssistantRepository(suite.baseTestSuite.DB).Create(suite.factories.Assistant.Create(suite.userID, org.ID, "TI")))

	loaded, err := suite.repo.GetWithRoster(suite.userID)

	suite.NoError(err)
	suite.Len(loaded.Members, 2)
	suite.Len(loaded.Gestors, 1)
	suite.Len(loaded.Assistants, 1)
}

// TestDeleteCascades tests that removing an organization removes its roster
func (suite *OrganizationRepositoryTestSuite) TestDeleteCascades() {
	org := suite.factories.Organization.Create(suite.userID)
	suite.NoError(suite.repo.Create(org))

	memberRepo := NewMemberRepository(suite.baseTestSuite.DB)
	member := suite.factories.Member.Create(suite.userID, org.ID)
	suite.NoError(memberRepo.Create(member))

	suite.NoError(suite.repo.Delete(org.ID))

	_, err := memberRepo.GetByID(member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetOwned tests the owner-scoped lookup
func (suite *OrganizationRepositoryTestSuite) TestGetOwned() {
	org := suite.factories.Organization.Create(suite.userID)
	suite.NoError(suite.repo.Create(org))

	found, err := suite.repo.GetOwned(suite.userID, org.ID)
	suite.NoError(err)
	suite.Equal(org.ID, found.ID)

	_, err = suite.repo.GetOwned(uuid.New(), org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}

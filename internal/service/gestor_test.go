package service_test

import (
	"testing"

	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/mocks"
	"roster-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GestorServiceTestSuite defines the test suite for GestorService
type GestorServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockGestorRepo *mocks.MockGestorRepositoryInterface
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	gestorService  *service.GestorService
	validator      *validator.Validate

	userID uuid.UUID
	orgID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *GestorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGestorRepo = mocks.NewMockGestorRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.userID = uuid.New()
	suite.orgID = uuid.New()

	suite.gestorService = service.NewGestorService(suite.mockGestorRepo, suite.mockOrgRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *GestorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GestorServiceTestSuite) validRequest() *service.StaffRequest {
	return &service.StaffRequest{
		OrganizationID:   suite.orgID,
		OrganizationName: "Clube Atlas",
		FirstName:        "Carlos",
		LastName:         "Pereira",
		RG:               "98.765.432-1",
		Team:             "TI",
		Birthdate:        "1985-09-30",
	}
}

func (suite *GestorServiceTestSuite) expectOwnedOrganization() {
	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, suite.orgID).
		Return(&models.Organization{UserID: suite.userID}, nil).
		Times(1)
}

// TestCreateGestor tests admitting a gestor into a free team seat
func (suite *GestorServiceTestSuite) TestCreateGestor() {
	req := suite.validRequest()

	suite.expectOwnedOrganization()
	suite.mockGestorRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{team: "TI"}).
		Return(int64(0), nil).
		Times(1)
	suite.mockGestorRepo.EXPECT().
		GetByRG(req.RG).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockGestorRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.gestorService.Create(suite.userID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "TI", response.Team)
}

// TestCreateGestorSeatTaken tests the one-gestor-per-team cap
func (suite *GestorServiceTestSuite) TestCreateGestorSeatTaken() {
	req := suite.validRequest()

	suite.expectOwnedOrganization()
	suite.mockGestorRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{team: "TI"}).
		Return(int64(1), nil).
		Times(1)

	response, err := suite.gestorService.Create(suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsConflict(err))
	assert.Equal(suite.T(), "Limite de gestor para o time TI atingido!", err.Error())
}

// TestCreateGestorDuplicateRG tests per-table rg uniqueness
func (suite *GestorServiceTestSuite) TestCreateGestorDuplicateRG() {
	req := suite.validRequest()

	suite.expectOwnedOrganization()
	suite.mockGestorRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{team: "TI"}).
		Return(int64(0), nil).
		Times(1)
	holder := &models.Gestor{}
	holder.ID = uuid.New()
	suite.mockGestorRepo.EXPECT().
		GetByRG(req.RG).
		Return(holder, nil).
		Times(1)

	response, err := suite.gestorService.Create(suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRGTaken)
}

func (suite *GestorServiceTestSuite) storedGestor(req *service.StaffRequest) *models.Gestor {
	gestor := &models.Gestor{
		UserID:           suite.userID,
		OrganizationID:   req.OrganizationID,
		OrganizationName: req.OrganizationName,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		RG:               req.RG,
		Team:             req.Team,
		Birthdate:        req.Birthdate,
	}
	gestor.ID = uuid.New()
	return gestor
}

// TestUpdateGestorResave tests that an unchanged re-save never
// self-rejects: the team seat is not rechecked when the team is the same
func (suite *GestorServiceTestSuite) TestUpdateGestorResave() {
	req := suite.validRequest()
	current := suite.storedGestor(req)

	suite.expectOwnedOrganization()
	suite.mockGestorRepo.EXPECT().
		GetOwned(suite.userID, current.ID).
		Return(current, nil).
		Times(1)
	suite.mockGestorRepo.EXPECT().
		GetByRG(req.RG).
		Return(current, nil).
		Times(1)
	suite.mockGestorRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.gestorService.Update(suite.userID, current.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.RG, response.RG)
}

// TestUpdateGestorTeamChange tests that a team change is checked against
// the new team's seat
func (suite *GestorServiceTestSuite) TestUpdateGestorTeamChange() {
	req := suite.validRequest()
	current := suite.storedGestor(req)
	req.Team = "Financeiro"

	suite.expectOwnedOrganization()
	suite.mockGestorRepo.EXPECT().
		GetOwned(suite.userID, current.ID).
		Return(current, nil).
		Times(1)
	suite.mockGestorRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{team: "Financeiro", hasExclude: true}).
		Return(int64(0), nil).
		Times(1)
	suite.mockGestorRepo.EXPECT().
		GetByRG(req.RG).
		Return(current, nil).
		Times(1)
	suite.mockGestorRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.gestorService.Update(suite.userID, current.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Financeiro", response.Team)
}

// TestUpdateGestorTeamChangeSeatTaken tests that moving into an occupied
// team seat is rejected with the new team in the message
func (suite *GestorServiceTestSuite) TestUpdateGestorTeamChangeSeatTaken() {
	req := suite.validRequest()
	current := suite.storedGestor(req)
	req.Team = "Financeiro"

	suite.expectOwnedOrganization()
	suite.mockGestorRepo.EXPECT().
		GetOwned(suite.userID, current.ID).
		Return(current, nil).
		Times(1)
	suite.mockGestorRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{team: "Financeiro", hasExclude: true}).
		Return(int64(1), nil).
		Times(1)

	response, err := suite.gestorService.Update(suite.userID, current.ID, req)

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), "Limite de gestor para o time Financeiro atingido!", err.Error())
}

// TestDeleteGestorNotOwned tests deleting a foreign gestor
func (suite *GestorServiceTestSuite) TestDeleteGestorNotOwned() {
	gestorID := uuid.New()

	suite.mockGestorRepo.EXPECT().
		GetOwned(suite.userID, gestorID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.gestorService.Delete(suite.userID, gestorID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrGestorNotFound)
}

// TestGestorServiceTestSuite runs the test suite
func TestGestorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GestorServiceTestSuite))
}

package service_test

import (
	"fmt"
	"testing"

	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/mocks"
	"roster-portal-backend/internal/repository"
	"roster-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// filterWith matches a repository.RosterFilter by its semantic content.
// Pointer fields make plain equality useless in expectations.
type filterWith struct {
	team       string
	exclusive  string
	hasExclude bool
}

func (f filterWith) Matches(x any) bool {
	filter, ok := x.(repository.RosterFilter)
	if !ok {
		return false
	}
	if f.team == "" {
		if filter.Team != nil {
			return false
		}
	} else if filter.Team == nil || *filter.Team != f.team {
		return false
	}
	if f.exclusive == "" {
		if filter.Exclusive != nil {
			return false
		}
	} else if filter.Exclusive == nil || *filter.Exclusive != f.exclusive {
		return false
	}
	return f.hasExclude == (filter.ExcludeID != nil)
}

func (f filterWith) String() string {
	return fmt.Sprintf("roster filter{team:%q exclusive:%q exclude:%t}", f.team, f.exclusive, f.hasExclude)
}

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMemberRepo *mocks.MockMemberRepositoryInterface
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	memberService  *service.MemberService
	validator      *validator.Validate

	userID uuid.UUID
	orgID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.userID = uuid.New()
	suite.orgID = uuid.New()

	suite.memberService = service.NewMemberService(suite.mockMemberRepo, suite.mockOrgRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberServiceTestSuite) validRequest() *service.MemberRequest {
	return &service.MemberRequest{
		OrganizationID:   suite.orgID,
		OrganizationName: "Clube Atlas",
		FirstName:        "Ana",
		LastName:         "Souza",
		RG:               "12.345.678-9",
		Birthdate:        "1999-04-12",
		Registration:     "M-2024-001",
		Team:             "TI",
		Exclusive:        "Não",
	}
}

func (suite *MemberServiceTestSuite) expectOwnedOrganization() {
	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, suite.orgID).
		Return(&models.Organization{UserID: suite.userID}, nil).
		Times(1)
}

// TestCreateMember tests admitting a new member
func (suite *MemberServiceTestSuite) TestCreateMember() {
	req := suite.validRequest()

	suite.expectOwnedOrganization()
	suite.mockMemberRepo.EXPECT().
		GetByRG(req.RG).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByRegistration(suite.orgID, req.Registration).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{}).
		Return(int64(3), nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.Create(suite.userID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.RG, response.RG)
	assert.Equal(suite.T(), req.Registration, response.Registration)
	assert.Equal(suite.T(), "Não", response.Exclusive)
}

// TestCreateMemberDuplicateRG tests that a taken RG is rejected
func (suite *MemberServiceTestSuite) TestCreateMemberDuplicateRG() {
	req := suite.validRequest()

	suite.expectOwnedOrganization()
	holder := &models.Member{}
	holder.ID = uuid.New()
	suite.mockMemberRepo.EXPECT().
		GetByRG(req.RG).
		Return(holder, nil).
		Times(1)

	response, err := suite.memberService.Create(suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRGTaken)
	assert.Equal(suite.T(), "Este RG já está cadastrado!", err.Error())
}

// TestCreateMemberDuplicateRegistration tests per-organization registration uniqueness
func (suite *MemberServiceTestSuite) TestCreateMemberDuplicateRegistration() {
	req := suite.validRequest()

	suite.expectOwnedOrganization()
	suite.mockMemberRepo.EXPECT().
		GetByRG(req.RG).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	holder := &models.Member{}
	holder.ID = uuid.New()
	suite.mockMemberRepo.EXPECT().
		GetByRegistration(suite.orgID, req.Registration).
		Return(holder, nil).
		Times(1)

	response, err := suite.memberService.Create(suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRegistrationTaken)
	assert.Equal(suite.T(), "Esta matrícula já está cadastrada!", err.Error())
}

// TestCreateMemberExclusiveSeatsFull tests the exclusive sub-cap in team TI
func (suite *MemberServiceTestSuite) TestCreateMemberExclusiveSeatsFull() {
	req := suite.validRequest()
	req.Exclusive = "Sim"

	suite.expectOwnedOrganization()
	suite.mockMemberRepo.EXPECT().
		GetByRG(req.RG).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByRegistration(suite.orgID, req.Registration).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{team: "TI", exclusive: "Sim"}).
		Return(int64(2), nil).
		Times(1)

	response, err := suite.memberService.Create(suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExclusiveLimitReachedTI)
}

// TestCreateMemberExclusiveSeatsAvailable tests that an exclusive member
// is admitted while seats remain
func (suite *MemberServiceTestSuite) TestCreateMemberExclusiveSeatsAvailable() {
	req := suite.validRequest()
	req.Exclusive = "Sim"

	suite.expectOwnedOrganization()
	suite.mockMemberRepo.EXPECT().
		GetByRG(req.RG).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByRegistration(suite.orgID, req.Registration).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{team: "TI", exclusive: "Sim"}).
		Return(int64(1), nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{}).
		Return(int64(5), nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.Create(suite.userID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sim", response.Exclusive)
}

// TestCreateMemberRosterFull tests the total roster cap
func (suite *MemberServiceTestSuite) TestCreateMemberRosterFull() {
	req := suite.validRequest()

	suite.expectOwnedOrganization()
	suite.mockMemberRepo.EXPECT().
		GetByRG(req.RG).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByRegistration(suite.orgID, req.Registration).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{}).
		Return(int64(12), nil).
		Times(1)

	response, err := suite.memberService.Create(suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberLimitReached)
	assert.Equal(suite.T(), "Limite total de members atingido!", err.Error())
}

// TestCreateMemberOrganizationNotOwned tests that a foreign organization
// id reads as not found
func (suite *MemberServiceTestSuite) TestCreateMemberOrganizationNotOwned() {
	req := suite.validRequest()

	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, suite.orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.memberService.Create(suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestCreateMemberInvalidExclusiveFlag tests payload validation
func (suite *MemberServiceTestSuite) TestCreateMemberInvalidExclusiveFlag() {
	req := suite.validRequest()
	req.Exclusive = "Talvez"

	response, err := suite.memberService.Create(suite.userID, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MemberServiceTestSuite) storedMember(req *service.MemberRequest) *models.Member {
	member := &models.Member{
		UserID:           suite.userID,
		OrganizationID:   req.OrganizationID,
		OrganizationName: req.OrganizationName,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		RG:               req.RG,
		Birthdate:        req.Birthdate,
		Registration:     req.Registration,
		Team:             req.Team,
		Exclusive:        req.Exclusive,
	}
	member.ID = uuid.New()
	return member
}

// TestUpdateMemberResave tests that an unchanged full-payload re-save
// always succeeds, even when the member itself holds an exclusive seat
func (suite *MemberServiceTestSuite) TestUpdateMemberResave() {
	req := suite.validRequest()
	req.Exclusive = "Sim"
	current := suite.storedMember(req)

	suite.expectOwnedOrganization()
	suite.mockMemberRepo.EXPECT().
		GetOwned(suite.userID, current.ID).
		Return(current, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByRG(req.RG).
		Return(current, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByRegistration(suite.orgID, req.Registration).
		Return(current, nil).
		Times(1)
	// Already exclusive, so no exclusivity recount happens
	suite.mockMemberRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{hasExclude: true}).
		Return(int64(11), nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.Update(suite.userID, current.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sim", response.Exclusive)
}

// TestUpdateMemberBecomingExclusiveSeatsFull tests that gaining
// exclusivity is rejected when the sub-pool is full
func (suite *MemberServiceTestSuite) TestUpdateMemberBecomingExclusiveSeatsFull() {
	req := suite.validRequest()
	req.Exclusive = "Não"
	current := suite.storedMember(req)
	req.Exclusive = "Sim"

	suite.expectOwnedOrganization()
	suite.mockMemberRepo.EXPECT().
		GetOwned(suite.userID, current.ID).
		Return(current, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByRG(req.RG).
		Return(current, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByRegistration(suite.orgID, req.Registration).
		Return(current, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, filterWith{team: "TI", exclusive: "Sim", hasExclude: true}).
		Return(int64(2), nil).
		Times(1)

	response, err := suite.memberService.Update(suite.userID, current.ID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExclusiveLimitReachedTI)
}

// TestUpdateMemberNotOwned tests that updating a foreign member reads as
// not found, never as a conflict
func (suite *MemberServiceTestSuite) TestUpdateMemberNotOwned() {
	req := suite.validRequest()
	memberID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, suite.orgID).
		Return(&models.Organization{UserID: suite.userID}, nil).
		AnyTimes()
	suite.mockMemberRepo.EXPECT().
		GetOwned(suite.userID, memberID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.memberService.Update(suite.userID, memberID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
	assert.False(suite.T(), apperrors.IsConflict(err))
}

// TestDeleteMember tests member removal
func (suite *MemberServiceTestSuite) TestDeleteMember() {
	memberID := uuid.New()
	current := &models.Member{UserID: suite.userID}
	current.ID = memberID

	suite.mockMemberRepo.EXPECT().
		GetOwned(suite.userID, memberID).
		Return(current, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		Delete(memberID).
		Return(nil).
		Times(1)

	err := suite.memberService.Delete(suite.userID, memberID)

	assert.NoError(suite.T(), err)
}

// TestDeleteMemberNotOwned tests deleting a foreign member
func (suite *MemberServiceTestSuite) TestDeleteMemberNotOwned() {
	memberID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetOwned(suite.userID, memberID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.memberService.Delete(suite.userID, memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

// TestMemberServiceTestSuite runs the test suite
func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"roster-portal-backend/internal/api/handlers"
	"roster-portal-backend/internal/database/models"
	"roster-portal-backend/internal/mocks"
	"roster-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MemberHandlerTestSuite exercises the member routes end to end against
// a real service backed by mock repositories, checking the HTTP status
// mapping of the admission outcomes.
type MemberHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMemberRepo *mocks.MockMemberRepositoryInterface
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	router         *gin.Engine

	userID uuid.UUID
	orgID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.orgID = uuid.New()

	memberService := service.NewMemberService(suite.mockMemberRepo, suite.mockOrgRepo, validator.New())
	handler := handlers.NewMemberHandler(memberService)

	suite.router = gin.New()
	// Stand in for the auth middleware
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID.String())
		c.Next()
	})
	suite.router.POST("/members", handler.CreateMember)
	suite.router.GET("/members", handler.ListMembers)
	suite.router.DELETE("/members/:id", handler.DeleteMember)
}

// TearDownTest cleans up after each test
func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberHandlerTestSuite) postMember(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	assert.NoError(suite.T(), err)

	req := httptest.NewRequest(http.MethodPost, "/members", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MemberHandlerTestSuite) validPayload() map[string]any {
	return map[string]any{
		"organization_id":   suite.orgID,
		"organization_name": "Clube Atlas",
		"first_name":        "Ana",
		"last_name":         "Souza",
		"rg":                "12.345.678-9",
		"birthdate":         "1999-04-12",
		"registration":      "M-2024-001",
		"team":              "TI",
		"exclusive":         "Não",
	}
}

// TestCreateMemberCreated tests the 201 path
func (suite *MemberHandlerTestSuite) TestCreateMemberCreated() {
	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, suite.orgID).
		Return(&models.Organization{UserID: suite.userID}, nil)
	suite.mockMemberRepo.EXPECT().
		GetByRG(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().
		GetByRegistration(suite.orgID, gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().
		CountByOwner(suite.userID, suite.orgID, gomock.Any()).
		Return(int64(0), nil)
	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil)

	w := suite.postMember(suite.validPayload())

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.MemberResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "M-2024-001", response.Registration)
}

// TestCreateMemberConflict tests that an admission rejection maps to 409
// with the human-readable reason
func (suite *MemberHandlerTestSuite) TestCreateMemberConflict() {
	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, suite.orgID).
		Return(&models.Organization{UserID: suite.userID}, nil)
	holder := &models.Member{}
	holder.ID = uuid.New()
	suite.mockMemberRepo.EXPECT().
		GetByRG(gomock.Any()).
		Return(holder, nil)

	w := suite.postMember(suite.validPayload())

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Este RG já está cadastrado!")
}

// TestCreateMemberForeignOrganization tests that non-owned organization
// ids map to 404, not 409
func (suite *MemberHandlerTestSuite) TestCreateMemberForeignOrganization() {
	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, suite.orgID).
		Return(nil, gorm.ErrRecordNotFound)

	w := suite.postMember(suite.validPayload())

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateMemberBadPayload tests the 400 path for malformed input
func (suite *MemberHandlerTestSuite) TestCreateMemberBadPayload() {
	payload := suite.validPayload()
	payload["exclusive"] = "Talvez"

	suite.mockOrgRepo.EXPECT().
		GetOwned(gomock.Any(), gomock.Any()).
		Return(&models.Organization{}, nil).
		AnyTimes()

	w := suite.postMember(payload)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListMembers tests the list route with the team query filter
func (suite *MemberHandlerTestSuite) TestListMembers() {
	suite.mockMemberRepo.EXPECT().
		ListByUser(suite.userID, "TI").
		Return([]models.Member{{Team: "TI", Exclusive: "Não"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/members?team=TI", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []service.MemberResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response, 1)
}

// TestDeleteMemberNoContent tests the 204 path
func (suite *MemberHandlerTestSuite) TestDeleteMemberNoContent() {
	memberID := uuid.New()
	current := &models.Member{UserID: suite.userID}
	current.ID = memberID

	suite.mockMemberRepo.EXPECT().
		GetOwned(suite.userID, memberID).
		Return(current, nil)
	suite.mockMemberRepo.EXPECT().
		Delete(memberID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/members/"+memberID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestMemberHandlerTestSuite runs the test suite
func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}

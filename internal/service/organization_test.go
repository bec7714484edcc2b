package service_test

import (
	"testing"

	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/logger"
	"roster-portal-backend/internal/mocks"
	"roster-portal-backend/internal/service"
	"roster-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	mockFiles           *mocks.MockFileStore
	organizationService *service.OrganizationService
	validator           *validator.Validate

	userID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockFiles = mocks.NewMockFileStore(suite.ctrl)
	suite.validator = validator.New()
	suite.userID = uuid.New()

	suite.organizationService = service.NewOrganizationService(suite.mockOrgRepo, suite.mockFiles, logger.New(), suite.validator)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func pdfUpload(name string, size int64) storage.Upload {
	return storage.Upload{Filename: name, Size: size, Data: []byte("%PDF-1.4")}
}

// TestCreateOrganization tests creating an organization with its attachment
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.OrganizationRequest{
		OrganizationName: "Clube Atlas",
		CNPJ:             "12.345.678/0001-90",
	}
	attachment := pdfUpload("estatuto.pdf", 512*1024)

	suite.mockOrgRepo.EXPECT().
		GetByName(req.OrganizationName).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		GetByCNPJ(req.CNPJ).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockFiles.EXPECT().
		Save(suite.userID.String(), "Documentacao", attachment).
		Return(suite.userID.String()+"/Documentacao/123-45678estatuto.pdf", nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.organizationService.Create(suite.userID, req, attachment)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.OrganizationName, response.OrganizationName)
	assert.False(suite.T(), response.Registered)
	assert.NotEmpty(suite.T(), response.Attachment)
}

// TestCreateOrganizationNotPDF tests the attachment format gate
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationNotPDF() {
	req := &service.OrganizationRequest{
		OrganizationName: "Clube Atlas",
		CNPJ:             "12.345.678/0001-90",
	}

	response, err := suite.organizationService.Create(suite.userID, req, pdfUpload("estatuto.docx", 1024))

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAttachmentNotPDF)
	assert.Equal(suite.T(), "O arquivo deve ser um PDF.", err.Error())
}

// TestCreateOrganizationAttachmentTooLarge tests the 1MB cap
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationAttachmentTooLarge() {
	req := &service.OrganizationRequest{
		OrganizationName: "Clube Atlas",
		CNPJ:             "12.345.678/0001-90",
	}

	response, err := suite.organizationService.Create(suite.userID, req, pdfUpload("estatuto.pdf", 2*1024*1024))

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAttachmentTooLarge)
}

// TestCreateOrganizationNameTaken tests global name uniqueness
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationNameTaken() {
	req := &service.OrganizationRequest{
		OrganizationName: "Clube Atlas",
		CNPJ:             "12.345.678/0001-90",
	}

	suite.mockOrgRepo.EXPECT().
		GetByName(req.OrganizationName).
		Return(&models.Organization{}, nil).
		Times(1)

	response, err := suite.organizationService.Create(suite.userID, req, pdfUpload("estatuto.pdf", 1024))

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationTaken)
}

// TestUpdateTeamDocuments tests replacing the team documents file: the
// previous file is removed and the registered flag is cleared
func (suite *OrganizationServiceTestSuite) TestUpdateTeamDocuments() {
	orgID := uuid.New()
	oldPath := suite.userID.String() + "/Documentos/old.pdf"
	org := &models.Organization{
		UserID:        suite.userID,
		DocumentsTeam: &oldPath,
		Registered:    true,
	}
	org.ID = orgID
	document := pdfUpload("documentos.pdf", 2*1024*1024)

	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, orgID).
		Return(org, nil).
		Times(1)
	suite.mockFiles.EXPECT().
		Delete(oldPath).
		Return(nil).
		Times(1)
	suite.mockFiles.EXPECT().
		Save(suite.userID.String(), "Documentos", document).
		Return(suite.userID.String()+"/Documentos/new.pdf", nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.organizationService.UpdateTeamDocuments(suite.userID, orgID, document)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.Registered)
	assert.NotNil(suite.T(), response.DocumentsTeam)
}

// TestUpdateTeamDocumentsTooLarge tests the 3MB cap
func (suite *OrganizationServiceTestSuite) TestUpdateTeamDocumentsTooLarge() {
	orgID := uuid.New()
	org := &models.Organization{UserID: suite.userID}
	org.ID = orgID

	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, orgID).
		Return(org, nil).
		Times(1)

	response, err := suite.organizationService.UpdateTeamDocuments(suite.userID, orgID, pdfUpload("documentos.pdf", 4*1024*1024))

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamDocumentTooLarge)
}

// TestGetOrganizationNotOwned tests that a foreign organization reads as
// not found
func (suite *OrganizationServiceTestSuite) TestGetOrganizationNotOwned() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetOwned(suite.userID, orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.Get(suite.userID, orgID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}

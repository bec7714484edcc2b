package service

import (
	"fmt"

	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/logger"
	"roster-portal-backend/internal/repository"
	"roster-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	files     storage.FileStore
	logger    *logger.Logger
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, files storage.FileStore, logger *logger.Logger, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		files:     files,
		logger:    logger,
		validator: validator,
	}
}

// OrganizationRequest carries the fields for creating an organization.
// The signup attachment travels separately as a multipart upload.
type OrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,max=150"`
	CNPJ             string `json:"cnpj" validate:"required,max=18"`
}

// OrganizationResponse represents the response data for an organization
type OrganizationResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	OrganizationName string    `json:"organization_name"`
	CNPJ             string    `json:"cnpj"`
	Attachment       string    `json:"attachment"`
	DocumentsTeam    *string   `json:"documents_team,omitempty"`
	Registered       bool      `json:"registered"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

// Create persists a new organization with its signup attachment. Name
// and CNPJ must be globally unique; the attachment must be a PDF of at
// most 1MB.
func (s *OrganizationService) Create(userID uuid.UUID, req *OrganizationRequest, attachment storage.Upload) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := validateAttachment(attachment, MaxAttachmentSize, apperrors.ErrAttachmentTooLarge); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByName(req.OrganizationName); err == nil {
		return nil, apperrors.ErrOrganizationTaken
	}
	if _, err := s.repo.GetByCNPJ(req.CNPJ); err == nil {
		return nil, apperrors.ErrOrganizationTaken
	}

	path, err := s.files.Save(userID.String(), CategorySignupDocs, attachment)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to store attachment", err)
	}

	org := &models.Organization{
		UserID:           userID,
		OrganizationName: req.OrganizationName,
		CNPJ:             req.CNPJ,
		Attachment:       path,
	}

	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.convertToResponse(org), nil
}

// ListByUser retrieves the caller's organizations
func (s *OrganizationService) ListByUser(userID uuid.UUID) ([]OrganizationResponse, error) {
	orgs, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.convertToResponse(&org)
	}
	return responses, nil
}

// Get retrieves one of the caller's organizations
func (s *OrganizationService) Get(userID, orgID uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetOwned(userID, orgID)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}
	return s.convertToResponse(org), nil
}

// UpdateTeamDocuments replaces the organization's team-documents file
// with a PDF of at most 3MB. Replacing documents re-opens the draft:
// the registered flag is cleared so the roster must be submitted again.
func (s *OrganizationService) UpdateTeamDocuments(userID, orgID uuid.UUID, document storage.Upload) (*OrganizationResponse, error) {
	org, err := s.repo.GetOwned(userID, orgID)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	if err := validateAttachment(document, MaxTeamDocumentSize, apperrors.ErrTeamDocumentTooLarge); err != nil {
		return nil, err
	}

	if org.DocumentsTeam != nil {
		if err := s.files.Delete(*org.DocumentsTeam); err != nil {
			s.logger.WithError(err).WithField("path", *org.DocumentsTeam).Warn("Failed to remove previous team document")
		}
	}

	path, err := s.files.Save(userID.String(), CategoryDocuments, document)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to store team document", err)
	}

	org.DocumentsTeam = &path
	org.Registered = false

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.convertToResponse(org), nil
}

// Delete removes one of the caller's organizations and, through the
// schema cascade, its entire roster
func (s *OrganizationService) Delete(userID, orgID uuid.UUID) error {
	org, err := s.repo.GetOwned(userID, orgID)
	if err != nil {
		return apperrors.ErrOrganizationNotFound
	}

	if err := s.repo.Delete(org.ID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

func (s *OrganizationService) convertToResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:               org.ID,
		UserID:           org.UserID,
		OrganizationName: org.OrganizationName,
		CNPJ:             org.CNPJ,
		Attachment:       org.Attachment,
		DocumentsTeam:    org.DocumentsTeam,
		Registered:       org.Registered,
		CreatedAt:        org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        org.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

package service

import (
	"fmt"

	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AssistantService handles business logic for the assistant roster.
// Assistants follow the same one-seat-per-team rule as gestors.
type AssistantService struct {
	repo      repository.AssistantRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	policy    *teamCapacityPolicy
	validator *validator.Validate
}

// NewAssistantService creates a new assistant service
func NewAssistantService(repo repository.AssistantRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate) *AssistantService {
	return &AssistantService{
		repo:    repo,
		orgRepo: orgRepo,
		policy: &teamCapacityPolicy{
			kind:    "assistentes",
			counter: repo,
			rg: func(rg string) (uuid.UUID, error) {
				holder, err := repo.GetByRG(rg)
				if err != nil {
					return uuid.Nil, err
				}
				return holder.ID, nil
			},
		},
		validator: validator,
	}
}

// Create admits and persists a new assistant for the caller's organization
func (s *AssistantService) Create(userID uuid.UUID, req *StaffRequest) (*StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	err := validateOwnership(func() error {
		if _, err := s.orgRepo.GetOwned(userID, req.OrganizationID); err != nil {
			return apperrors.ErrOrganizationNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.policy.AdmitCreate(userID, req.OrganizationID, req.Team, req.RG); err != nil {
		return nil, err
	}

	assistant := &models.Assistant{
		UserID:           userID,
		OrganizationID:   req.OrganizationID,
		OrganizationName: req.OrganizationName,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		RG:               req.RG,
		Team:             req.Team,
		Birthdate:        req.Birthdate,
	}

	if err := s.repo.Create(assistant); err != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}

	return assistantResponse(assistant), nil
}

// List retrieves the caller's assistants, optionally filtered by a team substring
func (s *AssistantService) List(userID uuid.UUID, team string) ([]StaffResponse, error) {
	assistants, err := s.repo.ListByUser(userID, team)
	if err != nil {
		return nil, fmt.Errorf("failed to list assistants: %w", err)
	}

	responses := make([]StaffResponse, len(assistants))
	for i, assistant := range assistants {
		responses[i] = *assistantResponse(&assistant)
	}
	return responses, nil
}

// Update admits and persists changes to an existing assistant
func (s *AssistantService) Update(userID, assistantID uuid.UUID, req *StaffRequest) (*StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var current *models.Assistant
	err := validateOwnership(
		func() error {
			if _, err := s.orgRepo.GetOwned(userID, req.OrganizationID); err != nil {
				return apperrors.ErrOrganizationNotFound
			}
			return nil
		},
		func() error {
			assistant, err := s.repo.GetOwned(userID, assistantID)
			if err != nil {
				return apperrors.ErrAssistantNotFound
			}
			current = assistant
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	if err := s.policy.AdmitUpdate(userID, req.OrganizationID, assistantID, current.Team, req.Team, req.RG); err != nil {
		return nil, err
	}

	current.OrganizationID = req.OrganizationID
	current.OrganizationName = req.OrganizationName
	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.RG = req.RG
	current.Team = req.Team
	current.Birthdate = req.Birthdate

	if err := s.repo.Update(current); err != nil {
		return nil, fmt.Errorf("failed to update assistant: %w", err)
	}

	return assistantResponse(current), nil
}

// Delete removes an assistant, freeing its team seat
func (s *AssistantService) Delete(userID, assistantID uuid.UUID) error {
	err := validateOwnership(func() error {
		if _, err := s.repo.GetOwned(userID, assistantID); err != nil {
			return apperrors.ErrAssistantNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.repo.Delete(assistantID); err != nil {
		return fmt.Errorf("failed to delete assistant: %w", err)
	}
	return nil
}

func assistantResponse(assistant *models.Assistant) *StaffResponse {
	return &StaffResponse{
		ID:               assistant.ID,
		OrganizationID:   assistant.OrganizationID,
		OrganizationName: assistant.OrganizationName,
		FirstName:        assistant.FirstName,
		LastName:         assistant.LastName,
		RG:               assistant.RG,
		Team:             assistant.Team,
		Birthdate:        assistant.Birthdate,
		CreatedAt:        assistant.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        assistant.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

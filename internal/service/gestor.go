package service

import (
	"fmt"

	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GestorService handles business logic for the gestor roster
type GestorService struct {
	repo      repository.GestorRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	policy    *teamCapacityPolicy
	validator *validator.Validate
}

// NewGestorService creates a new gestor service
func NewGestorService(repo repository.GestorRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate) *GestorService {
	return &GestorService{
		repo:    repo,
		orgRepo: orgRepo,
		policy: &teamCapacityPolicy{
			kind:    "gestor",
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

// StaffRequest represents the data needed to create or update a gestor
// or assistant. Updates carry the full payload.
type StaffRequest struct {
	OrganizationID   uuid.UUID `json:"organization_id" validate:"required"`
	OrganizationName string    `json:"organization_name" validate:"required,max=150"`
	FirstName        string    `json:"first_name" validate:"required,max=100"`
	LastName         string    `json:"last_name" validate:"required,max=100"`
	RG               string    `json:"rg" validate:"required,max=20"`
	Team             string    `json:"team" validate:"required,max=50"`
	Birthdate        string    `json:"birthdate" validate:"required"`
}

// StaffResponse represents the response data for a gestor or assistant
type StaffResponse struct {
	ID               uuid.UUID `json:"id"`
	OrganizationID   uuid.UUID `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	RG               string    `json:"rg"`
	Team             string    `json:"team"`
	Birthdate        string    `json:"birthdate"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

// Create admits and persists a new gestor for the caller's organization
func (s *GestorService) Create(userID uuid.UUID, req *StaffRequest) (*StaffResponse, error) {
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

	gestor := &models.Gestor{
		UserID:           userID,
		OrganizationID:   req.OrganizationID,
		OrganizationName: req.OrganizationName,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		RG:               req.RG,
		Team:             req.Team,
		Birthdate:        req.Birthdate,
	}

	if err := s.repo.Create(gestor); err != nil {
		return nil, fmt.Errorf("failed to create gestor: %w", err)
	}

	return gestorResponse(gestor), nil
}

// List retrieves the caller's gestors, optionally filtered by a team substring
func (s *GestorService) List(userID uuid.UUID, team string) ([]StaffResponse, error) {
	gestors, err := s.repo.ListByUser(userID, team)
	if err != nil {
		return nil, fmt.Errorf("failed to list gestors: %w", err)
	}

	responses := make([]StaffResponse, len(gestors))
	for i, gestor := range gestors {
		responses[i] = *gestorResponse(&gestor)
	}
	return responses, nil
}

// Update admits and persists changes to an existing gestor
func (s *GestorService) Update(userID, gestorID uuid.UUID, req *StaffRequest) (*StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var current *models.Gestor
	err := validateOwnership(
		func() error {
			if _, err := s.orgRepo.GetOwned(userID, req.OrganizationID); err != nil {
				return apperrors.ErrOrganizationNotFound
			}
			return nil
		},
		func() error {
			gestor, err := s.repo.GetOwned(userID, gestorID)
			if err != nil {
				return apperrors.ErrGestorNotFound
			}
			current = gestor
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	if err := s.policy.AdmitUpdate(userID, req.OrganizationID, gestorID, current.Team, req.Team, req.RG); err != nil {
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
		return nil, fmt.Errorf("failed to update gestor: %w", err)
	}

	return gestorResponse(current), nil
}

// Delete removes a gestor, freeing its team seat
func (s *GestorService) Delete(userID, gestorID uuid.UUID) error {
	err := validateOwnership(func() error {
		if _, err := s.repo.GetOwned(userID, gestorID); err != nil {
			return apperrors.ErrGestorNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.repo.Delete(gestorID); err != nil {
		return fmt.Errorf("failed to delete gestor: %w", err)
	}
	return nil
}

func gestorResponse(gestor *models.Gestor) *StaffResponse {
	return &StaffResponse{
		ID:               gestor.ID,
		OrganizationID:   gestor.OrganizationID,
		OrganizationName: gestor.OrganizationName,
		FirstName:        gestor.FirstName,
		LastName:         gestor.LastName,
		RG:               gestor.RG,
		Team:             gestor.Team,
		Birthdate:        gestor.Birthdate,
		CreatedAt:        gestor.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        gestor.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

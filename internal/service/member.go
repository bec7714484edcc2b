package service

import (
	"fmt"

	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MemberService handles business logic for the member roster
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	policy    *memberAdmissionPolicy
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:    repo,
		orgRepo: orgRepo,
		policy: &memberAdmissionPolicy{
			counter: repo,
			rg: func(rg string) (uuid.UUID, error) {
				holder, err := repo.GetByRG(rg)
				if err != nil {
					return uuid.Nil, err
				}
				return holder.ID, nil
			},
			registration: func(orgID uuid.UUID, registration string) (uuid.UUID, error) {
				holder, err := repo.GetByRegistration(orgID, registration)
				if err != nil {
					return uuid.Nil, err
				}
				return holder.ID, nil
			},
		},
		validator: validator,
	}
}

// MemberRequest represents the data needed to create or update a member.
// Updates carry the full payload.
type MemberRequest struct {
	OrganizationID   uuid.UUID `json:"organization_id" validate:"required"`
	OrganizationName string    `json:"organization_name" validate:"required,max=150"`
	FirstName        string    `json:"first_name" validate:"required,max=100"`
	LastName         string    `json:"last_name" validate:"required,max=100"`
	RG               string    `json:"rg" validate:"required,max=20"`
	Birthdate        string    `json:"birthdate" validate:"required"`
	Registration     string    `json:"registration" validate:"required,max=30"`
	Team             string    `json:"team" validate:"required,max=50"`
	Exclusive        string    `json:"exclusive" validate:"required,oneof=Sim Não"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID               uuid.UUID `json:"id"`
	OrganizationID   uuid.UUID `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	RG               string    `json:"rg"`
	Birthdate        string    `json:"birthdate"`
	Registration     string    `json:"registration"`
	Team             string    `json:"team"`
	Exclusive        string    `json:"exclusive"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

// Create admits and persists a new member for the caller's organization
func (s *MemberService) Create(userID uuid.UUID, req *MemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := validateOwnership(s.organizationOwned(userID, req.OrganizationID)); err != nil {
		return nil, err
	}

	if err := s.policy.AdmitCreate(userID, req.OrganizationID, memberCandidate{
		RG:           req.RG,
		Registration: req.Registration,
		Team:         req.Team,
		Exclusive:    req.Exclusive,
	}); err != nil {
		return nil, err
	}

	member := &models.Member{
		UserID:           userID,
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

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return s.convertToResponse(member), nil
}

// List retrieves the caller's members, optionally filtered by a team substring
func (s *MemberService) List(userID uuid.UUID, team string) ([]MemberResponse, error) {
	members, err := s.repo.ListByUser(userID, team)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.convertToResponse(&member)
	}
	return responses, nil
}

// Update admits and persists changes to an existing member
func (s *MemberService) Update(userID, memberID uuid.UUID, req *MemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var current *models.Member
	err := validateOwnership(
		s.organizationOwned(userID, req.OrganizationID),
		func() error {
			member, err := s.repo.GetOwned(userID, memberID)
			if err != nil {
				return apperrors.ErrMemberNotFound
			}
			current = member
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	if err := s.policy.AdmitUpdate(userID, req.OrganizationID, memberID, memberCandidate{
		RG:           req.RG,
		Registration: req.Registration,
		Team:         req.Team,
		Exclusive:    req.Exclusive,
		WasExclusive: current.Exclusive == ExclusiveFlagYes,
	}); err != nil {
		return nil, err
	}

	current.OrganizationID = req.OrganizationID
	current.OrganizationName = req.OrganizationName
	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.RG = req.RG
	current.Birthdate = req.Birthdate
	current.Registration = req.Registration
	current.Team = req.Team
	current.Exclusive = req.Exclusive

	if err := s.repo.Update(current); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return s.convertToResponse(current), nil
}

// Delete removes a member. Freeing a seat is always safe, so no
// capacity recheck happens here.
func (s *MemberService) Delete(userID, memberID uuid.UUID) error {
	err := validateOwnership(func() error {
		if _, err := s.repo.GetOwned(userID, memberID); err != nil {
			return apperrors.ErrMemberNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.repo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

func (s *MemberService) organizationOwned(userID, orgID uuid.UUID) ownershipCheck {
	return func() error {
		if _, err := s.orgRepo.GetOwned(userID, orgID); err != nil {
			return apperrors.ErrOrganizationNotFound
		}
		return nil
	}
}

func (s *MemberService) convertToResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:               member.ID,
		OrganizationID:   member.OrganizationID,
		OrganizationName: member.OrganizationName,
		FirstName:        member.FirstName,
		LastName:         member.LastName,
		RG:               member.RG,
		Birthdate:        member.Birthdate,
		Registration:     member.Registration,
		Team:             member.Team,
		Exclusive:        member.Exclusive,
		CreatedAt:        member.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        member.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

package repository

import (
	"roster-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RosterFilter is a conjunction of predicates applied to roster counts.
// Nil fields are not part of the conjunction.
type RosterFilter struct {
	Team      *string
	Exclusive *string
	ExcludeID *uuid.UUID
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByRG(rg string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetOwned(userID, id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByCNPJ(cnpj string) (*models.Organization, error)
	ListByUser(userID uuid.UUID) ([]models.Organization, error)
	GetWithRoster(userID uuid.UUID) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetOwned(userID, id uuid.UUID) (*models.Member, error)
	ListByUser(userID uuid.UUID, team string) ([]models.Member, error)
	CountByOwner(userID, orgID uuid.UUID, filter RosterFilter) (int64, error)
	GetByRG(rg string) (*models.Member, error)
	GetByRegistration(orgID uuid.UUID, registration string) (*models.Member, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// GestorRepositoryInterface defines the interface for gestor repository operations
type GestorRepositoryInterface interface {
	Create(gestor *models.Gestor) error
	GetByID(id uuid.UUID) (*models.Gestor, error)
	GetOwned(userID, id uuid.UUID) (*models.Gestor, error)
	ListByUser(userID uuid.UUID, team string) ([]models.Gestor, error)
	CountByOwner(userID, orgID uuid.UUID, filter RosterFilter) (int64, error)
	GetByRG(rg string) (*models.Gestor, error)
	Update(gestor *models.Gestor) error
	Delete(id uuid.UUID) error
}

// AssistantRepositoryInterface defines the interface for assistant repository operations
type AssistantRepositoryInterface interface {
	Create(assistant *models.Assistant) error
	GetByID(id uuid.UUID) (*models.Assistant, error)
	GetOwned(userID, id uuid.UUID) (*models.Assistant, error)
	ListByUser(userID uuid.UUID, team string) ([]models.Assistant, error)
	CountByOwner(userID, orgID uuid.UUID, filter RosterFilter) (int64, error)
	GetByRG(rg string) (*models.Assistant, error)
	Update(assistant *models.Assistant) error
	Delete(id uuid.UUID) error
}

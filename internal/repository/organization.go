package repository

import (
	"roster-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetOwned retrieves an organization by ID scoped to its owner.
// A row owned by someone else behaves exactly like a missing row.
func (r *OrganizationRepository) GetOwned(userID, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByName retrieves an organization by name
func (r *OrganizationRepository) GetByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "organization_name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByCNPJ retrieves an organization by tax id
func (r *OrganizationRepository) GetByCNPJ(cnpj string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "cnpj = ?", cnpj).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ListByUser retrieves all organizations owned by a user with members preloaded
func (r *OrganizationRepository) ListByUser(userID uuid.UUID) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Preload("Members").Where("user_id = ?", userID).Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetWithRoster retrieves the user's organization with the full roster
// preloaded, as needed by the submission workflow.
func (r *OrganizationRepository) GetWithRoster(userID uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.
		Preload("Members").
		Preload("Gestors").
		Preload("Assistants").
		First(&org, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}

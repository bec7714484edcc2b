package repository

import (
	"roster-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GestorRepository handles database operations for gestors
type GestorRepository struct {
	db *gorm.DB
}

// NewGestorRepository creates a new gestor repository
func NewGestorRepository(db *gorm.DB) *GestorRepository {
	return &GestorRepository{db: db}
}

// Create creates a new gestor
func (r *GestorRepository) Create(gestor *models.Gestor) error {
	return r.db.Create(gestor).Error
}

// GetByID retrieves a gestor by ID
func (r *GestorRepository) GetByID(id uuid.UUID) (*models.Gestor, error) {
	var gestor models.Gestor
	err := r.db.First(&gestor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gestor, nil
}

// GetOwned retrieves a gestor by ID scoped to its owner
func (r *GestorRepository) GetOwned(userID, id uuid.UUID) (*models.Gestor, error) {
	var gestor models.Gestor
	err := r.db.First(&gestor, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &gestor, nil
}

// ListByUser retrieves all gestors owned by a user, optionally filtered
// by a team substring
func (r *GestorRepository) ListByUser(userID uuid.UUID, team string) ([]models.Gestor, error) {
	var gestors []models.Gestor
	query := r.db.Where("user_id = ?", userID)
	if team != "" {
		query = query.Where("team ILIKE ?", "%"+team+"%")
	}
	err := query.Find(&gestors).Error
	if err != nil {
		return nil, err
	}
	return gestors, nil
}

// CountByOwner counts gestors for an owner and organization matching the filter
func (r *GestorRepository) CountByOwner(userID, orgID uuid.UUID, filter RosterFilter) (int64, error) {
	var total int64
	query := r.db.Model(&models.Gestor{}).Where("user_id = ? AND organization_id = ?", userID, orgID)
	if filter.Team != nil {
		query = query.Where("team = ?", *filter.Team)
	}
	if filter.ExcludeID != nil {
		query = query.Where("id <> ?", *filter.ExcludeID)
	}
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetByRG retrieves the gestor currently holding an rg value
func (r *GestorRepository) GetByRG(rg string) (*models.Gestor, error) {
	var gestor models.Gestor
	err := r.db.First(&gestor, "rg = ?", rg).Error
	if err != nil {
		return nil, err
	}
	return &gestor, nil
}

// Update updates a gestor
func (r *GestorRepository) Update(gestor *models.Gestor) error {
	return r.db.Save(gestor).Error
}

// Delete deletes a gestor
func (r *GestorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Gestor{}, "id = ?", id).Error
}

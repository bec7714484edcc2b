package repository

import (
	"roster-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssistantRepository handles database operations for assistants
type AssistantRepository struct {
	db *gorm.DB
}

// NewAssistantRepository creates a new assistant repository
func NewAssistantRepository(db *gorm.DB) *AssistantRepository {
	return &AssistantRepository{db: db}
}

// Create creates a new assistant
func (r *AssistantRepository) Create(assistant *models.Assistant) error {
	return r.db.Create(assistant).Error
}

// GetByID retrieves an assistant by ID
func (r *AssistantRepository) GetByID(id uuid.UUID) (*models.Assistant, error) {
	var assistant models.Assistant
	err := r.db.First(&assistant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assistant, nil
}

// GetOwned retrieves an assistant by ID scoped to its owner
func (r *AssistantRepository) GetOwned(userID, id uuid.UUID) (*models.Assistant, error) {
	var assistant models.Assistant
	err := r.db.First(&assistant, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &assistant, nil
}

// ListByUser retrieves all assistants owned by a user, optionally filtered
// by a team substring
func (r *AssistantRepository) ListByUser(userID uuid.UUID, team string) ([]models.Assistant, error) {
	var assistants []models.Assistant
	query := r.db.Where("user_id = ?", userID)
	if team != "" {
		query = query.Where("team ILIKE ?", "%"+team+"%")
	}
	err := query.Find(&assistants).Error
	if err != nil {
		return nil, err
	}
	return assistants, nil
}

// CountByOwner counts assistants for an owner and organization matching the filter
func (r *AssistantRepository) CountByOwner(userID, orgID uuid.UUID, filter RosterFilter) (int64, error) {
	var total int64
	query := r.db.Model(&models.Assistant{}).Where("user_id = ? AND organization_id = ?", userID, orgID)
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

// GetByRG retrieves the assistant currently holding an rg value
func (r *AssistantRepository) GetByRG(rg string) (*models.Assistant, error) {
	var assistant models.Assistant
	err := r.db.First(&assistant, "rg = ?", rg).Error
	if err != nil {
		return nil, err
	}
	return &assistant, nil
}

// Update updates an assistant
func (r *AssistantRepository) Update(assistant *models.Assistant) error {
	return r.db.Save(assistant).Error
}

// Delete deletes an assistant
func (r *AssistantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Assistant{}, "id = ?", id).Error
}

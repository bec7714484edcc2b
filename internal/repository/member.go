package repository

import (
	"roster-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetOwned retrieves a member by ID scoped to its owner
func (r *MemberRepository) GetOwned(userID, id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByUser retrieves all members owned by a user, optionally filtered
// by a team substring
func (r *MemberRepository) ListByUser(userID uuid.UUID, team string) ([]models.Member, error) {
	var members []models.Member
	query := r.db.Where("user_id = ?", userID)
	if team != "" {
		query = query.Where("team ILIKE ?", "%"+team+"%")
	}
	err := query.Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CountByOwner counts members for an owner and organization matching the filter
func (r *MemberRepository) CountByOwner(userID, orgID uuid.UUID, filter RosterFilter) (int64, error) {
	var total int64
	query := r.db.Model(&models.Member{}).Where("user_id = ? AND organization_id = ?", userID, orgID)
	if filter.Team != nil {
		query = query.Where("team = ?", *filter.Team)
	}
	if filter.Exclusive != nil {
		query = query.Where("exclusive = ?", *filter.Exclusive)
	}
	if filter.ExcludeID != nil {
		query = query.Where("id <> ?", *filter.ExcludeID)
	}
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetByRG retrieves the member currently holding an rg value
func (r *MemberRepository) GetByRG(rg string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "rg = ?", rg).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByRegistration retrieves the member holding a registration number
// within an organization
func (r *MemberRepository) GetByRegistration(orgID uuid.UUID, registration string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "organization_id = ? AND registration = ?", orgID, registration).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// Delete deletes a member
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}

package models

import "github.com/google/uuid"

// Member is a roster entry with a per-organization registration number
// and an optional exclusivity flag. The unique indexes are the
// authoritative backstop for the application-level admission checks;
// the 2-seat exclusive sub-cap cannot be expressed as an index and
// stays best-effort at the application layer.
type Member struct {
	BaseModel
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	OrganizationID   uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_members_org_registration,priority:1"`
	OrganizationName string    `json:"organization_name" gorm:"size:150"`
	FirstName        string    `json:"first_name" gorm:"size:100;not null"`
	LastName         string    `json:"last_name" gorm:"size:100;not null"`
	RG               string    `json:"rg" gorm:"size:20;uniqueIndex;not null"`
	Birthdate        string    `json:"birthdate" gorm:"size:10"`
	Registration     string    `json:"registration" gorm:"size:30;not null;uniqueIndex:idx_members_org_registration,priority:2"`
	Team             string    `json:"team" gorm:"size:50;not null;index"`
	Exclusive        string    `json:"exclusive" gorm:"size:3;not null;default:Não"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "members"
}

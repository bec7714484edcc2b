package models

import "github.com/google/uuid"

// Assistant mirrors Gestor: at most one per (organization, team).
type Assistant struct {
	BaseModel
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	OrganizationID   uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_assistants_org_team,priority:1"`
	OrganizationName string    `json:"organization_name" gorm:"size:150"`
	FirstName        string    `json:"first_name" gorm:"size:100;not null"`
	LastName         string    `json:"last_name" gorm:"size:100;not null"`
	RG               string    `json:"rg" gorm:"size:20;uniqueIndex;not null"`
	Team             string    `json:"team" gorm:"size:50;not null;uniqueIndex:idx_assistants_org_team,priority:2"`
	Birthdate        string    `json:"birthdate" gorm:"size:10"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName specifies the table name for Assistant
func (Assistant) TableName() string {
	return "assistants"
}

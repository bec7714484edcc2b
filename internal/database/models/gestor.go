package models

import "github.com/google/uuid"

// Gestor is the coach roster entry: at most one per (organization, team).
type Gestor struct {
	BaseModel
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	OrganizationID   uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_gestors_org_team,priority:1"`
	OrganizationName string    `json:"organization_name" gorm:"size:150"`
	FirstName        string    `json:"first_name" gorm:"size:100;not null"`
	LastName         string    `json:"last_name" gorm:"size:100;not null"`
	RG               string    `json:"rg" gorm:"size:20;uniqueIndex;not null"`
	Team             string    `json:"team" gorm:"size:50;not null;uniqueIndex:idx_gestors_org_team,priority:2"`
	Birthdate        string    `json:"birthdate" gorm:"size:10"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName specifies the table name for Gestor
func (Gestor) TableName() string {
	return "gestors"
}

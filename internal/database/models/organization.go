package models

import "github.com/google/uuid"

// Organization is owned by exactly one user and carries the one-way
// submission flag: Registered flips to true once and stays there until
// a team-documents replacement re-opens the draft.
type Organization struct {
	BaseModel
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	OrganizationName string    `json:"organization_name" gorm:"size:150;uniqueIndex;not null" validate:"required,max=150"`
	CNPJ             string    `json:"cnpj" gorm:"size:18;uniqueIndex;not null" validate:"required,max=18"`
	Attachment       string    `json:"attachment" gorm:"size:500"`
	DocumentsTeam    *string   `json:"documents_team,omitempty" gorm:"size:500"`
	Registered       bool      `json:"registered" gorm:"not null;default:false"`

	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Members    []Member    `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Gestors    []Gestor    `json:"gestors,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Assistants []Assistant `json:"assistants,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

package testutils

import (
	"fmt"
	"time"

	"roster-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenience in integration suites
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Member       *MemberFactory
	Gestor       *GestorFactory
	Assistant    *AssistantFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Member:       NewMemberFactory(),
		Gestor:       NewGestorFactory(),
		Assistant:    NewAssistantFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with unique email and rg
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Paula",
		LastName:  "Martins",
		Email:     fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		RG:        "U-" + id.String()[:10],
		Birthdate: "1990-06-15",
		Phone:     "11 99999-0000",
		Password:  "$2a$04$fakehashforintegrationtests000000000000000000000000000",
		Role:      "user",
	}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization owned by userID, with unique name
// and cnpj
func (f *OrganizationFactory) Create(userID uuid.UUID) *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:           userID,
		OrganizationName: "Clube " + id.String()[:8],
		CNPJ:             "CNPJ-" + id.String()[:13],
		Attachment:       userID.String() + "/Documentacao/estatuto.pdf",
	}
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with unique rg and registration
func (f *MemberFactory) Create(userID, orgID uuid.UUID) *models.Member {
	id := uuid.New()
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:           userID,
		OrganizationID:   orgID,
		OrganizationName: "Clube Teste",
		FirstName:        "Ana",
		LastName:         "Souza",
		RG:               "M-" + id.String()[:10],
		Birthdate:        "1999-04-12",
		Registration:     "R-" + id.String()[:10],
		Team:             "TI",
		Exclusive:        "Não",
	}
}

// WithTeam sets the team for the member
func (f *MemberFactory) WithTeam(userID, orgID uuid.UUID, team string) *models.Member {
	member := f.Create(userID, orgID)
	member.Team = team
	return member
}

// Exclusive creates an exclusive member in team TI
func (f *MemberFactory) Exclusive(userID, orgID uuid.UUID) *models.Member {
	member := f.Create(userID, orgID)
	member.Team = "TI"
	member.Exclusive = "Sim"
	return member
}

// GestorFactory provides methods to create test Gestor data
type GestorFactory struct{}

// NewGestorFactory creates a new GestorFactory
func NewGestorFactory() *GestorFactory {
	return &GestorFactory{}
}

// Create creates a test Gestor with a unique rg
func (f *GestorFactory) Create(userID, orgID uuid.UUID, team string) *models.Gestor {
	id := uuid.New()
	return &models.Gestor{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:           userID,
		OrganizationID:   orgID,
		OrganizationName: "Clube Teste",
		FirstName:        "Carlos",
		LastName:         "Pereira",
		RG:               "G-" + id.String()[:10],
		Team:             team,
		Birthdate:        "1985-09-30",
	}
}

// AssistantFactory provides methods to create test Assistant data
type AssistantFactory struct{}

// NewAssistantFactory creates a new AssistantFactory
func NewAssistantFactory() *AssistantFactory {
	return &AssistantFactory{}
}

// Create creates a test Assistant with a unique rg
func (f *AssistantFactory) Create(userID, orgID uuid.UUID, team string) *models.Assistant {
	id := uuid.New()
	return &models.Assistant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:           userID,
		OrganizationID:   orgID,
		OrganizationName: "Clube Teste",
		FirstName:        "Beatriz",
		LastName:         "Lima",
		RG:               "A-" + id.String()[:10],
		Team:             team,
		Birthdate:        "1992-01-20",
	}
}

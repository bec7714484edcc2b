package service

import (
	"fmt"
	"html"
	"strings"

	"roster-portal-backend/internal/config"
	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/logger"
	"roster-portal-backend/internal/mailer"
	"roster-portal-backend/internal/repository"
	"roster-portal-backend/internal/storage"

	"github.com/google/uuid"
)

// UserService handles business logic for user accounts and the roster
// submission workflow
type UserService struct {
	repo    repository.UserRepositoryInterface
	orgRepo repository.OrganizationRepositoryInterface
	files   storage.FileStore
	mail    mailer.Mailer
	config  *config.Config
	logger  *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, files storage.FileStore, mail mailer.Mailer, config *config.Config, logger *logger.Logger) *UserService {
	return &UserService{
		repo:    repo,
		orgRepo: orgRepo,
		files:   files,
		mail:    mail,
		config:  config,
		logger:  logger,
	}
}

// UserResponse represents the response data for a user profile
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	RG        string    `json:"rg"`
	Birthdate string    `json:"birthdate"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt string    `json:"created_at"`
}

// GetByID retrieves a user profile by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return convertUserToResponse(user), nil
}

// Delete removes the caller's own account, its stored files and, through
// the schema cascade, its organization and roster. Deleting someone
// else's account is rejected.
func (s *UserService) Delete(callerID, targetID uuid.UUID) error {
	if callerID != targetID {
		return apperrors.ErrAccountDeleteForbidden
	}

	user, err := s.repo.GetByID(targetID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.files.RemoveOwner(user.ID.String()); err != nil {
		s.logger.WithError(err).WithField("user", user.ID).Warn("Failed to remove stored files")
	}

	if err := s.repo.Delete(user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// SubmitRegistration performs the one-shot roster submission: it renders
// the caller's full roster into a summary email, delivers it to the
// registration inbox, and only then flips the organization to
// registered. An already-registered organization is rejected before any
// mail goes out.
func (s *UserService) SubmitRegistration(userID uuid.UUID, category string) error {
	if category != ExclusiveTeam {
		return apperrors.NewValidationError("category", "Categoria inválida.")
	}

	org, err := s.orgRepo.GetWithRoster(userID)
	if err != nil {
		return apperrors.ErrOrganizationNotFound
	}
	if org.Registered {
		return apperrors.ErrOrganizationRegistered
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	body := mailer.RegistrationBody(renderRosterSummary(user, org))
	if err := s.mail.Send(s.config.RegistrationInbox, mailer.SubjectRegistration, body); err != nil {
		return apperrors.NewUpstreamError("failed to send registration email", err)
	}

	org.Registered = true
	if err := s.orgRepo.Update(org); err != nil {
		return fmt.Errorf("failed to mark organization registered: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user":         userID,
		"organization": org.ID,
	}).Info("Registration submitted")
	return nil
}

// renderRosterSummary builds the HTML roster listing embedded in the
// submission email: owner contact data, the organization, then every
// roster entry grouped by kind.
func renderRosterSummary(user *models.User, org *models.Organization) string {
	var b strings.Builder

	section := func(title string) {
		fmt.Fprintf(&b, "<h3 style=\"margin:16px 0 4px 0;\">%s</h3>\n", html.EscapeString(title))
	}
	line := func(label, value string) {
		fmt.Fprintf(&b, "<p style=\"margin:2px 0;\"><strong>%s:</strong> %s</p>\n",
			html.EscapeString(label), html.EscapeString(value))
	}

	section("Responsável")
	line("Nome", user.FirstName+" "+user.LastName)
	line("E-mail", user.Email)
	line("Telefone", user.Phone)

	section("Organization")
	line("Nome", org.OrganizationName)
	line("CNPJ", org.CNPJ)

	section("Members")
	for _, m := range org.Members {
		line(m.FirstName+" "+m.LastName,
			fmt.Sprintf("RG %s, matrícula %s, time %s, exclusivo %s", m.RG, m.Registration, m.Team, m.Exclusive))
	}

	section("Gestores")
	for _, g := range org.Gestors {
		line(g.FirstName+" "+g.LastName, fmt.Sprintf("RG %s, time %s", g.RG, g.Team))
	}

	section("Assistentes")
	for _, a := range org.Assistants {
		line(a.FirstName+" "+a.LastName, fmt.Sprintf("RG %s, time %s", a.RG, a.Team))
	}

	return b.String()
}

func convertUserToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		RG:        user.RG,
		Birthdate: user.Birthdate,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

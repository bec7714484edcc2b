package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"roster-portal-backend/internal/config"
	"roster-portal-backend/internal/database/models"
	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/logger"
	"roster-portal-backend/internal/mailer"
	"roster-portal-backend/internal/repository"
	"roster-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost         = 12
	tokenLifetime      = 24 * time.Hour
	signupDocsCategory = "Documentacao"
	maxSignupPDFSize   = 1 * 1024 * 1024
)

// Service handles account signup, credential verification and the OTP
// password reset flow
type Service struct {
	users     repository.UserRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	files     storage.FileStore
	mail      mailer.Mailer
	config    *config.Config
	logger    *logger.Logger
	validator *validator.Validate
}

// NewService creates a new auth service
func NewService(users repository.UserRepositoryInterface, orgs repository.OrganizationRepositoryInterface, files storage.FileStore, mail mailer.Mailer, config *config.Config, logger *logger.Logger, validator *validator.Validate) *Service {
	return &Service{
		users:     users,
		orgs:      orgs,
		files:     files,
		mail:      mail,
		config:    config,
		logger:    logger,
		validator: validator,
	}
}

// SignUpRequest carries the combined account-and-organization signup
// payload. The signup document travels separately as a multipart upload.
type SignUpRequest struct {
	FirstName        string `json:"first_name" validate:"required,max=100"`
	LastName         string `json:"last_name" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,email,max=255"`
	RG               string `json:"rg" validate:"required,max=20"`
	Birthdate        string `json:"birthdate" validate:"required"`
	Phone            string `json:"phone" validate:"required,max=20"`
	Password         string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword  string `json:"confirm_password" validate:"required"`
	OrganizationName string `json:"organization_name" validate:"required,max=150"`
	CNPJ             string `json:"cnpj" validate:"required,max=18"`
}

// SignInRequest carries login credentials
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned on successful signup or signin
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	FirstName   string    `json:"first_name"`
	Email       string    `json:"email"`
}

// SignUp registers a new account together with its organization. Email,
// rg, organization name and cnpj must all be free, the passwords must
// match and the signup document must be a PDF of at most 1MB.
func (s *Service) SignUp(req *SignUpRequest, document storage.Upload) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}
	if err := checkSignupPDF(document); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if _, err := s.users.GetByRG(req.RG); err == nil {
		return nil, apperrors.ErrRGTaken
	}
	if _, err := s.orgs.GetByName(req.OrganizationName); err == nil {
		return nil, apperrors.ErrOrganizationTaken
	}
	if _, err := s.orgs.GetByCNPJ(req.CNPJ); err == nil {
		return nil, apperrors.ErrOrganizationTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		RG:        req.RG,
		Birthdate: req.Birthdate,
		Phone:     req.Phone,
		Password:  string(hashed),
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	path, err := s.files.Save(user.ID.String(), signupDocsCategory, document)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to store signup document", err)
	}

	org := &models.Organization{
		UserID:           user.ID,
		OrganizationName: req.OrganizationName,
		CNPJ:             req.CNPJ,
		Attachment:       path,
	}
	if err := s.orgs.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.logger.WithField("user", user.ID).Info("Account created")
	return s.issueToken(user)
}

// SignIn verifies credentials and issues a token. Unknown emails and
// wrong passwords fail identically.
func (s *Service) SignIn(req *SignInRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// SendResetCode generates a 4-digit verification code, stores it on the
// account and emails it to the address on file
func (s *Service) SendResetCode(email string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	user.OTPCode = &code
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	if err := s.mail.Send(user.Email, mailer.SubjectPasswordReset, mailer.PasswordResetBody(code)); err != nil {
		return apperrors.NewUpstreamError("failed to send reset email", err)
	}
	return nil
}

// VerifyResetCode checks a code previously sent by SendResetCode
func (s *Service) VerifyResetCode(email, code string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	if user.OTPCode == nil || *user.OTPCode != code {
		return apperrors.ErrInvalidOTPCode
	}
	return nil
}

// UpdatePassword completes the reset flow: the code must still match,
// the passwords must agree, and the code is consumed on success.
func (s *Service) UpdatePassword(email, code, password, confirmPassword string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	if user.OTPCode == nil || *user.OTPCode != code {
		return apperrors.ErrInvalidOTPCode
	}
	if password != confirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hashed)
	user.OTPCode = nil
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.WithField("user", user.ID).Info("Password updated")
	return nil
}

// ValidateToken parses a bearer token and returns the authenticated
// user id
func (s *Service) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, apperrors.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, apperrors.ErrInvalidCredentials
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidCredentials
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidCredentials
	}
	return userID, nil
}

func (s *Service) issueToken(user *models.User) (*TokenResponse, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	})

	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		UserID:      user.ID,
		FirstName:   user.FirstName,
		Email:       user.Email,
	}, nil
}

func checkSignupPDF(document storage.Upload) error {
	if strings.ToLower(filepath.Ext(document.Filename)) != ".pdf" {
		return apperrors.ErrAttachmentNotPDF
	}
	if document.Size > maxSignupPDFSize {
		return apperrors.ErrAttachmentTooLarge
	}
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

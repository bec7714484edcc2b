package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found or is not
// owned by the requesting user. Ownership failures deliberately look the
// same as missing rows so callers cannot probe other users' ids.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a capacity, uniqueness or state-machine
// violation. The message is the human-readable reason shown to clients.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents malformed input, caught before business rules run
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// UpstreamError represents a failure in an external collaborator
// (file store, mail delivery). The underlying cause is wrapped.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrMemberNotFound       = &NotFoundError{Entity: "member"}
	ErrGestorNotFound       = &NotFoundError{Entity: "gestor"}
	ErrAssistantNotFound    = &NotFoundError{Entity: "assistant"}
)

// Uniqueness Conflicts
var (
	ErrEmailTaken        = &ConflictError{Message: "Este e-mail já está cadastrado!"}
	ErrRGTaken           = &ConflictError{Message: "Este RG já está cadastrado!"}
	ErrOrganizationTaken = &ConflictError{Message: "Esta organization já está cadastrada!"}
	ErrRegistrationTaken = &ConflictError{Message: "Esta matrícula já está cadastrada!"}
)

// Capacity Conflicts
var (
	ErrMemberLimitReached      = &ConflictError{Message: "Limite total de members atingido!"}
	ErrExclusiveLimitReachedTI = &ConflictError{Message: "Limite de members exclusivos no team TI atingido!"}
	ErrExclusiveLimitReached   = &ConflictError{Message: "Limite de members exclusivos no team atingido!"}
)

// State and Authorization Conflicts
var (
	ErrOrganizationRegistered = &ConflictError{Message: "Organization já está registrada"}
	ErrPasswordMismatch       = &ConflictError{Message: "As senhas devem ser iguais!"}
	ErrAccountDeleteForbidden = &ConflictError{Message: "Você não tem autorização para deletar essa conta."}
)

// Attachment Conflicts
var (
	ErrAttachmentNotPDF     = &ConflictError{Message: "O arquivo deve ser um PDF."}
	ErrAttachmentTooLarge   = &ConflictError{Message: "O tamanho do attachment deve ser igual ou menor que 1MB"}
	ErrTeamDocumentTooLarge = &ConflictError{Message: "O tamanho do attachment deve ser igual ou menor que 3 MB"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "Credenciais inválidas"}
	ErrInvalidOTPCode     = &AuthenticationError{Message: "Código incorreto. Verifique o código em seu e-mail"}
)

// NewTeamCapacityError reports that the one-per-team cap for a roster kind
// is already taken for the given team.
func NewTeamCapacityError(kind, team string) error {
	return &ConflictError{Message: fmt.Sprintf("Limite de %s para o time %s atingido!", kind, team)}
}

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError with the given reason
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUpstreamError wraps a collaborator failure
func NewUpstreamError(message string, err error) error {
	return &UpstreamError{Message: message, Err: err}
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "member"}
		assert.Equal(t, "member not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "member"}
		err2 := &NotFoundError{Entity: "member"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "member"}
		err2 := &NotFoundError{Entity: "gestor"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrMemberNotFound, ErrMemberNotFound))
		assert.False(t, errors.Is(ErrMemberNotFound, ErrGestorNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrOrganizationNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrRGTaken))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message is the human-readable reason", func(t *testing.T) {
		assert.Equal(t, "Limite total de members atingido!", ErrMemberLimitReached.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrRGTaken, &ConflictError{Message: "Este RG já está cadastrado!"}))
		assert.False(t, errors.Is(ErrRGTaken, ErrRegistrationTaken))
	})

	t.Run("team capacity message carries kind and team", func(t *testing.T) {
		err := NewTeamCapacityError("gestor", "Alpha")
		assert.Equal(t, "Limite de gestor para o time Alpha atingido!", err.Error())
		assert.True(t, IsConflict(err))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrOrganizationRegistered))
		assert.True(t, IsConflict(fmt.Errorf("wrapped: %w", ErrExclusiveLimitReachedTI)))
		assert.False(t, IsConflict(ErrMemberNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "team", Message: "is required"}
		assert.Equal(t, "validation error: team - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "malformed payload"}
		assert.Equal(t, "validation error: malformed payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("rg", "is required")))
		assert.False(t, IsValidation(ErrRGTaken))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidOTPCode))
		assert.False(t, IsAuthentication(ErrUserNotFound))
	})
}

func TestUpstreamError(t *testing.T) {
	t.Run("wraps the underlying cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewUpstreamError("Erro ao fazer upload da imagem.", cause)
		assert.True(t, IsUpstream(err))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("message only", func(t *testing.T) {
		err := &UpstreamError{Message: "Erro ao enviar e-mail"}
		assert.Equal(t, "Erro ao enviar e-mail", err.Error())
	})
}

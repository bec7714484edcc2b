package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetBody(t *testing.T) {
	body := PasswordResetBody("4821")

	assert.Contains(t, body, "4821")
	assert.Contains(t, body, "Código de verificação")
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
}

func TestRegistrationBody(t *testing.T) {
	body := RegistrationBody("<h3>Organization</h3><p>Clube Atlas</p>")

	assert.Contains(t, body, "Clube Atlas")
	assert.Contains(t, body, "Você recebeu uma nova inscrição!")
}

package mailer

import (
	"fmt"
	"net/smtp"

	"roster-portal-backend/internal/config"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mock.go -package=mocks

// Mailer sends a rendered HTML message to a single recipient.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay
type SMTPMailer struct {
	from     string
	password string
	host     string
	port     string
}

// New creates an SMTP mailer from configuration
func New(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		from:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
	}
}

// Send sends an HTML email with subject and body
func (s *SMTPMailer) Send(to, subject, htmlBody string) error {
	if s.host == "" || s.port == "" || s.from == "" || s.password == "" {
		return fmt.Errorf("missing SMTP configuration")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"utf-8\"\r\n"+
			"\r\n%s\r\n",
		s.from, to, subject, htmlBody,
	))

	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, msg)
}

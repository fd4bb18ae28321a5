package mailer

import (
	"testing"

	"hirehub/config"
	"hirehub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestImplicitTLSPortSelection(t *testing.T) {
	// 465 is TLS-first; the submission ports greet in plaintext and must
	// go through smtp.SendMail's STARTTLS upgrade instead.
	assert.True(t, implicitTLS("465"))
	assert.False(t, implicitTLS("587"))
	assert.False(t, implicitTLS("25"))
}

func TestMessageFraming(t *testing.T) {
	s := NewSMTPSender(&config.Config{
		SMTPHost:      "smtp.example.com",
		SMTPPort:      "465",
		SMTPFromName:  "HireHub",
		SMTPFromEmail: "noreply@hirehub.dev",
	})

	body := string(s.message(domain.MailMessage{
		To:      "dev@example.com",
		Subject: "Welcome",
		HTML:    "<p>hi</p>",
	}))

	assert.Contains(t, body, "From: HireHub <noreply@hirehub.dev>\r\n")
	assert.Contains(t, body, "To: dev@example.com\r\n")
	assert.Contains(t, body, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.Contains(t, body, "\r\n\r\n<p>hi</p>")
}

func TestIsConfigured(t *testing.T) {
	s := NewSMTPSender(&config.Config{SMTPHost: "smtp.example.com"})
	assert.False(t, s.IsConfigured())

	s = NewSMTPSender(&config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPUsername: "user",
		SMTPPassword: "pass",
	})
	assert.True(t, s.IsConfigured())
}

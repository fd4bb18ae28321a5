package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"hirehub/config"
	"hirehub/internal/domain"
)

// SMTPSender relays queue messages through an SMTP provider.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	fromName string
	from     string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		fromName: cfg.SMTPFromName,
		from:     cfg.SMTPFromEmail,
	}
}

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// implicitTLS reports whether the port expects a TLS handshake before any
// SMTP exchange. 465 is SMTPS; other submission ports greet in plaintext
// and upgrade via STARTTLS.
func implicitTLS(port string) bool {
	return port == "465"
}

func (s *SMTPSender) message(msg domain.MailMessage) []byte {
	return []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromName,
		s.from,
		msg.To,
		msg.Subject,
		msg.HTML,
	))
}

// Send delivers one HTML mail. Called once per queue message; failures
// are the caller's to log.
func (s *SMTPSender) Send(msg domain.MailMessage) error {
	body := s.message(msg)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	var err error
	if implicitTLS(s.port) {
		err = s.sendTLS(addr, auth, msg.To, body)
	} else {
		err = smtp.SendMail(addr, auth, s.from, []string{msg.To}, body)
	}
	if err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

// sendTLS speaks SMTPS: the connection is TLS from the first byte, so
// smtp.SendMail's plaintext greeting would stall against it.
func (s *SMTPSender) sendTLS(addr string, auth smtp.Auth, to string, body []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Mailer sends transactional mail. Implementations must be safe for
// concurrent use; the notification dispatcher calls Send from goroutines.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

type smtpMailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewSMTPMailer() Mailer {
	return &smtpMailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

func (m *smtpMailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if m.host == "" || m.port == "" {
		return fmt.Errorf("smtp is not configured")
	}

	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
		"\r\n"+
		"%s\r\n", m.from, strings.Join(to, ", "), subject, htmlBody)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, to, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

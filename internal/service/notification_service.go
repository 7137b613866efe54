package service

import (
	"context"
	"log"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/mailer"
)

// Notifier delivers event emails to the configured recipient list. Callers
// invoke it from a goroutine; a failed delivery never fails the triggering
// request, it is only logged.
type Notifier interface {
	Notify(ctx context.Context, subject, htmlBody string)
}

type notificationService struct {
	recipients    repository.RecipientRepository
	mailer        mailer.Mailer
	fallbackEmail string
}

func NewNotificationService(recipients repository.RecipientRepository, m mailer.Mailer, fallbackEmail string) Notifier {
	return &notificationService{
		recipients:    recipients,
		mailer:        m,
		fallbackEmail: fallbackEmail,
	}
}

func (s *notificationService) Notify(ctx context.Context, subject, htmlBody string) {
	emails, err := s.recipients.Emails(ctx)
	if err != nil {
		log.Printf("failed to load notification recipients: %v", err)
		emails = nil
	}

	if len(emails) == 0 && s.fallbackEmail != "" {
		emails = []string{s.fallbackEmail}
	}

	// Nobody to notify, nothing to do
	if len(emails) == 0 {
		return
	}

	if err := s.mailer.Send(ctx, emails, subject, htmlBody); err != nil {
		log.Printf("failed to send notification email %q: %v", subject, err)
	}
}

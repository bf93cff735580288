package mailer

import (
	"context"
	"encoding/base64"
	"fmt"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/pkg/logger"
	"jetsetter-booking/templates"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer sends booking confirmation emails through the Gmail API.
// Delivery is best-effort; the orchestrator never fails a booking over
// a mail error.
type GmailMailer struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewGmailMailer creates a new Gmail confirmation mailer.
func NewGmailMailer(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (*GmailMailer, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailMailer{
		gmailService: service,
		from:         from,
		logger:       logger,
	}, nil
}

// SendConfirmation emails the booking confirmation to the contact
// address on the record.
func (m *GmailMailer) SendConfirmation(ctx context.Context, record *entity.BookingRecord) error {
	if record.Contact.Email == "" {
		return fmt.Errorf("booking %s has no contact email", record.OrderReference)
	}

	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.from,
		record.Contact.Email,
		templates.ConfirmationSubject(record),
		templates.ConfirmationBody(record))

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	if _, err := m.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("send confirmation for %s: %w", record.OrderReference, err)
	}

	m.logger.Info("Confirmation email sent",
		"orderReference", record.OrderReference,
		"to", record.Contact.Email)
	return nil
}

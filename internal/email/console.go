package email

import (
	"context"
	"fmt"

	"alma_leads_backend/platform/logger"
)

// ConsoleSender logs rendered emails instead of delivering them. It is the
// default sender in development and whenever SMTP is not configured.
type ConsoleSender struct {
	log *logger.Logger
}

// NewConsoleSender creates a log-only sender.
func NewConsoleSender(log *logger.Logger) *ConsoleSender {
	return &ConsoleSender{log: log}
}

func (s *ConsoleSender) logEmail(toEmail, subject, body string) {
	preview := body
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	s.log.Info("email",
		"to", toEmail,
		"subject", subject,
		"body", preview,
	)
}

func (s *ConsoleSender) SendLeadConfirmationEmail(_ context.Context, toEmail, firstName string) error {
	content, err := renderEmailTemplate("lead_confirmation.html", leadConfirmationEmailData{
		FirstName: firstName,
	})
	if err != nil {
		return err
	}
	s.logEmail(toEmail, subjectLeadConfirmation, content)
	return nil
}

func (s *ConsoleSender) SendLeadNotificationEmail(_ context.Context, toEmail, firstName, lastName, leadEmail string) error {
	content, err := renderEmailTemplate("lead_notification.html", leadNotificationEmailData{
		FirstName: firstName,
		LastName:  lastName,
		LeadEmail: leadEmail,
	})
	if err != nil {
		return err
	}
	s.logEmail(toEmail, fmt.Sprintf(subjectLeadNotificationFmt, firstName, lastName), content)
	return nil
}

// Compile-time check that ConsoleSender implements Sender
var _ Sender = (*ConsoleSender)(nil)

// Package email provides transactional email sending. Sender defines the
// interface; ConsoleSender logs messages for local development and SMTPSender
// delivers over SMTP. Sends are best-effort: callers log failures and never
// fail the surrounding request on account of them.
package email

import "context"

// Sender is the transactional email contract.
type Sender interface {
	// SendLeadConfirmationEmail confirms receipt to the prospect.
	SendLeadConfirmationEmail(ctx context.Context, toEmail, firstName string) error
	// SendLeadNotificationEmail notifies the attorney of a new lead.
	SendLeadNotificationEmail(ctx context.Context, toEmail, firstName, lastName, leadEmail string) error
}

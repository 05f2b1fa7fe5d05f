// Package notification provides event handlers for sending emails in
// response to domain events. Domain modules publish events and never talk to
// email providers directly; this module inverts that dependency.
package notification

import (
	"context"

	"alma_leads_backend/internal/email"
	"alma_leads_backend/internal/events"
	"alma_leads_backend/platform/config"
	"alma_leads_backend/platform/logger"
)

// Module wires email sending to lead domain events.
type Module struct {
	sender email.Sender
	cfg    config.NotificationConfig
	log    *logger.Logger
}

// New creates the notification module.
func New(sender email.Sender, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{sender: sender, cfg: cfg, log: log}
}

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadSubmitted{}.EventName(), events.HandlerFunc(m.handleLeadSubmitted))
}

// handleLeadSubmitted sends the prospect confirmation and the attorney
// notification. The two sends are attempted independently; failures are
// logged and never returned, so a notification problem cannot fail or roll
// back the submission that triggered it.
func (m *Module) handleLeadSubmitted(ctx context.Context, event events.Event) error {
	e, ok := event.(events.LeadSubmitted)
	if !ok {
		return nil
	}

	if err := m.sender.SendLeadConfirmationEmail(ctx, e.Email, e.FirstName); err != nil {
		m.log.EmailError("lead_confirmation", e.Email, err)
	}

	attorneyEmail := m.cfg.GetAttorneyEmail()
	if err := m.sender.SendLeadNotificationEmail(ctx, attorneyEmail, e.FirstName, e.LastName, e.Email); err != nil {
		m.log.EmailError("lead_notification", attorneyEmail, err)
	}

	return nil
}

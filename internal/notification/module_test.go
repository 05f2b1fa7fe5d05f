package notification

import (
	"context"
	"errors"
	"testing"

	"alma_leads_backend/internal/events"
	"alma_leads_backend/platform/logger"

	"github.com/google/uuid"
)

type testNotificationConfig struct{}

func (testNotificationConfig) GetAttorneyEmail() string { return "attorney@alma.local" }

type testSender struct {
	confirmationCalls  int
	notificationCalls  int
	confirmationErr    error
	notificationErr    error
	lastConfirmationTo string
	lastNotificationTo string
}

func (s *testSender) SendLeadConfirmationEmail(_ context.Context, toEmail, _ string) error {
	s.confirmationCalls++
	s.lastConfirmationTo = toEmail
	return s.confirmationErr
}

func (s *testSender) SendLeadNotificationEmail(_ context.Context, toEmail, _, _, _ string) error {
	s.notificationCalls++
	s.lastNotificationTo = toEmail
	return s.notificationErr
}

func submittedEvent() events.LeadSubmitted {
	return events.LeadSubmitted{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    uuid.New(),
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		ResumeKey: "abc123.pdf",
	}
}

func TestHandleLeadSubmittedSendsBothEmails(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	if err := m.handleLeadSubmitted(context.Background(), submittedEvent()); err != nil {
		t.Fatalf("handleLeadSubmitted returned error: %v", err)
	}
	if sender.confirmationCalls != 1 {
		t.Errorf("confirmation calls = %d, want 1", sender.confirmationCalls)
	}
	if sender.notificationCalls != 1 {
		t.Errorf("notification calls = %d, want 1", sender.notificationCalls)
	}
	if sender.lastConfirmationTo != "alice@example.com" {
		t.Errorf("confirmation sent to %q", sender.lastConfirmationTo)
	}
	if sender.lastNotificationTo != "attorney@alma.local" {
		t.Errorf("notification sent to %q", sender.lastNotificationTo)
	}
}

func TestHandleLeadSubmittedConfirmationFailureDoesNotBlockNotification(t *testing.T) {
	sender := &testSender{confirmationErr: errors.New("smtp down")}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	if err := m.handleLeadSubmitted(context.Background(), submittedEvent()); err != nil {
		t.Fatalf("send failure must be swallowed, got: %v", err)
	}
	if sender.notificationCalls != 1 {
		t.Errorf("attorney notification must still be attempted, calls = %d", sender.notificationCalls)
	}
}

func TestHandleLeadSubmittedNotificationFailureIsSwallowed(t *testing.T) {
	sender := &testSender{notificationErr: errors.New("smtp down")}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	if err := m.handleLeadSubmitted(context.Background(), submittedEvent()); err != nil {
		t.Fatalf("send failure must be swallowed, got: %v", err)
	}
}

func TestHandleLeadSubmittedIgnoresOtherEvents(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	err := m.handleLeadSubmitted(context.Background(), events.LeadReachedOut{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.confirmationCalls != 0 || sender.notificationCalls != 0 {
		t.Error("non-submission events must not trigger emails")
	}
}

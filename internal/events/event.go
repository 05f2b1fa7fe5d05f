// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"alma_leads_backend/platform/events"
	"alma_leads_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadSubmitted is published after a prospect's lead record has been
// persisted. Handlers send the best-effort confirmation and attorney
// notification emails.
type LeadSubmitted struct {
	BaseEvent
	LeadID    uuid.UUID `json:"leadId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	ResumeKey string    `json:"resumeKey"`
}

func (e LeadSubmitted) EventName() string { return "leads.lead.submitted" }

// LeadReachedOut is published when an attorney marks a lead as contacted.
type LeadReachedOut struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Actor  string    `json:"actor"`
}

func (e LeadReachedOut) EventName() string { return "leads.lead.reached_out" }

package repository

import (
	"context"

	"alma_leads_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// Store is the persistence contract for leads. The service layer depends on
// this interface so tests can substitute a fake.
type Store interface {
	// Create persists a new lead with status PENDING and server-assigned
	// id and timestamps.
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)

	// GetByID returns the lead or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)

	// List returns leads ordered by created_at descending plus the total
	// unfiltered count. Offset and limit must already be normalized.
	List(ctx context.Context, offset, limit int) ([]Lead, int64, error)

	// UpdateStatusFrom conditionally moves a lead from one status to
	// another in a single statement, refreshing updated_at. Returns
	// ErrNotUpdated when no row matched (absent lead or a lost race);
	// the caller re-reads to tell the two apart. The transition policy
	// itself lives in the service, not here.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to domain.LeadStatus) (Lead, error)
}

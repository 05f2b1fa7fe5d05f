// Package service implements the lead lifecycle: the submission workflow and
// the status state machine. Storage, persistence, and notification are
// collaborators; the rules live here.
package service

import (
	"context"
	"errors"
	"io"

	"alma_leads_backend/internal/adapters/storage"
	"alma_leads_backend/internal/events"
	"alma_leads_backend/internal/leads/domain"
	"alma_leads_backend/internal/leads/repository"
	"alma_leads_backend/platform/apperr"
	"alma_leads_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	// DefaultListLimit is applied when a caller omits or zeroes the limit.
	DefaultListLimit = 50
	// MaxListLimit caps a single listing page.
	MaxListLimit = 200

	msgLeadNotFound   = "lead not found"
	msgAlreadyReached = "lead already marked as REACHED_OUT"
)

// Service orchestrates the lead lifecycle.
type Service struct {
	repo    repository.Store
	storage storage.Backend
	bus     events.Bus
	log     *logger.Logger
}

// New creates the lead lifecycle service.
func New(repo repository.Store, backend storage.Backend, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, storage: backend, bus: bus, log: log}
}

// SubmitParams carries a validated public submission.
type SubmitParams struct {
	FirstName string
	LastName  string
	Email     string
	Resume    io.Reader
	FileName  string
	Size      int64
}

// Submit runs the submission workflow: validate the resume, store the file,
// persist the record, then publish the submission event whose handlers send
// the best-effort emails. File persistence strictly precedes record creation;
// a record must never reference a resume that failed to persist. Notification
// problems never fail the submission.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (repository.Lead, error) {
	if err := storage.ValidateFileName(params.FileName); err != nil {
		return repository.Lead{}, apperr.Validation(err.Error()).WithDetails(map[string]string{"resume": err.Error()})
	}
	if err := storage.ValidateFileSize(params.Size); err != nil {
		return repository.Lead{}, apperr.Validation(err.Error()).WithDetails(map[string]string{"resume": err.Error()})
	}

	key, err := s.storage.Save(ctx, params.Resume, params.FileName, params.Size)
	if err != nil {
		return repository.Lead{}, apperr.Wrap(apperr.KindInternal, "failed to store resume", err).WithOp("leads.Submit")
	}

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		ResumeKey: key,
	})
	if err != nil {
		s.log.DatabaseError("leads.create", err)
		return repository.Lead{}, apperr.Wrap(apperr.KindInternal, "failed to create lead", err).WithOp("leads.Submit")
	}

	// Handler failures are logged by the bus and deliberately ignored here.
	_ = s.bus.PublishSync(ctx, events.LeadSubmitted{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		ResumeKey: lead.ResumeKey,
	})

	return lead, nil
}

// Get fetches a single lead.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Lead{}, apperr.NotFound(msgLeadNotFound)
	}
	if err != nil {
		s.log.DatabaseError("leads.get", err)
		return repository.Lead{}, apperr.Wrap(apperr.KindInternal, "failed to load lead", err).WithOp("leads.Get")
	}
	return lead, nil
}

// List returns a page of leads plus the total count. Out-of-range paging
// values are normalized, never an error.
func (s *Service) List(ctx context.Context, skip, limit int) ([]repository.Lead, int64, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	items, total, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		s.log.DatabaseError("leads.list", err)
		return nil, 0, apperr.Wrap(apperr.KindInternal, "failed to list leads", err).WithOp("leads.List")
	}
	return items, total, nil
}

// MarkReachedOut transitions a lead PENDING → REACHED_OUT. A lead that is
// already REACHED_OUT yields a conflict, signaling "already handled" rather
// than succeeding silently. The store-level conditional update closes the
// race between two concurrent transitions: exactly one caller wins.
func (s *Service) MarkReachedOut(ctx context.Context, id uuid.UUID, actor string) (repository.Lead, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return repository.Lead{}, err
	}

	if !domain.CanTransition(current.Status, domain.StatusReachedOut) {
		return repository.Lead{}, apperr.Conflict(msgAlreadyReached)
	}

	updated, err := s.repo.UpdateStatusFrom(ctx, id, domain.StatusPending, domain.StatusReachedOut)
	if errors.Is(err, repository.ErrNotUpdated) {
		// Lost a race or the lead vanished; re-read to tell which.
		if _, getErr := s.repo.GetByID(ctx, id); errors.Is(getErr, repository.ErrNotFound) {
			return repository.Lead{}, apperr.NotFound(msgLeadNotFound)
		}
		return repository.Lead{}, apperr.Conflict(msgAlreadyReached)
	}
	if err != nil {
		s.log.DatabaseError("leads.update_status", err)
		return repository.Lead{}, apperr.Wrap(apperr.KindInternal, "failed to update lead status", err).WithOp("leads.MarkReachedOut")
	}

	s.bus.Publish(ctx, events.LeadReachedOut{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    updated.ID,
		Actor:     actor,
	})

	return updated, nil
}

// ResumeURL derives the client-facing resume access path for a lead.
func (s *Service) ResumeURL(ctx context.Context, lead repository.Lead) string {
	url, err := s.storage.PublicURL(ctx, lead.ResumeKey)
	if err != nil {
		s.log.Error("failed to derive resume URL", "leadId", lead.ID, "error", err)
		return ""
	}
	return url
}

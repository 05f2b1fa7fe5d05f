package repository

import (
	"context"
	"errors"
	"time"

	"alma_leads_backend/internal/leads/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when no lead exists for the given id.
	ErrNotFound = errors.New("lead not found")
	// ErrNotUpdated is returned when a conditional status update matched
	// no row.
	ErrNotUpdated = errors.New("lead not updated")
)

// Lead is the persisted lead record.
type Lead struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	ResumeKey string
	Status    domain.LeadStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateLeadParams carries the fields for a new lead record.
type CreateLeadParams struct {
	FirstName string
	LastName  string
	Email     string
	ResumeKey string
}

// Repository is the pgx-backed lead store.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a lead repository over a connection pool.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const leadColumns = `id, first_name, last_name, email, resume_key, status, created_at, updated_at`

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
		&lead.ResumeKey, &lead.Status, &lead.CreatedAt, &lead.UpdatedAt,
	)
	return lead, err
}

// Create inserts a new lead; id, status, and timestamps are server-assigned.
func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	return scanLead(r.pool.QueryRow(ctx, `
		INSERT INTO leads (first_name, last_name, email, resume_key)
		VALUES ($1, $2, $3, $4)
		RETURNING `+leadColumns,
		params.FirstName, params.LastName, params.Email, params.ResumeKey,
	))
}

// GetByID loads a single lead.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

// List returns a page of leads, most recent first, plus the total count
// independent of the pagination window.
func (r *Repository) List(ctx context.Context, offset, limit int) ([]Lead, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM leads`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, lead)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return items, total, nil
}

// UpdateStatusFrom moves a lead between statuses in one conditional
// statement, so two concurrent transitions cannot both succeed.
func (r *Repository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to domain.LeadStatus) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		UPDATE leads
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+leadColumns,
		id, from, to,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotUpdated
	}
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

// Compile-time check that Repository implements Store
var _ Store = (*Repository)(nil)

package transport

import (
	"time"

	"alma_leads_backend/internal/leads/domain"
	"alma_leads_backend/internal/leads/repository"
)

// SubmitLeadRequest is the public submission form (multipart; the resume
// file part is handled separately).
type SubmitLeadRequest struct {
	FirstName string `form:"first_name" json:"first_name" validate:"required,max=100"`
	LastName  string `form:"last_name" json:"last_name" validate:"required,max=100"`
	Email     string `form:"email" json:"email" validate:"required,email,max=255"`
}

// UpdateLeadStatusRequest is the internal status transition body. The only
// value a client may set is REACHED_OUT; anything else fails validation
// before any transition is attempted.
type UpdateLeadStatusRequest struct {
	Status domain.LeadStatus `json:"status" validate:"required,oneof=REACHED_OUT"`
}

// LeadResponse is the client-facing lead representation. The raw storage key
// never appears; resume_url is derived by the storage backend.
type LeadResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	ResumeURL string    `json:"resume_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadListResponse is the paginated listing envelope; count is the total
// number of leads regardless of the pagination window.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Count int64          `json:"count"`
}

// NewLeadResponse maps a persisted lead and its derived resume URL to the
// response shape.
func NewLeadResponse(lead repository.Lead, resumeURL string) LeadResponse {
	return LeadResponse{
		ID:        lead.ID.String(),
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		ResumeURL: resumeURL,
		Status:    string(lead.Status),
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
}

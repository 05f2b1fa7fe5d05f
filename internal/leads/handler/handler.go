package handler

import (
	"net/http"
	"strconv"

	"alma_leads_backend/internal/leads/service"
	"alma_leads_backend/internal/leads/transport"
	"alma_leads_backend/platform/httpkit"
	"alma_leads_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles the authenticated lead management endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates the internal leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the internal lead routes on an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListLeads)
	rg.GET("/:id", h.GetLead)
	rg.PATCH("/:id/status", h.UpdateLeadStatus)
}

// ListLeads returns a paginated listing, most recent first, with the total
// count independent of the window.
func (h *Handler) ListLeads(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultListLimit)))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	leads, total, err := h.svc.List(c.Request.Context(), skip, limit)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		items = append(items, transport.NewLeadResponse(lead, h.svc.ResumeURL(c.Request.Context(), lead)))
	}

	httpkit.OK(c, transport.LeadListResponse{Items: items, Count: total})
}

// GetLead returns a single lead by id.
func (h *Handler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	lead, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewLeadResponse(lead, h.svc.ResumeURL(c.Request.Context(), lead)))
}

// UpdateLeadStatus marks a lead as REACHED_OUT. Any other requested status
// is rejected before a transition is attempted; a repeat call conflicts.
func (h *Handler) UpdateLeadStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	actor, _ := httpkit.GetSubject(c)
	lead, err := h.svc.MarkReachedOut(c.Request.Context(), id, actor)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewLeadResponse(lead, h.svc.ResumeURL(c.Request.Context(), lead)))
}

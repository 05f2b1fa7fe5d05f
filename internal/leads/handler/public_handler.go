package handler

import (
	"net/http"

	"alma_leads_backend/internal/adapters/storage"
	"alma_leads_backend/internal/leads/service"
	"alma_leads_backend/internal/leads/transport"
	"alma_leads_backend/platform/httpkit"
	"alma_leads_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// PublicHandler handles the unauthenticated lead submission endpoint.
type PublicHandler struct {
	svc *service.Service
	val *validator.Validator
}

// NewPublicHandler creates the public submission handler.
func NewPublicHandler(svc *service.Service, val *validator.Validator) *PublicHandler {
	return &PublicHandler{svc: svc, val: val}
}

// RegisterRoutes mounts the public submission route.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.SubmitLead)
}

// SubmitLead accepts a multipart form with prospect fields and a resume file.
// Every validation failure surfaces before any storage or persistence side
// effect occurs.
func (h *PublicHandler) SubmitLead(c *gin.Context) {
	var req transport.SubmitLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgValidationFailed, map[string]string{"resume": "a resume file is required"})
		return
	}
	if err := storage.ValidateFileName(fileHeader.Filename); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgValidationFailed, map[string]string{"resume": err.Error()})
		return
	}
	if err := storage.ValidateFileSize(fileHeader.Size); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgValidationFailed, map[string]string{"resume": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "failed to read resume upload", nil)
		return
	}
	defer file.Close()

	lead, err := h.svc.Submit(c.Request.Context(), service.SubmitParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Resume:    file,
		FileName:  fileHeader.Filename,
		Size:      fileHeader.Size,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	resumeURL := h.svc.ResumeURL(c.Request.Context(), lead)
	httpkit.JSON(c, http.StatusCreated, transport.NewLeadResponse(lead, resumeURL))
}

package handler

import (
	"errors"
	"net/http"

	"alma_leads_backend/internal/auth/service"
	"alma_leads_backend/internal/auth/transport"
	"alma_leads_backend/platform/httpkit"
	"alma_leads_backend/platform/logger"
	"alma_leads_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles authentication endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// New creates the auth handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// RegisterRoutes mounts auth routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

// Login exchanges username/password form credentials for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.log.AuthEvent("login", req.Username, false, "invalid credentials")
			c.Header("WWW-Authenticate", "Bearer")
			httpkit.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		httpkit.Error(c, http.StatusInternalServerError, "failed to issue token", nil)
		return
	}

	h.log.AuthEvent("login", req.Username, true, "")
	httpkit.OK(c, transport.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

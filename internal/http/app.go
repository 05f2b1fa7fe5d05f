// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"alma_leads_backend/internal/events"
	"alma_leads_backend/platform/config"
	"alma_leads_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and JWT settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness checks (DB ping).
	Health HealthChecker
	// EventBus is the domain event bus for cross-module communication.
	EventBus events.Bus
	// UploadDir, when non-empty, is served statically under /uploads so the
	// local storage backend's derived resume URLs resolve.
	UploadDir string
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}

package http

import (
	"net/http"

	"hotelhub/pkg/api"
	"hotelhub/pkg/logger"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Suppliers lists the configured supplier codes
	Suppliers []string
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(suppliers []string, logger logger.LoggerInterface) *HealthHandler {
	return &HealthHandler{
		Logger:    logger,
		API:       api.New(logger),
		Suppliers: suppliers,
	}
}

// HealthCheckHandler handles HTTP requests for health checks
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.DebugContext(ctx, "Health check endpoint called")

	h.API.SuccessWithMeta(ctx, w, map[string]any{
		"status":  "healthy",
		"message": "Service is running",
	}, &api.Meta{Suppliers: h.Suppliers})
}

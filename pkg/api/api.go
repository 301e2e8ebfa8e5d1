// Package api writes the standard JSON response envelope
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5/middleware"

	"hotelhub/pkg/logger"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response represents the standard API response format
type Response struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	Meta      *Meta  `json:"meta,omitempty"`
}

// Meta describes how a federated result was produced
type Meta struct {
	Suppliers []string `json:"suppliers,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Error represents the standard error format
type Error struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail contains detailed error information for specific fields
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Api interface defines methods for standard API responses
type Api interface {
	Success(ctx context.Context, w http.ResponseWriter, data any)
	SuccessWithMeta(ctx context.Context, w http.ResponseWriter, data any, meta *Meta)
	Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error)
	BadRequest(ctx context.Context, w http.ResponseWriter, message string)
	NotFound(ctx context.Context, w http.ResponseWriter, message string)
	BadGateway(ctx context.Context, w http.ResponseWriter, message string)
	InternalServerError(ctx context.Context, w http.ResponseWriter, message string)
	ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail)
}

type api struct {
	log logger.LoggerInterface
}

// New creates a new instance of the API response handler.
// Encoding failures are reported to log, which may be nil.
func New(log logger.LoggerInterface) Api {
	if log == nil {
		log = logger.NoOpLogger()
	}
	return &api{log: log}
}

// DetailsFromMap converts validator output into sorted error details
func DetailsFromMap(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, message := range fields {
		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Field < details[j].Field })
	return details
}

func (a *api) buildResponse(ctx context.Context, status string, data any, meta *Meta, apiErr *Error) Response {
	return Response{
		RequestID: middleware.GetReqID(ctx),
		Status:    status,
		Data:      data,
		Error:     apiErr,
		Meta:      meta,
	}
}

func (a *api) write(ctx context.Context, w http.ResponseWriter, statusCode int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		a.log.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// Success sends a successful response with data
func (a *api) Success(ctx context.Context, w http.ResponseWriter, data any) {
	a.write(ctx, w, http.StatusOK, a.buildResponse(ctx, StatusSuccess, data, nil, nil))
}

// SuccessWithMeta sends a successful response with data and metadata
func (a *api) SuccessWithMeta(ctx context.Context, w http.ResponseWriter, data any, meta *Meta) {
	a.write(ctx, w, http.StatusOK, a.buildResponse(ctx, StatusSuccess, data, meta, nil))
}

// Error sends an error response with specific HTTP status code and error details
func (a *api) Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error) {
	a.write(ctx, w, statusCode, a.buildResponse(ctx, StatusError, nil, nil, apiErr))
}

// BadRequest sends a 400 Bad Request response
func (a *api) BadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusBadRequest, &Error{Code: "BAD_REQUEST", Message: message})
}

// NotFound sends a 404 Not Found response
func (a *api) NotFound(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusNotFound, &Error{Code: "NOT_FOUND", Message: message})
}

// BadGateway sends a 502 Bad Gateway response
func (a *api) BadGateway(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusBadGateway, &Error{Code: "BAD_GATEWAY", Message: message})
}

// InternalServerError sends a 500 Internal Server Error response
func (a *api) InternalServerError(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusInternalServerError, &Error{Code: "INTERNAL_SERVER_ERROR", Message: message})
}

// ValidationError sends a 422 Unprocessable Entity response with validation details
func (a *api) ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail) {
	a.Error(ctx, w, http.StatusUnprocessableEntity, &Error{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	})
}

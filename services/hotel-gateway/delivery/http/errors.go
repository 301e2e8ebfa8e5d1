package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hotelhub/pkg/api"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
)

// writeError maps a domain error onto the response envelope
func writeError(ctx context.Context, w http.ResponseWriter, responder api.Api, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		responder.InternalServerError(ctx, w, "Internal server error")
		return
	}

	status := appErr.Code
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	message := appErr.Message
	// infrastructure causes stay in the logs
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		message = "Internal server error"
	}
	responder.Error(ctx, w, status, &api.Error{Code: string(appErr.Kind), Message: message})
}

// writeValidation answers with the fields of a validation failure
func writeValidation(ctx context.Context, w http.ResponseWriter, responder api.Api, fields map[string]string) {
	responder.ValidationError(ctx, w, api.DetailsFromMap(fields))
}

// warnings splits a composed error message into envelope warnings
func warnings(message string) []string {
	if message == "" {
		return nil
	}
	return strings.Split(message, model.MessageSeparator)
}

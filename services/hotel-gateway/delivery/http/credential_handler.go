package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hotelhub/contracts/hotel_gateway"
	"hotelhub/pkg/api"
	"hotelhub/pkg/logger"
	"hotelhub/pkg/validator"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/usecase"
)

// CredentialHandler handles HTTP requests for client credential overrides
type CredentialHandler struct {
	// CredentialUseCase contains business logic for credential operations
	CredentialUseCase usecase.CredentialUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Validator checks request contracts
	Validator validator.Validator
}

// NewCredentialHandler creates a new instance of CredentialHandler
func NewCredentialHandler(credentialUseCase usecase.CredentialUseCase, logger logger.LoggerInterface) *CredentialHandler {
	return &CredentialHandler{
		CredentialUseCase: credentialUseCase,
		Logger:            logger,
		API:               api.New(logger),
		Validator:         validator.NewValidator(),
	}
}

// SaveHandler handles HTTP requests to store a client's supplier login
func (h *CredentialHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Save credential handler called")

	var req hotel_gateway.SaveCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for credential override", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}
	req.SupplierCode = chi.URLParam(r, "supplierCode")
	req.ClientID = chi.URLParam(r, "clientId")

	if fields := h.Validator.ValidateStruct(&req); fields != nil {
		h.Logger.WarnContext(ctx, "Validation failed for credential override", "errors", fields)
		writeValidation(ctx, w, h.API, fields)
		return
	}

	override, err := h.CredentialUseCase.SaveOverride(ctx, req.SupplierCode, req.ClientID, model.Credential{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(ctx, w, h.API, err)
		return
	}

	h.Logger.InfoContext(ctx, "Credential override saved successfully in handler", "id", override.ID)
	h.API.Success(ctx, w, &hotel_gateway.CredentialResponse{
		ID:           override.ID,
		SupplierCode: override.SupplierCode,
		ClientID:     override.ClientID,
		UpdatedAt:    override.UpdatedAt.Format(time.RFC3339),
	})
}

// DeleteHandler handles HTTP requests to remove a client's supplier login
func (h *CredentialHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete credential handler called")

	req := hotel_gateway.DeleteCredentialRequest{
		SupplierCode: chi.URLParam(r, "supplierCode"),
		ClientID:     chi.URLParam(r, "clientId"),
	}
	if fields := h.Validator.ValidateStruct(&req); fields != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete credential", "errors", fields)
		writeValidation(ctx, w, h.API, fields)
		return
	}

	if err := h.CredentialUseCase.DeleteOverride(ctx, req.SupplierCode, req.ClientID); err != nil {
		writeError(ctx, w, h.API, err)
		return
	}

	h.Logger.InfoContext(ctx, "Credential override deleted successfully", "supplier", req.SupplierCode, "clientID", req.ClientID)
	h.API.Success(ctx, w, map[string]string{"message": "Credential override deleted successfully"})
}

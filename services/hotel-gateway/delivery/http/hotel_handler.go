package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"hotelhub/contracts/hotel_gateway"
	"hotelhub/pkg/api"
	"hotelhub/pkg/logger"
	"hotelhub/pkg/validator"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/usecase"
)

// HotelHandler handles HTTP requests for the federated hotel operations
type HotelHandler struct {
	// HotelUseCase contains business logic for hotel operations
	HotelUseCase usecase.HotelUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Validator checks request contracts
	Validator validator.Validator
}

// NewHotelHandler creates a new instance of HotelHandler
func NewHotelHandler(hotelUseCase usecase.HotelUseCase, logger logger.LoggerInterface) *HotelHandler {
	return &HotelHandler{
		HotelUseCase: hotelUseCase,
		Logger:       logger,
		API:          api.New(logger),
		Validator:    validator.NewValidator(),
	}
}

// SearchHandler handles availability searches
func (h *HotelHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req hotel_gateway.SearchRequest
	tenant, ok := h.decode(ctx, w, r, &req)
	if !ok {
		return
	}

	arrival, departure, err := parseStay(req.ArrivalDate, req.DepartureDate)
	if err != nil {
		writeError(ctx, w, h.API, err)
		return
	}

	resp, err := h.HotelUseCase.Search(ctx, tenant, &model.SearchQuery{
		FacilityIDs:   req.FacilityIDs,
		CityCode:      req.CityCode,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Guests:        req.Guests,
		Currency:      req.Currency,
	})
	if err != nil {
		h.handleError(ctx, w, "search", err)
		return
	}

	h.Logger.InfoContext(ctx, "Search handled", "items", len(resp.Items), "success", resp.Success)
	h.API.SuccessWithMeta(ctx, w, resp, &api.Meta{Warnings: warnings(resp.ErrorMessage)})
}

// PricingHandler handles pricing of a single facility
func (h *HotelHandler) PricingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req hotel_gateway.PricingRequest
	tenant, ok := h.decode(ctx, w, r, &req)
	if !ok {
		return
	}

	arrival, departure, err := parseStay(req.ArrivalDate, req.DepartureDate)
	if err != nil {
		writeError(ctx, w, h.API, err)
		return
	}

	resp, err := h.HotelUseCase.Pricing(ctx, tenant, &model.PricingQuery{
		FacilityID:    req.FacilityID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Guests:        req.Guests,
		Currency:      req.Currency,
	})
	if err != nil {
		h.handleError(ctx, w, "pricing", err)
		return
	}

	h.API.SuccessWithMeta(ctx, w, resp, &api.Meta{Warnings: warnings(resp.ErrorMessage)})
}

// RoomDetailsHandler resolves a booking code into the full room details
func (h *HotelHandler) RoomDetailsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req hotel_gateway.RoomDetailRequest
	tenant, ok := h.decode(ctx, w, r, &req)
	if !ok {
		return
	}

	resp, err := h.HotelUseCase.RoomDetails(ctx, tenant, &model.RoomDetailRequest{
		BookingCode:            req.BookingCode,
		ServiceID:              req.ServiceID,
		SkipSimilarOfferSearch: req.SkipSimilarOfferSearch,
	})
	if err != nil {
		h.handleError(ctx, w, "room details", err)
		return
	}

	h.Logger.InfoContext(ctx, "Room details resolved", "replaced", resp.Replaced, "serviceID", req.ServiceID)
	h.API.SuccessWithMeta(ctx, w, resp, &api.Meta{Warnings: warnings(resp.ErrorMessage)})
}

// BookingInfoHandler reads the current state of bookings
func (h *HotelHandler) BookingInfoHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req hotel_gateway.BookingInfoRequest
	tenant, ok := h.decode(ctx, w, r, &req)
	if !ok {
		return
	}

	resp, err := h.HotelUseCase.BookingInfo(ctx, tenant, &model.BookingInfoQuery{
		SupplierCode: req.SupplierCode,
		BookingIDs:   req.BookingIDs,
	})
	if err != nil {
		h.handleError(ctx, w, "booking info", err)
		return
	}

	h.API.SuccessWithMeta(ctx, w, resp, &api.Meta{Warnings: warnings(resp.ErrorMessage)})
}

// TripDocumentsHandler reads vouchers and invoices of bookings
func (h *HotelHandler) TripDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req hotel_gateway.TripDocumentRequest
	tenant, ok := h.decode(ctx, w, r, &req)
	if !ok {
		return
	}

	resp, err := h.HotelUseCase.TripDocuments(ctx, tenant, &model.TripDocumentQuery{
		SupplierCode: req.SupplierCode,
		BookingIDs:   req.BookingIDs,
	})
	if err != nil {
		h.handleError(ctx, w, "trip documents", err)
		return
	}

	h.API.SuccessWithMeta(ctx, w, resp, &api.Meta{Warnings: warnings(resp.ErrorMessage)})
}

// AncillaryPricingHandler prices the extras of a stay
func (h *HotelHandler) AncillaryPricingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req hotel_gateway.AncillaryPricingRequest
	tenant, ok := h.decode(ctx, w, r, &req)
	if !ok {
		return
	}

	arrival, departure, err := parseStay(req.ArrivalDate, req.DepartureDate)
	if err != nil {
		writeError(ctx, w, h.API, err)
		return
	}

	resp, err := h.HotelUseCase.AncillaryPricing(ctx, tenant, &model.AncillaryQuery{
		FacilityID:    req.FacilityID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Guests:        req.Guests,
	})
	if err != nil {
		h.handleError(ctx, w, "ancillary pricing", err)
		return
	}

	h.API.SuccessWithMeta(ctx, w, resp, &api.Meta{Warnings: warnings(resp.ErrorMessage)})
}

// decode reads and validates the JSON body and returns the caller's tenant.
// It writes the error response itself when it returns false.
func (h *HotelHandler) decode(ctx context.Context, w http.ResponseWriter, r *http.Request, req any) (model.Tenant, bool) {
	tenant, ok := TenantFromContext(ctx)
	if !ok {
		h.API.BadRequest(ctx, w, "X-Employee-ID header is required")
		return model.Tenant{}, false
	}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.Logger.WarnContext(ctx, "Invalid request body", "path", r.URL.Path, "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return model.Tenant{}, false
	}

	if fields := h.Validator.ValidateStruct(req); fields != nil {
		h.Logger.WarnContext(ctx, "Validation failed", "path", r.URL.Path, "errors", fields)
		writeValidation(ctx, w, h.API, fields)
		return model.Tenant{}, false
	}
	return tenant, true
}

func (h *HotelHandler) handleError(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	h.Logger.ErrorContext(ctx, "Hotel operation failed", "operation", operation, "kind", domain.KindOf(err), "error", err)
	writeError(ctx, w, h.API, err)
}

// parseStay parses request dates; departure must follow arrival
func parseStay(arrivalDate, departureDate string) (time.Time, time.Time, error) {
	arrival, err := time.Parse(hotel_gateway.DateLayout, arrivalDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.WrapError(domain.ErrInvalidRequest, "arrival date is invalid", err)
	}
	departure, err := time.Parse(hotel_gateway.DateLayout, departureDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.WrapError(domain.ErrInvalidRequest, "departure date is invalid", err)
	}
	if !departure.After(arrival) {
		return time.Time{}, time.Time{}, domain.NewError(domain.ErrInvalidRequest, "departure date must be after arrival date")
	}
	return arrival, departure, nil
}

package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelhub/pkg/httpclient"
	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/bookingcode"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
	"hotelhub/services/hotel-gateway/repository/memory"
	"hotelhub/services/hotel-gateway/supplier"
)

var (
	arrival   = time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	departure = time.Date(2024, 10, 4, 0, 0, 0, 0, time.UTC)
	tenant    = model.Tenant{EmployeeID: "15", Language: "en"}
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func fakeAPI(t *testing.T) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/v1/{locale}/gateway/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"access_token": "tkn"})
	})
	r.Post("/api/v1/{locale}/hotels/search", func(w http.ResponseWriter, r *http.Request) {
		var req stayRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-10-01", req.CheckIn)
		assert.Equal(t, []int64{42}, req.HotelIDs)
		writeJSON(w, map[string]any{
			"search_id": "s-1",
			"hotels": []map[string]any{{
				"hotel_id":    42,
				"description": "<p>Sea view</p>",
				"min_prices":  []map[string]any{{"board": "BB", "price": map[string]any{"amount": 90, "currency": "EUR"}}},
				"offers": []map[string]any{
					{"offer_id": "o-1", "room_name": "Double", "board": "BB", "guests": 2, "price": map[string]any{"amount": 90, "currency": "EUR"}},
				},
			}},
		})
	})
	r.Post("/api/v1/{locale}/hotels/pricing", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"search_id":        "s-2",
			"hotel":            map[string]any{"hotel_id": 42, "offers": []map[string]any{{"offer_id": "o-9", "room_name": "Suite", "price": map[string]any{"amount": 300, "currency": "EUR"}}}},
			"contract_details": []map[string]any{{"code": "C1", "title": "Cancellation"}},
			"errors":           []string{"partial rates"},
		})
	})
	r.Get("/api/v1/{locale}/hotels/search/{searchId}/offers/{offerId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s-1", chi.URLParam(r, "searchId"))
		writeJSON(w, map[string]any{
			"check_in":  "2024-10-01",
			"check_out": "2024-10-04",
			"hotel":     map[string]any{"hotel_id": 42, "offers": []map[string]any{{"offer_id": chi.URLParam(r, "offerId"), "room_name": "Double", "board": "BB", "guests": 2, "price": map[string]any{"amount": 95, "currency": "EUR"}}}},
		})
	})
	r.Get("/api/v1/{locale}/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "bookingId") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]string{"description": "booking not found"})
			return
		}
		writeJSON(w, map[string]any{"booking_id": chi.URLParam(r, "bookingId"), "status": "confirmed", "hotel_id": 42, "check_in": "2024-10-01", "check_out": "2024-10-04"})
	})
	r.Post("/api/v1/{locale}/documents", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"documents": []map[string]any{{"id": "d-1", "booking_id": "b-1", "kind": "voucher", "url": "https://docs/1", "fingerprint": "abc"}}})
	})
	r.Post("/api/v1/{locale}/ancillaries/pricing", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"search_id": "s-3", "offers": []map[string]any{{"offer_id": "a-1", "code": "TRF", "name": "Transfer", "price": map[string]any{"amount": 40, "currency": "EUR"}}}})
	})
	return r
}

func setupClient(t *testing.T) (repository.HotelSupplier, *bookingcode.Codec) {
	server := httptest.NewServer(fakeAPI(t))
	t.Cleanup(server.Close)

	executor := supplier.NewExecutor(
		"acme",
		httpclient.New(httpclient.WithBaseURL(server.URL)),
		supplier.NewCredentialResolver(map[string]model.Credential{"acme": {Username: "u", Password: "p"}}, nil, nil, logger.NoOpLogger()),
		memory.NewTokenCache(nil),
		logger.NoOpLogger(),
	)
	codec := bookingcode.New(nil)
	return New(executor, codec, logger.NoOpLogger()), codec
}

func TestClient_Search(t *testing.T) {
	client, codec := setupClient(t)

	resp, err := client.Search(context.Background(), tenant, &model.SearchQuery{
		FacilityIDs: []int64{42}, ArrivalDate: arrival, DepartureDate: departure, Guests: 2,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	assert.Equal(t, int64(42), item.FacilityID)
	require.Len(t, item.Rooms, 1)
	assert.Equal(t, "acme", item.Rooms[0].SupplierCode)
	assert.Equal(t, 90.0, item.Rooms[0].TotalPrice.Amount)

	rate, err := codec.Decode(item.Rooms[0].BookingCode)
	require.NoError(t, err)
	assert.Equal(t, "s-1~o-1", rate.RateCode)
	assert.Equal(t, "BB", rate.BoardType)
	assert.Equal(t, 2, rate.Guests)
	assert.Equal(t, "acme", rate.SupplierCode)
}

func TestClient_PricingAndOfferDetails(t *testing.T) {
	client, codec := setupClient(t)
	ctx := context.Background()

	pricing, err := client.Pricing(ctx, tenant, &model.PricingQuery{FacilityID: 42, ArrivalDate: arrival, DepartureDate: departure, Guests: 2})
	require.NoError(t, err)
	assert.False(t, pricing.Success)
	assert.Equal(t, "partial rates", pricing.ErrorMessage)
	require.NotNil(t, pricing.Availability)
	assert.Equal(t, []model.ContractDetail{{Code: "C1", Title: "Cancellation"}}, pricing.Availability.ContractDetails)

	rate := &model.RateInfo{
		SupplierCode: "acme", FacilityID: 42, ArrivalDate: arrival, DepartureDate: departure,
		RateCode: "s-1~o-1", Guests: 2, QuotedTotal: &model.Price{Amount: 90, Currency: "EUR"},
	}
	details, err := client.OfferDetails(ctx, tenant, rate)
	require.NoError(t, err)
	require.Len(t, details.Availability.Rooms, 1)
	assert.Equal(t, 95.0, details.Availability.Rooms[0].TotalPrice.Amount)

	decoded, err := codec.Decode(details.Availability.Rooms[0].BookingCode)
	require.NoError(t, err)
	assert.Equal(t, 90.0, decoded.QuotedTotal.Amount)

	_, err = client.OfferDetails(ctx, tenant, &model.RateInfo{RateCode: "opaque"})
	assert.ErrorIs(t, err, domain.ErrInvalidBookingCode)
}

func TestClient_BookingInfo_PartialFailure(t *testing.T) {
	client, _ := setupClient(t)

	resp, err := client.BookingInfo(context.Background(), tenant, &model.BookingInfoQuery{BookingIDs: []string{"b-1", "missing"}})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.ErrorMessage, "booking not found")
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
}

func TestClient_DocumentsAndAncillaries(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	docs, err := client.TripDocuments(ctx, tenant, &model.TripDocumentQuery{BookingIDs: []string{"b-1"}})
	require.NoError(t, err)
	require.Len(t, docs.Documents, 1)
	assert.Equal(t, "abc", docs.Documents[0].Fingerprint)
	assert.Equal(t, "acme", docs.Documents[0].SupplierCode)

	extras, err := client.AncillaryPricing(ctx, tenant, &model.AncillaryQuery{FacilityID: 42, ArrivalDate: arrival, DepartureDate: departure, Guests: 1})
	require.NoError(t, err)
	require.NotNil(t, extras.Availability)
	require.Len(t, extras.Availability.Offers, 1)
	assert.Equal(t, "s-3~a-1", extras.Availability.Offers[0].BookingCode)
}

func TestClient_RejectsEmptyQueries(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	_, err := client.Pricing(ctx, tenant, &model.PricingQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	_, err = client.BookingInfo(ctx, tenant, &model.BookingInfoQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	_, err = client.TripDocuments(ctx, tenant, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

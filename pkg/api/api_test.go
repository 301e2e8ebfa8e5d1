package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var response Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response), "Failed to decode response")
	return response
}

func TestApi_Success(t *testing.T) {
	a := New(nil)
	w := httptest.NewRecorder()
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")

	a.Success(ctx, w, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	response := decode(t, w)
	assert.Equal(t, StatusSuccess, response.Status)
	assert.Equal(t, "req-1", response.RequestID)
	assert.NotNil(t, response.Data)
	assert.Nil(t, response.Error)
}

func TestApi_SuccessWithMeta(t *testing.T) {
	a := New(nil)
	w := httptest.NewRecorder()

	a.SuccessWithMeta(context.Background(), w, []int{1}, &Meta{
		Suppliers: []string{"alpha", "beta"},
		Warnings:  []string{"beta: timeout"},
	})

	response := decode(t, w)
	require.NotNil(t, response.Meta)
	assert.Equal(t, []string{"alpha", "beta"}, response.Meta.Suppliers)
	assert.Equal(t, []string{"beta: timeout"}, response.Meta.Warnings)
}

func TestApi_ErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		call   func(Api, http.ResponseWriter)
		status int
		code   string
	}{
		{"bad request", func(a Api, w http.ResponseWriter) { a.BadRequest(context.Background(), w, "bad") }, http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", func(a Api, w http.ResponseWriter) { a.NotFound(context.Background(), w, "missing") }, http.StatusNotFound, "NOT_FOUND"},
		{"bad gateway", func(a Api, w http.ResponseWriter) { a.BadGateway(context.Background(), w, "upstream") }, http.StatusBadGateway, "BAD_GATEWAY"},
		{"internal", func(a Api, w http.ResponseWriter) { a.InternalServerError(context.Background(), w, "boom") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.call(New(nil), w)

			assert.Equal(t, tt.status, w.Code)
			response := decode(t, w)
			assert.Equal(t, StatusError, response.Status)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.code, response.Error.Code)
		})
	}
}

func TestApi_ValidationError(t *testing.T) {
	a := New(nil)
	w := httptest.NewRecorder()

	details := DetailsFromMap(map[string]string{
		"FacilityID":  "Facility ID is required",
		"ArrivalDate": "Arrival Date is required",
	})
	a.ValidationError(context.Background(), w, details)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	response := decode(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "VALIDATION_ERROR", response.Error.Code)
	require.Len(t, response.Error.Details, 2)
	assert.Equal(t, "ArrivalDate", response.Error.Details[0].Field)
	assert.Equal(t, "FacilityID", response.Error.Details[1].Field)
}

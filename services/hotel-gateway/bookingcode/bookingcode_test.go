package bookingcode

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
)

func sampleRate() *model.RateInfo {
	arrival := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	return &model.RateInfo{
		SupplierCode:  "acme",
		FacilityID:    42,
		ArrivalDate:   arrival,
		DepartureDate: arrival.AddDate(0, 0, 3),
		RateCode:      model.RateCode("search-1", "offer-7"),
		SearchID:      "search-1",
		OfferID:       "offer-7",
		Guests:        2,
		BoardType:     "BB",
		QuotedTotal:   &model.Price{Amount: 310, Currency: "EUR"},
		Language:      "en",
	}
}

func TestCodec_EncodeDecode(t *testing.T) {
	codec := New(nil)

	code, err := codec.Encode(sampleRate())
	require.NoError(t, err)
	assert.NotContains(t, code, "+")
	assert.NotContains(t, code, "/")

	rate, err := codec.Decode(code)
	require.NoError(t, err)
	assert.Equal(t, int64(42), rate.FacilityID)
	assert.Equal(t, "acme", rate.SupplierCode)
	assert.Equal(t, 310.0, rate.QuotedTotal.Amount)
	assert.True(t, rate.ArrivalDate.Equal(sampleRate().ArrivalDate))
}

func TestCodec_DecodeRejectsIncompleteRates(t *testing.T) {
	codec := New(nil)

	tests := []struct {
		name   string
		mutate func(r *model.RateInfo)
		field  string
	}{
		{"missing arrival", func(r *model.RateInfo) { r.ArrivalDate = time.Time{} }, "Arrival Date"},
		{"missing departure", func(r *model.RateInfo) { r.DepartureDate = time.Time{} }, "Departure Date"},
		{"missing facility", func(r *model.RateInfo) { r.FacilityID = 0 }, "Facility ID"},
		{"missing rate code", func(r *model.RateInfo) { r.RateCode = "" }, "Rate Code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := sampleRate()
			tt.mutate(rate)
			code := codec.MustEncode(rate)

			_, err := codec.Decode(code)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidBookingCode))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCodec_DecodeMalformed(t *testing.T) {
	codec := New(nil)

	for _, code := range []string{"", "   ", "%%%", base64.RawURLEncoding.EncodeToString([]byte("not json"))} {
		_, err := codec.Decode(code)
		assert.ErrorIs(t, err, domain.ErrInvalidBookingCode, "code %q", code)
	}
}

package model

import (
	"strings"
	"time"
)

// RateCodeSeparator joins search and offer ids inside a supplier rate code
const RateCodeSeparator = "~"

// RateInfo is the decoded content of a booking code
type RateInfo struct {
	SupplierCode  string    `json:"sc" validate:"required"`
	FacilityID    int64     `json:"fi" validate:"gt=0"`
	ArrivalDate   time.Time `json:"ad" validate:"required"`
	DepartureDate time.Time `json:"dd" validate:"required"`
	RateCode      string    `json:"rc" validate:"required"`
	SearchID      string    `json:"si,omitempty"`
	OfferID       string    `json:"oi,omitempty"`
	Guests        int       `json:"ng,omitempty"`
	BoardType     string    `json:"bt,omitempty"`
	QuotedTotal   *Price    `json:"qp,omitempty"`
	Language      string    `json:"la,omitempty"`
}

// RateCode builds a supplier rate code from a search and an offer id
func RateCode(searchID, offerID string) string {
	return searchID + RateCodeSeparator + offerID
}

// Offer returns the search and offer ids, reading them from the rate code
// when they were not stored separately
func (r *RateInfo) Offer() (searchID, offerID string) {
	if r.SearchID != "" && r.OfferID != "" {
		return r.SearchID, r.OfferID
	}
	searchID, offerID, _ = strings.Cut(r.RateCode, RateCodeSeparator)
	return searchID, offerID
}

// RoomDetailRequest asks for the full details of a quoted room
type RoomDetailRequest struct {
	BookingCode            string
	ServiceID              string
	SkipSimilarOfferSearch bool
}

// RoomDetailResponse is the resolved room
type RoomDetailResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Room         *Room  `json:"room"`
	// Replaced is set when the quoted offer was stale and a similar one was used
	Replaced bool `json:"replaced"`
}

// PriceComparison reports how a quoted price moved before booking
type PriceComparison struct {
	ID            string    `json:"id"`
	ServiceID     string    `json:"serviceId"`
	SupplierCode  string    `json:"supplierCode"`
	QuotedPrice   float64   `json:"quotedPrice"`
	ResolvedPrice float64   `json:"resolvedPrice"`
	Currency      string    `json:"currency,omitempty"`
	Replaced      bool      `json:"replaced"`
	OccurredAt    time.Time `json:"occurredAt"`
}

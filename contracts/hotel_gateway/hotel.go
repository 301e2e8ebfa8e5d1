// Package hotel_gateway contains request contracts for the hotel gateway
package hotel_gateway

// DateLayout is the layout of every date in gateway requests
const DateLayout = "2006-01-02"

// SearchRequest represents the request payload for an availability search
type SearchRequest struct {
	FacilityIDs   []int64 `json:"facility_ids,omitempty" validate:"required_without=CityCode,dive,gt=0"`
	CityCode      string  `json:"city_code,omitempty" validate:"required_without=FacilityIDs"`
	ArrivalDate   string  `json:"arrival_date" validate:"required,datetime=2006-01-02"`
	DepartureDate string  `json:"departure_date" validate:"required,datetime=2006-01-02"`
	Guests        int     `json:"guests" validate:"required,min=1,max=10"`
	Currency      string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// PricingRequest represents the request payload for pricing one facility
type PricingRequest struct {
	FacilityID    int64  `json:"facility_id" validate:"required,gt=0"`
	ArrivalDate   string `json:"arrival_date" validate:"required,datetime=2006-01-02"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	Guests        int    `json:"guests" validate:"required,min=1,max=10"`
	Currency      string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// RoomDetailRequest represents the request payload for resolving a booking code
type RoomDetailRequest struct {
	BookingCode            string `json:"booking_code" validate:"required"`
	ServiceID              string `json:"service_id,omitempty" validate:"omitempty,max=64"`
	SkipSimilarOfferSearch bool   `json:"skip_similar_offer_search,omitempty"`
}

// BookingInfoRequest represents the request payload for reading bookings
type BookingInfoRequest struct {
	SupplierCode string   `json:"supplier_code,omitempty" validate:"omitempty,max=50"`
	BookingIDs   []string `json:"booking_ids" validate:"required,min=1,max=50,dive,required"`
}

// TripDocumentRequest represents the request payload for reading trip documents
type TripDocumentRequest struct {
	SupplierCode string   `json:"supplier_code,omitempty" validate:"omitempty,max=50"`
	BookingIDs   []string `json:"booking_ids" validate:"required,min=1,max=50,dive,required"`
}

// AncillaryPricingRequest represents the request payload for pricing extras of a stay
type AncillaryPricingRequest struct {
	FacilityID    int64  `json:"facility_id" validate:"required,gt=0"`
	ArrivalDate   string `json:"arrival_date" validate:"required,datetime=2006-01-02"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	Guests        int    `json:"guests" validate:"required,min=1,max=10"`
}

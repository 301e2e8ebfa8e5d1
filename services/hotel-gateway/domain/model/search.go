package model

import "time"

// SearchQuery asks every supplier for availability
type SearchQuery struct {
	FacilityIDs   []int64
	CityCode      string
	ArrivalDate   time.Time
	DepartureDate time.Time
	Guests        int
	Currency      string
}

// Availability is one facility's search result row
type Availability struct {
	FacilityID  int64         `json:"facilityId"`
	Facility    *Facility     `json:"facility,omitempty"`
	Description string        `json:"description,omitempty"`
	Amenities   []string      `json:"amenities,omitempty"`
	MinPrices   []*PricePoint `json:"minPrices"`
	Rooms       []*Room       `json:"rooms"`
	Suppliers   []string      `json:"suppliers,omitempty"`
}

// SearchResponse is the search result of one supplier or of a composition
type SearchResponse struct {
	Success      bool            `json:"success"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	Items        []*Availability `json:"items"`
}

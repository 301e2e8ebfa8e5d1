package model

import "time"

// PricingQuery asks for every rate of a single facility
type PricingQuery struct {
	FacilityID    int64
	ArrivalDate   time.Time
	DepartureDate time.Time
	Guests        int
	Currency      string
}

// PricingAvailability is the priced offer list of one facility
type PricingAvailability struct {
	FacilityID      int64            `json:"facilityId"`
	Facility        *Facility        `json:"facility,omitempty"`
	Rooms           []*Room          `json:"rooms"`
	ContractDetails []ContractDetail `json:"contractDetails,omitempty"`
}

// PricingResponse is the pricing result of one supplier or of a composition
type PricingResponse struct {
	Success      bool                 `json:"success"`
	ErrorMessage string               `json:"errorMessage,omitempty"`
	Availability *PricingAvailability `json:"availability,omitempty"`
}

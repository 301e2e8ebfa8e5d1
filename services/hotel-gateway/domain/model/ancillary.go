package model

import "time"

// AncillaryQuery asks for extras sold with a stay
type AncillaryQuery struct {
	FacilityID    int64
	ArrivalDate   time.Time
	DepartureDate time.Time
	Guests        int
}

// AncillaryOffer is one priced extra such as a transfer or early check-in
type AncillaryOffer struct {
	SupplierCode string `json:"supplierCode"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	BookingCode  string `json:"bookingCode,omitempty"`
	TotalPrice   *Price `json:"totalPrice,omitempty"`
}

// AncillaryAvailability is the priced extras list of one facility
type AncillaryAvailability struct {
	FacilityID      int64             `json:"facilityId"`
	Offers          []*AncillaryOffer `json:"offers"`
	ContractDetails []ContractDetail  `json:"contractDetails,omitempty"`
}

// AncillaryPricingResponse is the extras result of one supplier or of a composition
type AncillaryPricingResponse struct {
	Success      bool                   `json:"success"`
	ErrorMessage string                 `json:"errorMessage,omitempty"`
	Availability *AncillaryAvailability `json:"availability,omitempty"`
}

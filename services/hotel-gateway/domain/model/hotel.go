package model

import "time"

// Price is an amount in a currency
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// AmountOrZero treats a missing price as zero
func (p *Price) AmountOrZero() float64 {
	if p == nil {
		return 0
	}
	return p.Amount
}

// Facility is the descriptive metadata of a hotel
type Facility struct {
	ID                     int64    `json:"id"`
	Name                   string   `json:"name"`
	Address                string   `json:"address,omitempty"`
	Stars                  int      `json:"stars,omitempty"`
	CheckInTime            string   `json:"checkInTime,omitempty"`
	CheckOutTime           string   `json:"checkOutTime,omitempty"`
	ImportantInformation   string   `json:"importantInformation,omitempty"`
	ImportantInformationEn string   `json:"importantInformationEn,omitempty"`
	Images                 []string `json:"images,omitempty"`
}

// Room is a bookable room and rate combination
type Room struct {
	SupplierCode           string    `json:"supplierCode"`
	BookingCode            string    `json:"bookingCode"`
	Name                   string    `json:"name"`
	BoardType              string    `json:"boardType,omitempty"`
	ArrivalDate            time.Time `json:"arrivalDate"`
	DepartureDate          time.Time `json:"departureDate"`
	CheckInTime            string    `json:"checkInTime,omitempty"`
	CheckOutTime           string    `json:"checkOutTime,omitempty"`
	NumberOfGuests         int       `json:"numberOfGuests"`
	TotalPrice             *Price    `json:"totalPrice,omitempty"`
	ImportantInformation   string    `json:"importantInformation,omitempty"`
	ImportantInformationEn string    `json:"importantInformationEn,omitempty"`
}

// PricePoint is the cheapest price of a board type at a facility
type PricePoint struct {
	FacilityID int64  `json:"facilityId,omitempty"`
	BoardType  string `json:"boardType,omitempty"`
	Price      Price  `json:"price"`
}

// ContractDetail is a supplier contract clause; equal values are duplicates
type ContractDetail struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Text  string `json:"text,omitempty"`
}

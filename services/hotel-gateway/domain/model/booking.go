package model

// BookingInfoQuery asks for the current state of existing bookings.
// An empty SupplierCode asks every supplier.
type BookingInfoQuery struct {
	SupplierCode string
	BookingIDs   []string
}

// Booking is a supplier-side reservation
type Booking struct {
	ID           string    `json:"id"`
	SupplierCode string    `json:"supplierCode"`
	Status       string    `json:"status"`
	FacilityID   int64     `json:"facilityId"`
	Facility     *Facility `json:"facility,omitempty"`
	Rooms        []*Room   `json:"rooms"`
	TotalPrice   *Price    `json:"totalPrice,omitempty"`
}

// BookingInfoResponse is the booking result of one supplier or of a composition
type BookingInfoResponse struct {
	Success      bool       `json:"success"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	Bookings     []*Booking `json:"bookings"`
}

// TripDocumentQuery asks for vouchers and invoices of bookings
type TripDocumentQuery struct {
	SupplierCode string
	BookingIDs   []string
}

// TripDocument is a downloadable travel document
type TripDocument struct {
	ID           string `json:"id"`
	BookingID    string `json:"bookingId"`
	SupplierCode string `json:"supplierCode"`
	Kind         string `json:"kind"`
	URL          string `json:"url"`
	Fingerprint  string `json:"fingerprint"`
}

// TripDocumentResponse is the document result of one supplier or of a composition
type TripDocumentResponse struct {
	Success      bool            `json:"success"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	Documents    []*TripDocument `json:"documents"`
}

package rest

const dateLayout = "2006-01-02"

type priceDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type offerDTO struct {
	OfferID      string    `json:"offer_id"`
	RoomName     string    `json:"room_name"`
	Board        string    `json:"board"`
	Guests       int       `json:"guests"`
	Price        *priceDTO `json:"price"`
	CheckInTime  string    `json:"check_in_time"`
	CheckOutTime string    `json:"check_out_time"`
}

type minPriceDTO struct {
	Board string   `json:"board"`
	Price priceDTO `json:"price"`
}

type hotelDTO struct {
	HotelID     int64         `json:"hotel_id"`
	Description string        `json:"description"`
	Amenities   []string      `json:"amenities"`
	MinPrices   []minPriceDTO `json:"min_prices"`
	Offers      []offerDTO    `json:"offers"`
}

type contractDTO struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type stayRequest struct {
	HotelIDs []int64 `json:"hotel_ids,omitempty"`
	HotelID  int64   `json:"hotel_id,omitempty"`
	CityCode string  `json:"city_code,omitempty"`
	CheckIn  string  `json:"check_in"`
	CheckOut string  `json:"check_out"`
	Guests   int     `json:"guests"`
	Currency string  `json:"currency,omitempty"`
}

type searchResponse struct {
	SearchID string     `json:"search_id"`
	Hotels   []hotelDTO `json:"hotels"`
	Errors   []string   `json:"errors"`
}

type pricingResponse struct {
	SearchID        string        `json:"search_id"`
	CheckIn         string        `json:"check_in"`
	CheckOut        string        `json:"check_out"`
	Hotel           *hotelDTO     `json:"hotel"`
	ContractDetails []contractDTO `json:"contract_details"`
	Errors          []string      `json:"errors"`
}

type bookingResponse struct {
	BookingID  string     `json:"booking_id"`
	Status     string     `json:"status"`
	HotelID    int64      `json:"hotel_id"`
	CheckIn    string     `json:"check_in"`
	CheckOut   string     `json:"check_out"`
	Rooms      []offerDTO `json:"rooms"`
	TotalPrice *priceDTO  `json:"total_price"`
}

type documentsRequest struct {
	BookingIDs []string `json:"booking_ids"`
}

type documentDTO struct {
	ID          string `json:"id"`
	BookingID   string `json:"booking_id"`
	Kind        string `json:"kind"`
	URL         string `json:"url"`
	Fingerprint string `json:"fingerprint"`
}

type documentsResponse struct {
	Documents []documentDTO `json:"documents"`
	Errors    []string      `json:"errors"`
}

type ancillaryDTO struct {
	OfferID string    `json:"offer_id"`
	Code    string    `json:"code"`
	Name    string    `json:"name"`
	Price   *priceDTO `json:"price"`
}

type ancillaryResponse struct {
	SearchID        string         `json:"search_id"`
	Offers          []ancillaryDTO `json:"offers"`
	ContractDetails []contractDTO  `json:"contract_details"`
	Errors          []string       `json:"errors"`
}

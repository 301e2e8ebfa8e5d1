// Package rest adapts the reference JSON supplier API to the gateway model
package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/bookingcode"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
	"hotelhub/services/hotel-gateway/supplier"
)

// Supplier API paths
const (
	PathSearch       = "/api/v1/{_locale}/hotels/search"
	PathPricing      = "/api/v1/{_locale}/hotels/pricing"
	PathOfferDetails = "/api/v1/{_locale}/hotels/search/{searchId}/offers/{offerId}"
	PathBooking      = "/api/v1/{_locale}/bookings/{bookingId}"
	PathDocuments    = "/api/v1/{_locale}/documents"
	PathAncillaries  = "/api/v1/{_locale}/ancillaries/pricing"
)

// Executor performs one authenticated supplier call
type Executor interface {
	SupplierCode() string
	Execute(ctx context.Context, tenant model.Tenant, call supplier.Call, out any) error
}

type client struct {
	executor Executor
	codec    *bookingcode.Codec
	logger   logger.LoggerInterface
}

// New creates the reference REST supplier
func New(executor Executor, codec *bookingcode.Codec, log logger.LoggerInterface) repository.HotelSupplier {
	return &client{
		executor: executor,
		codec:    codec,
		logger:   logger.WithSupplier(logger.WithComponent(log, "rest-supplier"), executor.SupplierCode()),
	}
}

func (c *client) Code() string {
	return c.executor.SupplierCode()
}

func (c *client) Search(ctx context.Context, tenant model.Tenant, query *model.SearchQuery) (*model.SearchResponse, error) {
	if query == nil {
		return nil, domain.NewError(domain.ErrInvalidRequest, "search query is required")
	}

	var resp searchResponse
	err := c.executor.Execute(ctx, tenant, supplier.Call{
		Method: http.MethodPost,
		Path:   PathSearch,
		Body: stayRequest{
			HotelIDs: query.FacilityIDs,
			CityCode: query.CityCode,
			CheckIn:  query.ArrivalDate.Format(dateLayout),
			CheckOut: query.DepartureDate.Format(dateLayout),
			Guests:   query.Guests,
			Currency: query.Currency,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	stay := stayContext{
		searchID:  resp.SearchID,
		arrival:   query.ArrivalDate,
		departure: query.DepartureDate,
		guests:    query.Guests,
		language:  tenant.Language,
	}

	items := make([]*model.Availability, 0, len(resp.Hotels))
	for i := range resp.Hotels {
		items = append(items, c.availability(&resp.Hotels[i], stay))
	}

	c.logger.InfoContext(ctx, "Search completed", "searchID", resp.SearchID, "hotels", len(items))
	return &model.SearchResponse{
		Success:      len(resp.Errors) == 0,
		ErrorMessage: model.JoinMessages(resp.Errors...),
		Items:        items,
	}, nil
}

func (c *client) Pricing(ctx context.Context, tenant model.Tenant, query *model.PricingQuery) (*model.PricingResponse, error) {
	if query == nil || query.FacilityID == 0 {
		return nil, domain.NewError(domain.ErrInvalidRequest, "pricing requires a facility id")
	}

	var resp pricingResponse
	err := c.executor.Execute(ctx, tenant, supplier.Call{
		Method: http.MethodPost,
		Path:   PathPricing,
		Body: stayRequest{
			HotelID:  query.FacilityID,
			CheckIn:  query.ArrivalDate.Format(dateLayout),
			CheckOut: query.DepartureDate.Format(dateLayout),
			Guests:   query.Guests,
			Currency: query.Currency,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	return c.pricing(&resp, stayContext{
		searchID:  resp.SearchID,
		arrival:   query.ArrivalDate,
		departure: query.DepartureDate,
		guests:    query.Guests,
		language:  tenant.Language,
	}), nil
}

func (c *client) OfferDetails(ctx context.Context, tenant model.Tenant, rate *model.RateInfo) (*model.PricingResponse, error) {
	searchID, offerID := rate.Offer()
	if searchID == "" || offerID == "" {
		return nil, domain.NewError(domain.ErrInvalidBookingCode, "booking code carries no search or offer id")
	}

	var resp pricingResponse
	err := c.executor.Execute(ctx, tenant, supplier.Call{
		Method:     http.MethodGet,
		Path:       PathOfferDetails,
		PathParams: map[string]string{"searchId": searchID, "offerId": offerID},
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.SearchID == "" {
		resp.SearchID = searchID
	}
	return c.pricing(&resp, stayContext{
		searchID:  resp.SearchID,
		arrival:   parseDate(resp.CheckIn, rate.ArrivalDate),
		departure: parseDate(resp.CheckOut, rate.DepartureDate),
		guests:    rate.Guests,
		language:  rate.Language,
		quoted:    rate.QuotedTotal,
	}), nil
}

// BookingInfo fetches every booking separately; a failed lookup becomes an
// error message of the response
func (c *client) BookingInfo(ctx context.Context, tenant model.Tenant, query *model.BookingInfoQuery) (*model.BookingInfoResponse, error) {
	if query == nil || len(query.BookingIDs) == 0 {
		return nil, domain.NewError(domain.ErrInvalidRequest, "at least one booking id is required")
	}

	result := &model.BookingInfoResponse{Bookings: make([]*model.Booking, 0, len(query.BookingIDs))}
	var messages []string
	for _, id := range query.BookingIDs {
		var resp bookingResponse
		err := c.executor.Execute(ctx, tenant, supplier.Call{
			Method:     http.MethodGet,
			Path:       PathBooking,
			PathParams: map[string]string{"bookingId": id},
		}, &resp)
		if err != nil {
			c.logger.WarnContext(ctx, "Booking lookup failed", "bookingID", id, "error", err)
			messages = append(messages, fmt.Sprintf("booking %s: %v", id, err))
			continue
		}
		result.Bookings = append(result.Bookings, c.booking(&resp, tenant))
	}

	result.ErrorMessage = model.JoinMessages(messages...)
	result.Success = result.ErrorMessage == ""
	return result, nil
}

func (c *client) TripDocuments(ctx context.Context, tenant model.Tenant, query *model.TripDocumentQuery) (*model.TripDocumentResponse, error) {
	if query == nil || len(query.BookingIDs) == 0 {
		return nil, domain.NewError(domain.ErrInvalidRequest, "at least one booking id is required")
	}

	var resp documentsResponse
	err := c.executor.Execute(ctx, tenant, supplier.Call{
		Method: http.MethodPost,
		Path:   PathDocuments,
		Body:   documentsRequest{BookingIDs: query.BookingIDs},
	}, &resp)
	if err != nil {
		return nil, err
	}

	documents := make([]*model.TripDocument, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		documents = append(documents, &model.TripDocument{
			ID:           d.ID,
			BookingID:    d.BookingID,
			SupplierCode: c.Code(),
			Kind:         d.Kind,
			URL:          d.URL,
			Fingerprint:  d.Fingerprint,
		})
	}

	return &model.TripDocumentResponse{
		Success:      len(resp.Errors) == 0,
		ErrorMessage: model.JoinMessages(resp.Errors...),
		Documents:    documents,
	}, nil
}

func (c *client) AncillaryPricing(ctx context.Context, tenant model.Tenant, query *model.AncillaryQuery) (*model.AncillaryPricingResponse, error) {
	if query == nil || query.FacilityID == 0 {
		return nil, domain.NewError(domain.ErrInvalidRequest, "ancillary pricing requires a facility id")
	}

	var resp ancillaryResponse
	err := c.executor.Execute(ctx, tenant, supplier.Call{
		Method: http.MethodPost,
		Path:   PathAncillaries,
		Body: stayRequest{
			HotelID:  query.FacilityID,
			CheckIn:  query.ArrivalDate.Format(dateLayout),
			CheckOut: query.DepartureDate.Format(dateLayout),
			Guests:   query.Guests,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	result := &model.AncillaryPricingResponse{
		Success:      len(resp.Errors) == 0,
		ErrorMessage: model.JoinMessages(resp.Errors...),
	}
	if len(resp.Offers) == 0 && len(resp.ContractDetails) == 0 {
		return result, nil
	}

	offers := make([]*model.AncillaryOffer, 0, len(resp.Offers))
	for _, o := range resp.Offers {
		offers = append(offers, &model.AncillaryOffer{
			SupplierCode: c.Code(),
			Code:         o.Code,
			Name:         o.Name,
			BookingCode:  model.RateCode(resp.SearchID, o.OfferID),
			TotalPrice:   price(o.Price),
		})
	}
	result.Availability = &model.AncillaryAvailability{
		FacilityID:      query.FacilityID,
		Offers:          offers,
		ContractDetails: contracts(resp.ContractDetails),
	}
	return result, nil
}

type stayContext struct {
	searchID  string
	arrival   time.Time
	departure time.Time
	guests    int
	language  string
	quoted    *model.Price
}

func (c *client) pricing(resp *pricingResponse, stay stayContext) *model.PricingResponse {
	result := &model.PricingResponse{
		Success:      len(resp.Errors) == 0,
		ErrorMessage: model.JoinMessages(resp.Errors...),
	}
	if resp.Hotel == nil {
		return result
	}

	result.Availability = &model.PricingAvailability{
		FacilityID:      resp.Hotel.HotelID,
		Rooms:           c.rooms(resp.Hotel.HotelID, resp.Hotel.Offers, stay),
		ContractDetails: contracts(resp.ContractDetails),
	}
	return result
}

func (c *client) availability(h *hotelDTO, stay stayContext) *model.Availability {
	minPrices := make([]*model.PricePoint, 0, len(h.MinPrices))
	for _, p := range h.MinPrices {
		minPrices = append(minPrices, &model.PricePoint{
			BoardType: p.Board,
			Price:     model.Price{Amount: p.Price.Amount, Currency: p.Price.Currency},
		})
	}

	return &model.Availability{
		FacilityID:  h.HotelID,
		Description: h.Description,
		Amenities:   h.Amenities,
		MinPrices:   minPrices,
		Rooms:       c.rooms(h.HotelID, h.Offers, stay),
	}
}

func (c *client) rooms(facilityID int64, offers []offerDTO, stay stayContext) []*model.Room {
	rooms := make([]*model.Room, 0, len(offers))
	for _, o := range offers {
		guests := o.Guests
		if guests == 0 {
			guests = stay.guests
		}
		total := price(o.Price)

		rate := &model.RateInfo{
			SupplierCode:  c.Code(),
			FacilityID:    facilityID,
			ArrivalDate:   stay.arrival,
			DepartureDate: stay.departure,
			RateCode:      model.RateCode(stay.searchID, o.OfferID),
			SearchID:      stay.searchID,
			OfferID:       o.OfferID,
			Guests:        guests,
			BoardType:     o.Board,
			QuotedTotal:   total,
			Language:      stay.language,
		}
		// a re-priced offer keeps the price the customer was first quoted
		if stay.quoted != nil {
			rate.QuotedTotal = stay.quoted
		}

		rooms = append(rooms, &model.Room{
			SupplierCode:   c.Code(),
			BookingCode:    c.codec.MustEncode(rate),
			Name:           o.RoomName,
			BoardType:      o.Board,
			ArrivalDate:    stay.arrival,
			DepartureDate:  stay.departure,
			CheckInTime:    o.CheckInTime,
			CheckOutTime:   o.CheckOutTime,
			NumberOfGuests: guests,
			TotalPrice:     total,
		})
	}
	return rooms
}

func (c *client) booking(resp *bookingResponse, tenant model.Tenant) *model.Booking {
	stay := stayContext{
		searchID:  resp.BookingID,
		arrival:   parseDate(resp.CheckIn, time.Time{}),
		departure: parseDate(resp.CheckOut, time.Time{}),
		language:  tenant.Language,
	}
	return &model.Booking{
		ID:           resp.BookingID,
		SupplierCode: c.Code(),
		Status:       resp.Status,
		FacilityID:   resp.HotelID,
		Rooms:        c.rooms(resp.HotelID, resp.Rooms, stay),
		TotalPrice:   price(resp.TotalPrice),
	}
}

func price(p *priceDTO) *model.Price {
	if p == nil {
		return nil
	}
	return &model.Price{Amount: p.Amount, Currency: p.Currency}
}

func contracts(details []contractDTO) []model.ContractDetail {
	if len(details) == 0 {
		return nil
	}
	result := make([]model.ContractDetail, 0, len(details))
	for _, d := range details {
		result = append(result, model.ContractDetail{Code: d.Code, Title: d.Title, Text: d.Text})
	}
	return result
}

func parseDate(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return fallback
	}
	return t
}

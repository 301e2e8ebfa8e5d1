package usecase

import (
	"context"
	"errors"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/bookingcode"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
	"hotelhub/services/hotel-gateway/metrics"
)

const (
	msgNoMatchingRooms = "no rooms satisfy the request"
	msgRoomChanged     = "parameters of the found room have changed"
)

// RoomDetailObserver is told how each room-detail request ended
type RoomDetailObserver interface {
	RoomDetailResolved(outcome string)
}

type noopRoomDetailObserver struct{}

func (noopRoomDetailObserver) RoomDetailResolved(string) {}

// RoomDetailResolver turns a booking code into the full details of a room.
// When the quoted offer is gone it looks for an equivalent room in a fresh
// pricing of the same facility and resolves that one instead.
type RoomDetailResolver struct {
	codec           *bookingcode.Codec
	suppliers       map[string]repository.HotelSupplier
	notifier        repository.PriceNotifier
	fallbackEnabled bool
	observer        RoomDetailObserver
	logger          logger.LoggerInterface
}

// RoomDetailOption configures a RoomDetailResolver
type RoomDetailOption func(*RoomDetailResolver)

// WithFallback toggles the similar offer search; it is on by default
func WithFallback(enabled bool) RoomDetailOption {
	return func(r *RoomDetailResolver) {
		r.fallbackEnabled = enabled
	}
}

// WithRoomDetailObserver sets the outcome observer
func WithRoomDetailObserver(o RoomDetailObserver) RoomDetailOption {
	return func(r *RoomDetailResolver) {
		if o != nil {
			r.observer = o
		}
	}
}

// NewRoomDetailResolver creates a resolver over the given suppliers
func NewRoomDetailResolver(codec *bookingcode.Codec, suppliers []repository.HotelSupplier, notifier repository.PriceNotifier, log logger.LoggerInterface, opts ...RoomDetailOption) *RoomDetailResolver {
	bySupplier := make(map[string]repository.HotelSupplier, len(suppliers))
	for _, s := range suppliers {
		bySupplier[s.Code()] = s
	}
	r := &RoomDetailResolver{
		codec:           codec,
		suppliers:       bySupplier,
		notifier:        notifier,
		fallbackEnabled: true,
		observer:        noopRoomDetailObserver{},
		logger:          logger.WithComponent(log, "room-detail"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the room behind req.BookingCode. Any failure after the code
// was decoded is reported as domain.ErrRateNotAvailable.
func (r *RoomDetailResolver) Resolve(ctx context.Context, tenant model.Tenant, req *model.RoomDetailRequest) (*model.RoomDetailResponse, error) {
	if req == nil {
		return nil, domain.NewError(domain.ErrInvalidRequest, "room detail request is required")
	}

	rate, err := r.codec.Decode(req.BookingCode)
	if err != nil {
		r.logger.WarnContext(ctx, "Rejected booking code", "error", err)
		return nil, err
	}

	supplier, ok := r.suppliers[rate.SupplierCode]
	if !ok {
		r.logger.WarnContext(ctx, "Booking code names an unknown supplier", "supplier", rate.SupplierCode)
		return nil, domain.NewError(domain.ErrInvalidBookingCode, "unknown supplier "+rate.SupplierCode)
	}

	resp, directErr := r.direct(ctx, supplier, tenant, rate)
	outcome := metrics.OutcomeDirect
	if directErr != nil {
		r.logger.ErrorContext(ctx, "Room detail lookup failed", "supplier", rate.SupplierCode, "facilityID", rate.FacilityID, "error", directErr)

		if req.SkipSimilarOfferSearch || !r.fallbackEnabled || ctx.Err() != nil {
			r.observer.RoomDetailResolved(metrics.OutcomeFailed)
			return nil, rateNotAvailable(directErr)
		}

		var fallbackErr error
		resp, fallbackErr = r.fallback(ctx, supplier, tenant, rate)
		if fallbackErr != nil {
			r.logger.WarnContext(ctx, "Similar offer search failed", "supplier", rate.SupplierCode, "facilityID", rate.FacilityID, "error", fallbackErr)
			r.observer.RoomDetailResolved(metrics.OutcomeFailed)
			return nil, rateNotAvailable(directErr)
		}
		outcome = metrics.OutcomeFallback
	}

	r.observer.RoomDetailResolved(outcome)
	r.notify(ctx, req.ServiceID, rate, resp)
	return resp, nil
}

// direct re-prices the quoted offer itself
func (r *RoomDetailResolver) direct(ctx context.Context, supplier repository.HotelSupplier, tenant model.Tenant, rate *model.RateInfo) (*model.RoomDetailResponse, error) {
	pricing, err := supplier.OfferDetails(ctx, tenant, rate)
	if err != nil {
		return nil, err
	}
	return roomDetail(pricing, rate, false)
}

// fallback prices the facility again, picks the first equivalent room and
// re-prices that offer
func (r *RoomDetailResolver) fallback(ctx context.Context, supplier repository.HotelSupplier, tenant model.Tenant, rate *model.RateInfo) (*model.RoomDetailResponse, error) {
	query := &model.PricingQuery{
		FacilityID:    rate.FacilityID,
		ArrivalDate:   rate.ArrivalDate,
		DepartureDate: rate.DepartureDate,
		Guests:        rate.Guests,
	}
	if rate.QuotedTotal != nil {
		query.Currency = rate.QuotedTotal.Currency
	}

	pricing, err := supplier.Pricing(ctx, tenant, query)
	if err != nil {
		return nil, err
	}
	if pricing == nil || pricing.Availability == nil || len(pricing.Availability.Rooms) == 0 {
		message := msgNoMatchingRooms
		if pricing != nil && pricing.ErrorMessage != "" {
			message = pricing.ErrorMessage
		}
		return nil, domain.NewError(domain.ErrRateNotAvailable, message)
	}

	candidate := firstReplacement(pricing.Availability.Rooms, rate)
	if candidate == nil {
		return nil, domain.NewError(domain.ErrRateNotAvailable, msgNoMatchingRooms)
	}

	replacement, err := r.codec.Decode(candidate.BookingCode)
	if err != nil {
		return nil, err
	}
	if replacement.Language == "" {
		replacement.Language = rate.Language
	}

	details, err := supplier.OfferDetails(ctx, tenant, replacement)
	if err != nil {
		return nil, err
	}
	return roomDetail(details, replacement, true)
}

func (r *RoomDetailResolver) notify(ctx context.Context, serviceID string, rate *model.RateInfo, resp *model.RoomDetailResponse) {
	if r.notifier == nil || resp == nil || resp.Room == nil {
		return
	}

	comparison := model.PriceComparison{
		ServiceID:     serviceID,
		SupplierCode:  rate.SupplierCode,
		QuotedPrice:   rate.QuotedTotal.AmountOrZero(),
		ResolvedPrice: resp.Room.TotalPrice.AmountOrZero(),
		Replaced:      resp.Replaced,
	}
	if resp.Room.TotalPrice != nil {
		comparison.Currency = resp.Room.TotalPrice.Currency
	}

	if err := r.notifier.NotifyPriceComparison(ctx, comparison); err != nil {
		r.logger.WarnContext(ctx, "Failed to send price comparison", "serviceID", serviceID, "error", err)
	}
}

func roomDetail(pricing *model.PricingResponse, rate *model.RateInfo, replaced bool) (*model.RoomDetailResponse, error) {
	if pricing == nil || pricing.Availability == nil || len(pricing.Availability.Rooms) == 0 {
		return nil, domain.NewError(domain.ErrRateNotAvailable, msgNoMatchingRooms)
	}
	room := firstReplacement(pricing.Availability.Rooms, rate)
	if room == nil {
		return nil, domain.NewError(domain.ErrRateNotAvailable, msgRoomChanged)
	}
	return &model.RoomDetailResponse{
		Success:      pricing.Success,
		ErrorMessage: pricing.ErrorMessage,
		Room:         room,
		Replaced:     replaced,
	}, nil
}

// rateNotAvailable keeps err as the cause of a RateNotAvailable error
func rateNotAvailable(err error) error {
	if errors.Is(err, domain.ErrRateNotAvailable) {
		return err
	}
	return domain.WrapError(domain.ErrRateNotAvailable, "rate is no longer available", err)
}

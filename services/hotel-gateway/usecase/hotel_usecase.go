// Package usecase contains the gateway's business operations
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/compose"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
)

// HotelUseCase defines the business operations of the gateway. Each one asks
// the relevant suppliers concurrently and returns a single composed response.
type HotelUseCase interface {
	// Search returns availability of every supplier grouped by facility
	Search(ctx context.Context, tenant model.Tenant, query *model.SearchQuery) (*model.SearchResponse, error)
	// Pricing returns every rate of a single facility
	Pricing(ctx context.Context, tenant model.Tenant, query *model.PricingQuery) (*model.PricingResponse, error)
	// BookingInfo returns the current state of bookings
	BookingInfo(ctx context.Context, tenant model.Tenant, query *model.BookingInfoQuery) (*model.BookingInfoResponse, error)
	// TripDocuments returns vouchers and invoices of bookings
	TripDocuments(ctx context.Context, tenant model.Tenant, query *model.TripDocumentQuery) (*model.TripDocumentResponse, error)
	// AncillaryPricing returns extras that can be sold with a stay
	AncillaryPricing(ctx context.Context, tenant model.Tenant, query *model.AncillaryQuery) (*model.AncillaryPricingResponse, error)
	// RoomDetails resolves a booking code against the supplier that issued it
	RoomDetails(ctx context.Context, tenant model.Tenant, req *model.RoomDetailRequest) (*model.RoomDetailResponse, error)
}

// hotelUseCase implements the HotelUseCase interface
type hotelUseCase struct {
	// suppliers are asked in this order; composition keeps it
	suppliers []repository.HotelSupplier
	// enricher decorates composed responses with facility metadata
	enricher *Enricher
	// roomDetails resolves booking codes
	roomDetails *RoomDetailResolver
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewHotelUseCase creates a new instance of hotelUseCase
func NewHotelUseCase(suppliers []repository.HotelSupplier, enricher *Enricher, roomDetails *RoomDetailResolver, appLogger logger.LoggerInterface) HotelUseCase {
	return &hotelUseCase{
		suppliers:   suppliers,
		enricher:    enricher,
		roomDetails: roomDetails,
		logger:      appLogger,
	}
}

func (uc *hotelUseCase) Search(ctx context.Context, tenant model.Tenant, query *model.SearchQuery) (*model.SearchResponse, error) {
	if query == nil {
		return nil, domain.NewError(domain.ErrInvalidRequest, "search query is required")
	}
	uc.logger.InfoContext(ctx, "Searching hotels", "suppliers", len(uc.suppliers), "facilities", len(query.FacilityIDs), "city", query.CityCode)

	responses := fanOut(ctx, uc, uc.suppliers,
		func(ctx context.Context, s repository.HotelSupplier) (*model.SearchResponse, error) {
			return s.Search(ctx, tenant, query)
		},
		func(message string) *model.SearchResponse {
			return &model.SearchResponse{ErrorMessage: message}
		},
	)

	result := compose.Search(responses)
	uc.enricher.EnrichSearch(ctx, result)

	uc.logger.InfoContext(ctx, "Search composed", "success", result.Success, "items", len(result.Items))
	return result, nil
}

func (uc *hotelUseCase) Pricing(ctx context.Context, tenant model.Tenant, query *model.PricingQuery) (*model.PricingResponse, error) {
	if query == nil || query.FacilityID == 0 {
		return nil, domain.NewError(domain.ErrInvalidRequest, "facility id is required")
	}
	uc.logger.InfoContext(ctx, "Pricing facility", "facilityID", query.FacilityID, "suppliers", len(uc.suppliers))

	responses := fanOut(ctx, uc, uc.suppliers,
		func(ctx context.Context, s repository.HotelSupplier) (*model.PricingResponse, error) {
			return s.Pricing(ctx, tenant, query)
		},
		func(message string) *model.PricingResponse {
			return &model.PricingResponse{ErrorMessage: message}
		},
	)

	result := compose.Pricing(responses)
	uc.enricher.EnrichPricing(ctx, result)
	return result, nil
}

func (uc *hotelUseCase) BookingInfo(ctx context.Context, tenant model.Tenant, query *model.BookingInfoQuery) (*model.BookingInfoResponse, error) {
	if query == nil || len(query.BookingIDs) == 0 {
		return nil, domain.NewError(domain.ErrInvalidRequest, "at least one booking id is required")
	}
	suppliers, err := uc.suppliersFor(query.SupplierCode)
	if err != nil {
		return nil, err
	}
	uc.logger.InfoContext(ctx, "Getting booking info", "bookings", len(query.BookingIDs), "suppliers", len(suppliers))

	responses := fanOut(ctx, uc, suppliers,
		func(ctx context.Context, s repository.HotelSupplier) (*model.BookingInfoResponse, error) {
			return s.BookingInfo(ctx, tenant, query)
		},
		func(message string) *model.BookingInfoResponse {
			return &model.BookingInfoResponse{ErrorMessage: message}
		},
	)

	result := compose.BookingInfo(responses)
	uc.enricher.EnrichBookings(ctx, result)
	return result, nil
}

func (uc *hotelUseCase) TripDocuments(ctx context.Context, tenant model.Tenant, query *model.TripDocumentQuery) (*model.TripDocumentResponse, error) {
	if query == nil || len(query.BookingIDs) == 0 {
		return nil, domain.NewError(domain.ErrInvalidRequest, "at least one booking id is required")
	}
	suppliers, err := uc.suppliersFor(query.SupplierCode)
	if err != nil {
		return nil, err
	}

	responses := fanOut(ctx, uc, suppliers,
		func(ctx context.Context, s repository.HotelSupplier) (*model.TripDocumentResponse, error) {
			return s.TripDocuments(ctx, tenant, query)
		},
		func(message string) *model.TripDocumentResponse {
			return &model.TripDocumentResponse{ErrorMessage: message}
		},
	)
	return compose.TripDocuments(responses), nil
}

func (uc *hotelUseCase) AncillaryPricing(ctx context.Context, tenant model.Tenant, query *model.AncillaryQuery) (*model.AncillaryPricingResponse, error) {
	if query == nil || query.FacilityID == 0 {
		return nil, domain.NewError(domain.ErrInvalidRequest, "facility id is required")
	}

	responses := fanOut(ctx, uc, uc.suppliers,
		func(ctx context.Context, s repository.HotelSupplier) (*model.AncillaryPricingResponse, error) {
			return s.AncillaryPricing(ctx, tenant, query)
		},
		func(message string) *model.AncillaryPricingResponse {
			return &model.AncillaryPricingResponse{ErrorMessage: message}
		},
	)
	return compose.AncillaryPricing(responses), nil
}

func (uc *hotelUseCase) RoomDetails(ctx context.Context, tenant model.Tenant, req *model.RoomDetailRequest) (*model.RoomDetailResponse, error) {
	resp, err := uc.roomDetails.Resolve(ctx, tenant, req)
	if err != nil {
		uc.logger.WarnContext(ctx, "Room details unavailable", "kind", domain.KindOf(err), "error", err)
		return nil, err
	}
	return resp, nil
}

func (uc *hotelUseCase) suppliersFor(code string) ([]repository.HotelSupplier, error) {
	if code == "" {
		return uc.suppliers, nil
	}
	for _, s := range uc.suppliers {
		if s.Code() == code {
			return []repository.HotelSupplier{s}, nil
		}
	}
	return nil, domain.NewError(domain.ErrInvalidRequest, "unknown supplier "+code)
}

// fanOut calls every supplier concurrently and returns their responses in
// supplier order. A failed call becomes a failed response carrying its error.
func fanOut[T any](ctx context.Context, uc *hotelUseCase, suppliers []repository.HotelSupplier, call func(context.Context, repository.HotelSupplier) (*T, error), failed func(message string) *T) []*T {
	responses := make([]*T, len(suppliers))

	var g errgroup.Group
	for i, s := range suppliers {
		g.Go(func() error {
			resp, err := call(ctx, s)
			if err != nil {
				uc.logger.ErrorContext(ctx, "Supplier call failed", "supplier", s.Code(), "kind", domain.KindOf(err), "error", err)
				resp = failed(fmt.Sprintf("%s: %v", s.Code(), err))
			} else if resp == nil {
				resp = failed(s.Code() + ": no response")
			}
			responses[i] = resp
			return nil
		})
	}
	_ = g.Wait()

	return responses
}

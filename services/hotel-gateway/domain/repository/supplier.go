package repository

import (
	"context"

	"hotelhub/services/hotel-gateway/domain/model"
)

// HotelSupplier is one upstream supplier. Every method is a single
// authenticated call; fan-out across suppliers happens in the use case.
type HotelSupplier interface {
	// Code is the stable supplier identifier carried in booking codes
	Code() string
	Search(ctx context.Context, tenant model.Tenant, query *model.SearchQuery) (*model.SearchResponse, error)
	Pricing(ctx context.Context, tenant model.Tenant, query *model.PricingQuery) (*model.PricingResponse, error)
	// OfferDetails re-prices one offer of an earlier search
	OfferDetails(ctx context.Context, tenant model.Tenant, rate *model.RateInfo) (*model.PricingResponse, error)
	BookingInfo(ctx context.Context, tenant model.Tenant, query *model.BookingInfoQuery) (*model.BookingInfoResponse, error)
	TripDocuments(ctx context.Context, tenant model.Tenant, query *model.TripDocumentQuery) (*model.TripDocumentResponse, error)
	AncillaryPricing(ctx context.Context, tenant model.Tenant, query *model.AncillaryQuery) (*model.AncillaryPricingResponse, error)
}

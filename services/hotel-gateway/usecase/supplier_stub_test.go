package usecase

import (
	"context"
	"errors"
	"sync"

	"hotelhub/services/hotel-gateway/domain/model"
)

var errNotStubbed = errors.New("not stubbed")

// stubSupplier answers each operation with its func field
type stubSupplier struct {
	code string

	search       func(*model.SearchQuery) (*model.SearchResponse, error)
	pricing      func(*model.PricingQuery) (*model.PricingResponse, error)
	offerDetails func(*model.RateInfo) (*model.PricingResponse, error)
	bookingInfo  func(*model.BookingInfoQuery) (*model.BookingInfoResponse, error)
	documents    func(*model.TripDocumentQuery) (*model.TripDocumentResponse, error)
	ancillary    func(*model.AncillaryQuery) (*model.AncillaryPricingResponse, error)

	mu      sync.Mutex
	tenants []model.Tenant
}

func (s *stubSupplier) seen(tenant model.Tenant) {
	s.mu.Lock()
	s.tenants = append(s.tenants, tenant)
	s.mu.Unlock()
}

func (s *stubSupplier) Code() string { return s.code }

func (s *stubSupplier) Search(_ context.Context, tenant model.Tenant, q *model.SearchQuery) (*model.SearchResponse, error) {
	s.seen(tenant)
	if s.search == nil {
		return nil, errNotStubbed
	}
	return s.search(q)
}

func (s *stubSupplier) Pricing(_ context.Context, tenant model.Tenant, q *model.PricingQuery) (*model.PricingResponse, error) {
	s.seen(tenant)
	if s.pricing == nil {
		return nil, errNotStubbed
	}
	return s.pricing(q)
}

func (s *stubSupplier) OfferDetails(_ context.Context, tenant model.Tenant, rate *model.RateInfo) (*model.PricingResponse, error) {
	s.seen(tenant)
	if s.offerDetails == nil {
		return nil, errNotStubbed
	}
	return s.offerDetails(rate)
}

func (s *stubSupplier) BookingInfo(_ context.Context, tenant model.Tenant, q *model.BookingInfoQuery) (*model.BookingInfoResponse, error) {
	s.seen(tenant)
	if s.bookingInfo == nil {
		return nil, errNotStubbed
	}
	return s.bookingInfo(q)
}

func (s *stubSupplier) TripDocuments(_ context.Context, tenant model.Tenant, q *model.TripDocumentQuery) (*model.TripDocumentResponse, error) {
	s.seen(tenant)
	if s.documents == nil {
		return nil, errNotStubbed
	}
	return s.documents(q)
}

func (s *stubSupplier) AncillaryPricing(_ context.Context, tenant model.Tenant, q *model.AncillaryQuery) (*model.AncillaryPricingResponse, error) {
	s.seen(tenant)
	if s.ancillary == nil {
		return nil, errNotStubbed
	}
	return s.ancillary(q)
}

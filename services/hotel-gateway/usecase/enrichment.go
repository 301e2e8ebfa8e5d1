package usecase

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
)

const (
	DefaultPageSize           = 1000
	DefaultBookingConcurrency = 8
)

const msgNoHotels = "no hotels were returned by the suppliers"

// CheckTimes is a pair of "HH:MM" times
type CheckTimes struct {
	CheckIn  string
	CheckOut string
}

// EnrichmentObserver is told how many facilities had no metadata
type EnrichmentObserver interface {
	EnrichmentMissed(count int)
}

type noopEnrichmentObserver struct{}

func (noopEnrichmentObserver) EnrichmentMissed(int) {}

// EnricherConfig tunes metadata lookups
type EnricherConfig struct {
	// PageSize is the largest id set looked up in one call
	PageSize int
	// BookingConcurrency bounds parallel single-facility lookups for bookings
	BookingConcurrency int
	// SupplierDefaults are per-supplier check times, keyed by supplier code.
	// Rooms of a supplier without an entry keep empty times.
	SupplierDefaults map[string]CheckTimes
}

// Enricher decorates composed responses with facility metadata. A missing
// facility is logged and left undecorated.
type Enricher struct {
	metadata repository.Metadata
	config   EnricherConfig
	observer EnrichmentObserver
	logger   logger.LoggerInterface
}

// NewEnricher creates an enricher. observer may be nil.
func NewEnricher(metadata repository.Metadata, config EnricherConfig, observer EnrichmentObserver, log logger.LoggerInterface) *Enricher {
	if config.PageSize <= 0 {
		config.PageSize = DefaultPageSize
	}
	if config.BookingConcurrency <= 0 {
		config.BookingConcurrency = DefaultBookingConcurrency
	}
	if observer == nil {
		observer = noopEnrichmentObserver{}
	}
	return &Enricher{
		metadata: metadata,
		config:   config,
		observer: observer,
		logger:   logger.WithComponent(log, "enrichment"),
	}
}

// EnrichSearch attaches metadata to every availability item
func (e *Enricher) EnrichSearch(ctx context.Context, resp *model.SearchResponse) {
	if resp == nil {
		return
	}
	if len(resp.Items) == 0 {
		if resp.ErrorMessage == "" {
			resp.ErrorMessage = msgNoHotels
		}
		return
	}

	ids := make([]int64, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item != nil {
			ids = append(ids, item.FacilityID)
		}
	}
	facilities := e.lookup(ctx, distinct(ids))

	misses := 0
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		for _, point := range item.MinPrices {
			if point != nil {
				point.FacilityID = item.FacilityID
			}
		}
		facility, ok := facilities[item.FacilityID]
		if !ok {
			misses++
			e.logger.WarnContext(ctx, "Cannot get metadata by id", "facilityID", item.FacilityID)
			continue
		}
		item.Facility = facility
		e.decorateRooms(item.Rooms, facility)
	}
	if misses > 0 {
		e.observer.EnrichmentMissed(misses)
	}
}

// EnrichPricing attaches metadata to a single-facility pricing response.
// Problems become error messages of the response.
func (e *Enricher) EnrichPricing(ctx context.Context, resp *model.PricingResponse) {
	if resp == nil {
		return
	}
	if resp.Availability == nil || resp.Availability.FacilityID == 0 {
		resp.ErrorMessage = model.JoinMessages(resp.ErrorMessage, "facility id is missing in the pricing response")
		return
	}

	id := resp.Availability.FacilityID
	facility, err := e.metadata.GetOne(ctx, id)
	if err != nil {
		e.logger.ErrorContext(ctx, "Metadata lookup failed", "facilityID", id, "error", err)
	}
	if facility == nil {
		e.observer.EnrichmentMissed(1)
		resp.ErrorMessage = model.JoinMessages(resp.ErrorMessage, fmt.Sprintf("metadata is unavailable for facility %d", id))
		return
	}

	resp.Availability.Facility = facility
	e.decorateRooms(resp.Availability.Rooms, facility)
}

// EnrichBookings looks up each booked facility concurrently
func (e *Enricher) EnrichBookings(ctx context.Context, resp *model.BookingInfoResponse) {
	if resp == nil || len(resp.Bookings) == 0 {
		return
	}

	ids := make([]int64, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		if b != nil && b.FacilityID != 0 {
			ids = append(ids, b.FacilityID)
		}
	}
	ids = distinct(ids)

	var (
		mu         sync.Mutex
		facilities = make(map[int64]*model.Facility, len(ids))
		g          errgroup.Group
	)
	g.SetLimit(e.config.BookingConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			facility, err := e.metadata.GetOne(ctx, id)
			if err != nil {
				e.logger.ErrorContext(ctx, "Metadata lookup failed", "facilityID", id, "error", err)
				return nil
			}
			if facility != nil {
				mu.Lock()
				facilities[id] = facility
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	misses := 0
	for _, b := range resp.Bookings {
		if b == nil {
			continue
		}
		facility, ok := facilities[b.FacilityID]
		if !ok {
			misses++
			e.logger.WarnContext(ctx, "Cannot get metadata by id", "facilityID", b.FacilityID, "bookingID", b.ID)
			continue
		}
		b.Facility = facility
		e.decorateRooms(b.Rooms, facility)
	}
	if misses > 0 {
		e.observer.EnrichmentMissed(misses)
	}
}

// lookup fetches ids in one call below the page size, else one call per page
// concurrently. Failed pages count as misses.
func (e *Enricher) lookup(ctx context.Context, ids []int64) map[int64]*model.Facility {
	if len(ids) == 0 {
		return map[int64]*model.Facility{}
	}

	var pages [][]int64
	if len(ids) < e.config.PageSize {
		pages = [][]int64{ids}
	} else {
		for start := 0; start < len(ids); start += e.config.PageSize {
			end := min(start+e.config.PageSize, len(ids))
			pages = append(pages, ids[start:end])
		}
	}

	// each page writes only its own slot
	results := make([][]*model.Facility, len(pages))
	var g errgroup.Group
	for i, page := range pages {
		g.Go(func() error {
			facilities, err := e.metadata.GetMany(ctx, page)
			if err != nil {
				e.logger.ErrorContext(ctx, "Metadata page lookup failed", "page", i, "size", len(page), "error", err)
				return nil
			}
			results[i] = facilities
			return nil
		})
	}
	_ = g.Wait()

	merged := make(map[int64]*model.Facility, len(ids))
	for _, facilities := range results {
		for _, f := range facilities {
			if f != nil {
				merged[f.ID] = f
			}
		}
	}
	return merged
}

func (e *Enricher) decorateRooms(rooms []*model.Room, facility *model.Facility) {
	for _, room := range rooms {
		if room == nil {
			continue
		}
		defaults := e.config.SupplierDefaults[room.SupplierCode]
		if room.CheckInTime == "" {
			room.CheckInTime = firstNonEmpty(facility.CheckInTime, defaults.CheckIn)
		}
		if room.CheckOutTime == "" {
			room.CheckOutTime = firstNonEmpty(facility.CheckOutTime, defaults.CheckOut)
		}
		room.ImportantInformation = appendNote(room.ImportantInformation, facility.ImportantInformation)
		room.ImportantInformationEn = appendNote(room.ImportantInformationEn, facility.ImportantInformationEn)
	}
}

func appendNote(existing, note string) string {
	switch {
	case note == "":
		return existing
	case existing == "":
		return note
	default:
		return existing + "\n" + note
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

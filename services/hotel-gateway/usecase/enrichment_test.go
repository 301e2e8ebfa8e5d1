package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain/model"
)

type stubMetadata struct {
	mu         sync.Mutex
	facilities map[int64]*model.Facility
	failPages  map[int64]bool
	pages      [][]int64
	single     []int64
	oneErr     error
}

func (s *stubMetadata) GetOne(_ context.Context, id int64) (*model.Facility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.single = append(s.single, id)
	if s.oneErr != nil {
		return nil, s.oneErr
	}
	return s.facilities[id], nil
}

func (s *stubMetadata) GetMany(_ context.Context, ids []int64) ([]*model.Facility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages = append(s.pages, append([]int64(nil), ids...))
	if len(ids) > 0 && s.failPages[ids[0]] {
		return nil, errors.New("metadata unavailable")
	}
	var found []*model.Facility
	for _, id := range ids {
		if f, ok := s.facilities[id]; ok {
			found = append(found, f)
		}
	}
	return found, nil
}

type countingMisses struct {
	mu    sync.Mutex
	total int
}

func (c *countingMisses) EnrichmentMissed(count int) {
	c.mu.Lock()
	c.total += count
	c.mu.Unlock()
}

func facilities(ids ...int64) map[int64]*model.Facility {
	m := make(map[int64]*model.Facility, len(ids))
	for _, id := range ids {
		m[id] = &model.Facility{ID: id, Name: "Hotel"}
	}
	return m
}

func TestEnrichSearch_SinglePageAttachesMetadata(t *testing.T) {
	meta := &stubMetadata{facilities: map[int64]*model.Facility{
		42: {ID: 42, Name: "Grand", CheckInTime: "15:00", ImportantInformation: "Паспорт", ImportantInformationEn: "Passport"},
	}}
	misses := &countingMisses{}
	enricher := NewEnricher(meta, EnricherConfig{PageSize: 10}, misses, logger.NoOpLogger())

	resp := &model.SearchResponse{Success: true, Items: []*model.Availability{
		{
			FacilityID: 42,
			MinPrices:  []*model.PricePoint{{Price: model.Price{Amount: 90}}},
			Rooms: []*model.Room{
				{SupplierCode: "alpha", ImportantInformation: "Завтрак", CheckOutTime: "11:00"},
			},
		},
		{FacilityID: 7},
		{FacilityID: 42},
	}}

	enricher.EnrichSearch(context.Background(), resp)

	require.Len(t, meta.pages, 1)
	assert.Equal(t, []int64{42, 7}, meta.pages[0])

	item := resp.Items[0]
	require.NotNil(t, item.Facility)
	assert.Equal(t, "Grand", item.Facility.Name)
	assert.Equal(t, int64(42), item.MinPrices[0].FacilityID)

	room := item.Rooms[0]
	assert.Equal(t, "15:00", room.CheckInTime)
	assert.Equal(t, "11:00", room.CheckOutTime)
	assert.Equal(t, "Завтрак\nПаспорт", room.ImportantInformation)
	assert.Equal(t, "Passport", room.ImportantInformationEn)

	assert.Nil(t, resp.Items[1].Facility)
	assert.Equal(t, 1, misses.total)
	assert.True(t, resp.Success)
}

func TestEnrichSearch_ConcurrentPages(t *testing.T) {
	meta := &stubMetadata{
		facilities: facilities(1, 2, 3, 4, 5),
		failPages:  map[int64]bool{3: true},
	}
	misses := &countingMisses{}
	enricher := NewEnricher(meta, EnricherConfig{PageSize: 2}, misses, logger.NoOpLogger())

	resp := &model.SearchResponse{Success: true}
	for _, id := range []int64{1, 2, 3, 4, 5} {
		resp.Items = append(resp.Items, &model.Availability{FacilityID: id})
	}

	enricher.EnrichSearch(context.Background(), resp)

	assert.Len(t, meta.pages, 3)
	for _, item := range resp.Items {
		if item.FacilityID == 3 || item.FacilityID == 4 {
			assert.Nil(t, item.Facility, "facility %d", item.FacilityID)
			continue
		}
		assert.NotNil(t, item.Facility, "facility %d", item.FacilityID)
	}
	assert.Equal(t, 2, misses.total)
}

func TestEnrichSearch_CheckTimeFallbacks(t *testing.T) {
	meta := &stubMetadata{facilities: map[int64]*model.Facility{
		9: {ID: 9, Name: "Hotel", CheckInTime: "09:00"},
	}}
	enricher := NewEnricher(meta, EnricherConfig{
		SupplierDefaults: map[string]CheckTimes{"alpha": {CheckIn: "14:00", CheckOut: "12:00"}},
	}, nil, logger.NoOpLogger())

	resp := &model.SearchResponse{Items: []*model.Availability{{
		FacilityID: 9,
		Rooms: []*model.Room{
			{SupplierCode: "alpha"},
			{SupplierCode: "other"},
			{SupplierCode: "alpha", CheckInTime: "10:30"},
		},
	}}}

	enricher.EnrichSearch(context.Background(), resp)

	rooms := resp.Items[0].Rooms
	assert.Equal(t, "09:00", rooms[0].CheckInTime, "metadata time wins over supplier default")
	assert.Equal(t, "12:00", rooms[0].CheckOutTime)
	assert.Empty(t, rooms[1].CheckInTime, "supplier without defaults keeps empty times")
	assert.Empty(t, rooms[1].CheckOutTime)
	assert.Equal(t, "10:30", rooms[2].CheckInTime, "room time is kept")
	assert.Equal(t, "12:00", rooms[2].CheckOutTime)
}

func TestEnrichSearch_StampsPricePointsWithoutMetadata(t *testing.T) {
	misses := &countingMisses{}
	enricher := NewEnricher(&stubMetadata{}, EnricherConfig{}, misses, logger.NoOpLogger())

	resp := &model.SearchResponse{Items: []*model.Availability{{
		FacilityID: 77,
		MinPrices:  []*model.PricePoint{{Price: model.Price{Amount: 40}}, nil},
	}}}

	enricher.EnrichSearch(context.Background(), resp)

	assert.Nil(t, resp.Items[0].Facility)
	assert.Equal(t, int64(77), resp.Items[0].MinPrices[0].FacilityID)
	assert.Equal(t, 1, misses.total)
}

func TestEnrichSearch_EmptyResult(t *testing.T) {
	meta := &stubMetadata{}
	enricher := NewEnricher(meta, EnricherConfig{}, nil, logger.NoOpLogger())

	t.Run("explains an empty search", func(t *testing.T) {
		resp := &model.SearchResponse{Success: true}

		enricher.EnrichSearch(context.Background(), resp)

		assert.Equal(t, "no hotels were returned by the suppliers", resp.ErrorMessage)
		assert.Empty(t, meta.pages)
	})

	t.Run("keeps supplier errors", func(t *testing.T) {
		resp := &model.SearchResponse{ErrorMessage: "alpha: timeout"}

		enricher.EnrichSearch(context.Background(), resp)

		assert.Equal(t, "alpha: timeout", resp.ErrorMessage)
	})
}

func TestEnrichPricing(t *testing.T) {
	t.Run("attaches facility", func(t *testing.T) {
		meta := &stubMetadata{facilities: map[int64]*model.Facility{5: {ID: 5, CheckOutTime: "10:00"}}}
		enricher := NewEnricher(meta, EnricherConfig{}, nil, logger.NoOpLogger())
		resp := &model.PricingResponse{Success: true, Availability: &model.PricingAvailability{
			FacilityID: 5,
			Rooms:      []*model.Room{{SupplierCode: "alpha"}},
		}}

		enricher.EnrichPricing(context.Background(), resp)

		assert.Equal(t, int64(5), resp.Availability.Facility.ID)
		assert.Equal(t, "10:00", resp.Availability.Rooms[0].CheckOutTime)
		assert.Empty(t, resp.ErrorMessage)
	})

	t.Run("missing facility id", func(t *testing.T) {
		meta := &stubMetadata{}
		enricher := NewEnricher(meta, EnricherConfig{}, nil, logger.NoOpLogger())
		resp := &model.PricingResponse{Success: true, Availability: &model.PricingAvailability{}}

		enricher.EnrichPricing(context.Background(), resp)

		assert.Contains(t, resp.ErrorMessage, "facility id is missing")
		assert.True(t, resp.Success)
		assert.Empty(t, meta.single)
	})

	t.Run("lookup failure", func(t *testing.T) {
		meta := &stubMetadata{oneErr: errors.New("timeout")}
		misses := &countingMisses{}
		enricher := NewEnricher(meta, EnricherConfig{}, misses, logger.NoOpLogger())
		resp := &model.PricingResponse{
			Success:      true,
			ErrorMessage: "partial",
			Availability: &model.PricingAvailability{FacilityID: 8},
		}

		enricher.EnrichPricing(context.Background(), resp)

		assert.Equal(t, "partial\r\nmetadata is unavailable for facility 8", resp.ErrorMessage)
		assert.Nil(t, resp.Availability.Facility)
		assert.Equal(t, 1, misses.total)
	})
}

func TestEnrichBookings(t *testing.T) {
	meta := &stubMetadata{facilities: facilities(1, 2)}
	misses := &countingMisses{}
	enricher := NewEnricher(meta, EnricherConfig{
		BookingConcurrency: 2,
		SupplierDefaults:   map[string]CheckTimes{"alpha": {CheckIn: "14:00", CheckOut: "12:00"}},
	}, misses, logger.NoOpLogger())

	resp := &model.BookingInfoResponse{Bookings: []*model.Booking{
		{ID: "b1", FacilityID: 1, Rooms: []*model.Room{{SupplierCode: "alpha"}}},
		{ID: "b2", FacilityID: 2},
		{ID: "b3", FacilityID: 1},
		{ID: "b4", FacilityID: 3},
	}}

	enricher.EnrichBookings(context.Background(), resp)

	assert.ElementsMatch(t, []int64{1, 2, 3}, meta.single)
	assert.NotNil(t, resp.Bookings[0].Facility)
	assert.NotNil(t, resp.Bookings[1].Facility)
	assert.Same(t, resp.Bookings[0].Facility, resp.Bookings[2].Facility)
	assert.Nil(t, resp.Bookings[3].Facility)
	assert.Equal(t, "14:00", resp.Bookings[0].Rooms[0].CheckInTime)
	assert.Equal(t, 1, misses.total)
}

func TestAppendNote(t *testing.T) {
	assert.Equal(t, "a", appendNote("a", ""))
	assert.Equal(t, "b", appendNote("", "b"))
	assert.Equal(t, "a\nb", appendNote("a", "b"))
}

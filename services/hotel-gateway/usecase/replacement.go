package usecase

import (
	"strings"
	"time"

	"hotelhub/services/hotel-gateway/domain/model"
)

// CanReplace reports whether room can be booked in place of the quoted rate:
// same stay dates, same number of guests and, when the rate names one, the
// same board type.
func CanReplace(room *model.Room, rate *model.RateInfo) bool {
	if room == nil || rate == nil || room.BookingCode == "" {
		return false
	}
	if !sameDay(room.ArrivalDate, rate.ArrivalDate) || !sameDay(room.DepartureDate, rate.DepartureDate) {
		return false
	}
	if rate.Guests > 0 && room.NumberOfGuests != rate.Guests {
		return false
	}
	if rate.BoardType != "" && !strings.EqualFold(room.BoardType, rate.BoardType) {
		return false
	}
	return true
}

// firstReplacement returns the first room that can replace rate
func firstReplacement(rooms []*model.Room, rate *model.RateInfo) *model.Room {
	for _, room := range rooms {
		if CanReplace(room, rate) {
			return room
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

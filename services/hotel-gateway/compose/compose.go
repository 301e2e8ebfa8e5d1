// Package compose reduces the responses of several suppliers to one response
// per operation. Sub-responses are processed in the order given, which
// decides the base item and the order of error messages.
package compose

import (
	"regexp"
	"sort"

	"hotelhub/services/hotel-gateway/domain/model"
)

// NoResultsMessage is reported when there was nothing to compose
const NoResultsMessage = "1|no results returned by suppliers"

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes markup from supplier provided text
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

func nonNil[T any](items []*T) []*T {
	kept := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			kept = append(kept, item)
		}
	}
	return kept
}

func sortRooms(rooms []*model.Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].TotalPrice.AmountOrZero() < rooms[j].TotalPrice.AmountOrZero()
	})
}

func sortOffers(offers []*model.AncillaryOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].TotalPrice.AmountOrZero() < offers[j].TotalPrice.AmountOrZero()
	})
}

// unionContracts appends the details of extra that are not yet in base
func unionContracts(base []model.ContractDetail, extra []model.ContractDetail) []model.ContractDetail {
	for _, detail := range extra {
		present := false
		for _, existing := range base {
			if existing == detail {
				present = true
				break
			}
		}
		if !present {
			base = append(base, detail)
		}
	}
	return base
}

// supplierList lists the distinct suppliers of rooms in first-seen order
func supplierList(rooms []*model.Room) []string {
	seen := make(map[string]struct{}, len(rooms))
	var suppliers []string
	for _, room := range rooms {
		if room == nil || room.SupplierCode == "" {
			continue
		}
		if _, ok := seen[room.SupplierCode]; ok {
			continue
		}
		seen[room.SupplierCode] = struct{}{}
		suppliers = append(suppliers, room.SupplierCode)
	}
	return suppliers
}

package compose

import "hotelhub/services/hotel-gateway/domain/model"

// Pricing takes the first availability as the base, unions contract details
// and concatenates every supplier's rooms sorted by price.
func Pricing(responses []*model.PricingResponse) *model.PricingResponse {
	responses = nonNil(responses)
	switch len(responses) {
	case 0:
		return &model.PricingResponse{ErrorMessage: NoResultsMessage}
	case 1:
		return responses[0]
	}

	result := &model.PricingResponse{}
	messages := make([]string, 0, len(responses))
	var base *model.PricingAvailability
	for _, r := range responses {
		messages = append(messages, r.ErrorMessage)
		if r.Availability != nil && r.ErrorMessage == "" {
			result.Success = true
		}
		if base == nil && r.Availability != nil {
			base = r.Availability
		}
	}
	result.ErrorMessage = model.JoinMessages(messages...)
	if base == nil {
		return result
	}

	merged := *base
	merged.ContractDetails = append([]model.ContractDetail(nil), base.ContractDetails...)
	merged.Rooms = []*model.Room{}
	for _, r := range responses {
		if r.Availability == nil {
			continue
		}
		if r.Availability != base {
			merged.ContractDetails = unionContracts(merged.ContractDetails, r.Availability.ContractDetails)
		}
		merged.Rooms = append(merged.Rooms, nonNil(r.Availability.Rooms)...)
	}
	sortRooms(merged.Rooms)

	result.Availability = &merged
	return result
}

// AncillaryPricing merges extras the way Pricing merges rooms
func AncillaryPricing(responses []*model.AncillaryPricingResponse) *model.AncillaryPricingResponse {
	responses = nonNil(responses)
	switch len(responses) {
	case 0:
		return &model.AncillaryPricingResponse{ErrorMessage: NoResultsMessage}
	case 1:
		return responses[0]
	}

	result := &model.AncillaryPricingResponse{}
	messages := make([]string, 0, len(responses))
	var base *model.AncillaryAvailability
	for _, r := range responses {
		messages = append(messages, r.ErrorMessage)
		if r.Availability != nil && r.ErrorMessage == "" {
			result.Success = true
		}
		if base == nil && r.Availability != nil {
			base = r.Availability
		}
	}
	result.ErrorMessage = model.JoinMessages(messages...)
	if base == nil {
		return result
	}

	merged := *base
	merged.ContractDetails = append([]model.ContractDetail(nil), base.ContractDetails...)
	merged.Offers = []*model.AncillaryOffer{}
	for _, r := range responses {
		if r.Availability == nil {
			continue
		}
		if r.Availability != base {
			merged.ContractDetails = unionContracts(merged.ContractDetails, r.Availability.ContractDetails)
		}
		merged.Offers = append(merged.Offers, nonNil(r.Availability.Offers)...)
	}
	sortOffers(merged.Offers)

	result.Availability = &merged
	return result
}

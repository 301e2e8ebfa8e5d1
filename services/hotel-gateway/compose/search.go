package compose

import "hotelhub/services/hotel-gateway/domain/model"

// Search merges availability by facility id. The result succeeds when any
// supplier succeeded; supplier errors are kept as information.
func Search(responses []*model.SearchResponse) *model.SearchResponse {
	responses = nonNil(responses)
	switch len(responses) {
	case 0:
		return &model.SearchResponse{ErrorMessage: NoResultsMessage, Items: []*model.Availability{}}
	case 1:
		only := responses[0]
		for _, item := range only.Items {
			if item == nil {
				continue
			}
			for _, room := range item.Rooms {
				if room != nil {
					room.Name = StripTags(room.Name)
				}
			}
			item.Suppliers = supplierList(item.Rooms)
		}
		return only
	}

	result := &model.SearchResponse{}
	messages := make([]string, 0, len(responses))
	var items []*model.Availability
	for _, r := range responses {
		messages = append(messages, r.ErrorMessage)
		result.Success = result.Success || r.Success
		items = append(items, nonNil(r.Items)...)
	}
	result.ErrorMessage = model.JoinMessages(messages...)

	order := make([]int64, 0, len(items))
	groups := make(map[int64][]*model.Availability, len(items))
	for _, item := range items {
		if _, ok := groups[item.FacilityID]; !ok {
			order = append(order, item.FacilityID)
		}
		groups[item.FacilityID] = append(groups[item.FacilityID], item)
	}

	result.Items = make([]*model.Availability, 0, len(order))
	for _, id := range order {
		result.Items = append(result.Items, mergeAvailability(groups[id]))
	}
	return result
}

func mergeAvailability(group []*model.Availability) *model.Availability {
	merged := *group[0]
	merged.Description = ""
	merged.MinPrices = nil
	merged.Rooms = nil

	for _, item := range group {
		merged.MinPrices = append(merged.MinPrices, nonNil(item.MinPrices)...)
		merged.Rooms = append(merged.Rooms, nonNil(item.Rooms)...)
	}
	if merged.MinPrices == nil {
		merged.MinPrices = []*model.PricePoint{}
	}
	if merged.Rooms == nil {
		merged.Rooms = []*model.Room{}
	}

	sortRooms(merged.Rooms)
	for _, room := range merged.Rooms {
		room.Name = StripTags(room.Name)
	}
	merged.Suppliers = supplierList(merged.Rooms)
	return &merged
}

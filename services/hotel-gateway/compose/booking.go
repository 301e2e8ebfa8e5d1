package compose

import "hotelhub/services/hotel-gateway/domain/model"

// BookingInfo concatenates bookings. Any supplier error fails the result.
func BookingInfo(responses []*model.BookingInfoResponse) *model.BookingInfoResponse {
	responses = nonNil(responses)
	switch len(responses) {
	case 0:
		return &model.BookingInfoResponse{ErrorMessage: NoResultsMessage, Bookings: []*model.Booking{}}
	case 1:
		return responses[0]
	}

	result := &model.BookingInfoResponse{Bookings: []*model.Booking{}}
	messages := make([]string, 0, len(responses))
	for _, r := range responses {
		messages = append(messages, r.ErrorMessage)
		result.Bookings = append(result.Bookings, nonNil(r.Bookings)...)
	}
	result.ErrorMessage = model.JoinMessages(messages...)
	result.Success = result.ErrorMessage == ""
	return result
}

// TripDocuments concatenates documents. Any supplier error fails the result.
func TripDocuments(responses []*model.TripDocumentResponse) *model.TripDocumentResponse {
	responses = nonNil(responses)
	switch len(responses) {
	case 0:
		return &model.TripDocumentResponse{ErrorMessage: NoResultsMessage, Documents: []*model.TripDocument{}}
	case 1:
		return responses[0]
	}

	result := &model.TripDocumentResponse{Documents: []*model.TripDocument{}}
	messages := make([]string, 0, len(responses))
	for _, r := range responses {
		messages = append(messages, r.ErrorMessage)
		result.Documents = append(result.Documents, nonNil(r.Documents)...)
	}
	result.ErrorMessage = model.JoinMessages(messages...)
	result.Success = result.ErrorMessage == ""
	return result
}

// Package bookingcode turns rate information into opaque booking codes and back
package bookingcode

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"hotelhub/pkg/validator"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
)

// Codec encodes RateInfo as URL-safe base64 JSON
type Codec struct {
	validator validator.Validator
}

// New creates a codec that validates decoded rates with v
func New(v validator.Validator) *Codec {
	if v == nil {
		v = validator.NewValidator()
	}
	return &Codec{validator: v}
}

// Encode renders rate as a booking code
func (c *Codec) Encode(rate *model.RateInfo) (string, error) {
	data, err := json.Marshal(rate)
	if err != nil {
		return "", domain.WrapError(domain.ErrInvalidRequest, "failed to encode booking code", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// MustEncode is Encode for rates built from already validated data
func (c *Codec) MustEncode(rate *model.RateInfo) string {
	code, err := c.Encode(rate)
	if err != nil {
		panic(err)
	}
	return code
}

// Decode parses a booking code. Codes missing dates, facility or rate code are
// rejected with domain.ErrInvalidBookingCode.
func (c *Codec) Decode(code string) (*model.RateInfo, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewError(domain.ErrInvalidBookingCode, "booking code is empty")
	}

	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(code, "="))
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidBookingCode, "booking code is malformed", err)
	}

	var rate model.RateInfo
	if err := json.Unmarshal(data, &rate); err != nil {
		return nil, domain.WrapError(domain.ErrInvalidBookingCode, "booking code is malformed", err)
	}

	if err := c.validator.Validate(&rate); err != nil {
		return nil, domain.NewError(domain.ErrInvalidBookingCode, err.Error())
	}
	return &rate, nil
}

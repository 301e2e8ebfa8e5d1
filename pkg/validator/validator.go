// Package validator wraps go-playground/validator with readable messages
package validator

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validator defines the interface for validation operations
type Validator interface {
	// ValidateStruct returns field-specific messages, nil when valid
	ValidateStruct(s any) map[string]string
	// Validate returns a *FieldsError when s is invalid
	Validate(s any) error
}

// FieldsError carries per-field validation messages
type FieldsError struct {
	Fields map[string]string
}

func (e *FieldsError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, e.Fields[k])
	}
	return strings.Join(messages, "; ")
}

type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator creates a new instance of the go-playground validator
func NewValidator() Validator {
	return &validatorImpl{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateStruct validates a struct and returns field-specific errors
func (v *validatorImpl) ValidateStruct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = formatValidationError(fieldErr, prettifyFieldName(fieldErr.Field()))
	}
	return fields
}

// Validate validates a struct and folds failures into a *FieldsError
func (v *validatorImpl) Validate(s any) error {
	fields := v.ValidateStruct(s)
	if fields == nil {
		return nil
	}
	return &FieldsError{Fields: fields}
}

// ValidateStruct validates a struct with a fresh validator
func ValidateStruct(s any) map[string]string {
	return NewValidator().ValidateStruct(s)
}

func formatValidationError(err validator.FieldError, fieldName string) string {
	switch err.Tag() {
	case "required":
		return fieldName + " is required"
	case "required_without":
		return fieldName + " is required when " + prettifyFieldName(err.Param()) + " is missing"
	case "min":
		return fieldName + " must be at least " + err.Param()
	case "max":
		return fieldName + " must be at most " + err.Param()
	case "len":
		return fieldName + " must be exactly " + err.Param() + " characters long"
	case "gt":
		return fieldName + " must be greater than " + err.Param()
	case "gte":
		return fieldName + " must be greater than or equal to " + err.Param()
	case "gtfield":
		return fieldName + " must be after " + prettifyFieldName(err.Param())
	case "oneof":
		return fieldName + " must be one of the following: " + err.Param()
	case "url":
		return fieldName + " must be a valid URL"
	case "datetime":
		return fieldName + " must be a date in the format " + err.Param()
	case "dive":
		return fieldName + " contains an invalid element"
	default:
		return fieldName + " is invalid"
	}
}

// prettifyFieldName turns a camelCase or PascalCase field into a human-readable string
func prettifyFieldName(field string) string {
	var result []rune
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' && field[i-1] >= 'a' && field[i-1] <= 'z' {
			result = append(result, ' ')
		}
		result = append(result, r)
	}
	return cases.Title(language.Und, cases.NoLower).String(string(result))
}

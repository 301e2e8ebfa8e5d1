package domain

import "errors"

// ErrorKind classifies failures independently of their message
type ErrorKind string

const (
	KindInvalidRequest          ErrorKind = "INVALID_REQUEST"
	KindCredentialsMissing      ErrorKind = "CREDENTIALS_MISSING"
	KindAuthenticationFailed    ErrorKind = "AUTHENTICATION_FAILED"
	KindSupplierEmptyResponse   ErrorKind = "SUPPLIER_EMPTY_RESPONSE"
	KindSupplierDeserialization ErrorKind = "SUPPLIER_DESERIALIZATION_FAILURE"
	KindSupplierRejected        ErrorKind = "SUPPLIER_REJECTED"
	KindRateNotAvailable        ErrorKind = "RATE_NOT_AVAILABLE"
	KindInvalidBookingCode      ErrorKind = "INVALID_BOOKING_CODE"
	KindNotFound                ErrorKind = "NOT_FOUND"
)

// AppError carries a kind, an HTTP status code and an optional cause
type AppError struct {
	Kind    ErrorKind
	Message string
	Code    int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same kind, so sentinels work with errors.Is
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}

// Custom error types
var (
	ErrInvalidRequest = &AppError{
		Kind:    KindInvalidRequest,
		Message: "invalid request",
		Code:    400, // StatusBadRequest
	}
	ErrCredentialsMissing = &AppError{
		Kind:    KindCredentialsMissing,
		Message: "supplier credentials are missing",
		Code:    500, // StatusInternalServerError
	}
	ErrAuthenticationFailed = &AppError{
		Kind:    KindAuthenticationFailed,
		Message: "supplier authentication failed",
		Code:    502, // StatusBadGateway
	}
	ErrSupplierEmptyResponse = &AppError{
		Kind:    KindSupplierEmptyResponse,
		Message: "supplier returned an empty response",
		Code:    502, // StatusBadGateway
	}
	ErrSupplierDeserialization = &AppError{
		Kind:    KindSupplierDeserialization,
		Message: "supplier response could not be decoded",
		Code:    502, // StatusBadGateway
	}
	ErrSupplierRejected = &AppError{
		Kind:    KindSupplierRejected,
		Message: "supplier rejected the request",
		Code:    502, // StatusBadGateway
	}
	ErrRateNotAvailable = &AppError{
		Kind:    KindRateNotAvailable,
		Message: "no rooms matching the request were found",
		Code:    409, // StatusConflict
	}
	ErrInvalidBookingCode = &AppError{
		Kind:    KindInvalidBookingCode,
		Message: "invalid booking code",
		Code:    400, // StatusBadRequest
	}
)

// Standard error types for repositories
var (
	ErrNotFound = &AppError{
		Kind:    KindNotFound,
		Message: "not found",
		Code:    404, // StatusNotFound
	}
)

// NewError returns an error of the sentinel's kind with a specific message
func NewError(base *AppError, message string) *AppError {
	return &AppError{Kind: base.Kind, Message: message, Code: base.Code}
}

// WrapError is NewError with a cause
func WrapError(base *AppError, message string, err error) *AppError {
	return &AppError{Kind: base.Kind, Message: message, Code: base.Code, Err: err}
}

// KindOf returns the kind of the outermost AppError in err's chain
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

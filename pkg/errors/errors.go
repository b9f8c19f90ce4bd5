package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = errors.New("invalid token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenIsNotAccess     = errors.New("token is not an access token")

	// Authorization
	ErrEmptyAuthHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("not authorized to manage this resource")

	// Context
	ErrUserIDNotFoundInContext = errors.New("user id not found in request context")

	// Domain
	ErrVendorNotFound   = errors.New("Vendor not found")
	ErrBranchNotFound   = errors.New("Branch not found")
	ErrMenuItemNotFound = errors.New("Menu item not found")
	ErrOrderNotFound    = errors.New("Order not found")
	ErrVendorExists     = errors.New("Vendor with this email already exists")

	// Cache. A miss is the normal outcome of a lookup, not a failure; the
	// sentinel lets callers log only genuine cache trouble.
	ErrCacheMiss = errors.New("cache miss")

	// Generic
	ErrNotFound       = errors.New("record not found")
	ErrBadRequest     = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
)

var statusByErr = map[error]int{
	ErrInvalidSigningMethod:    http.StatusUnauthorized,
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrTokenExpired:            http.StatusUnauthorized,
	ErrTokenIsNotAccess:        http.StatusUnauthorized,
	ErrEmptyAuthHeader:         http.StatusUnauthorized,
	ErrInvalidAuthHeader:       http.StatusUnauthorized,
	ErrUnauthorized:            http.StatusUnauthorized,
	ErrUserIDNotFoundInContext: http.StatusUnauthorized,
	ErrForbidden:               http.StatusForbidden,
	ErrVendorNotFound:          http.StatusNotFound,
	ErrBranchNotFound:          http.StatusNotFound,
	ErrMenuItemNotFound:        http.StatusNotFound,
	ErrOrderNotFound:           http.StatusNotFound,
	ErrNotFound:                http.StatusNotFound,
	ErrVendorExists:            http.StatusConflict,
	ErrBadRequest:              http.StatusBadRequest,
	ErrInternalServer:          http.StatusInternalServerError,
}

// HttpError is an error that already knows its HTTP representation.
// Fields carries per-field validation messages for 400 responses.
type HttpError struct {
	Code    int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, fields map[string]string) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Fields: fields}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

func NewValidationError(message string, fields map[string]string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Fields: fields}
}

// StatusOf resolves the HTTP status for any error produced by the service layer.
func StatusOf(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	for sentinel, code := range statusByErr {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}

package errors

import (
	"errors"
	"net/http"
)

// Sentinel messages double as the public `detail` strings, so their casing
// is part of the API contract.
var (
	// ErrStartupNotFound is returned when a referenced pitch does not exist.
	ErrStartupNotFound = errors.New("Startup not found")
	// ErrInvalidInvestor is returned when the referenced user is missing or
	// does not hold the investor role.
	ErrInvalidInvestor = errors.New("Invalid investor user")
	// ErrInvalidID is returned when an identifier fails to parse, before any
	// query runs.
	ErrInvalidID = errors.New("Invalid id format")
	// ErrInvalidAmount is returned when a committed amount is negative.
	ErrInvalidAmount = errors.New("Invalid committed amount")
)

// ErrorResponse is the standard error body: a detail message string.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, detail string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Detail: detail}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrStartupNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInvestor),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

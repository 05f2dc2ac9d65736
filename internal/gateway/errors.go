package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for gateway operations.
var (
	// ErrMalformedRequest indicates a ServiceRequest missing fields its
	// kind requires. It is always surfaced to the caller and never masked
	// by a mock fallback.
	ErrMalformedRequest = errors.New("malformed service request")

	// ErrUnreachable indicates a transport-level failure reaching the
	// external service.
	ErrUnreachable = errors.New("external service unreachable")

	// ErrMalformedResponse indicates the external service returned a body
	// that did not parse into the expected shape.
	ErrMalformedResponse = errors.New("malformed service response")

	ErrUnknownKind = errors.New("unknown request kind")
)

// RejectedError indicates the external service returned an error status.
type RejectedError struct {
	Code    int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("external service rejected request: %d: %s", e.Code, e.Message)
}

// MapHTTPStatus maps gateway domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMalformedRequest) || errors.Is(err, ErrUnknownKind) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUnreachable) {
		return http.StatusBadGateway
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrMalformedResponse) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

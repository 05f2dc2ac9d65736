package chat

import (
	"errors"
	"net/http"

	"github.com/navigatehome/waypoint/internal/gateway"
)

// Domain errors for chat operations.
var (
	ErrEmptyMessage     = errors.New("message cannot be empty")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// MapHTTPStatus maps chat domain and gateway errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyMessage) || errors.Is(err, ErrInvalidSessionID) {
		return http.StatusBadRequest
	}
	return gateway.MapHTTPStatus(err)
}

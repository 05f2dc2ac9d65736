package analyses

import (
	"errors"
	"net/http"

	"github.com/navigatehome/waypoint/internal/gateway"
)

// Domain errors for analysis operations.
var (
	ErrNotFound   = errors.New("analysis not found")
	ErrDuplicate  = errors.New("analysis already exists")
	ErrNoDocument = errors.New("document not found")
	ErrInvalidID  = errors.New("invalid id")
)

// MapHTTPStatus maps analysis domain and gateway errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNoDocument) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	if status := gateway.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusInternalServerError
}

package analyses_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/navigatehome/waypoint/internal/analyses"
	"github.com/navigatehome/waypoint/internal/gateway"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", analyses.ErrNotFound, http.StatusNotFound},
		{"no document", analyses.ErrNoDocument, http.StatusNotFound},
		{"duplicate", analyses.ErrDuplicate, http.StatusConflict},
		{"invalid id", analyses.ErrInvalidID, http.StatusBadRequest},
		{"gateway malformed request", gateway.ErrMalformedRequest, http.StatusBadRequest},
		{"gateway unreachable", gateway.ErrUnreachable, http.StatusBadGateway},
		{"gateway rejected", &gateway.RejectedError{Code: 429, Message: "rate limited"}, http.StatusBadGateway},
		{"wrapped not found", fmt.Errorf("lookup: %w", analyses.ErrNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := analyses.MapHTTPStatus(test.err); got != test.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	docID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	t.Run("document id", func(t *testing.T) {
		f := analyses.FiltersFromQuery(url.Values{"document_id": {docID.String()}})
		if f.DocumentID == nil || *f.DocumentID != docID {
			t.Errorf("document_id = %v, want %v", f.DocumentID, docID)
		}
	})

	t.Run("invalid document id ignored", func(t *testing.T) {
		f := analyses.FiltersFromQuery(url.Values{"document_id": {"not-a-uuid"}})
		if f.DocumentID != nil {
			t.Errorf("document_id = %v, want nil", f.DocumentID)
		}
	})

	t.Run("source", func(t *testing.T) {
		f := analyses.FiltersFromQuery(url.Values{"source": {"mock"}})
		if f.Source == nil || *f.Source != "mock" {
			t.Errorf("source = %v, want mock", f.Source)
		}
	})

	t.Run("empty values", func(t *testing.T) {
		f := analyses.FiltersFromQuery(url.Values{})
		if f.DocumentID != nil || f.Source != nil {
			t.Errorf("filters = %+v, want all nil", f)
		}
	})
}

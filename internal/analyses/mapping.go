package analyses

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/navigatehome/waypoint/pkg/query"
	"github.com/navigatehome/waypoint/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "analyses", "a").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("summary", "Summary").
	Project("key_information", "KeyInfo").
	Project("recommendations", "Recommendations").
	Project("questions_answered", "Questions").
	Project("source", "Source").
	Project("analyzed_at", "AnalyzedAt")

var defaultSort = query.SortField{
	Field:      "AnalyzedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for analysis queries.
// Nil fields are ignored.
type Filters struct {
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	Source     *string    `json:"source,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("DocumentID", f.DocumentID).
		WhereEquals("Source", f.Source)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if d := values.Get("document_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			f.DocumentID = &id
		}
	}

	if s := values.Get("source"); s != "" {
		f.Source = &s
	}

	return f
}

// scanAnalysis maps a row to an Analysis, decoding the JSONB columns for
// key information and recommendations.
func scanAnalysis(s repository.Scanner) (Analysis, error) {
	var (
		a       Analysis
		keyInfo []byte
		recs    []byte
		qa      []byte
	)

	err := s.Scan(
		&a.ID,
		&a.DocumentID,
		&a.Summary,
		&keyInfo,
		&recs,
		&qa,
		&a.Source,
		&a.AnalyzedAt,
	)
	if err != nil {
		return a, err
	}

	if len(keyInfo) > 0 {
		if err := json.Unmarshal(keyInfo, &a.KeyInfo); err != nil {
			return a, fmt.Errorf("decode key_information: %w", err)
		}
	}
	if len(recs) > 0 {
		if err := json.Unmarshal(recs, &a.Recommendations); err != nil {
			return a, fmt.Errorf("decode recommendations: %w", err)
		}
	}
	if len(qa) > 0 {
		if err := json.Unmarshal(qa, &a.Questions); err != nil {
			return a, fmt.Errorf("decode questions_answered: %w", err)
		}
	}

	return a, nil
}

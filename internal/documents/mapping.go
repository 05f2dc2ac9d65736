package documents

import (
	"net/url"
	"strconv"

	"github.com/navigatehome/waypoint/pkg/query"
	"github.com/navigatehome/waypoint/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("form_type", "FormType").
	Project("confidence", "Confidence").
	Project("text_content", "TextContent").
	Project("status", "Status").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored. Status, FormType, and ContentType use exact
// matching. Filename uses case-insensitive contains matching.
type Filters struct {
	Status        *string  `json:"status,omitempty"`
	Filename      *string  `json:"filename,omitempty"`
	FormType      *string  `json:"form_type,omitempty"`
	ContentType   *string  `json:"content_type,omitempty"`
	MinConfidence *float64 `json:"min_confidence,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereContains("Filename", f.Filename).
		WhereEquals("FormType", f.FormType).
		WhereEquals("ContentType", f.ContentType).
		WhereAtLeast("Confidence", f.MinConfidence)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if ft := values.Get("form_type"); ft != "" {
		f.FormType = &ft
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	if mc := values.Get("min_confidence"); mc != "" {
		if v, err := strconv.ParseFloat(mc, 64); err == nil {
			f.MinConfidence = &v
		}
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.PageCount,
		&d.StorageKey,
		&d.FormType,
		&d.Confidence,
		&d.TextContent,
		&d.Status,
		&d.UploadedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// Package documents implements the document domain. It provides types,
// data access, and business logic for uploading immigration paperwork,
// extracting text, classifying the form type, and blob storage integration.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded document with its metadata, extracted
// text, and blob storage reference.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	FormType    string    `json:"form_type"`
	Confidence  float64   `json:"confidence"`
	TextContent string    `json:"text_content,omitempty"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new
// document. Data holds the raw file bytes. TextContent, FormType, and
// Confidence come from extraction and classification in the handler.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	PageCount   *int
	TextContent string
	FormType    string
	Confidence  float64
}

// BatchResult reports the outcome of a single file within a batch upload.
// On success, Document is populated and Error is empty.
type BatchResult struct {
	Document *Document `json:"document,omitempty"`
	Filename string    `json:"filename"`
	Error    string    `json:"error,omitempty"`
}

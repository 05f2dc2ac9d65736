// Package analyses implements the document analysis domain. An analysis
// captures the assistant's reading of an uploaded document: a summary,
// extracted key information, and filing recommendations, produced in a
// single concurrent pass and persisted per document.
package analyses

import (
	"time"

	"github.com/google/uuid"

	"github.com/navigatehome/waypoint/internal/gateway"
)

// Analysis represents the persisted assistant analysis of a document.
type Analysis struct {
	ID              uuid.UUID              `json:"id"`
	DocumentID      uuid.UUID              `json:"document_id"`
	Summary         string                 `json:"summary"`
	KeyInfo         gateway.KeyInformation `json:"key_information"`
	Recommendations []string               `json:"recommendations"`
	Questions       []AnsweredQuestion     `json:"questions_answered"`
	Source          gateway.Source         `json:"source"`
	AnalyzedAt      time.Time              `json:"analyzed_at"`
}

// AnsweredQuestion pairs a caller-supplied question with the assistant's
// answer, recorded alongside the analysis it was asked against.
type AnsweredQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AskRequest carries a document-scoped question.
type AskRequest struct {
	Question string `json:"question"`
}

// TranslateRequest carries the target language for document translation.
type TranslateRequest struct {
	Language string `json:"language"`
}

// AnalyzeRequest identifies the document to analyze, with optional
// questions answered once the pipeline completes.
type AnalyzeRequest struct {
	DocumentID uuid.UUID `json:"document_id"`
	Questions  []string  `json:"questions,omitempty"`
}

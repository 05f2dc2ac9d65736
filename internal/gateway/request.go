// Package gateway implements the degrading external-service gateway for
// Waypoint. A single facade routes typed service requests to either a live
// AI/translation backend or a deterministic mock responder, selected per
// call by credential availability. Mock and live paths produce the same
// result shape, so callers and the UI layer cannot distinguish them except
// through the optional source diagnostic.
package gateway

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"
)

// Kind identifies the service operation a request targets.
type Kind string

// Assistant request kinds.
const (
	KindQuestionExplanation Kind = "question_explanation"
	KindFormValidation      Kind = "form_validation"
	KindRightsGuidance      Kind = "rights_guidance"
	KindEmergencyScript     Kind = "emergency_script"
	KindResourceSearch      Kind = "resource_search"
	KindEligibilityCheck    Kind = "eligibility_check"
	KindCommunityInsights   Kind = "community_insights"
	KindTranslation         Kind = "translation"
)

// Document analysis request kinds.
const (
	KindDocumentSummary Kind = "document_summary"
	KindKeyInformation  Kind = "key_information"
	KindRecommendations Kind = "recommendations"
	KindSimplify        Kind = "simplify"
)

var kinds = []Kind{
	KindQuestionExplanation,
	KindFormValidation,
	KindRightsGuidance,
	KindEmergencyScript,
	KindResourceSearch,
	KindEligibilityCheck,
	KindCommunityInsights,
	KindTranslation,
	KindDocumentSummary,
	KindKeyInformation,
	KindRecommendations,
	KindSimplify,
}

// Kinds returns the list of valid request kinds.
func Kinds() []Kind {
	return kinds
}

// Valid reports whether k is a known request kind.
func (k Kind) Valid() bool {
	return slices.Contains(kinds, k)
}

// Profile is an immutable snapshot of the requesting user's circumstances,
// carried by kinds whose answers depend on them.
type Profile struct {
	VisaStatus     string `json:"visa_status,omitempty"`
	CountryOfBirth string `json:"country_of_birth,omitempty"`
	YearsInUS      int    `json:"years_in_us,omitempty"`
	HasAttorney    bool   `json:"has_attorney,omitempty"`
}

// ServiceRequest is the typed input shared by the mock and live paths.
// Each kind reads only the fields it needs; Format validates that those
// fields are present before any network attempt. Values are treated as
// immutable once constructed.
type ServiceRequest struct {
	Kind Kind `json:"kind"`

	// Question carries the user's question for QuestionExplanation and the
	// per-document question for analysis Q&A.
	Question string `json:"question,omitempty"`

	// Language is the response language for chat-backed kinds.
	Language string `json:"language,omitempty"`

	// History holds recent conversation lines ("role: content") that
	// ground a QuestionExplanation in the session so far.
	History []string `json:"history,omitempty"`

	// FormType is the USCIS form number context (e.g. "I-130").
	FormType string `json:"form_type,omitempty"`

	// FieldName and FieldValue identify the form field under validation.
	FieldName  string `json:"field_name,omitempty"`
	FieldValue string `json:"field_value,omitempty"`

	// Situation is the scenario tag for rights guidance and emergency
	// scripts (e.g. "police_stop", "ice_home_visit").
	Situation string `json:"situation,omitempty"`

	// Text and TargetLanguage drive Translation.
	Text           string `json:"text,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`

	// Query and Location drive ResourceSearch.
	Query    string `json:"query,omitempty"`
	Location string `json:"location,omitempty"`

	// DocumentID and DocumentText carry document analysis context.
	DocumentID   string `json:"document_id,omitempty"`
	DocumentText string `json:"document_text,omitempty"`

	// Profile is consulted by EligibilityCheck and CommunityInsights.
	Profile *Profile `json:"profile,omitempty"`
}

// Identity returns a stable cache key derived from the request's kind and
// every populated field. Equal requests always produce equal identities.
func (r ServiceRequest) Identity() string {
	data, _ := json.Marshal(r)
	sum := sha256.Sum256(data)
	return string(r.Kind) + ":" + hex.EncodeToString(sum[:8])
}

// normalizeLanguage lowercases a language code and strips any region
// subtag ("es-MX" -> "es"). Empty input defaults to English.
func normalizeLanguage(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "en"
	}
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return code
}

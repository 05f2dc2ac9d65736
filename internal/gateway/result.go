package gateway

// Source is an optional diagnostic noting which path produced a result.
// It is the only field allowed to differ between the mock and live paths.
type Source string

// Result sources.
const (
	SourceMock Source = "mock"
	SourceLive Source = "live"
)

// Resource describes a community resource returned by ResourceSearch.
type Resource struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Contact     string `json:"contact,omitempty"`
}

// FieldCheck is the outcome of a FormValidation request.
type FieldCheck struct {
	Field    string `json:"field"`
	Valid    bool   `json:"valid"`
	Guidance string `json:"guidance"`
}

// KeyInformation is the structured extraction produced by KeyInformation
// requests, mirroring the shape the live model is instructed to return.
type KeyInformation struct {
	FormNumber              string   `json:"form_number"`
	Deadlines               []string `json:"deadlines"`
	RequiredDocuments       []string `json:"required_documents"`
	Fees                    []string `json:"fees"`
	EligibilityRequirements []string `json:"eligibility_requirements"`
	ProcessingTime          string   `json:"processing_time"`
}

// ServiceResult is the typed output shared by the mock and live paths.
// The populated fields depend on Kind: Answer for free-text kinds, Items
// for list kinds, Resources for ResourceSearch, Check for FormValidation,
// and KeyInfo for KeyInformation. Both paths must populate identically
// shaped results for a given kind.
type ServiceResult struct {
	Kind      Kind            `json:"kind"`
	Answer    string          `json:"answer,omitempty"`
	Items     []string        `json:"items,omitempty"`
	Resources []Resource      `json:"resources,omitempty"`
	Check     *FieldCheck     `json:"check,omitempty"`
	KeyInfo   *KeyInformation `json:"key_info,omitempty"`
	Source    Source          `json:"source,omitempty"`
}

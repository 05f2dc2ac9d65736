// Package forms provides the static USCIS form knowledge base: a catalog of
// known forms with canned analysis content, and keyword-based document
// classification over extracted text. It is the offline stand-in for real
// document intelligence and also seeds mock analysis responses.
package forms

// KeyInformation is the structured reference data held for a cataloged form.
type KeyInformation struct {
	FormNumber              string   `json:"form_number"`
	Deadlines               []string `json:"deadlines"`
	RequiredDocuments       []string `json:"required_documents"`
	Fees                    []string `json:"fees"`
	EligibilityRequirements []string `json:"eligibility_requirements"`
	ProcessingTime          string   `json:"processing_time"`
}

// Form is a cataloged USCIS form with its canned analysis content.
// Patterns are lowercase substrings used for classification. Questions are
// the clarifying questions the assistant raises for this form type.
type Form struct {
	Number          string         `json:"number"`
	Title           string         `json:"title"`
	Summary         string         `json:"summary"`
	KeyInfo         KeyInformation `json:"key_info"`
	Recommendations []string       `json:"recommendations"`
	Questions       []string       `json:"questions"`
	patterns        []string
}

// Find returns the cataloged form for a form number, or false when the
// number is not cataloged.
func Find(number string) (Form, bool) {
	f, ok := catalog[number]
	return f, ok
}

// Numbers returns the cataloged form numbers in stable order.
func Numbers() []string {
	return numbers
}

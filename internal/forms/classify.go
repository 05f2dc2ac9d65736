package forms

import "strings"

// UnknownDocument is the classification returned when no pattern matches.
const UnknownDocument = "Unknown Document"

// generalPatterns classify non-USCIS documents that commonly accompany
// applications. Checked after the form catalog, in order.
var generalPatterns = []struct {
	doctype  string
	patterns []string
}{
	{"Passport", []string{"passport"}},
	{"Birth Certificate", []string{"birth certificate"}},
	{"Marriage Certificate", []string{"marriage certificate"}},
	{"Divorce Decree", []string{"divorce decree"}},
	{"Employment Authorization", []string{"employment", "authorization"}},
}

// Classify identifies the document type from extracted text using
// case-insensitive substring matching: cataloged form numbers first, then
// general document patterns. Returns UnknownDocument when nothing matches.
func Classify(text string) string {
	lower := strings.ToLower(text)

	for _, number := range numbers {
		for _, pattern := range catalog[number].patterns {
			if strings.Contains(lower, pattern) {
				return number
			}
		}
	}

	for _, gp := range generalPatterns {
		matched := true
		for _, pattern := range gp.patterns {
			if !strings.Contains(lower, pattern) {
				matched = false
				break
			}
		}
		if matched {
			return gp.doctype
		}
	}

	return UnknownDocument
}

// Confidence scores how reliable a classification over the given text is.
// The heuristic mirrors the original parser: substantial text, a recognized
// document type, and form-number context each contribute to the score.
func Confidence(text, doctype string) float64 {
	score := 0.0

	if len(strings.TrimSpace(text)) > 100 {
		score += 0.4
	}
	if doctype != UnknownDocument {
		score += 0.3
	}
	if _, ok := catalog[doctype]; ok {
		score += 0.3
	}

	return min(score, 1.0)
}

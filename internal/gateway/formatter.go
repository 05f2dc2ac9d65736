package gateway

import (
	"fmt"
	"strings"
)

// systemPreamble is the fixed system message sent with every chat-backed
// request. Stage instructions compose into the user message, keeping the
// preamble stable across the whole API surface.
const systemPreamble = "You are an expert immigration assistant. Provide accurate, " +
	"helpful information based on the provided documents and context. You are " +
	"not a lawyer and must remind users to consult a qualified immigration " +
	"attorney for legal advice."

// documentExcerptLimit bounds how much extracted document text is folded
// into a prompt, mirroring the upstream model context limits.
const documentExcerptLimit = 3000

// Endpoint identifies which external collaborator a payload targets.
type Endpoint string

// Outbound endpoints.
const (
	EndpointChat      Endpoint = "chat"
	EndpointTranslate Endpoint = "translate"
)

// Message is a single chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the OpenAI-compatible chat-completion request body.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// TranslateRequest is the translation API request body.
type TranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// Payload is the formatted outbound request, tagged by target endpoint.
// Exactly one of Chat or Translate is populated.
type Payload struct {
	Endpoint  Endpoint
	Chat      *ChatRequest
	Translate *TranslateRequest
}

// Formatter maps ServiceRequests to outbound wire payloads. Formatting is
// deterministic: equal requests with equal instructions always produce the
// same payload. Validation happens here, before any network attempt, so a
// missing field never surfaces as a remote 4xx.
type Formatter struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// Format builds the outbound payload for req. The instructions string holds
// the effective stage instructions (default or active override) and is
// folded into the user message for chat-backed kinds; Translation ignores
// it. Returns ErrMalformedRequest when fields required by req.Kind are
// missing.
func (f *Formatter) Format(req ServiceRequest, instructions string) (*Payload, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	if req.Kind == KindTranslation {
		return &Payload{
			Endpoint: EndpointTranslate,
			Translate: &TranslateRequest{
				Text:   req.Text,
				Source: "en",
				Target: normalizeLanguage(req.TargetLanguage),
				Format: "text",
			},
		}, nil
	}

	return &Payload{
		Endpoint: EndpointChat,
		Chat: &ChatRequest{
			Model: f.Model,
			Messages: []Message{
				{Role: "system", Content: systemPreamble},
				{Role: "user", Content: userMessage(req, instructions)},
			},
			MaxTokens:   f.MaxTokens,
			Temperature: f.Temperature,
		},
	}, nil
}

// Validate checks that req carries the fields its kind requires.
func Validate(req ServiceRequest) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s requires %s", ErrMalformedRequest, req.Kind, field)
	}

	switch req.Kind {
	case KindQuestionExplanation:
		if req.Question == "" {
			return missing("question")
		}
	case KindFormValidation:
		if req.FormType == "" {
			return missing("form_type")
		}
		if req.FieldName == "" {
			return missing("field_name")
		}
	case KindRightsGuidance, KindEmergencyScript:
		if req.Situation == "" {
			return missing("situation")
		}
	case KindResourceSearch:
		if req.Query == "" {
			return missing("query")
		}
	case KindEligibilityCheck, KindCommunityInsights:
		if req.Profile == nil {
			return missing("profile")
		}
	case KindTranslation:
		if req.Text == "" {
			return missing("text")
		}
		if req.TargetLanguage == "" {
			return missing("target_language")
		}
	case KindDocumentSummary, KindKeyInformation, KindRecommendations, KindSimplify:
		if req.DocumentText == "" {
			return missing("document_text")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	return nil
}

// Stage names for instruction lookup. Analysis kinds each have their own
// tunable stage; the assistant kinds share one.
const (
	StageSummary         = "summary"
	StageKeyInformation  = "key_information"
	StageRecommendations = "recommendations"
	StageQuestion        = "question"
	StageSimplify        = "simplify"
	StageAssistant       = "assistant"
)

// StageFor returns the instruction stage a request kind draws from.
// Translation has no stage; it returns the empty string.
func StageFor(kind Kind) string {
	switch kind {
	case KindDocumentSummary:
		return StageSummary
	case KindKeyInformation:
		return StageKeyInformation
	case KindRecommendations:
		return StageRecommendations
	case KindQuestionExplanation:
		return StageQuestion
	case KindSimplify:
		return StageSimplify
	case KindTranslation:
		return ""
	default:
		return StageAssistant
	}
}

func userMessage(req ServiceRequest, instructions string) string {
	var sb strings.Builder

	if instructions != "" {
		sb.WriteString(instructions)
		sb.WriteString("\n\n")
	}

	switch req.Kind {
	case KindQuestionExplanation:
		if len(req.History) > 0 {
			sb.WriteString("Conversation so far:\n")
			for _, line := range req.History {
				sb.WriteString(line)
				sb.WriteByte('\n')
			}
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Question: %s\n", req.Question)
		if req.FormType != "" {
			fmt.Fprintf(&sb, "Form context: %s\n", req.FormType)
		}
		if req.DocumentText != "" {
			fmt.Fprintf(&sb, "Document content:\n%s\n", excerpt(req.DocumentText))
		}
		fmt.Fprintf(&sb, "Respond in language: %s", normalizeLanguage(req.Language))
	case KindFormValidation:
		fmt.Fprintf(
			&sb,
			"Review this field from form %s:\nField: %s\nValue: %s\n"+
				"State whether the value looks valid and what to correct.",
			req.FormType, req.FieldName, req.FieldValue,
		)
	case KindRightsGuidance:
		fmt.Fprintf(
			&sb,
			"Explain the constitutional rights that apply in this situation: %s. "+
				"Respond as a short list of plain statements.",
			req.Situation,
		)
	case KindEmergencyScript:
		fmt.Fprintf(
			&sb,
			"Provide a short spoken script someone can read aloud in this situation: %s.",
			req.Situation,
		)
	case KindResourceSearch:
		fmt.Fprintf(&sb, "Find community resources matching: %s", req.Query)
		if req.Location != "" {
			fmt.Fprintf(&sb, "\nNear: %s", req.Location)
		}
	case KindEligibilityCheck:
		fmt.Fprintf(
			&sb,
			"Assess likely immigration options for this profile:\n%s",
			profileContext(req.Profile),
		)
	case KindCommunityInsights:
		fmt.Fprintf(
			&sb,
			"Share practical insights others with a similar background found useful:\n%s",
			profileContext(req.Profile),
		)
	case KindDocumentSummary, KindKeyInformation, KindRecommendations, KindSimplify:
		if req.FormType != "" {
			fmt.Fprintf(&sb, "Document type: %s\n", req.FormType)
		}
		fmt.Fprintf(&sb, "Document content:\n%s", excerpt(req.DocumentText))
	}

	return sb.String()
}

func profileContext(p *Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Visa status: %s\n", p.VisaStatus)
	fmt.Fprintf(&sb, "Country of birth: %s\n", p.CountryOfBirth)
	fmt.Fprintf(&sb, "Years in the US: %d\n", p.YearsInUS)
	fmt.Fprintf(&sb, "Has attorney: %t", p.HasAttorney)
	return sb.String()
}

func excerpt(text string) string {
	if len(text) <= documentExcerptLimit {
		return text
	}
	return text[:documentExcerptLimit]
}

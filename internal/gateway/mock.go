package gateway

import (
	"fmt"

	"github.com/navigatehome/waypoint/internal/forms"
)

// RespondMock produces a deterministic, domain-plausible result for any
// valid request. It is a total function: no I/O, no suspension, no failure
// paths. This is the offline contract — with no connectivity the service
// stays fully usable, differing from the live path only in answer quality.
func RespondMock(req ServiceRequest) ServiceResult {
	result := ServiceResult{Kind: req.Kind, Source: SourceMock}

	switch req.Kind {
	case KindQuestionExplanation:
		result.Answer = mockExplanation(req)
	case KindFormValidation:
		result.Check = mockFieldCheck(req)
	case KindRightsGuidance:
		result.Items = rightsGuidance(req.Situation)
	case KindEmergencyScript:
		result.Answer = emergencyScript(req.Situation)
	case KindResourceSearch:
		result.Resources = mockResources
	case KindEligibilityCheck:
		result.Items = mockEligibility(req.Profile)
	case KindCommunityInsights:
		result.Items = mockInsights
	case KindTranslation:
		result.Answer = mockTranslate(req.Text, req.TargetLanguage)
	case KindDocumentSummary:
		result.Answer = forms.Describe(req.FormType).Summary
	case KindKeyInformation:
		result.KeyInfo = mockKeyInfo(req.FormType)
	case KindRecommendations:
		result.Items = forms.Describe(req.FormType).Recommendations
	case KindSimplify:
		result.Answer = mockSimplify(req.FormType)
	}

	return result
}

// translations maps target language -> source text -> translated text.
// Entries cover the form questions the demo UI surfaces most often;
// everything else falls through to the tagged-passthrough format below.
var translations = map[string]map[string]string{
	"es": {
		"What is your date of birth?":                         "¿Cuál es su fecha de nacimiento?",
		"What is your current immigration status?":            "¿Cuál es su estatus migratorio actual?",
		"What is your relationship to the beneficiary?":       "¿Cuál es su relación con el beneficiario?",
		"What is the beneficiary's country of birth?":         "¿Cuál es el país de nacimiento del beneficiario?",
		"When did you last enter the United States?":          "¿Cuándo entró por última vez a los Estados Unidos?",
		"Are you a U.S. citizen or lawful permanent resident?": "¿Es usted ciudadano estadounidense o residente permanente legal?",
		"What is your full legal name?":                       "¿Cuál es su nombre legal completo?",
		"What is your alien registration number?":             "¿Cuál es su número de registro de extranjero?",
		"What is your country of citizenship?":                "¿Cuál es su país de ciudadanía?",
		"What is your current mailing address?":               "¿Cuál es su dirección postal actual?",
	},
	"zh": {
		"What is your date of birth?":              "您的出生日期是什么？",
		"What is your current immigration status?": "您目前的移民身份是什么？",
		"What is your full legal name?":            "您的法定全名是什么？",
	},
}

func mockTranslate(text, target string) string {
	lang := normalizeLanguage(target)
	if translated, ok := translations[lang][text]; ok {
		return translated
	}
	return fmt.Sprintf("[%s] %s", lang, text)
}

func mockExplanation(req ServiceRequest) string {
	formType := req.FormType
	if formType == "" {
		formType = "immigration"
	}
	return fmt.Sprintf(
		"Based on the %s document, here's my answer: %s. This is a mock "+
			"response demonstrating how the AI would analyze your document and "+
			"provide helpful guidance.",
		formType, req.Question,
	)
}

func mockFieldCheck(req ServiceRequest) *FieldCheck {
	if req.FieldValue == "" {
		return &FieldCheck{
			Field:    req.FieldName,
			Valid:    false,
			Guidance: fmt.Sprintf("%s on form %s cannot be left blank.", req.FieldName, req.FormType),
		}
	}
	return &FieldCheck{
		Field: req.FieldName,
		Valid: true,
		Guidance: fmt.Sprintf(
			"The value for %s looks complete. Double-check it matches your "+
				"supporting documents for form %s exactly.",
			req.FieldName, req.FormType,
		),
	}
}

// Guidance and scripts are keyed by situation tag. Unrecognized tags fall
// back to the general entry so the responder stays total.
var rightsBySituation = map[string][]string{
	"police_stop": {
		"You have the right to remain silent.",
		"You do not have to consent to a search of yourself or your belongings.",
		"Ask if you are free to leave. If yes, walk away calmly.",
		"You have the right to ask for a lawyer before answering questions.",
	},
	"ice_encounter": {
		"You have the right to remain silent about your immigration status.",
		"You do not have to show documents proving your country of origin.",
		"Do not sign anything you do not understand.",
		"You have the right to speak to a lawyer before answering questions.",
	},
	"home_visit": {
		"You do not have to open the door unless officers show a judicial warrant signed by a judge.",
		"Ask officers to slide the warrant under the door so you can inspect it.",
		"An ICE administrative warrant (Form I-200 or I-205) does not allow entry without consent.",
		"Stay calm and do not lie or present false documents.",
	},
	"workplace_raid": {
		"Stay calm and do not run.",
		"You have the right to remain silent.",
		"You do not have to answer questions about where you were born.",
		"You have the right to speak to a lawyer before signing anything.",
	},
}

var generalRights = []string{
	"You have the right to remain silent.",
	"You have the right to speak to a lawyer.",
	"Do not sign documents you do not understand.",
	"You do not have to consent to a search.",
}

func rightsGuidance(situation string) []string {
	if guidance, ok := rightsBySituation[situation]; ok {
		return guidance
	}
	return generalRights
}

var scriptsBySituation = map[string]string{
	"police_stop": "I am exercising my right to remain silent. I do not consent " +
		"to a search. Am I free to leave? I would like to speak to a lawyer.",
	"ice_encounter": "I am exercising my right to remain silent. I will not " +
		"answer questions about my immigration status. I want to speak to a lawyer.",
	"home_visit": "I do not consent to your entry. If you have a warrant signed " +
		"by a judge, please slide it under the door. I am exercising my right to " +
		"remain silent.",
	"workplace_raid": "I am exercising my right to remain silent. I will not " +
		"answer questions. I want to speak to a lawyer before signing anything.",
}

const generalScript = "I am exercising my right to remain silent. I want to " +
	"speak to a lawyer before answering any questions."

func emergencyScript(situation string) string {
	if script, ok := scriptsBySituation[situation]; ok {
		return script
	}
	return generalScript
}

var mockResources = []Resource{
	{
		Name:        "Immigration Legal Aid Clinic",
		Category:    "legal",
		Description: "Free consultations with accredited representatives for family and humanitarian cases.",
		Contact:     "1-800-555-0134",
	},
	{
		Name:        "Community Language Center",
		Category:    "language",
		Description: "ESL classes and document translation help on a sliding fee scale.",
		Contact:     "info@communitylanguage.example.org",
	},
	{
		Name:        "Know Your Rights Workshop",
		Category:    "education",
		Description: "Monthly workshops covering rights during encounters with law enforcement.",
	},
	{
		Name:        "Family Support Network",
		Category:    "social",
		Description: "Emergency planning, childcare coordination, and peer support groups.",
		Contact:     "1-800-555-0188",
	},
}

func mockEligibility(p *Profile) []string {
	if p == nil {
		p = &Profile{}
	}

	items := []string{
		"This preliminary screening is informational and not legal advice.",
	}

	if p.YearsInUS >= 10 {
		items = append(items, "Your length of residence may be relevant to cancellation of removal; discuss with an attorney.")
	}
	if p.VisaStatus == "none" || p.VisaStatus == "" {
		items = append(items, "Consult a legal aid organization before filing any application.")
	} else {
		items = append(items, fmt.Sprintf("Holding %s status, check whether adjustment of status applies to you.", p.VisaStatus))
	}
	if !p.HasAttorney {
		items = append(items, "Free or low-cost legal help is available through accredited representatives.")
	}

	return items
}

var mockInsights = []string{
	"Applicants report that responding to requests for evidence quickly shortens processing noticeably.",
	"Keeping certified translations of civil documents ready avoids repeat delays.",
	"Many community members recommend attending a know-your-rights workshop before any USCIS appointment.",
}

func mockKeyInfo(formType string) *KeyInformation {
	info := forms.Describe(formType).KeyInfo
	return &KeyInformation{
		FormNumber:              info.FormNumber,
		Deadlines:               info.Deadlines,
		RequiredDocuments:       info.RequiredDocuments,
		Fees:                    info.Fees,
		EligibilityRequirements: info.EligibilityRequirements,
		ProcessingTime:          info.ProcessingTime,
	}
}

func mockSimplify(formType string) string {
	form := forms.Describe(formType)
	return fmt.Sprintf(
		"In plain language: %s (%s) %s Keep copies of everything you send, and "+
			"ask a legal aid organization if any question is unclear.",
		form.Number, form.Title, form.Summary,
	)
}

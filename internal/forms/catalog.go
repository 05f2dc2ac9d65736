package forms

// The catalog carries full analysis content for the forms the demo data set
// covers, and classification patterns plus titles for the rest. Content for
// uncataloged numbers degrades to the generic form in Describe.

var numbers = []string{
	"I-130", "I-485", "I-765", "I-821D", "I-90",
	"N-400", "I-864", "I-693", "G-1145", "I-131",
}

var catalog = map[string]Form{
	"I-130": {
		Number: "I-130",
		Title:  "Petition for Alien Relative",
		Summary: "Form I-130 is a Petition for Alien Relative. This form is used by " +
			"U.S. citizens and lawful permanent residents to establish a qualifying " +
			"relationship with a foreign national who wishes to immigrate to the " +
			"United States.",
		KeyInfo: KeyInformation{
			FormNumber:              "I-130",
			Deadlines:               []string{"Submit within 30 days of qualifying event"},
			RequiredDocuments:       []string{"Birth certificates", "Marriage certificates", "Passport photos"},
			Fees:                    []string{"$535 filing fee"},
			EligibilityRequirements: []string{"Must be U.S. citizen or LPR", "Must have qualifying relationship"},
			ProcessingTime:          "6-12 months",
		},
		Recommendations: []string{
			"Gather all required supporting documents before filing",
			"Ensure all forms are completed accurately",
			"Consider hiring an immigration attorney for complex cases",
			"Keep copies of all submitted documents",
			"Monitor case status online",
		},
		Questions: []string{
			"What is your relationship to the beneficiary?",
			"What is your date of birth?",
			"What is the beneficiary's country of birth?",
			"Are you a U.S. citizen or lawful permanent resident?",
		},
		patterns: []string{"i-130", "petition for alien relative"},
	},
	"I-485": {
		Number: "I-485",
		Title:  "Application to Register Permanent Residence or Adjust Status",
		Summary: "Form I-485 is an Application to Register Permanent Residence or " +
			"Adjust Status. This form allows eligible individuals to apply for a " +
			"green card while remaining in the United States.",
		KeyInfo: KeyInformation{
			FormNumber:              "I-485",
			Deadlines:               []string{"File before current status expires"},
			RequiredDocuments:       []string{"I-693 medical exam", "I-864 affidavit of support", "Passport photos"},
			Fees:                    []string{"$1,140 filing fee", "$85 biometrics fee"},
			EligibilityRequirements: []string{"Must be physically present in US", "Must have qualifying basis"},
			ProcessingTime:          "8-14 months",
		},
		Recommendations: []string{
			"Complete medical examination before filing",
			"Ensure all supporting documents are current",
			"File concurrently with other required forms",
			"Maintain valid status during processing",
			"Prepare for biometrics appointment",
		},
		Questions: []string{
			"What is your current immigration status?",
			"When did you last enter the United States?",
			"Have you completed the I-693 medical examination?",
		},
		patterns: []string{"i-485", "application to register permanent residence"},
	},
	"I-765": {
		Number: "I-765",
		Title:  "Application for Employment Authorization",
		Summary: "Form I-765 is an Application for Employment Authorization Document " +
			"(EAD). This form allows certain non-citizens to work legally in the " +
			"United States.",
		KeyInfo: KeyInformation{
			FormNumber:              "I-765",
			Deadlines:               []string{"File 90 days before current EAD expires"},
			RequiredDocuments:       []string{"Passport photos", "Current EAD (if renewing)", "Supporting documents"},
			Fees:                    []string{"$410 filing fee"},
			EligibilityRequirements: []string{"Must have valid immigration status", "Must be eligible for employment authorization"},
			ProcessingTime:          "3-5 months",
		},
		Recommendations: []string{
			"File renewal applications early",
			"Include all required supporting documents",
			"Keep track of expiration dates",
			"Consider premium processing for urgent cases",
			"Notify employer of status changes",
		},
		Questions: []string{
			"What is your eligibility category?",
			"Is this a renewal or a first-time application?",
			"When does your current work authorization expire?",
		},
		patterns: []string{"i-765", "application for employment authorization"},
	},
	"I-821D": {
		Number:   "I-821D",
		Title:    "Consideration of Deferred Action for Childhood Arrivals",
		patterns: []string{"i-821d", "daca", "deferred action"},
	},
	"I-90": {
		Number:   "I-90",
		Title:    "Application to Replace Permanent Resident Card",
		patterns: []string{"i-90", "application to replace permanent resident card"},
	},
	"N-400": {
		Number:   "N-400",
		Title:    "Application for Naturalization",
		patterns: []string{"n-400", "application for naturalization"},
	},
	"I-864": {
		Number:   "I-864",
		Title:    "Affidavit of Support",
		patterns: []string{"i-864", "affidavit of support"},
	},
	"I-693": {
		Number:   "I-693",
		Title:    "Report of Medical Examination and Vaccination Record",
		patterns: []string{"i-693", "report of medical examination"},
	},
	"G-1145": {
		Number:   "G-1145",
		Title:    "E-Notification of Application/Petition Acceptance",
		patterns: []string{"g-1145", "e-notification"},
	},
	"I-131": {
		Number:   "I-131",
		Title:    "Application for Travel Document",
		patterns: []string{"i-131", "application for travel document"},
	},
}

// Describe returns analysis content for a form number. Uncataloged numbers
// and cataloged forms without full content degrade to generic guidance so
// mock responses stay structurally complete for every input.
func Describe(number string) Form {
	f, ok := catalog[number]
	if ok && f.Summary != "" {
		return f
	}

	title := "Immigration Document"
	if ok {
		title = f.Title
	}

	return Form{
		Number:  number,
		Title:   title,
		Summary: "This appears to be an immigration document of type: " + number + ".",
		KeyInfo: KeyInformation{
			FormNumber:     number,
			ProcessingTime: "varies by form and service center",
		},
		Recommendations: []string{
			"Consult with an immigration attorney for specific guidance",
		},
		Questions: []string{
			"What form are you filing?",
			"What is your current immigration status?",
		},
	}
}

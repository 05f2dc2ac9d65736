package prompts

const summarySpec = `Respond with plain prose, no markdown headings or fencing. A single summary of at most 200 words.`

const keyInformationSpec = `Respond with a JSON object matching this exact structure:

{
  "form_number": "<form number or empty string>",
  "deadlines": ["<deadline1>", "<deadline2>"],
  "required_documents": ["<doc1>", "<doc2>"],
  "fees": ["<fee1>", "<fee2>"],
  "eligibility_requirements": ["<req1>", "<req2>"],
  "processing_time": "<time estimate or empty string>"
}

Field constraints:
- form_number: The USCIS form number if identifiable (e.g., "I-130").
- deadlines: Filing windows and response deadlines stated in the document.
- required_documents: Supporting evidence the filer must submit.
- fees: Filing fees with amounts when stated.
- eligibility_requirements: Conditions the filer must meet.
- processing_time: Current expected processing time if stated.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Use empty strings and empty arrays for details not present
- Never invent amounts, dates, or requirements`

const recommendationsSpec = `Respond with one recommendation per line. No numbering, bullets, or markdown. Each line is a complete sentence. Between three and eight lines.`

const questionSpec = `Respond with plain prose, no markdown. Answer the question directly, then add context only if it changes what the reader should do.`

const simplifySpec = `Respond with the rewritten text only. Plain prose, short sentences, no markdown, no preamble about what you changed.`

const assistantSpec = `Respond with plain prose. For lists of rights or steps, use one item per line without numbering or bullets.`

var specs = map[Stage]string{
	StageSummary:         summarySpec,
	StageKeyInformation:  keyInformationSpec,
	StageRecommendations: recommendationsSpec,
	StageQuestion:        questionSpec,
	StageSimplify:        simplifySpec,
	StageAssistant:       assistantSpec,
}

// Spec returns the hardcoded response specification for an assistant stage.
// Specifications define the expected output format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}

package prompts

import (
	"encoding/json"
	"slices"
)

// Stage represents an assistant stage that a prompt override targets.
type Stage string

// Valid assistant stages.
const (
	StageSummary         Stage = "summary"
	StageKeyInformation  Stage = "key_information"
	StageRecommendations Stage = "recommendations"
	StageQuestion        Stage = "question"
	StageSimplify        Stage = "simplify"
	StageAssistant       Stage = "assistant"
)

var stages = []Stage{
	StageSummary,
	StageKeyInformation,
	StageRecommendations,
	StageQuestion,
	StageSimplify,
	StageAssistant,
}

// Stages returns the list of valid assistant stages.
func Stages() []Stage {
	return stages
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known assistant stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}

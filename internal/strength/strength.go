// Package strength implements the rule-based password scorer: seven
// fixed criteria, a weighted score out of MaxScore, the feedback for
// every unmet criterion and the verdict/color derived from the score.
//
// Everything in this package is pure and safe for concurrent use.
package strength

import (
	"encoding/json"
)

type Result struct {
	Score    int             `json:"score" yaml:"score"`
	MaxScore int             `json:"maxScore" yaml:"maxScore"`
	Criteria CriteriaResults `json:"criteria" yaml:"criteria"`
	Feedback []string        `json:"feedback" yaml:"feedback"`
	Verdict  Verdict         `json:"verdict" yaml:"verdict"`
	Color    Color           `json:"color" yaml:"color"`
}

// Percent returns the score as a fraction of MaxScore
func (r Result) Percent() float64 {
	if r.MaxScore == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.MaxScore)
}

// IsMet returns whether the criterion `c` was satisfied
func (r Result) IsMet(c Criterion) bool {
	met, _ := r.Criteria.Get(c)
	return met
}

// resultView is the serialised form of a Result, it carries the
// derived values so that consumers do not need to recompute them
type resultView struct {
	Score    int             `json:"score" yaml:"score"`
	MaxScore int             `json:"maxScore" yaml:"maxScore"`
	Percent  float64         `json:"percent" yaml:"percent"`
	Criteria CriteriaResults `json:"criteria" yaml:"criteria"`
	Feedback []string        `json:"feedback" yaml:"feedback"`
	Verdict  Verdict         `json:"verdict" yaml:"verdict"`
	Message  string          `json:"message" yaml:"message"`
	Color    Color           `json:"color" yaml:"color"`
	Hex      string          `json:"hex" yaml:"hex"`
}

func (r Result) view() resultView {
	return resultView{
		Score:    r.Score,
		MaxScore: r.MaxScore,
		Percent:  r.Percent(),
		Criteria: r.Criteria,
		Feedback: r.Feedback,
		Verdict:  r.Verdict,
		Message:  r.Verdict.Message(),
		Color:    r.Color,
		Hex:      r.Color.Hex(),
	}
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

func (r Result) MarshalYAML() (any, error) {
	return r.view(), nil
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var raw resultView
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Result{
		Score:    raw.Score,
		MaxScore: raw.MaxScore,
		Criteria: raw.Criteria,
		Feedback: raw.Feedback,
		Verdict:  raw.Verdict,
		Color:    raw.Color,
	}
	return nil
}

// Evaluate scores `password` as given, without trimming or
// normalisation. All criteria are always evaluated
func Evaluate(password string) Result {
	result := Result{
		MaxScore: MaxScore,
		Criteria: make(CriteriaResults, 0, len(definitions)),
		Feedback: []string{},
	}
	for _, definition := range definitions {
		isMet := definition.check(password)
		result.Criteria = append(result.Criteria, CriterionResult{
			Name: definition.Name,
			Met:  isMet,
		})
		if isMet {
			result.Score += definition.Weight
			continue
		}
		result.Feedback = append(result.Feedback, definition.Feedback)
	}
	result.Verdict = VerdictFor(result.Score)
	result.Color = ColorFor(result.Score)
	return result
}

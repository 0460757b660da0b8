package strength

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition describes how a single criterion is evaluated and
// presented
type Definition struct {
	Name     Criterion `json:"name" yaml:"name"`
	Label    string    `json:"label" yaml:"label"`
	Weight   int       `json:"weight" yaml:"weight"`
	Feedback string    `json:"feedback" yaml:"feedback"`

	check rule
}

var definitions = []Definition{
	{Name: CriterionLength, Weight: 2, Feedback: FeedbackLength, check: hasMinLength(MinimumLength)},
	{Name: CriterionUppercase, Weight: 2, Feedback: FeedbackUppercase, check: hasRuneInRange('A', 'Z')},
	{Name: CriterionLowercase, Weight: 2, Feedback: FeedbackLowercase, check: hasRuneInRange('a', 'z')},
	{Name: CriterionNumbers, Weight: 2, Feedback: FeedbackNumbers, check: hasRuneInRange('0', '9')},
	{Name: CriterionSpecial, Weight: 2, Feedback: FeedbackSpecial, check: hasRuneInSet(SpecialCharacters)},
	{Name: CriterionNoSpaces, Weight: 1, Feedback: FeedbackNoSpaces, check: hasNoRune(' ')},
	{Name: CriterionNoCommon, Weight: 1, Feedback: FeedbackNoCommon, check: isNotInDenylist(commonPasswords)},
}

func init() {
	for i := range definitions {
		definitions[i].Label = definitions[i].Name.Label()
	}
}

// Definitions returns a copy of the criterion definitions in
// evaluation order
func Definitions() []Definition {
	output := make([]Definition, len(definitions))
	copy(output, definitions)
	return output
}

// Label converts the criterion name into its display form, eg.
// `no_spaces` becomes `No Spaces`
func (c Criterion) Label() string {
	words := strings.Split(string(c), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// IsValid returns true if the criterion is one of the known criteria
func (c Criterion) IsValid() bool {
	for _, criterion := range Criteria {
		if c == criterion {
			return true
		}
	}
	return false
}

type CriterionResult struct {
	Name Criterion
	Met  bool
}

// CriteriaResults is an ordered mapping of criterion to whether it
// was met, when marshalled it is an object whose keys keep the
// evaluation order
type CriteriaResults []CriterionResult

// Get returns the status of the criterion `c` and whether it was
// present at all
func (c CriteriaResults) Get(criterion Criterion) (met bool, ok bool) {
	for _, result := range c {
		if result.Name == criterion {
			return result.Met, true
		}
	}
	return false, false
}

// MetCount returns the number of criteria that were met
func (c CriteriaResults) MetCount() int {
	count := 0
	for _, result := range c {
		if result.Met {
			count++
		}
	}
	return count
}

func (c CriteriaResults) MarshalJSON() ([]byte, error) {
	var output bytes.Buffer
	output.WriteByte('{')
	for i, result := range c {
		if i > 0 {
			output.WriteByte(',')
		}
		key, err := json.Marshal(string(result.Name))
		if err != nil {
			return nil, err
		}
		output.Write(key)
		output.WriteByte(':')
		if result.Met {
			output.WriteString("true")
		} else {
			output.WriteString("false")
		}
	}
	output.WriteByte('}')
	return output.Bytes(), nil
}

func (c *CriteriaResults) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if _, err := decoder.Token(); err != nil {
		return err
	}
	results := CriteriaResults{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key, _ := keyToken.(string)
		var met bool
		if err := decoder.Decode(&met); err != nil {
			return err
		}
		results = append(results, CriterionResult{Name: Criterion(key), Met: met})
	}
	*c = results
	return nil
}

func (c CriteriaResults) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, result := range c {
		value := "false"
		if result.Met {
			value = "true"
		}
		node.Content = append(
			node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(result.Name)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value},
		)
	}
	return node, nil
}

package strength

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, len(Criteria))

	totalWeight := 0
	for i, def := range defs {
		assert.Equal(t, Criteria[i], def.Name)
		assert.NotEmpty(t, def.Feedback)
		totalWeight += def.Weight
	}
	assert.Equal(t, MaxScore, totalWeight)

	defs[0].Feedback = "changed"
	assert.Equal(t, FeedbackLength, Definitions()[0].Feedback)
}

func TestCriterionLabel(t *testing.T) {
	assert.Equal(t, "Length", CriterionLength.Label())
	assert.Equal(t, "No Spaces", CriterionNoSpaces.Label())
	assert.Equal(t, "No Common", CriterionNoCommon.Label())
}

func TestCriterionIsValid(t *testing.T) {
	for _, criterion := range Criteria {
		assert.True(t, criterion.IsValid())
	}
	assert.False(t, Criterion("entropy").IsValid())
}

func TestCriteriaResultsMarshalJsonKeepsOrder(t *testing.T) {
	data, err := json.Marshal(Evaluate("").Criteria)
	require.NoError(t, err)
	assert.Equal(
		t,
		`{"length":false,"uppercase":false,"lowercase":false,"numbers":false,"special":false,"no_spaces":true,"no_common":true}`,
		string(data),
	)

	var decoded CriteriaResults
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Evaluate("").Criteria, decoded)
}

func TestCriteriaResultsMarshalYamlKeepsOrder(t *testing.T) {
	data, err := yaml.Marshal(Evaluate("Pass word1").Criteria)
	require.NoError(t, err)
	assert.Equal(
		t,
		"length: true\nuppercase: true\nlowercase: true\nnumbers: true\nspecial: false\nno_spaces: false\nno_common: true\n",
		string(data),
	)
}

func TestResultMarshalJson(t *testing.T) {
	result := Evaluate("Passw0rd!")
	data, err := json.Marshal(result)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(12), raw["score"])
	assert.Equal(t, float64(1), raw["percent"])
	assert.Equal(t, "Strong", raw["verdict"])
	assert.Equal(t, "Good job!", raw["message"])
	assert.Equal(t, "#66bb6a", raw["hex"])

	var decoded Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result, decoded)
}

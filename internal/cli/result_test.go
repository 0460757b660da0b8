package cli

import (
	"pwmeter/internal/strength"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCriteria(t *testing.T) {
	left, right := splitCriteria(strength.Evaluate("x").Criteria)
	require.Len(t, left, 4)
	require.Len(t, right, 3)
	assert.Equal(t, strength.CriterionLength, left[0].Name)
	assert.Equal(t, strength.CriterionNumbers, left[3].Name)
	assert.Equal(t, strength.CriterionSpecial, right[0].Name)
	assert.Equal(t, strength.CriterionNoCommon, right[2].Name)
}

func TestRenderResult(t *testing.T) {
	output, err := RenderResult(strength.Evaluate("Pass word1"))
	require.NoError(t, err)
	assert.Contains(t, output, "Strength Score: 9/12")
	assert.Contains(t, output, "No Spaces")
	assert.Contains(t, output, "Suggestions")
	assert.Contains(t, output, strength.FeedbackSpecial)
	assert.Contains(t, output, strength.FeedbackNoSpaces)
	assert.Contains(t, output, "Strong - Good job!")

	suggestionsAt := strings.Index(output, "Suggestions")
	verdictAt := strings.Index(output, "Strong - Good job!")
	assert.Less(t, suggestionsAt, verdictAt)
}

func TestRenderResultWithoutSuggestions(t *testing.T) {
	output, err := RenderResult(strength.Evaluate("Passw0rd!"))
	require.NoError(t, err)
	assert.NotContains(t, output, "Suggestions")
	assert.Contains(t, output, "Strength Score: 12/12")
}

func TestRenderCriteriaTable(t *testing.T) {
	output, err := RenderCriteriaTable(strength.Evaluate("admin"))
	require.NoError(t, err)
	for _, definition := range strength.Definitions() {
		assert.Contains(t, output, definition.Label)
	}
	assert.Contains(t, output, "✅")
	assert.Contains(t, output, "❌")
}

package validate

import (
	"errors"
	"testing"

	"pwmeter/internal/strength"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordZeroOptsAlwaysPasses(t *testing.T) {
	for _, password := range []string{"", "password", "Passw0rd!"} {
		assert.NoError(t, Password(password, PasswordOpts{}))
	}
}

func TestPasswordMinScore(t *testing.T) {
	assert.NoError(t, Password("Passw0rd!", PasswordOpts{MinScore: 12}))
	assert.NoError(t, Password("password", PasswordOpts{MinScore: 5}))

	err := Password("password", PasswordOpts{MinScore: 9})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrorScoreTooLow)
	assert.Contains(t, err.Error(), "score[5]")
}

func TestPasswordRequiredCriteria(t *testing.T) {
	err := Password("Pass word1", PasswordOpts{
		Required: []strength.Criterion{
			strength.CriterionNoSpaces,
			strength.CriterionLength,
			strength.CriterionSpecial,
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrorNoSymbol)
	assert.ErrorIs(t, err, ErrorContainsSpace)
	assert.False(t, errors.Is(err, ErrorStringTooShort))
	assert.Equal(t, []string{"no_symbol", "contains_space"}, ErrorCodes(err))
}

func TestPasswordRequiredAndScore(t *testing.T) {
	err := Password("password", PasswordOpts{
		MinScore: 10,
		Required: []strength.Criterion{strength.CriterionNoCommon},
	})
	assert.Equal(t, []string{"common_password", "score_too_low"}, ErrorCodes(err))
}

func TestPasswordUnknownCriterion(t *testing.T) {
	err := Password("Passw0rd!", PasswordOpts{Required: []strength.Criterion{"entropy"}})
	assert.ErrorIs(t, err, ErrorUnknownCriterion)
	assert.Equal(t, []string{"unknown_criterion"}, ErrorCodes(err))
}

func TestParseCriteria(t *testing.T) {
	criteria, err := ParseCriteria([]string{"length", "no_common"})
	require.NoError(t, err)
	assert.Equal(t, []strength.Criterion{strength.CriterionLength, strength.CriterionNoCommon}, criteria)

	_, err = ParseCriteria([]string{"length", "bogus"})
	assert.ErrorIs(t, err, ErrorUnknownCriterion)
}

func TestErrorFor(t *testing.T) {
	assert.Equal(t, ErrorStringTooShort, ErrorFor(strength.CriterionLength))
	assert.Equal(t, ErrorCommonPassword, ErrorFor(strength.CriterionNoCommon))
	assert.ErrorIs(t, ErrorFor("bogus"), ErrorUnknownCriterion)
	assert.Nil(t, ErrorCodes(nil))
}

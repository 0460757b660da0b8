package validate

import (
	"errors"
	"fmt"
	"pwmeter/internal/strength"
)

var (
	ErrorCommonPassword = errors.New("common_password")
	ErrorContainsSpace  = errors.New("contains_space")
	ErrorNoDigit        = errors.New("no_digit")
	ErrorNoLowercase    = errors.New("no_lowercase")
	ErrorNoSymbol       = errors.New("no_symbol")
	ErrorNoUppercase    = errors.New("no_uppercase")
	ErrorScoreTooLow    = errors.New("score_too_low")
	ErrorStringTooShort = errors.New("string_too_short")

	ErrorUnknownCriterion = errors.New("unknown_criterion")
)

var criterionErrors = map[strength.Criterion]error{
	strength.CriterionLength:    ErrorStringTooShort,
	strength.CriterionUppercase: ErrorNoUppercase,
	strength.CriterionLowercase: ErrorNoLowercase,
	strength.CriterionNumbers:   ErrorNoDigit,
	strength.CriterionSpecial:   ErrorNoSymbol,
	strength.CriterionNoSpaces:  ErrorContainsSpace,
	strength.CriterionNoCommon:  ErrorCommonPassword,
}

// ErrorFor returns the sentinel error reported when `criterion`
// is required but not met
func ErrorFor(criterion strength.Criterion) error {
	if err, ok := criterionErrors[criterion]; ok {
		return err
	}
	return fmt.Errorf("%w: %s", ErrorUnknownCriterion, criterion)
}

func meetsCriterion(result strength.Result, criterion strength.Criterion) StringRule {
	return func(string) error {
		if !result.IsMet(criterion) {
			return ErrorFor(criterion)
		}
		return nil
	}
}

func hasMinScore(result strength.Result, minScore int) StringRule {
	return func(string) error {
		if result.Score < minScore {
			return fmt.Errorf("%w: score[%v] is below the minimum of %v", ErrorScoreTooLow, result.Score, minScore)
		}
		return nil
	}
}

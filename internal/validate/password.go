package validate

import (
	"errors"
	"fmt"
	"pwmeter/internal/strength"
)

type PasswordOpts struct {
	// MinScore is the minimum score the password must reach, zero
	// disables the check
	MinScore int

	// Required lists criteria which must be met regardless of
	// the score
	Required []strength.Criterion
}

// ParseCriteria converts criterion names into criteria, returning an
// error for the first unknown name
func ParseCriteria(names []string) ([]strength.Criterion, error) {
	criteria := []strength.Criterion{}
	for _, name := range names {
		criterion := strength.Criterion(name)
		if !criterion.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrorUnknownCriterion, name)
		}
		criteria = append(criteria, criterion)
	}
	return criteria, nil
}

// Password enforces `opts` on `password`. Unmet required criteria are
// reported in evaluation order before the score check
func Password(password string, opts PasswordOpts) error {
	for _, criterion := range opts.Required {
		if !criterion.IsValid() {
			return fmt.Errorf("%w: %s", ErrorUnknownCriterion, criterion)
		}
	}
	required := map[strength.Criterion]struct{}{}
	for _, criterion := range opts.Required {
		required[criterion] = struct{}{}
	}

	result := strength.Evaluate(password)
	rules := []StringRule{}
	for _, criterion := range strength.Criteria {
		if _, ok := required[criterion]; ok {
			rules = append(rules, meetsCriterion(result, criterion))
		}
	}
	if opts.MinScore > 0 {
		rules = append(rules, hasMinScore(result, opts.MinScore))
	}
	return do(password, rules...)
}

// ErrorCodes flattens a joined error from Password into its sentinel
// error codes
func ErrorCodes(err error) []string {
	if err == nil {
		return nil
	}
	codes := []string{}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{codeOf(err)}
	}
	for _, e := range joined.Unwrap() {
		codes = append(codes, codeOf(e))
	}
	return codes
}

func codeOf(err error) string {
	sentinels := []error{ErrorScoreTooLow, ErrorUnknownCriterion}
	for _, sentinel := range criterionErrors {
		sentinels = append(sentinels, sentinel)
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

package validate

import (
	"errors"
)

type StringRule func(string) error

// andS runs all `input` rules and joins every error in the order
// the rules were provided
func andS(input ...StringRule) StringRule {
	return func(s string) error {
		errs := []error{}
		for _, runValidator := range input {
			if err := runValidator(s); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return errors.Join(errs...)
		}
		return nil
	}
}

func do(input string, validators ...StringRule) error {
	return andS(validators...)(input)
}

package cli

import "errors"

var (
	ErrorInvalidInput       = errors.New("invalid_input")
	ErrorPolicyFailed       = errors.New("policy_failed")
	ErrorServiceUnavailable = errors.New("service_unavailable")
	ErrorUserCancelled      = errors.New("user_cancelled")
)

package server

import "errors"

var (
	ErrorInvalidInput       = errors.New("invalid_input")
	ErrorMissingServiceLog  = errors.New("missing_service_log")
	ErrorPolicyFailed       = errors.New("policy_failed")
	ErrorUnknownCriterion   = errors.New("unknown_criterion")
	ErrorRequestBodyTooLong = errors.New("request_body_too_long")
)

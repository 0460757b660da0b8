package client

import "errors"

var (
	ErrorConnectionRefused    = errors.New("connection_refused")
	ErrorInvalidServerUrl     = errors.New("invalid_server_url")
	ErrorOutputNotPointer     = errors.New("output_not_pointer")
	ErrorPolicyFailed         = errors.New("policy_failed")
	ErrorRequestCreation      = errors.New("request_creation")
	ErrorRequestExecution     = errors.New("request_execution")
	ErrorResponseReading      = errors.New("response_reading")
	ErrorUnmarshalResponse    = errors.New("unmarshal_response")
	ErrorUnsuccessfulResponse = errors.New("unsuccessful_response")
)

package client

import (
	"errors"
	"fmt"
	"net/http"
	"pwmeter/internal/strength"
)

type EvaluateV1Input struct {
	Password string `json:"password"`
}

type EvaluateV1Output struct {
	Data strength.Result

	*http.Response
}

// EvaluateV1 evaluates `password` on the server
func (c Client) EvaluateV1(password string) (*EvaluateV1Output, error) {
	var outputData strength.Result
	outputClient, err := c.do(request{
		Method: http.MethodPost,
		Path:   "/api/v1/evaluate",
		Data:   EvaluateV1Input{Password: password},
		Output: &outputData,
	})
	if outputClient == nil {
		return nil, err
	}
	return &EvaluateV1Output{
		Data:     outputData,
		Response: outputClient.Response,
	}, err
}

type ValidateV1Input struct {
	Password string   `json:"password"`
	MinScore int      `json:"minScore"`
	Required []string `json:"required"`
}

type ValidateV1OutputData struct {
	Passed bool            `json:"passed"`
	Errors []string        `json:"errors"`
	Result strength.Result `json:"result"`
}

type ValidateV1Output struct {
	Data ValidateV1OutputData

	*http.Response
}

// ValidateV1 checks a password against a policy on the server, a
// rejected password returns the output along with ErrorPolicyFailed
func (c Client) ValidateV1(input ValidateV1Input) (*ValidateV1Output, error) {
	var outputData ValidateV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodPost,
		Path:   "/api/v1/validate",
		Data:   input,
		Output: &outputData,
	})
	if outputClient == nil {
		return nil, err
	}
	output := &ValidateV1Output{
		Data:     outputData,
		Response: outputClient.Response,
	}
	if err != nil && errors.Is(err, ErrorUnsuccessfulResponse) && outputClient.StatusCode == http.StatusUnprocessableEntity {
		err = fmt.Errorf("%w: %v", ErrorPolicyFailed, outputData.Errors)
	}
	return output, err
}

type ListCriteriaV1Output struct {
	Data []strength.Definition

	*http.Response
}

// ListCriteriaV1 retrieves the criterion definitions used by the
// server
func (c Client) ListCriteriaV1() (*ListCriteriaV1Output, error) {
	var outputData []strength.Definition
	outputClient, err := c.do(request{
		Method: http.MethodGet,
		Path:   "/api/v1/criteria",
		Output: &outputData,
	})
	if outputClient == nil {
		return nil, err
	}
	return &ListCriteriaV1Output{
		Data:     outputData,
		Response: outputClient.Response,
	}, err
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"pwmeter/internal/common"
	"pwmeter/internal/strength"
	"pwmeter/internal/validate"
)

func registerCriteriaRoutes(opts RouteRegistrationOpts) {
	v1 := opts.Router.PathPrefix("/v1/criteria").Subrouter()

	v1.HandleFunc("", handleListCriteriaV1).Methods(http.MethodGet)
}

func registerEvaluateRoutes(opts RouteRegistrationOpts) {
	v1 := opts.Router.PathPrefix("/v1/evaluate").Subrouter()

	v1.HandleFunc("", handleEvaluateV1).Methods(http.MethodPost)
}

func registerValidateRoutes(opts RouteRegistrationOpts) {
	v1 := opts.Router.PathPrefix("/v1/validate").Subrouter()

	v1.HandleFunc("", handleValidateV1).Methods(http.MethodPost)
}

// readJsonBody reads the request body into `input`, the returned
// error is suitable for sending back to the caller
func readJsonBody(r *http.Request, input any) error {
	requestBody, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", ErrorInvalidInput)
	}
	if len(requestBody) > maxRequestBodySize {
		return fmt.Errorf("request body exceeds %v bytes: %w", maxRequestBodySize, ErrorRequestBodyTooLong)
	}
	if err := json.Unmarshal(requestBody, input); err != nil {
		return fmt.Errorf("failed to parse request body: %w", ErrorInvalidInput)
	}
	return nil
}

type handleListCriteriaV1Output []strength.Definition

// handleListCriteriaV1 godoc
// @Summary      Lists the password criteria
// @Description  Returns every criterion in evaluation order with its weight and feedback message
// @Tags         pwmeter
// @Produce      json
// @Success      200 {object} commonHttpResponse "ok"
// @Router       /api/v1/criteria [get]
func handleListCriteriaV1(w http.ResponseWriter, r *http.Request) {
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleListCriteriaV1Output(strength.Definitions()))
}

type handleEvaluateV1Input struct {
	Password string `json:"password"`
}

// handleEvaluateV1 godoc
// @Summary      Evaluates the strength of a password
// @Description  Scores the password against every criterion and returns the breakdown, feedback and verdict
// @Tags         pwmeter
// @Accept       json
// @Produce      json
// @Param        request body handleEvaluateV1Input true "Password to evaluate"
// @Success      200 {object} commonHttpResponse "ok"
// @Failure      400 {object} commonHttpResponse "bad request"
// @Router       /api/v1/evaluate [post]
func handleEvaluateV1(w http.ResponseWriter, r *http.Request) {
	log := common.GetRequestLogger(r)
	var input handleEvaluateV1Input
	if err := readJsonBody(r, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request", err)
		return
	}

	result := strength.Evaluate(input.Password)
	recordEvaluation(result)
	log(common.LogLevelDebug, fmt.Sprintf("evaluated password with score[%v] and verdict[%s]", result.Score, result.Verdict))

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", result)
}

type handleValidateV1Input struct {
	Password string   `json:"password"`
	MinScore int      `json:"minScore"`
	Required []string `json:"required"`
}

type handleValidateV1Output struct {
	Passed bool            `json:"passed"`
	Errors []string        `json:"errors"`
	Result strength.Result `json:"result"`
}

// handleValidateV1 godoc
// @Summary      Validates a password against a policy
// @Description  Evaluates the password and checks it against a minimum score and a list of required criteria
// @Tags         pwmeter
// @Accept       json
// @Produce      json
// @Param        request body handleValidateV1Input true "Password and policy"
// @Success      200 {object} commonHttpResponse "ok"
// @Failure      400 {object} commonHttpResponse "bad request"
// @Failure      422 {object} commonHttpResponse "policy failed"
// @Router       /api/v1/validate [post]
func handleValidateV1(w http.ResponseWriter, r *http.Request) {
	log := common.GetRequestLogger(r)
	var input handleValidateV1Input
	if err := readJsonBody(r, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request", err)
		return
	}
	if input.MinScore < 0 || input.MinScore > strength.MaxScore {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, fmt.Sprintf("minScore must be between 0 and %v", strength.MaxScore), ErrorInvalidInput)
		return
	}
	required, err := validate.ParseCriteria(input.Required)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "unknown criterion", err, ErrorUnknownCriterion.Error())
		return
	}

	result := strength.Evaluate(input.Password)
	recordEvaluation(result)
	output := handleValidateV1Output{
		Passed: true,
		Errors: []string{},
		Result: result,
	}
	if err := validate.Password(input.Password, validate.PasswordOpts{
		MinScore: input.MinScore,
		Required: required,
	}); err != nil {
		if errors.Is(err, validate.ErrorUnknownCriterion) {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "unknown criterion", err, ErrorUnknownCriterion.Error())
			return
		}
		output.Passed = false
		output.Errors = validate.ErrorCodes(err)
		log(common.LogLevelDebug, fmt.Sprintf("password failed policy with errors[%v]", output.Errors))
		common.SendHttpFailResponse(w, r, http.StatusUnprocessableEntity, "password does not meet the policy", ErrorPolicyFailed, output)
		return
	}

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", output)
}

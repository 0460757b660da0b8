package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"reflect"
	"syscall"
)

type request struct {
	Method string
	Path   string
	Data   any
	Output any
}

type response struct {
	Message string

	*http.Response

	data json.RawMessage
}

// GetErrorCode returns the error code sent by the server when the
// data of a failed response is a plain string
func (r *response) GetErrorCode() string {
	if r == nil {
		return ""
	}
	var code string
	if err := json.Unmarshal(r.data, &code); err != nil {
		return ""
	}
	return code
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Success bool            `json:"success"`
}

func isSuccessResponse(r *http.Response) bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// do sends `input` to the server and decodes the data of the response
// into `input.Output`. The data of unsuccessful responses is decoded
// too when it is an object so that callers can inspect it
func (c Client) do(input request) (*response, error) {
	if input.Output != nil && reflect.ValueOf(input.Output).Kind() != reflect.Pointer {
		return nil, ErrorOutputNotPointer
	}

	serverUrl := *c.ServerUrl
	serverUrl.Path = path.Join("/", serverUrl.Path, input.Path)

	var requestBody io.Reader
	if input.Data != nil {
		requestBodyData, err := json.Marshal(input.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal data: %w: %w", ErrorRequestCreation, err)
		}
		requestBody = bytes.NewBuffer(requestBodyData)
	}
	httpRequest, err := http.NewRequest(input.Method, serverUrl.String(), requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w: %w", ErrorRequestCreation, err)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("pwmeter/sdk/client-%s", c.Id))
	if c.BasicAuth != nil {
		httpRequest.SetBasicAuth(c.BasicAuth.Username, c.BasicAuth.Password)
	}
	if c.BearerAuth != nil {
		httpRequest.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.BearerAuth.Token))
	}

	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, fmt.Errorf("failed to connect to %s: %w", serverUrl.Host, ErrorConnectionRefused)
		}
		return nil, fmt.Errorf("failed to execute http request: %w: %w", ErrorRequestExecution, err)
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w: %w", ErrorResponseReading, err)
	}
	output := &response{Response: httpResponse}
	var body envelope
	if err := json.Unmarshal(responseBody, &body); err != nil {
		if !isSuccessResponse(httpResponse) {
			return output, fmt.Errorf("failed to receive a successful response (status code: %v): %w", httpResponse.StatusCode, ErrorUnsuccessfulResponse)
		}
		return output, fmt.Errorf("failed to parse response: %w: %w", ErrorUnmarshalResponse, err)
	}
	output.Message = body.Message
	output.data = body.Data

	if !isSuccessResponse(httpResponse) {
		if input.Output != nil && bytes.HasPrefix(bytes.TrimSpace(body.Data), []byte("{")) {
			_ = json.Unmarshal(body.Data, input.Output)
		}
		return output, fmt.Errorf("failed to receive a successful response (status code: %v, message: %s): %w", httpResponse.StatusCode, body.Message, ErrorUnsuccessfulResponse)
	}
	if input.Output != nil && len(body.Data) > 0 {
		if err := json.Unmarshal(body.Data, input.Output); err != nil {
			return output, fmt.Errorf("failed to parse response data: %w: %w", ErrorUnmarshalResponse, err)
		}
	}
	return output, nil
}

package client

import (
	"net/http"
	"net/http/httptest"
	"pwmeter/internal/common"
	"pwmeter/internal/server"
	"pwmeter/internal/strength"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	handler, err := server.GetHttpApplication(server.HttpApplicationOpts{
		ServiceLogs: common.GetNoopServiceLog(),
	})
	require.NoError(t, err)
	testServer := httptest.NewServer(handler)
	t.Cleanup(testServer.Close)
	client, err := NewClient(NewClientOpts{
		ServerUrl: testServer.URL,
		Id:        "test",
	})
	require.NoError(t, err)
	return client
}

func TestNewClientInvalidServerUrl(t *testing.T) {
	for _, serverUrl := range []string{"", "localhost:8080", "://nope", "/just/a/path"} {
		_, err := NewClient(NewClientOpts{ServerUrl: serverUrl})
		assert.ErrorIs(t, err, ErrorInvalidServerUrl, serverUrl)
	}
}

func TestEvaluateV1(t *testing.T) {
	client := newTestClient(t)
	output, err := client.EvaluateV1("Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, output.StatusCode)
	assert.Equal(t, strength.Evaluate("Passw0rd!"), output.Data)
}

func TestValidateV1(t *testing.T) {
	client := newTestClient(t)

	output, err := client.ValidateV1(ValidateV1Input{Password: "Passw0rd!", MinScore: 9})
	require.NoError(t, err)
	assert.True(t, output.Data.Passed)
	assert.Empty(t, output.Data.Errors)

	output, err = client.ValidateV1(ValidateV1Input{
		Password: "qwerty",
		MinScore: 9,
		Required: []string{string(strength.CriterionNoCommon)},
	})
	assert.ErrorIs(t, err, ErrorPolicyFailed)
	require.NotNil(t, output)
	assert.Equal(t, http.StatusUnprocessableEntity, output.StatusCode)
	assert.False(t, output.Data.Passed)
	assert.Equal(t, []string{"common_password", "score_too_low"}, output.Data.Errors)
	assert.Equal(t, 3, output.Data.Result.Score)
}

func TestValidateV1UnknownCriterion(t *testing.T) {
	client := newTestClient(t)
	output, err := client.ValidateV1(ValidateV1Input{Password: "abc", Required: []string{"entropy"}})
	assert.ErrorIs(t, err, ErrorUnsuccessfulResponse)
	assert.NotErrorIs(t, err, ErrorPolicyFailed)
	require.NotNil(t, output)
	assert.Equal(t, http.StatusBadRequest, output.StatusCode)
}

func TestListCriteriaV1(t *testing.T) {
	client := newTestClient(t)
	output, err := client.ListCriteriaV1()
	require.NoError(t, err)
	require.Len(t, output.Data, len(strength.Criteria))
	for i, definition := range output.Data {
		assert.Equal(t, strength.Criteria[i], definition.Name)
	}
}

func TestHealthcheckPing(t *testing.T) {
	client := newTestClient(t)
	output, err := client.HealthcheckPing()
	require.NoError(t, err)
	assert.Equal(t, "ok", output.Data.Status)
}

func TestConnectionRefused(t *testing.T) {
	testServer := httptest.NewServer(http.NotFoundHandler())
	serverUrl := testServer.URL
	testServer.Close()

	client, err := NewClient(NewClientOpts{ServerUrl: serverUrl})
	require.NoError(t, err)
	_, err = client.EvaluateV1("abc")
	assert.ErrorIs(t, err, ErrorConnectionRefused)
}

func TestAuthHeaders(t *testing.T) {
	receivedRequests := make(chan *http.Request, 1)
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedRequests <- r.Clone(r.Context())
		common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", HealthcheckPingOutputData{Status: "ok"})
	}))
	t.Cleanup(testServer.Close)

	client, err := NewClient(NewClientOpts{
		ServerUrl:  testServer.URL + "/base",
		BasicAuth:  &NewClientBasicAuthOpts{Username: "user", Password: "pass"},
		BearerAuth: &NewClientBearerAuthOpts{Token: "token"},
		Id:         "abc",
	})
	require.NoError(t, err)
	_, err = client.HealthcheckPing()
	require.NoError(t, err)
	receivedRequest := <-receivedRequests
	assert.Equal(t, "/base/healthz", receivedRequest.URL.Path)
	assert.Equal(t, "pwmeter/sdk/client-abc", receivedRequest.UserAgent())
	assert.Contains(t, receivedRequest.Header.Values("Authorization"), "Bearer token")
}

package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts NewHttpServerOpts) http.Handler {
	t.Helper()
	opts.ServiceLogs = GetNoopServiceLog()
	if opts.Handler == nil {
		opts.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			SendHttpSuccessResponse(w, r, http.StatusOK, "ok", "hello")
		})
	}
	server, err := NewHttpServer(opts)
	require.NoError(t, err)
	return server.Server.Handler
}

func TestRequestLoggerSetsTraceId(t *testing.T) {
	handler := newTestServer(t, NewHttpServerOpts{})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Trace-Id"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Trace-Id", "trace-123")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "trace-123", recorder.Header().Get("X-Trace-Id"))

	var response HttpResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "hello", response.Data)
}

func TestBearerAuth(t *testing.T) {
	handler := newTestServer(t, NewHttpServerOpts{
		BearerAuth: &NewHttpServerBearerAuthOpts{Token: "0123456789abcdef"},
	})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer wrong")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer 0123456789abcdef")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBasicAuth(t *testing.T) {
	checked := ""
	handler := newTestServer(t, NewHttpServerOpts{
		BasicAuth: &NewHttpServerBasicAuthOpts{Username: "user", Password: "Passw0rd!"},
		PasswordChecker: func(password string) string {
			checked = password
			return ""
		},
	})
	assert.Equal(t, "Passw0rd!", checked)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.SetBasicAuth("user", "Passw0rd!")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestNewHttpServerRejectsEmptyCredentials(t *testing.T) {
	_, err := NewHttpServer(NewHttpServerOpts{
		BasicAuth:   &NewHttpServerBasicAuthOpts{Username: "user"},
		ServiceLogs: GetNoopServiceLog(),
	})
	assert.Error(t, err)

	_, err = NewHttpServer(NewHttpServerOpts{
		BearerAuth:  &NewHttpServerBearerAuthOpts{},
		ServiceLogs: GetNoopServiceLog(),
	})
	assert.Error(t, err)
}

func TestIpAllowlist(t *testing.T) {
	handler := newTestServer(t, NewHttpServerOpts{
		IpAllowlist: &NewHttpServerIpAllowlistOpts{AllowedIps: []string{"10.0.0.0/8"}},
	})

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.168.1.1:1234"
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	request.RemoteAddr = "10.0.0.5:1234"
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCommonHttpEndpoints(t *testing.T) {
	router := mux.NewRouter()
	isReady := false
	RegisterCommonHttpEndpoints(CommonHttpEndpointsOpts{
		Router:      router,
		ServiceLogs: GetNoopServiceLog(),
		ReadinessChecks: []func() error{
			func() error {
				if !isReady {
					return errors.New("not ready")
				}
				return nil
			},
		},
	})
	router.NotFoundHandler = GetNotFoundHandler()
	handler := newTestServer(t, NewHttpServerOpts{Handler: router})

	for path, expectedStatus := range map[string]int{
		"/healthz": http.StatusOK,
		"/readyz":  http.StatusInternalServerError,
		"/metrics": http.StatusOK,
		"/nothing": http.StatusNotFound,
	} {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equalf(t, expectedStatus, recorder.Code, "path %s", path)
	}

	isReady = true
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

// Package client is the Go SDK for the pwmeter HTTP API
package client

import (
	"fmt"
	"net/http"
	"net/url"
	"pwmeter/internal/common"
)

type NewClientOpts struct {
	ServerUrl  string
	BasicAuth  *NewClientBasicAuthOpts
	BearerAuth *NewClientBearerAuthOpts
	Id         string
}

type NewClientBasicAuthOpts struct {
	Username string
	Password string
}

type NewClientBearerAuthOpts struct {
	Token string
}

func NewClient(opts NewClientOpts) (*Client, error) {
	client := &Client{
		BasicAuth:  opts.BasicAuth,
		BearerAuth: opts.BearerAuth,
		HttpClient: &http.Client{
			Timeout: common.DefaultDurationConnectionTimeout,
		},
		Id: opts.Id,
	}

	serverUrl, err := url.Parse(opts.ServerUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided serverUrl[%s]: %w: %w", opts.ServerUrl, ErrorInvalidServerUrl, err)
	}
	if serverUrl.Scheme == "" || serverUrl.Host == "" {
		return nil, fmt.Errorf("failed to determine url scheme and host of serverUrl[%s]: %w", opts.ServerUrl, ErrorInvalidServerUrl)
	}
	client.ServerUrl = serverUrl

	return client, nil
}

type Client struct {
	// ServerUrl is the URL where the pwmeter server is accessible at
	ServerUrl  *url.URL
	BasicAuth  *NewClientBasicAuthOpts
	BearerAuth *NewClientBearerAuthOpts

	// HttpClient is the HTTP client
	HttpClient *http.Client

	// Id will be included in the user-agent for identification
	Id string
}

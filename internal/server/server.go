package server

import (
	"fmt"
	"pwmeter/internal/common"
	"pwmeter/internal/strength"
	"strings"
)

type StartHttpServerOpts struct {
	Addr        string
	BasicAuth   *common.NewHttpServerBasicAuthOpts
	BearerAuth  *common.NewHttpServerBearerAuthOpts
	Done        chan common.Done
	IpAllowlist *common.NewHttpServerIpAllowlistOpts
	ServiceLogs chan<- common.ServiceLog
}

// NewHttpServer returns the api server without starting it
func NewHttpServer(opts StartHttpServerOpts) (*common.HttpServer, error) {
	handler, err := GetHttpApplication(HttpApplicationOpts{
		ServiceLogs: opts.ServiceLogs,
	})
	if err != nil {
		return nil, err
	}
	server, err := common.NewHttpServer(common.NewHttpServerOpts{
		Addr:            opts.Addr,
		BasicAuth:       opts.BasicAuth,
		BearerAuth:      opts.BearerAuth,
		Done:            opts.Done,
		IpAllowlist:     opts.IpAllowlist,
		Handler:         handler,
		ServiceLogs:     opts.ServiceLogs,
		PasswordChecker: checkCredentialStrength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create http server: %w", err)
	}
	return server, nil
}

// StartHttpServer starts the api server and blocks until `opts.Done`
// is closed or the server fails
func StartHttpServer(opts StartHttpServerOpts) error {
	server, err := NewHttpServer(opts)
	if err != nil {
		return err
	}
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	return nil
}

// checkCredentialStrength returns a warning when `password` is not
// rated as strong
func checkCredentialStrength(password string) string {
	result := strength.Evaluate(password)
	if result.Verdict == strength.VerdictStrong {
		return ""
	}
	return fmt.Sprintf("rated %s (%v/%v): %s", result.Verdict, result.Score, result.MaxScore, strings.Join(result.Feedback, ", "))
}

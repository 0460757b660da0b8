package server

import (
	"errors"
	"fmt"
	"net/http"
	"pwmeter/internal/common"
	"strings"

	_ "pwmeter/internal/server/docs"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type HttpApplicationOpts struct {
	// LivenessChecks are sequentially executed when the liveness probe endpoint is hit
	LivenessChecks []func() error

	// ReadinessChecks are sequentially executed when the readiness probe endpoint is hit
	ReadinessChecks []func() error

	// ServiceLogs is a centralised channel where logs get sent to
	ServiceLogs chan<- common.ServiceLog
}

func (o HttpApplicationOpts) Validate() error {
	errs := []error{}

	if o.ServiceLogs == nil {
		errs = append(errs, fmt.Errorf("failed to receive a service log: %w", ErrorMissingServiceLog))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// GetHttpApplication godoc
// @title           pwmeter API
// @version         1.0
// @description     Rule-based password strength evaluation
// @contact.name    API Support
// @tags            pwmeter
// @host            localhost:8080
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Used when the server is started with a bearer token
func GetHttpApplication(opts HttpApplicationOpts) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialise http application: %w", err)
	}

	handler := mux.NewRouter()
	handler.NotFoundHandler = common.GetNotFoundHandler()
	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:          handler,
		ServiceLogs:     opts.ServiceLogs,
		LivenessChecks:  opts.LivenessChecks,
		ReadinessChecks: opts.ReadinessChecks,
	})

	api := handler.PathPrefix("/api").Subrouter()
	apiOpts := RouteRegistrationOpts{
		Router:      api,
		ServiceLogs: opts.ServiceLogs,
	}

	registerCriteriaRoutes(apiOpts)
	registerEvaluateRoutes(apiOpts)
	registerValidateRoutes(apiOpts)

	handler.PathPrefix("/docs").Handler(httpSwagger.WrapHandler)

	if err := handler.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "registered route[%s] with methods[%s]", pathTemplate, strings.Join(methods, "|"))
		return nil
	}); err != nil {
		return nil, err
	}

	return handler, nil
}

package server

import (
	"pwmeter/internal/common"

	"github.com/gorilla/mux"
)

// maxRequestBodySize caps the size of request bodies read by the
// api handlers
const maxRequestBodySize = 64 * 1024

type commonHttpResponse common.HttpResponse

type RouteRegistrationOpts struct {
	Router      *mux.Router
	ServiceLogs chan<- common.ServiceLog
}

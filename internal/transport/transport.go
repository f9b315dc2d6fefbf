package transport

import (
	"net"

	"mini_http/http/request"
	"mini_http/http/response"
)

type Transport interface {
	Listen() (net.Listener, error)
	Serve(listener net.Listener) error
}

type Dispatcher interface {
	Handle(req *request.Request) *response.Response
}

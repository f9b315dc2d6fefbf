package router

import (
	"mini_http/http/path"
	"mini_http/http/request"
	"mini_http/http/response"
	"mini_http/types"

	"github.com/rs/zerolog"
)

// Handler serves one request. Handlers are shared by every connection worker
// and must be safe for concurrent use.
type Handler func(ctx *Context) *response.Response

type Route struct {
	Method   types.Method
	Template path.Template
	Handler  Handler
}

func NewRoute(method types.Method, template string, handler Handler) Route {
	return Route{
		Method:   method,
		Template: path.NewTemplate(template),
		Handler:  handler,
	}
}

// Router is the frozen, ordered route list.
type Router struct {
	routes []Route
	logger zerolog.Logger
}

func New(routes []Route, logger zerolog.Logger) *Router {
	frozen := make([]Route, len(routes))
	copy(frozen, routes)
	return &Router{
		routes: frozen,
		logger: logger,
	}
}

func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Handle runs the first route whose method equals the request method and whose
// template matches the request path. Unrouted requests get 404.
func (r *Router) Handle(req *request.Request) *response.Response {
	for _, route := range r.routes {
		if route.Method != req.Method() {
			continue
		}

		m := route.Template.Matches(req.Path())
		if !m.Ok() {
			continue
		}

		resp := route.Handler(newContext(req, m.Variables()))
		if resp == nil {
			r.logger.Error().
				Str("method", route.Method.String()).
				Str("route", route.Template.Raw()).
				Msg("handler returned no response")
			return response.FromStatus(types.StatusInternalServerError)
		}
		return resp
	}

	return response.FromStatus(types.StatusNotFound)
}

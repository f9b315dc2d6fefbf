package bootstrap

import (
	"strconv"
	"sync"

	"mini_http/http/response"
	"mini_http/router"
	"mini_http/types"
)

// hits is shared by every connection worker.
type hits struct {
	mu    sync.Mutex
	count int
}

func (h *hits) inc() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	return h.count
}

func demoRoutes(counter *hits) []router.Route {
	return []router.Route{
		router.NewRoute(types.MethodGET, "/", func(*router.Context) *response.Response {
			return response.FromStatus(types.StatusOK)
		}),
		router.NewRoute(types.MethodGET, "/secret", func(*router.Context) *response.Response {
			return response.FromStatus(types.StatusForbidden)
		}),
		router.NewRoute(types.MethodGET, "/echo/{to_echo}", echo),
		router.NewRoute(types.MethodGET, "/echo/{to_echo}/{to_echo_two}", echoTwo),
		router.NewRoute(types.MethodGET, "/user-agent", userAgent),
		router.NewRoute(types.MethodPOST, "/data/{n}", func(*router.Context) *response.Response {
			return response.FromStatus(types.StatusAccepted)
		}),
		router.NewRoute(types.MethodGET, "/hits", func(*router.Context) *response.Response {
			return text(strconv.Itoa(counter.inc()))
		}),
	}
}

func text(body string) *response.Response {
	return response.New().
		Header("Content-Type", "text/plain").
		Status(types.StatusOK).
		Body(body).
		Build()
}

func echo(ctx *router.Context) *response.Response {
	return text(ctx.Var("to_echo"))
}

func echoTwo(ctx *router.Context) *response.Response {
	return text(ctx.Var("to_echo") + "/" + ctx.Var("to_echo_two"))
}

func userAgent(ctx *router.Context) *response.Response {
	return text(ctx.Header("User-Agent"))
}

package router

import "mini_http/http/request"

// Context is built fresh for every dispatch and must not be retained after the
// handler returns.
type Context struct {
	Request       *request.Request
	PathVariables map[string]string
}

func newContext(req *request.Request, variables map[string]string) *Context {
	if variables == nil {
		variables = map[string]string{}
	}
	return &Context{
		Request:       req,
		PathVariables: variables,
	}
}

func (c *Context) Var(name string) string {
	return c.PathVariables[name]
}

func (c *Context) Header(name string) string {
	return c.Request.Headers().Value(name)
}

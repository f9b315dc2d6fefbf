package request

import (
	"sort"

	"mini_http/http/path"
	"mini_http/types"
)

type RequestLine struct {
	Method  types.Method
	Path    path.Path
	Version types.Version
}

// Request is a decoded request head. It is never mutated after Decode returns.
type Request struct {
	line    RequestLine
	headers Headers
}

func (r *Request) Line() RequestLine      { return r.line }
func (r *Request) Method() types.Method   { return r.line.Method }
func (r *Request) Path() path.Path        { return r.line.Path }
func (r *Request) Version() types.Version { return r.line.Version }
func (r *Request) Headers() Headers       { return r.headers }

// Headers maps header names, exactly as received, to their trimmed values.
type Headers struct {
	values map[string]string
}

func (h Headers) Value(name string) string {
	return h.values[name]
}

func (h Headers) Lookup(name string) (string, bool) {
	v, ok := h.values[name]
	return v, ok
}

func (h Headers) Len() int {
	return len(h.values)
}

func (h Headers) Names() []string {
	names := make([]string, 0, len(h.values))
	for name := range h.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package response

import (
	"strconv"

	"mini_http/types"
)

type Builder struct {
	status  types.StatusCode
	version types.Version
	headers []Header
	body    *string
}

func New() *Builder {
	return &Builder{
		status:  types.StatusOK,
		version: types.DefaultVersion(),
	}
}

func (b *Builder) Status(status types.StatusCode) *Builder {
	b.status = status
	return b
}

func (b *Builder) Version(version types.Version) *Builder {
	b.version = version
	return b
}

// Header sets name to value. An existing header keeps its original position.
func (b *Builder) Header(name, value string) *Builder {
	for i := range b.headers {
		if b.headers[i].Name == name {
			b.headers[i].Value = value
			return b
		}
	}
	b.headers = append(b.headers, Header{Name: name, Value: value})
	return b
}

// Body sets the body and its Content-Length.
func (b *Builder) Body(body string) *Builder {
	b.body = &body
	return b.Header("Content-Length", strconv.Itoa(len(body)))
}

func (b *Builder) Build() *Response {
	headers := make([]Header, len(b.headers))
	copy(headers, b.headers)

	var body *string
	if b.body != nil {
		text := *b.body
		body = &text
	}

	return &Response{
		status:  b.status,
		version: b.version,
		headers: headers,
		body:    body,
	}
}

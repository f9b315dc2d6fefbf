package response

import (
	"bytes"
	"io"
	"strconv"

	"mini_http/types"
)

type Header struct {
	Name  string
	Value string
}

type Response struct {
	status  types.StatusCode
	version types.Version
	headers []Header
	body    *string
}

// FromStatus returns a response with the given status and every other field at
// its default.
func FromStatus(status types.StatusCode) *Response {
	return New().Status(status).Build()
}

func (r *Response) Status() types.StatusCode { return r.status }
func (r *Response) Version() types.Version   { return r.version }

func (r *Response) Headers() []Header {
	out := make([]Header, len(r.headers))
	copy(out, r.headers)
	return out
}

func (r *Response) Header(name string) (string, bool) {
	for _, h := range r.headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

func (r *Response) Body() (string, bool) {
	if r.body == nil {
		return "", false
	}
	return *r.body, true
}

// Bytes renders the response. The status line keeps a space before its CRLF.
func (r *Response) Bytes() []byte {
	var body string
	if r.body != nil {
		body = *r.body
	}

	size := 32 + len(body)
	for _, h := range r.headers {
		size += len(h.Name) + len(h.Value) + 4
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	buf.WriteString(r.version.String())
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(r.status.Code()))
	buf.WriteByte(' ')
	buf.WriteString(r.status.Reason())
	buf.WriteString(" \r\n")

	for _, h := range r.headers {
		buf.WriteString(h.Name)
		buf.WriteString(": ")
		buf.WriteString(h.Value)
		buf.WriteString("\r\n")
	}

	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.Bytes()
}

// WriteTo writes the whole response with a single Write call.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Method
		wantOk bool
	}{
		{"get", "GET", MethodGET, true},
		{"post", "POST", MethodPOST, true},
		{"put", "PUT", MethodPUT, true},
		{"delete", "DELETE", MethodDELETE, true},
		{"option", "OPTION", MethodOPTION, true},
		{"head", "HEAD", MethodHEAD, true},
		{"options is not a method here", "OPTIONS", 0, false},
		{"lowercase", "get", 0, false},
		{"empty", "", 0, false},
		{"patch", "PATCH", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMethod([]byte(tt.input))
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestMethodStringOutOfRange(t *testing.T) {
	assert.Equal(t, "UNKNOWN", Method(42).String())
}

func TestStatusTable(t *testing.T) {
	expected := map[int]string{
		200: "OK", 201: "Created", 202: "Accepted", 204: "No Content",
		301: "Moved Permanently", 302: "Found", 303: "See Other", 304: "Not Modified",
		307: "Temporary Redirect", 308: "Permanent Redirect",
		400: "Bad Request", 401: "Unauthorized", 403: "Forbidden", 404: "Not Found",
		405: "Method Not Allowed", 408: "Request Timeout", 409: "Conflict", 410: "Gone",
		413: "Payload Too Large", 414: "URI Too Long", 415: "Unsupported Media Type",
		416: "Range Not Satisfiable",
		500: "Internal Server Error", 501: "Not Implemented", 502: "Bad Gateway",
		503: "Service Unavailable", 504: "Gateway Timeout", 505: "HTTP Version Not Supported",
	}
	assert.Len(t, statusTable, len(expected))

	for code, reason := range expected {
		s, ok := StatusFromInt(code)
		if assert.True(t, ok, "code %d", code) {
			assert.Equal(t, code, s.Code())
			assert.Equal(t, reason, s.Reason())
			assert.Equal(t, reason, s.String())

			byName, ok := StatusFromName([]byte(s.Name()))
			assert.True(t, ok)
			assert.Equal(t, s, byName)
		}
	}
}

func TestStatusLookups(t *testing.T) {
	var zero StatusCode
	assert.Equal(t, StatusOK, zero)
	assert.Equal(t, 200, zero.Code())

	s, ok := StatusFromName([]byte("UriTooLong"))
	assert.True(t, ok)
	assert.Equal(t, StatusURITooLong, s)

	_, ok = StatusFromName([]byte("notfound"))
	assert.False(t, ok)

	_, ok = StatusFromInt(418)
	assert.False(t, ok)
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "HTTP/1.1", DefaultVersion().String())
	assert.Equal(t, "HTTP/1.1", Version{}.String())
	assert.Equal(t, "HTTP/1.0", Version{Name: "HTTP", Major: "1", Minor: "0"}.String())
	assert.True(t, Version{}.IsZero())
	assert.False(t, DefaultVersion().IsZero())
}

package response

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"testing"

	"mini_http/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	resp := New().Build()
	assert.Equal(t, types.StatusOK, resp.Status())
	assert.Equal(t, types.DefaultVersion(), resp.Version())
	assert.Empty(t, resp.Headers())
	_, ok := resp.Body()
	assert.False(t, ok)
	assert.Equal(t, "HTTP/1.1 200 OK \r\n\r\n", string(resp.Bytes()))
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name     string
		resp     *Response
		expected string
	}{
		{
			name:     "forbidden",
			resp:     FromStatus(types.StatusForbidden),
			expected: "HTTP/1.1 403 Forbidden \r\n\r\n",
		},
		{
			name:     "not found",
			resp:     FromStatus(types.StatusNotFound),
			expected: "HTTP/1.1 404 Not Found \r\n\r\n",
		},
		{
			name:     "accepted",
			resp:     FromStatus(types.StatusAccepted),
			expected: "HTTP/1.1 202 Accepted \r\n\r\n",
		},
		{
			name: "text body",
			resp: New().
				Header("Content-Type", "text/plain").
				Status(types.StatusOK).
				Body("banana").
				Build(),
			expected: "HTTP/1.1 200 OK \r\nContent-Type: text/plain\r\nContent-Length: 6\r\n\r\nbanana",
		},
		{
			name:     "custom version",
			resp:     New().Version(types.Version{Name: "HTTP", Major: "1", Minor: "0"}).Status(types.StatusHTTPVersionNotSupported).Build(),
			expected: "HTTP/1.0 505 HTTP Version Not Supported \r\n\r\n",
		},
		{
			name:     "empty body still sets length",
			resp:     New().Body("").Build(),
			expected: "HTTP/1.1 200 OK \r\nContent-Length: 0\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.resp.Bytes()))
		})
	}
}

func TestHeaderOverwriteKeepsPosition(t *testing.T) {
	resp := New().
		Header("A", "1").
		Header("B", "2").
		Header("A", "3").
		Build()

	assert.Equal(t, []Header{{"A", "3"}, {"B", "2"}}, resp.Headers())
	v, ok := resp.Header("A")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	_, ok = resp.Header("C")
	assert.False(t, ok)
}

func TestContentLengthMatchesBody(t *testing.T) {
	bodies := []string{"", "a", "banana", "héllo wörld", "日本語", "line\r\nbreak"}
	for _, body := range bodies {
		resp := New().Header("Content-Length", "999").Body("x").Body(body).Build()
		got, ok := resp.Header("Content-Length")
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(len(body)), got)

		b, ok := resp.Body()
		assert.True(t, ok)
		assert.Equal(t, body, b)
	}
}

func TestBuildSnapshotsBuilder(t *testing.T) {
	b := New().Header("A", "1").Body("first")
	first := b.Build()
	b.Header("A", "2").Body("second")

	v, _ := first.Header("A")
	assert.Equal(t, "1", v)
	body, _ := first.Body()
	assert.Equal(t, "first", body)
}

func TestRoundTripThroughNetHTTP(t *testing.T) {
	for code := 200; code < 600; code++ {
		status, ok := types.StatusFromInt(code)
		if !ok {
			continue
		}
		t.Run(strconv.Itoa(code), func(t *testing.T) {
			raw := New().
				Status(status).
				Header("Content-Type", "text/plain").
				Header("X-First", "1").
				Body("payload").
				Build().
				Bytes()

			resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(raw)), nil)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, code, resp.StatusCode)
			assert.Equal(t, 1, resp.ProtoMajor)
			assert.Equal(t, 1, resp.ProtoMinor)
			assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
			assert.Equal(t, "1", resp.Header.Get("X-First"))

			if code == 204 || code == 304 {
				return
			}
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, "payload", string(body))
		})
	}
}

func TestHeaderOrderOnWire(t *testing.T) {
	raw := string(New().Header("Z", "1").Header("A", "2").Header("M", "3").Build().Bytes())
	assert.Less(t, bytes.Index([]byte(raw), []byte("Z: 1")), bytes.Index([]byte(raw), []byte("A: 2")))
	assert.Less(t, bytes.Index([]byte(raw), []byte("A: 2")), bytes.Index([]byte(raw), []byte("M: 3")))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteTo(t *testing.T) {
	resp := New().Body("hi").Build()

	var buf bytes.Buffer
	n, err := resp.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, resp.Bytes(), buf.Bytes())

	_, err = resp.WriteTo(failingWriter{})
	assert.Error(t, err)
}

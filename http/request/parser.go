package request

import (
	"bytes"
	"fmt"
	"strings"

	"mini_http/http/path"
	"mini_http/internal/bytesplit"
	"mini_http/types"

	"golang.org/x/text/encoding/unicode"
)

var crlf = []byte("\r\n")

// Decode parses one request head. Anything after the blank line that ends the
// headers is ignored.
func Decode(buf []byte) (*Request, error) {
	lines := bytesplit.BySequence(buf, crlf)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no CRLF terminated line", ErrInvalidRequestLine)
	}

	line, err := parseRequestLine(lines[0])
	if err != nil {
		return nil, err
	}

	return &Request{
		line:    line,
		headers: Headers{values: parseHeaders(lines[1:])},
	}, nil
}

func parseRequestLine(b []byte) (RequestLine, error) {
	tokens := bytesplit.ByByte(b, ' ')
	if len(tokens) != 3 {
		return RequestLine{}, fmt.Errorf("%w: expected 3 tokens, got %d", ErrInvalidRequestLine, len(tokens))
	}

	method, ok := types.ParseMethod(tokens[0])
	if !ok {
		return RequestLine{}, fmt.Errorf("%w: %q", ErrMethodNotFound, tokens[0])
	}

	version, err := parseVersion(tokens[2])
	if err != nil {
		return RequestLine{}, err
	}

	return RequestLine{
		Method:  method,
		Path:    path.NewPath(lossyString(tokens[1])),
		Version: version,
	}, nil
}

func parseVersion(b []byte) (types.Version, error) {
	nameAndNumber := bytesplit.ByByte(b, '/')
	if len(nameAndNumber) != 2 {
		return types.Version{}, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, b)
	}

	number := bytesplit.ByByte(nameAndNumber[1], '.')
	if len(number) != 2 {
		return types.Version{}, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, b)
	}

	if len(nameAndNumber[0]) == 0 || !isDigits(number[0]) || !isDigits(number[1]) {
		return types.Version{}, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, b)
	}

	return types.Version{
		Name:  lossyString(nameAndNumber[0]),
		Major: string(number[0]),
		Minor: string(number[1]),
	}, nil
}

func isDigits(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func parseHeaders(lines [][]byte) map[string]string {
	headers := make(map[string]string, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			break
		}

		colonIdx := bytes.IndexByte(line, ':')
		if colonIdx == -1 {
			continue
		}

		key := line[:colonIdx]
		value := bytes.TrimSpace(line[colonIdx+1:])
		headers[lossyString(key)] = lossyString(value)
	}
	return headers
}

// lossyString replaces every invalid UTF-8 byte with U+FFFD.
func lossyString(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}

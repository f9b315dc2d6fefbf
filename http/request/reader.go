package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var headTerminator = []byte("\r\n\r\n")

// ReadHead reads from r until the buffered bytes contain the blank line that
// ends a request head. Bytes read past the terminator are returned as well.
// A head, terminator included, longer than maxBytes is ErrRequestTooLarge.
func ReadHead(r io.Reader, chunkSize, maxBytes int) ([]byte, error) {
	if chunkSize <= 0 {
		chunkSize = 128
	}

	buf := make([]byte, 0, chunkSize)
	chunk := make([]byte, chunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			// only the new bytes plus the 3 before them can complete the terminator
			start := max(len(buf)-len(headTerminator)+1, 0)
			buf = append(buf, chunk[:n]...)
			if idx := bytes.Index(buf[start:], headTerminator); idx >= 0 {
				if maxBytes > 0 && start+idx+len(headTerminator) > maxBytes {
					return nil, fmt.Errorf("%w: head exceeds %d bytes", ErrRequestTooLarge, maxBytes)
				}
				return buf, nil
			}
			if maxBytes > 0 && len(buf) >= maxBytes {
				return nil, fmt.Errorf("%w: more than %d bytes without a blank line", ErrRequestTooLarge, maxBytes)
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}
			if len(buf) == 0 {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequestStructure, io.ErrUnexpectedEOF)
		}
	}
}

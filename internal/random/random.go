package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	IDLength = 8
	charset  = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
)

// Source hands out short identifiers used to correlate log lines of one
// connection.
type Source interface {
	ID() (string, error)
	String(length int) (string, error)
}

type source struct {
	reader io.Reader
}

func New() Source {
	return &source{reader: rand.Reader}
}

func (s *source) ID() (string, error) {
	return s.String(IDLength)
}

func (s *source) String(length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(s.reader, b); err != nil {
		return "", err
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b), nil
}

package request

import "fmt"

var (
	// ErrInvalidRequestStructure is returned by ReadHead when the peer closes
	// mid-head. Decode never returns it.
	ErrInvalidRequestStructure = fmt.Errorf("invalid http request structure")
	ErrInvalidRequestLine      = fmt.Errorf("invalid request line syntax")
	ErrMethodNotFound          = fmt.Errorf("http method not found")
	ErrInvalidVersionFormat    = fmt.Errorf("invalid http version format")
	ErrRequestTooLarge         = fmt.Errorf("request head too large")
)

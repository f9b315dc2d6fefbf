package server

import (
	"fmt"

	"mini_http/internal/transport"
	"mini_http/router"
	"mini_http/types"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultReadBufferSize = 128
	DefaultMaxHeaderBytes = 8192
)

type Builder struct {
	addr                 string
	routes               []router.Route
	logger               zerolog.Logger
	readBufferSize       int
	maxHeaderBytes       int
	respondOnDecodeError bool
}

func NewBuilder() *Builder {
	return &Builder{
		logger:         log.Logger,
		readBufferSize: DefaultReadBufferSize,
		maxHeaderBytes: DefaultMaxHeaderBytes,
	}
}

// Listener sets the host:port the server binds to.
func (b *Builder) Listener(addr string) *Builder {
	b.addr = addr
	return b
}

func (b *Builder) AddRoute(route router.Route) *Builder {
	b.routes = append(b.routes, route)
	return b
}

func (b *Builder) Route(method types.Method, template string, handler router.Handler) *Builder {
	return b.AddRoute(router.NewRoute(method, template, handler))
}

func (b *Builder) Logger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// ReadBufferSize sets the size of each socket read while waiting for a full
// request head.
func (b *Builder) ReadBufferSize(n int) *Builder {
	b.readBufferSize = n
	return b
}

// MaxHeaderBytes bounds the request head. Zero disables the bound.
func (b *Builder) MaxHeaderBytes(n int) *Builder {
	b.maxHeaderBytes = n
	return b
}

// RespondOnDecodeError answers malformed requests with 400 (413 when the head
// is too large) instead of closing the connection silently.
func (b *Builder) RespondOnDecodeError(respond bool) *Builder {
	b.respondOnDecodeError = respond
	return b
}

// Build freezes the routes and binds the listener.
func (b *Builder) Build() (*Server, error) {
	if b.addr == "" {
		return nil, ErrNoListenAddress
	}
	if b.readBufferSize <= 0 {
		return nil, fmt.Errorf("invalid read buffer size %d", b.readBufferSize)
	}

	rt := router.New(b.routes, b.logger)
	tr := transport.NewHTTPServer(transport.Options{
		Addr:                 b.addr,
		ReadBufferSize:       b.readBufferSize,
		MaxHeaderBytes:       b.maxHeaderBytes,
		RespondOnDecodeError: b.respondOnDecodeError,
		Logger:               b.logger,
	}, rt)

	listener, err := tr.Listen()
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", b.addr, err)
	}

	return &Server{
		state:     StateBound,
		listener:  listener,
		transport: tr,
		router:    rt,
		logger:    b.logger,
	}, nil
}

package server

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"mini_http/internal/transport"
	"mini_http/router"

	"github.com/rs/zerolog"
)

var (
	ErrServerAlreadyRunning = fmt.Errorf("http server already running")
	ErrServerClosed         = fmt.Errorf("http server closed")
	ErrNoListenAddress      = fmt.Errorf("no listen address configured")
)

type State int

const (
	StateUnbound State = iota
	StateBound
	StateServing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateBound:
		return "bound"
	case StateServing:
		return "serving"
	case StateTerminated:
		return "terminated"
	default:
		return "unbound"
	}
}

type Server struct {
	mu        sync.Mutex
	state     State
	listener  net.Listener
	transport transport.Transport
	router    *router.Router
	logger    zerolog.Logger
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Router() *router.Router {
	return s.router
}

func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Run starts the acceptor goroutine and returns a handle to wait on it.
func (s *Server) Run() (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateServing:
		return nil, ErrServerAlreadyRunning
	case StateTerminated:
		return nil, ErrServerClosed
	}
	s.state = StateServing

	h := &Handle{done: make(chan struct{})}
	go func() {
		err := s.transport.Serve(s.listener)
		if err != nil {
			s.logger.Error().Err(err).Msg("acceptor stopped")
		}

		s.mu.Lock()
		s.state = StateTerminated
		s.mu.Unlock()

		h.err = err
		close(h.done)
	}()
	return h, nil
}

// Close stops accepting. Connections already handed to workers run to
// completion on their own.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return nil
	}
	s.state = StateTerminated

	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// Handle is returned by Run. Wait blocks until the acceptor exits.
type Handle struct {
	done chan struct{}
	err  error
}

func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

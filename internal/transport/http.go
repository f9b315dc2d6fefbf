package transport

import (
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	Addr                 string
	ReadBufferSize       int
	MaxHeaderBytes       int
	RespondOnDecodeError bool
	Logger               zerolog.Logger
}

const maxAcceptDelay = time.Second

type httpServer struct {
	addr    string
	handler *httpHandler
	logger  zerolog.Logger
}

func NewHTTPServer(opts Options, dispatcher Dispatcher) Transport {
	return &httpServer{
		addr:    opts.Addr,
		handler: newHTTPHandler(opts, dispatcher),
		logger:  opts.Logger,
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ht.addr)
}

// Serve accepts until the listener is closed. Each connection gets its own
// goroutine for its whole lifetime. Repeated accept failures back off from
// 5ms up to maxAcceptDelay.
func (ht *httpServer) Serve(listener net.Listener) error {
	ht.logger.Info().Str("addr", listener.Addr().String()).Msg("HTTP server is listening")
	var delay time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			delay = nextAcceptDelay(delay)
			ht.logger.Error().Err(err).Dur("retry_in", delay).Msg("error accepting connection")
			time.Sleep(delay)
			continue
		}
		delay = 0

		go ht.handler.handle(conn)
	}
}

func nextAcceptDelay(prev time.Duration) time.Duration {
	if prev == 0 {
		return 5 * time.Millisecond
	}
	return min(prev*2, maxAcceptDelay)
}

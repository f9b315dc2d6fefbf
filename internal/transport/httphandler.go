package transport

import (
	"errors"
	"io"
	"net"

	"mini_http/http/request"
	"mini_http/http/response"
	"mini_http/internal/random"
	"mini_http/types"

	"github.com/rs/zerolog"
)

type httpHandler struct {
	dispatcher           Dispatcher
	readBufferSize       int
	maxHeaderBytes       int
	respondOnDecodeError bool
	logger               zerolog.Logger
	ids                  random.Source
}

func newHTTPHandler(opts Options, dispatcher Dispatcher) *httpHandler {
	return &httpHandler{
		dispatcher:           dispatcher,
		readBufferSize:       opts.ReadBufferSize,
		maxHeaderBytes:       opts.MaxHeaderBytes,
		respondOnDecodeError: opts.RespondOnDecodeError,
		logger:               opts.Logger,
		ids:                  random.New(),
	}
}

func (hh *httpHandler) handle(conn net.Conn) {
	logger := hh.logger.With().
		Str("conn", hh.connID()).
		Str("remote", remoteAddr(conn)).
		Logger()
	defer hh.closeConnection(conn, logger)
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("panic while serving connection, dropping it")
		}
	}()

	logger.Debug().Msg("accepted new connection")

	head, err := request.ReadHead(conn, hh.readBufferSize, hh.maxHeaderBytes)
	if err != nil {
		if errors.Is(err, io.EOF) {
			logger.Debug().Msg("connection closed before a request was sent")
			return
		}
		logger.Error().Err(err).Msg("error reading request")
		hh.reject(conn, err, logger)
		return
	}
	logger.Trace().Bytes("raw", head).Msg("received request bytes")

	req, err := request.Decode(head)
	if err != nil {
		logger.Error().Err(err).Msg("error decoding request")
		hh.reject(conn, err, logger)
		return
	}
	logger.Debug().
		Str("method", req.Method().String()).
		Str("path", req.Path().Raw()).
		Int("headers", req.Headers().Len()).
		Msg("decoded request")

	resp := hh.dispatcher.Handle(req)
	if _, err = resp.WriteTo(conn); err != nil {
		logger.Error().Err(err).Msg("error writing response")
	}
}

// reject answers a malformed request when configured to. Transport level read
// failures never get a response.
func (hh *httpHandler) reject(conn net.Conn, err error, logger zerolog.Logger) {
	if !hh.respondOnDecodeError {
		return
	}

	status, ok := rejectionStatus(err)
	if !ok {
		return
	}
	if _, werr := response.FromStatus(status).WriteTo(conn); werr != nil {
		logger.Error().Err(werr).Msg("error writing rejection")
	}
}

func rejectionStatus(err error) (types.StatusCode, bool) {
	switch {
	case errors.Is(err, request.ErrRequestTooLarge):
		return types.StatusPayloadTooLarge, true
	case errors.Is(err, request.ErrInvalidRequestStructure),
		errors.Is(err, request.ErrInvalidRequestLine),
		errors.Is(err, request.ErrMethodNotFound),
		errors.Is(err, request.ErrInvalidVersionFormat):
		return types.StatusBadRequest, true
	default:
		return 0, false
	}
}

func (hh *httpHandler) closeConnection(conn net.Conn, logger zerolog.Logger) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		logger.Error().Err(err).Msg("error closing connection")
	}
}

func remoteAddr(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return "unknown"
}

func (hh *httpHandler) connID() string {
	id, err := hh.ids.ID()
	if err != nil {
		return "unknown"
	}
	return id
}

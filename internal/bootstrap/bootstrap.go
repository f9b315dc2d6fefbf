package bootstrap

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"mini_http/internal/config"
	"mini_http/internal/version"
	"mini_http/server"

	"github.com/rs/zerolog"
)

type Bootstrap struct {
	Config     config.Config
	Logger     zerolog.Logger
	Server     *server.Server
	Out        io.Writer
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(conf config.Config, logger zerolog.Logger) (*Bootstrap, error) {
	builder := server.NewBuilder().
		Listener(conf.ListenAddr()).
		Logger(logger).
		ReadBufferSize(conf.ReadBufferSize()).
		MaxHeaderBytes(conf.MaxHeaderBytes()).
		RespondOnDecodeError(conf.RespondOnDecodeError())
	for _, route := range demoRoutes(&hits{}) {
		builder.AddRoute(route)
	}

	srv, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &Bootstrap{
		Config:     conf,
		Logger:     logger,
		Server:     srv,
		Out:        os.Stdout,
		ErrChan:    make(chan error, 1),
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

func (b *Bootstrap) Run() error {
	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	if _, err := fmt.Fprint(b.Out, renderBanner(b.Server.Addr().String(), b.Server.Router().Routes())); err != nil {
		b.Logger.Warn().Err(err).Msg("failed to print banner")
	}

	b.Logger.Info().Str("version", version.Short()).Str("addr", b.Server.Addr().String()).Msg("starting mini_http")
	handle, err := b.Server.Run()
	if err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	go func() {
		if err := handle.Wait(); err != nil {
			b.ErrChan <- err
		}
	}()

	select {
	case err = <-b.ErrChan:
		_ = b.Server.Close()
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		b.Logger.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
		if err = b.Server.Close(); err != nil {
			return fmt.Errorf("close server: %w", err)
		}
		<-handle.Done()
		return nil
	}
}

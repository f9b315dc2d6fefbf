package main

import (
	"os"

	"mini_http/internal/bootstrap"
	"mini_http/internal/config"
	"mini_http/internal/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	conf, err := config.MustLoad()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	l, err := logger.New(conf.LogLevel(), conf.LogFormat(), os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create logger")
	}
	log.Logger = l

	app, err := bootstrap.New(conf, l)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to bootstrap")
	}

	if err = app.Run(); err != nil {
		l.Fatal().Err(err).Msg("application error")
	}
}

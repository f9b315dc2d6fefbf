package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	listenAddr string

	readBufferSize       int
	maxHeaderBytes       int
	respondOnDecodeError bool

	logLevel  string
	logFormat string
}

func parse() (*config, error) {
	listenAddr := getenv("LISTEN_ADDR", "127.0.0.1:4221")
	if _, _, err := net.SplitHostPort(listenAddr); err != nil {
		return nil, fmt.Errorf("invalid LISTEN_ADDR: %w", err)
	}

	logLevel := strings.ToLower(getenv("LOG_LEVEL", "info"))
	if _, err := zerolog.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL value: %w", err)
	}

	logFormat, err := parseLogFormat()
	if err != nil {
		return nil, err
	}

	return &config{
		listenAddr:           listenAddr,
		readBufferSize:       parseBoundedInt("READ_BUFFER_SIZE", 128, 64, 65536),
		maxHeaderBytes:       parseBoundedInt("MAX_HEADER_BYTES", 8192, 128, 1048576),
		respondOnDecodeError: getenvBool("RESPOND_ON_DECODE_ERROR", false),
		logLevel:             logLevel,
		logFormat:            logFormat,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseLogFormat() (string, error) {
	switch format := strings.ToLower(getenv("LOG_FORMAT", "console")); format {
	case "console", "json":
		return format, nil
	default:
		return "", fmt.Errorf("invalid LOG_FORMAT value")
	}
}

func parseBoundedInt(key string, def, lower, upper int) int {
	raw := getenv(key, strconv.Itoa(def))
	n, err := strconv.Atoi(raw)
	if err != nil || n < lower || n > upper {
		log.Warn().Str("key", key).Str("value", raw).Int("fallback", def).Msg("invalid value, falling back to default")
		return def
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}

package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/kerosiinikone/go-grpc-pixelforge/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "PIXELFORGE_LOG_LEVEL"

// New builds the process logger for app and installs it as the zerolog
// global logger.
func New(cfg config.LogConfig, app string) zerolog.Logger {
	return NewWithWriter(cfg, app, os.Stderr)
}

func NewWithWriter(cfg config.LogConfig, app string, w io.Writer) zerolog.Logger {
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	level := ParseLevel(cfg.Level)
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		level = ParseLevel(lvl)
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// ParseLevel maps a level name to a zerolog level; unknown names mean info.
func ParseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

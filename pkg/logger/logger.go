// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env     string // "development" switches to console output with caller info
	Level   string
	Service string
	Output  io.Writer // stdout when nil
}

// New returns the root logger and installs it as log.Logger and as the fallback for
// zerolog.Ctx, so packages that log through zerolog/log share its level and fields.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	dev := cfg.Env == "development"
	if dev {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	fields := zerolog.New(out).Level(Level(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		fields = fields.Str("service", cfg.Service)
	}
	if dev {
		fields = fields.Caller()
	}
	l := fields.Logger()

	log.Logger = l
	zerolog.DefaultContextLogger = &l
	return l
}

// Level parses a level name case-insensitively. Empty or unknown names mean info.
func Level(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

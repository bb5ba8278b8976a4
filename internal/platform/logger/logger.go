// Package logger provides structured logging functionality for the application.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/rsvp-tracker/internal/config"
)

// LevelLog sits between debug and info and carries general-purpose "log"
// messages.
const LevelLog = slog.Level(-2)

// Logger is the logging capability injected into services.
// Implementations must not panic and have no return values; err may be nil.
type Logger interface {
	Info(msg string)
	Log(msg string)
	Warn(msg string)
	Error(msg string, err error)
}

// Setup builds a structured logger from the logging configuration, writing
// to out. An unrecognized level falls back to info and logs a warning.
// Returns an error if the output format is not supported.
func Setup(cfg config.LoggingConfig, out io.Writer) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelName,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(out, opts)
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	logger := slog.New(handler)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	return logger, nil
}

// ParseLevel maps a configured level name to a slog level (case-insensitive).
// The second result is false when the name is unknown, in which case info is
// returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "log":
		return LevelLog, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelLog {
		a.Value = slog.StringValue("LOG")
	}
	return a
}

// Slog adapts a *slog.Logger to the Logger interface.
type Slog struct {
	logger *slog.Logger
}

// New wraps l. A nil l uses slog.Default().
func New(l *slog.Logger) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{logger: l}
}

// With returns a Slog that adds args to every record.
func (s *Slog) With(args ...any) *Slog {
	return &Slog{logger: s.logger.With(args...)}
}

// Info logs at info level.
func (s *Slog) Info(msg string) {
	s.logger.Info(msg)
}

// Log logs at LevelLog.
func (s *Slog) Log(msg string) {
	s.logger.Log(context.Background(), LevelLog, msg)
}

// Warn logs at warn level.
func (s *Slog) Warn(msg string) {
	s.logger.Warn(msg)
}

// Error logs at error level, attaching err when present.
func (s *Slog) Error(msg string, err error) {
	if err != nil {
		s.logger.Error(msg, "error", err)
		return
	}
	s.logger.Error(msg)
}

type nop struct{}

func (nop) Info(string)         {}
func (nop) Log(string)          {}
func (nop) Warn(string)         {}
func (nop) Error(string, error) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nop{}
}

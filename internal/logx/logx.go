// Package logx provides a structured logging implementation based on slog.
//
// Overview:
//   - Responsibility: Leveled logfmt/JSON records with sorted fields and a colorized level
//   - Key Types: Logger (log.Logger over *slog.Logger), Option
//   - Concurrency Model: All loggers are safe for concurrent use
//   - Error Semantics: No errors returned; write failures are dropped
//   - Performance Notes: One buffered write per record
//
// Usage:
//
//	logger := logx.New(logx.WithLevel(slog.LevelDebug), logx.WithColorAuto())
//	logger.Debug("file written", log.Str("path", "server.js"))
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"go.eggybyte.com/create-node-api/internal/log"
)

// Format selects the record encoding.
type Format string

const (
	// FormatLogfmt writes key=value records.
	FormatLogfmt Format = "logfmt"
	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

type settings struct {
	format    Format
	level     slog.Level
	color     bool
	colorAuto bool
	timestamp bool
	writer    io.Writer
}

// Option configures a logger.
type Option func(*settings)

// WithFormat sets the record encoding.
func WithFormat(format Format) Option {
	return func(s *settings) { s.format = format }
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(s *settings) { s.level = level }
}

// WithColor colorizes the level value.
func WithColor(enabled bool) Option {
	return func(s *settings) { s.color = enabled }
}

// WithColorAuto colorizes the level value only when the writer is a terminal.
func WithColorAuto() Option {
	return func(s *settings) { s.colorAuto = true }
}

// WithWriter sets the destination. Nil keeps stderr.
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.writer = w
		}
	}
}

// WithTimestamp adds the record time as the first field.
func WithTimestamp(enabled bool) Option {
	return func(s *settings) { s.timestamp = enabled }
}

// Logger implements log.Logger on top of a *slog.Logger.
type Logger struct {
	sl *slog.Logger
}

// New creates a Logger. Defaults: logfmt, info level, stderr, no color, no timestamp.
func New(opts ...Option) log.Logger {
	return &Logger{sl: Slog(opts...)}
}

// Slog returns a standard *slog.Logger writing through the same handler.
func Slog(opts ...Option) *slog.Logger {
	s := settings{
		format: FormatLogfmt,
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.colorAuto {
		s.color = IsTerminal(s.writer)
	}
	return slog.New(newHandler(s))
}

// IsTerminal reports whether w is a terminal (or Cygwin pty).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (l *Logger) With(kv ...any) log.Logger {
	return &Logger{sl: l.sl.With(flatten(kv)...)}
}

func (l *Logger) Debug(msg string, kv ...any) { l.sl.Debug(msg, flatten(kv)...) }

func (l *Logger) Info(msg string, kv ...any) { l.sl.Info(msg, flatten(kv)...) }

func (l *Logger) Warn(msg string, kv ...any) { l.sl.Warn(msg, flatten(kv)...) }

// Error logs at error level with err under the "error" key.
func (l *Logger) Error(err error, msg string, kv ...any) {
	args := flatten(kv)
	if err != nil {
		args = append([]any{"error", err}, args...)
	}
	l.sl.Error(msg, args...)
}

// flatten expands pairs built with log.Str and friends into plain key/value args.
func flatten(kv []any) []any {
	out := make([]any, 0, len(kv))
	for _, item := range kv {
		if pair, ok := item.([]any); ok && len(pair) == 2 {
			out = append(out, pair...)
			continue
		}
		out = append(out, item)
	}
	return out
}

// Package logging provides the logger used across sqlite-archiver.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the minimal logging surface the rest of the system depends on.
// Args are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type zeroLogger struct {
	zl zerolog.Logger
}

// New builds a logger writing to stderr. Level is one of
// "debug", "info", "warn", "error" (anything else means info);
// format is "json" or "console".
func New(level, format string) Logger {
	return NewWriter(os.Stderr, level, format)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, level, format string) Logger {
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	return zeroLogger{zl: zl}
}

// Nop discards all output.
func Nop() Logger {
	return zeroLogger{zl: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l zeroLogger) Debug(msg string, args ...any) { emit(l.zl.Debug(), msg, args) }
func (l zeroLogger) Info(msg string, args ...any)  { emit(l.zl.Info(), msg, args) }
func (l zeroLogger) Warn(msg string, args ...any)  { emit(l.zl.Warn(), msg, args) }
func (l zeroLogger) Error(msg string, args ...any) { emit(l.zl.Error(), msg, args) }

func emit(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}

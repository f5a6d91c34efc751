package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the logging surface the grid packages accept. It matches the
// slog call shape so any slog-backed implementation drops in.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	// Writer receives the log output. Defaults to os.Stderr.
	Writer io.Writer
	Level  Level
	Format Format
}

var DefaultLogger = New(Options{Level: DefaultLevel, Format: FormatText})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, handlerOpts)
	case FormatText:
		fallthrough
	default:
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return &logger{Logger: slog.New(handler)}
}

// Nop discards everything. Useful as a default when the caller did not
// wire a logger.
func Nop() Logger {
	return nop{}
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// Package logging provides the slog-backed logger accepted by the
// components of the library that report progress, such as the key
// generator.
//
// Library code is silent by default: [Discard] drops every record. Callers
// opt in by passing a [Logger] built with [New]. Secret material (prime
// factors, decryption exponents, plaintexts) is never logged; [Redacted]
// records that a value was left out.
package logging

import (
	"context"
	"log/slog"
)

// Logger is the logging capability used by the library. Debug records
// per-attempt details, Info records completed operations.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// With returns a Logger that adds args to every record.
	With(args ...any) Logger
}

// New returns a [Logger] writing to logger, or to [slog.Default] if logger
// is nil.
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogger{logger}
}

// Discard returns a [Logger] that drops every record.
func Discard() Logger {
	return discard{}
}

type slogger struct {
	*slog.Logger
}

func (l slogger) Debug(ctx context.Context, msg string, args ...any) {
	l.DebugContext(ctx, msg, args...)
}

func (l slogger) Info(ctx context.Context, msg string, args ...any) {
	l.InfoContext(ctx, msg, args...)
}

func (l slogger) With(args ...any) Logger {
	return slogger{l.Logger.With(args...)}
}

type discard struct{}

func (discard) Debug(context.Context, string, ...any) {}
func (discard) Info(context.Context, string, ...any)  {}
func (d discard) With(...any) Logger                  { return d }

const placeholder = "[redacted]"

// Redacted returns the attribute key=[redacted], logged in place of a
// secret value.
func Redacted(key string) slog.Attr {
	return slog.String(key, placeholder)
}

// Placeholder returns the string printed in place of secret values.
func Placeholder() string {
	return placeholder
}

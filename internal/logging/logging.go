// Package logging builds the zap logger that writes diagnostics to the
// bound log stream, and carries it through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w at the given level and format. The level
// is returned as well so it can be raised later (e.g. by --verbose).
func New(level, format string, w io.Writer) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var enc zapcore.Encoder
	switch format {
	case FormatConsole, "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log format %q (want %s or %s)", format, FormatConsole, FormatJSON)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core), lvl, nil
}

type loggerKey struct{}

type levelKey struct{}

// WithLogger returns a copy of ctx carrying l and its level.
func WithLogger(ctx context.Context, l *zap.Logger, lvl zap.AtomicLevel) context.Context {
	ctx = context.WithValue(ctx, loggerKey{}, l)
	return context.WithValue(ctx, levelKey{}, lvl)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// LevelFromContext returns the adjustable level stored alongside the logger.
func LevelFromContext(ctx context.Context) (zap.AtomicLevel, bool) {
	lvl, ok := ctx.Value(levelKey{}).(zap.AtomicLevel)
	return lvl, ok
}

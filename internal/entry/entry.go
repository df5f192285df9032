// Package entry is the outermost layer of a program using the console shim:
// it binds the console, hands UTF-8 arguments and streams to the
// application, and turns whatever the application does into an exit status.
package entry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/zorak1103/utf8shim/internal/console"
	"github.com/zorak1103/utf8shim/internal/logging"
)

// Exit statuses returned by Run.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// App is the application logic run inside the adapter. A non-nil error is
// reported on the error stream and turns into ExitFailure regardless of
// the returned code.
type App func(ctx context.Context, args []string, streams *console.Streams) (int, error)

// Setup runs once the streams are bound and before the arguments are
// acquired. It may decorate the context (for example with a logger writing
// to streams.Log).
type Setup func(ctx context.Context, streams *console.Streams) (context.Context, error)

type options struct {
	setup    Setup
	fallback io.Writer
}

// Option configures Run.
type Option func(*options)

// WithSetup registers a hook run right after the console is bound.
func WithSetup(s Setup) Option {
	return func(o *options) { o.setup = s }
}

// WithFallback sets where failures are written when no bound error stream
// exists yet. Defaults to os.Stderr.
func WithFallback(w io.Writer) Option {
	return func(o *options) { o.fallback = w }
}

// Run binds the console through b, runs app with the UTF-8 arguments and
// returns the process exit status. Nothing app does, returning an error or
// panicking, escapes Run.
func Run(ctx context.Context, b *console.Binder, rawArgs []string, app App, opts ...Option) int {
	o := options{fallback: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	streams, err := b.Configure()
	if err != nil {
		report(o.fallback, err)
		return ExitFailure
	}
	defer func() {
		if err := b.Terminate(); err != nil {
			logging.FromContext(ctx).Warn("flushing streams", zap.Error(err))
		}
	}()

	if o.setup != nil {
		decorated, err := o.setup(ctx, streams)
		if err != nil {
			report(streams.Err, err)
			return ExitFailure
		}
		ctx = decorated
	}
	logger := logging.FromContext(ctx)
	logger.Debug("console bound",
		zap.Stringer("mode", streams.Mode),
		zap.String("bridge", streams.Bridge.Name()))

	args, err := b.Arguments(rawArgs)
	if err != nil {
		report(streams.Err, err)
		return ExitFailure
	}
	logger.Debug("arguments acquired", zap.Int("count", len(args)))

	code, err := invoke(ctx, app, args, streams)
	if err != nil {
		logger.Debug("application failed", zap.Error(err))
		report(streams.Err, err)
		return ExitFailure
	}
	return code
}

// invoke calls app, converting a panic into an error.
func invoke(ctx context.Context, app App, args []string, streams *console.Streams) (code int, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Debug("recovered panic", zap.Any("value", r), zap.Stack("stack"))
			code, err = ExitFailure, &PanicError{Value: r}
		}
	}()
	return app(ctx, args, streams)
}

// PanicError carries a value recovered from a panicking application.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	switch v := e.Value.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// report writes the failure description followed by one newline.
func report(w io.Writer, err error) {
	_, _ = io.WriteString(w, err.Error())
	_ = console.Newline(w)
}

// Main runs app on the platform's console in the given mode and exits the
// process with its status.
func Main(mode console.Mode, app App, opts ...Option) {
	c, err := console.Detect(mode)
	if err != nil {
		report(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(Run(context.Background(), console.NewBinder(c), os.Args, app, opts...))
}

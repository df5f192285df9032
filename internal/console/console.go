// Package console binds the process's standard streams and argument vector
// so application code only ever sees UTF-8.
//
// A Console is one of two strategies: UTF8Console, for hosts whose console
// already speaks UTF-8, and WideConsole, for hosts whose console and command
// line use a wide native representation. Detect picks one for the current
// platform. A Binder runs the chosen strategy exactly once per process.
package console

import (
	"errors"
	"io"

	"github.com/zorak1103/utf8shim/internal/bridge"
	apperrors "github.com/zorak1103/utf8shim/internal/errors"
)

// ErrUnsupported is returned by Detect for a mode the platform cannot bind.
var ErrUnsupported = errors.New("console mode not supported on this platform")

// Console is a stream and argument binding strategy.
type Console interface {
	// Mode reports the discipline Bind applies.
	Mode() Mode
	// Bind switches the standard streams into the strategy's mode and
	// returns them.
	Bind() (*Streams, error)
	// Arguments returns the process arguments as UTF-8. raw is what the
	// process entry point received; strategies that can re-acquire the
	// original command line from the OS ignore it.
	Arguments(raw []string) ([]string, error)
}

// UTF8Console binds streams as identity pass-throughs and hands raw
// arguments back unchanged.
type UTF8Console struct {
	in       io.Reader
	out, err io.Writer
}

// NewUTF8Console returns a pass-through strategy over the given handles.
// The log stream shares the error handle.
func NewUTF8Console(in io.Reader, out, errw io.Writer) *UTF8Console {
	return &UTF8Console{in: in, out: out, err: errw}
}

// Mode implements Console.
func (c *UTF8Console) Mode() Mode { return ModeUTF8 }

// Bind implements Console.
func (c *UTF8Console) Bind() (*Streams, error) {
	return &Streams{
		In:     c.in,
		Out:    c.out,
		Err:    c.err,
		Log:    c.err,
		Mode:   ModeUTF8,
		Bridge: bridge.Identity{},
	}, nil
}

// Arguments implements Console. The returned slice is raw itself.
func (c *UTF8Console) Arguments(raw []string) ([]string, error) {
	return raw, nil
}

// CommandLine re-acquires the process command line from the OS, split by
// the OS's own tokenizer, one native-encoded entry per argument.
type CommandLine interface {
	Split() ([][]byte, error)
}

// Handle is one OS standard stream as a WideConsole sees it. Native reports
// whether the handle speaks the wide representation; handles that do not
// (redirected to a file or pipe) are bound as UTF-8 pass-throughs.
type Handle struct {
	Reader io.Reader
	Writer io.Writer
	Native bool
}

// WideConsole transcodes native handles through a Bridge and rebuilds the
// argument vector from the OS command line.
type WideConsole struct {
	bridge   bridge.Bridge
	in       Handle
	out, err Handle
	cmdline  CommandLine
}

// NewWideConsole returns a wide strategy. in must carry a Reader, out and
// errh a Writer.
func NewWideConsole(b bridge.Bridge, in, out, errh Handle, cmdline CommandLine) *WideConsole {
	return &WideConsole{bridge: b, in: in, out: out, err: errh, cmdline: cmdline}
}

// Mode implements Console.
func (c *WideConsole) Mode() Mode { return ModeWide }

// Bind implements Console.
func (c *WideConsole) Bind() (*Streams, error) {
	if c.in.Reader == nil || c.out.Writer == nil || c.err.Writer == nil {
		return nil, &apperrors.ConsoleError{Operation: "bind", Err: errors.New("missing standard handle")}
	}
	s := &Streams{
		In:     c.in.Reader,
		Out:    c.writer(c.out),
		Err:    c.writer(c.err),
		Log:    c.writer(c.err),
		Mode:   ModeWide,
		Bridge: c.bridge,
	}
	if c.in.Native {
		s.In = NewWideReader(c.bridge, c.in.Reader)
	}
	return s, nil
}

func (c *WideConsole) writer(h Handle) io.Writer {
	if h.Native {
		return NewWideWriter(c.bridge, h.Writer)
	}
	return h.Writer
}

// Arguments implements Console. raw is ignored: the entry point's values
// may already have been mangled by a lossy code page conversion.
func (c *WideConsole) Arguments(_ []string) ([]string, error) {
	if c.cmdline == nil {
		return nil, &apperrors.ArgumentError{Op: "split", Index: -1, Err: errors.New("no command line source")}
	}
	natives, err := c.cmdline.Split()
	if err != nil {
		return nil, err
	}
	args := make([]string, 0, len(natives))
	for i, n := range natives {
		u, err := c.bridge.ToUTF8(n)
		if err != nil {
			return nil, &apperrors.ArgumentError{Op: "convert", Index: i, Err: err}
		}
		args = append(args, string(u))
	}
	return args, nil
}

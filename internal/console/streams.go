package console

import (
	"errors"
	"io"

	"github.com/zorak1103/utf8shim/internal/bridge"
)

// Stream names as used in errors and logs.
const (
	StreamIn  = "stdin"
	StreamOut = "stdout"
	StreamErr = "stderr"
	StreamLog = "stdlog"
)

// Streams is the set of standard streams bound for the life of the process.
// Application code reads and writes UTF-8 through these and never touches
// the os package's handles directly, so only one I/O discipline is ever in
// use per handle.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	Log io.Writer

	// Mode is the discipline the streams were bound with.
	Mode Mode
	// Bridge is the converter sitting between these streams and the OS.
	Bridge bridge.Bridge
}

var newline = []byte{'\n'}

// Newline writes a single line feed to w. It works the same whether w is a
// pass-through handle or a wide stream, so callers never branch on Mode.
func Newline(w io.Writer) error {
	_, err := w.Write(newline)
	return err
}

type flusher interface {
	Flush() error
}

// Flush reports any incomplete UTF-8 sequence still held by the output
// streams. Pass-through streams have nothing to flush.
func (s *Streams) Flush() error {
	var errs []error
	for _, w := range []io.Writer{s.Out, s.Err, s.Log} {
		if f, ok := w.(flusher); ok {
			errs = append(errs, f.Flush())
		}
	}
	return errors.Join(errs...)
}

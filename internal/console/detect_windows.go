//go:build windows

package console

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/zorak1103/utf8shim/internal/bridge"
	apperrors "github.com/zorak1103/utf8shim/internal/errors"
)

const ctrlZ = 0x1a

// Detect returns the strategy for mode on this platform. auto resolves to
// wide: handles attached to the console are driven with WriteConsoleW and
// ReadConsoleW, redirected handles stay UTF-8 byte streams.
func Detect(mode Mode) (Console, error) {
	switch mode {
	case ModeUTF8:
		return NewUTF8Console(os.Stdin, os.Stdout, os.Stderr), nil
	case ModeAuto, ModeWide:
		return NewWideConsole(bridge.Wide(),
			osHandle(os.Stdin, StreamIn),
			osHandle(os.Stdout, StreamOut),
			osHandle(os.Stderr, StreamErr),
			osCommandLine{}), nil
	default:
		return nil, &apperrors.ConsoleError{Operation: "detect", Err: fmt.Errorf("%w: %s", ErrUnsupported, mode)}
	}
}

func osHandle(f *os.File, name string) Handle {
	if !IsNativeConsole(f) {
		return Handle{Reader: f, Writer: f}
	}
	h := windows.Handle(f.Fd())
	return Handle{
		Reader: &consoleSource{h: h, name: name},
		Writer: &consoleSink{h: h, name: name},
		Native: true,
	}
}

// consoleSink writes UTF-16LE text to a console handle.
type consoleSink struct {
	h    windows.Handle
	name string
}

func (s *consoleSink) Write(native []byte) (int, error) {
	units, err := bridge.BytesToUnits(native)
	if err != nil {
		return 0, err
	}
	for len(units) > 0 {
		var written uint32
		if err := windows.WriteConsole(s.h, &units[0], uint32(len(units)), &written, nil); err != nil {
			return 0, &apperrors.ConsoleError{Stream: s.name, Operation: "WriteConsoleW", Err: err}
		}
		units = units[written:]
	}
	return len(native), nil
}

// consoleSource reads UTF-16LE text from a console handle.
type consoleSource struct {
	h    windows.Handle
	name string
}

func (s *consoleSource) Read(p []byte) (int, error) {
	if len(p) < 2 {
		return 0, io.ErrShortBuffer
	}
	units := make([]uint16, len(p)/2)
	var read uint32
	if err := windows.ReadConsole(s.h, &units[0], uint32(len(units)), &read, nil); err != nil {
		return 0, &apperrors.ConsoleError{Stream: s.name, Operation: "ReadConsoleW", Err: err}
	}
	if read == 0 || units[0] == ctrlZ {
		return 0, io.EOF
	}
	return copy(p, bridge.UnitsToBytes(units[:read])), nil
}

// osCommandLine re-reads GetCommandLineW and splits it with
// CommandLineToArgvW.
type osCommandLine struct{}

func (osCommandLine) Split() ([][]byte, error) {
	return splitCommandLine(windows.GetCommandLine())
}

func splitCommandLine(cmd *uint16) ([][]byte, error) {
	var argc int32
	argv, err := windows.CommandLineToArgv(cmd, &argc)
	if err != nil {
		return nil, &apperrors.ArgumentError{Op: "CommandLineToArgvW", Index: -1, Err: err}
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(argv))) //nolint:errcheck

	args := make([][]byte, argc)
	for i := range args {
		p := argv[i]
		n := 0
		for n < len(p) && p[n] != 0 {
			n++
		}
		args[i] = bridge.UnitsToBytes(p[:n])
	}
	return args, nil
}
